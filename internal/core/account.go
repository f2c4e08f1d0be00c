// Package core contains the domain model: entities whose constructors
// enforce their invariants, independent of where the input came from.
package core

import "errors"

// AccountType is the closed set of supported account kinds.
type AccountType string

const (
	Cash       AccountType = "Cash"
	DebitCard  AccountType = "DebitCard"
	CreditCard AccountType = "CreditCard"
)

var ErrUnknownAccountType = errors.New("unknown account type")

// ParseAccountType maps a label onto the enumeration, rejecting anything
// outside it.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case Cash, DebitCard, CreditCard:
		return AccountType(s), nil
	}
	return "", ErrUnknownAccountType
}

func (t AccountType) String() string { return string(t) }

// Account is a money container. Balance is kept in minor currency units
// (cents) and may be negative.
type Account struct {
	ID      int64
	Name    string
	Type    AccountType
	Balance int64
}

// NewAccount validates the account type label and returns an account with
// an unassigned id. Storage assigns the real id on insert.
func NewAccount(name string, balance int64, accountType string) (Account, error) {
	t, err := ParseAccountType(accountType)
	if err != nil {
		return Account{}, err
	}
	return Account{
		ID:      0,
		Name:    name,
		Type:    t,
		Balance: balance,
	}, nil
}
