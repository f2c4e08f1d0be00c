package core

import (
	"errors"
	"fmt"
	"time"
)

// RecordType is the closed set of money-flow directions. The sign of a
// record's amount never carries direction; the type does.
type RecordType string

const (
	Income   RecordType = "Income"
	Outcome  RecordType = "Outcome"
	Transfer RecordType = "Transfer"
)

var (
	ErrInvalidRecordType = errors.New("invalid record type")
	ErrAmountNotPositive = errors.New("amount cannot be equal or less than zero")
)

// ParseRecordType maps a label onto the enumeration.
func ParseRecordType(s string) (RecordType, error) {
	switch RecordType(s) {
	case Income, Outcome, Transfer:
		return RecordType(s), nil
	}
	return "", fmt.Errorf("%w %q", ErrInvalidRecordType, s)
}

func (t RecordType) String() string { return string(t) }

// Record is a single financial movement on an account. Category, when
// set, is a fully hydrated snapshot resolved at creation or update time,
// not a bare id.
type Record struct {
	ID          int64
	AccountID   int64
	Type        RecordType
	Amount      int64
	Description *string
	Category    *Category
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewRecord validates the record type label and the amount, stamping both
// timestamps with the current local time. The account id is not checked
// for existence here; that is the service's job.
func NewRecord(accountID int64, recordType string, amount int64, category *Category, description *string) (Record, error) {
	t, err := ParseRecordType(recordType)
	if err != nil {
		return Record{}, err
	}
	if amount <= 0 {
		return Record{}, ErrAmountNotPositive
	}
	now := time.Now()
	return Record{
		ID:          0,
		AccountID:   accountID,
		Type:        t,
		Amount:      amount,
		Description: description,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// SetAmount replaces the amount after the same positivity check applied
// at construction. On failure the record is left untouched.
func (r *Record) SetAmount(amount int64) error {
	if amount <= 0 {
		return ErrAmountNotPositive
	}
	r.Amount = amount
	return nil
}
