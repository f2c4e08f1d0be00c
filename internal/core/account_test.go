package core

import (
	"errors"
	"testing"
)

func TestParseAccountType(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"Cash", true},
		{"DebitCard", true},
		{"CreditCard", true},
		{"cash", false},
		{"Checking", false},
		{"", false},
	}
	for i, tc := range cases {
		_, err := ParseAccountType(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && !errors.Is(err, ErrUnknownAccountType) {
			t.Fatalf("case %d expected ErrUnknownAccountType, got %v", i, err)
		}
	}
}

func TestNewAccount(t *testing.T) {
	acc, err := NewAccount("Checking", 0, "Cash")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if acc.ID != 0 {
		t.Fatalf("new account must have unassigned id, got %d", acc.ID)
	}
	if acc.Name != "Checking" || acc.Type != Cash || acc.Balance != 0 {
		t.Fatalf("unexpected account %+v", acc)
	}

	if _, err := NewAccount("Checking", 0, "PiggyBank"); !errors.Is(err, ErrUnknownAccountType) {
		t.Fatalf("expected ErrUnknownAccountType, got %v", err)
	}
}

func TestNewAccountAllowsNegativeBalance(t *testing.T) {
	acc, err := NewAccount("Visa", -12500, "CreditCard")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if acc.Balance != -12500 {
		t.Fatalf("expected balance -12500, got %d", acc.Balance)
	}
}
