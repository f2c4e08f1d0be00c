package core

import (
	"errors"
	"strings"
	"testing"
)

func TestNewCategory(t *testing.T) {
	budget := int64(500)
	cat, err := NewCategory("Groceries", &budget, nil)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if cat.ID != 0 {
		t.Fatalf("new category must have unassigned id, got %d", cat.ID)
	}
	if cat.Name != "Groceries" || cat.Budget == nil || *cat.Budget != 500 || cat.ParentID != nil {
		t.Fatalf("unexpected category %+v", cat)
	}
}

func TestNewCategoryNameBounds(t *testing.T) {
	cases := []struct {
		name string
		in   string
		ok   bool
	}{
		{"empty", "", false},
		{"single char", "a", true},
		{"exactly 100", strings.Repeat("x", 100), true},
		{"101 chars", strings.Repeat("x", 101), false},
		// Length is counted in code points, not bytes.
		{"100 multibyte runes", strings.Repeat("è", 100), true},
		{"101 multibyte runes", strings.Repeat("è", 101), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCategory(tc.in, nil, nil)
			if tc.ok && err != nil {
				t.Fatalf("expected ok, got %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidCategoryName) {
				t.Fatalf("expected ErrInvalidCategoryName, got %v", err)
			}
		})
	}
}
