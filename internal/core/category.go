package core

import (
	"errors"
	"unicode/utf8"
)

const maxCategoryNameLength = 100

var ErrInvalidCategoryName = errors.New("category name must not be empty or longer than 100 characters")

// Category groups records and may carry an optional budget ceiling.
// Categories form a hierarchy through ParentID; depth is unbounded and no
// cycle detection is performed.
type Category struct {
	ID       int64
	Name     string
	Budget   *int64
	ParentID *int64
}

// NewCategory validates the name length (counted in code points, not
// bytes) and returns a category with an unassigned id.
func NewCategory(name string, budget, parentID *int64) (Category, error) {
	if n := utf8.RuneCountInString(name); n == 0 || n > maxCategoryNameLength {
		return Category{}, ErrInvalidCategoryName
	}
	return Category{
		ID:       0,
		Name:     name,
		Budget:   budget,
		ParentID: parentID,
	}, nil
}
