package services

import (
	"context"
	"fmt"

	"budgetd/internal/core"
)

// CreateCategoryCmd carries the input for a new category.
type CreateCategoryCmd struct {
	Name     string
	Budget   *int64
	ParentID *int64
}

// UpdateCategoryCmd rewrites a category's name and budget. The parent is
// fixed at creation time.
type UpdateCategoryCmd struct {
	ID     int64
	Name   string
	Budget *int64
}

// ListCategories returns every category.
func (s *BudgetService) ListCategories(ctx context.Context) ([]core.Category, error) {
	return s.repo.ListCategories(ctx)
}

// CreateCategory validates the name, inserts and returns the stored row.
func (s *BudgetService) CreateCategory(ctx context.Context, cmd CreateCategoryCmd) (core.Category, error) {
	cat, err := core.NewCategory(cmd.Name, cmd.Budget, cmd.ParentID)
	if err != nil {
		return core.Category{}, err
	}

	id, err := s.repo.CreateCategory(ctx, cat)
	if err != nil {
		return core.Category{}, fmt.Errorf("create category: %w", err)
	}

	created, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return core.Category{}, fmt.Errorf("re-read category %d: %w", id, err)
	}
	s.publish(ctx, "category", "created", id)
	return created, nil
}

// UpdateCategory overwrites name and budget on the stored category.
func (s *BudgetService) UpdateCategory(ctx context.Context, cmd UpdateCategoryCmd) (core.Category, error) {
	cat, err := s.repo.GetCategoryByID(ctx, cmd.ID)
	if err != nil {
		return core.Category{}, err
	}

	cat.Name = cmd.Name
	cat.Budget = cmd.Budget
	if err := s.repo.UpdateCategory(ctx, cat); err != nil {
		return core.Category{}, fmt.Errorf("update category %d: %w", cmd.ID, err)
	}

	updated, err := s.repo.GetCategoryByID(ctx, cmd.ID)
	if err != nil {
		return core.Category{}, fmt.Errorf("re-read category %d: %w", cmd.ID, err)
	}
	s.publish(ctx, "category", "updated", cmd.ID)
	return updated, nil
}

// DeleteCategory removes the category by id. Children and records that
// referenced it keep existing with their reference cleared (cascade-null,
// enforced by the schema).
func (s *BudgetService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	s.publish(ctx, "category", "deleted", id)
	return nil
}
