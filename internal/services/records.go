package services

import (
	"context"
	"fmt"
	"time"

	"budgetd/internal/core"
)

// CreateRecordCmd carries the input for a new record. CategoryID, when
// set, is resolved to a full category before anything is written.
type CreateRecordCmd struct {
	AccountID       int64
	TransactionType string
	Amount          int64
	CategoryID      *int64
	Description     *string
}

// UpdateRecordCmd rewrites a record's amount, description and category.
type UpdateRecordCmd struct {
	ID          int64
	Amount      int64
	Description *string
	CategoryID  *int64
}

// ListRecordsCmd is the optional listing filter. Offset without Limit is
// accepted; the storage backend applies it over an unbounded result.
type ListRecordsCmd struct {
	Limit      *int64
	Offset     *int64
	CategoryID *int64
}

// ListRecords delegates to the repository's filtered listing.
func (s *BudgetService) ListRecords(ctx context.Context, cmd ListRecordsCmd) ([]core.Record, error) {
	return s.repo.ListRecords(ctx, cmd)
}

// CreateRecord resolves the referenced category (when given), validates
// the record and inserts it. A category id that does not resolve aborts
// the use-case before any write.
func (s *BudgetService) CreateRecord(ctx context.Context, cmd CreateRecordCmd) (core.Record, error) {
	var category *core.Category
	if cmd.CategoryID != nil {
		cat, err := s.repo.GetCategoryByID(ctx, *cmd.CategoryID)
		if err != nil {
			return core.Record{}, err
		}
		category = &cat
	}

	rec, err := core.NewRecord(cmd.AccountID, cmd.TransactionType, cmd.Amount, category, cmd.Description)
	if err != nil {
		return core.Record{}, err
	}

	id, err := s.repo.CreateRecord(ctx, rec)
	if err != nil {
		return core.Record{}, fmt.Errorf("create record: %w", err)
	}

	created, err := s.repo.GetRecordByID(ctx, id)
	if err != nil {
		return core.Record{}, fmt.Errorf("re-read record %d: %w", id, err)
	}
	s.publish(ctx, "record", "created", id)
	return created, nil
}

// UpdateRecord fetches the stored record, resolves the new category
// (clearing it when none is given), overwrites amount and description,
// re-stamps updated_at and persists.
func (s *BudgetService) UpdateRecord(ctx context.Context, cmd UpdateRecordCmd) (core.Record, error) {
	rec, err := s.repo.GetRecordByID(ctx, cmd.ID)
	if err != nil {
		return core.Record{}, err
	}

	var category *core.Category
	if cmd.CategoryID != nil {
		cat, err := s.repo.GetCategoryByID(ctx, *cmd.CategoryID)
		if err != nil {
			return core.Record{}, err
		}
		category = &cat
	}

	if err := rec.SetAmount(cmd.Amount); err != nil {
		return core.Record{}, err
	}
	rec.Description = cmd.Description
	rec.Category = category
	rec.UpdatedAt = time.Now()

	if err := s.repo.UpdateRecord(ctx, rec); err != nil {
		return core.Record{}, fmt.Errorf("update record %d: %w", cmd.ID, err)
	}

	updated, err := s.repo.GetRecordByID(ctx, cmd.ID)
	if err != nil {
		return core.Record{}, fmt.Errorf("re-read record %d: %w", cmd.ID, err)
	}
	s.publish(ctx, "record", "updated", cmd.ID)
	return updated, nil
}

// DeleteRecord removes the record by id, idempotently.
func (s *BudgetService) DeleteRecord(ctx context.Context, id int64) error {
	if err := s.repo.DeleteRecord(ctx, id); err != nil {
		return fmt.Errorf("delete record %d: %w", id, err)
	}
	s.publish(ctx, "record", "deleted", id)
	return nil
}
