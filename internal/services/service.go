// Package services orchestrates repository calls into use-cases. Every
// write follows the same shape: validate input into a domain value,
// resolve referenced entities, issue exactly one mutation, then re-fetch
// the canonical row so callers always observe storage-computed state.
package services

import (
	"context"
	"log/slog"
)

// BudgetService implements the account, category and record use-cases on
// top of any Repository.
type BudgetService struct {
	repo   Repository
	events EventPublisher
}

// NewBudgetService wires a service to its storage backend. events may be
// nil, in which case entity-change notifications are skipped.
func NewBudgetService(repo Repository, events EventPublisher) *BudgetService {
	return &BudgetService{repo: repo, events: events}
}

// publish sends an entity-change event without affecting the outcome of
// the use-case that triggered it.
func (s *BudgetService) publish(ctx context.Context, entity, op string, id int64) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishEntityChange(ctx, entity, op, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish entity change",
			"entity", entity, "op", op, "id", id, "error", err)
	}
}
