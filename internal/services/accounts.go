package services

import (
	"context"
	"fmt"

	"budgetd/internal/core"
)

// CreateAccountCmd carries the input for opening a new account.
type CreateAccountCmd struct {
	Name           string
	AccountType    string
	InitialBalance int64
}

// UpdateAccountCmd renames an existing account.
type UpdateAccountCmd struct {
	ID   int64
	Name string
}

// ListAccounts returns every account.
func (s *BudgetService) ListAccounts(ctx context.Context) ([]core.Account, error) {
	return s.repo.ListAccounts(ctx)
}

// CreateAccount validates the type label, inserts the account and returns
// the stored row.
func (s *BudgetService) CreateAccount(ctx context.Context, cmd CreateAccountCmd) (core.Account, error) {
	acc, err := core.NewAccount(cmd.Name, cmd.InitialBalance, cmd.AccountType)
	if err != nil {
		return core.Account{}, err
	}

	id, err := s.repo.CreateAccount(ctx, acc)
	if err != nil {
		return core.Account{}, fmt.Errorf("create account: %w", err)
	}

	created, err := s.repo.GetAccountByID(ctx, id)
	if err != nil {
		return core.Account{}, fmt.Errorf("re-read account %d: %w", id, err)
	}
	s.publish(ctx, "account", "created", id)
	return created, nil
}

// UpdateAccount renames the account. Only the name is writable after
// creation; a missing id surfaces as core.ErrNotFound from the fetch.
func (s *BudgetService) UpdateAccount(ctx context.Context, cmd UpdateAccountCmd) (core.Account, error) {
	acc, err := s.repo.GetAccountByID(ctx, cmd.ID)
	if err != nil {
		return core.Account{}, err
	}

	acc.Name = cmd.Name
	if err := s.repo.UpdateAccount(ctx, acc); err != nil {
		return core.Account{}, fmt.Errorf("update account %d: %w", cmd.ID, err)
	}

	updated, err := s.repo.GetAccountByID(ctx, cmd.ID)
	if err != nil {
		return core.Account{}, fmt.Errorf("re-read account %d: %w", cmd.ID, err)
	}
	s.publish(ctx, "account", "updated", cmd.ID)
	return updated, nil
}

// DeleteAccount removes the account by id. Deleting an absent id is not
// an error; the operation is idempotent across all entity kinds.
func (s *BudgetService) DeleteAccount(ctx context.Context, id int64) error {
	if err := s.repo.DeleteAccount(ctx, id); err != nil {
		return fmt.Errorf("delete account %d: %w", id, err)
	}
	s.publish(ctx, "account", "deleted", id)
	return nil
}
