package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"budgetd/internal/core"
)

func scanAccount(row interface{ Scan(...any) error }) (core.Account, error) {
	var (
		acc       core.Account
		typeLabel string
	)
	if err := row.Scan(&acc.ID, &acc.Name, &acc.Balance, &typeLabel); err != nil {
		return core.Account{}, err
	}
	t, err := core.ParseAccountType(typeLabel)
	if err != nil {
		return core.Account{}, fmt.Errorf("stored account type %q: %w", typeLabel, err)
	}
	acc.Type = t
	return acc, nil
}

func (r *SQLiteRepository) ListAccounts(ctx context.Context) ([]core.Account, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT account_id, name, current_balance, account_type
		FROM account`)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []core.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return accounts, nil
}

func (r *SQLiteRepository) CreateAccount(ctx context.Context, acc core.Account) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO account (name, current_balance, account_type)
		VALUES (?, ?, ?)
		RETURNING account_id`,
		acc.Name, acc.Balance, acc.Type.String(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert account: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetAccountByID(ctx context.Context, id int64) (core.Account, error) {
	acc, err := scanAccount(r.db.QueryRowContext(ctx, `
		SELECT account_id, name, current_balance, account_type
		FROM account
		WHERE account_id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return core.Account{}, notFoundErr("account", id)
	}
	if err != nil {
		return core.Account{}, fmt.Errorf("get account %d: %w", id, err)
	}
	return acc, nil
}

// UpdateAccount rewrites name and type. Zero rows affected means the id
// does not exist and is reported as not found.
func (r *SQLiteRepository) UpdateAccount(ctx context.Context, acc core.Account) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE account
		SET name = ?,
		    account_type = ?
		WHERE account_id = ?`,
		acc.Name, acc.Type.String(), acc.ID)
	if err != nil {
		return fmt.Errorf("update account %d: %w", acc.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update account %d: rows affected: %w", acc.ID, err)
	}
	if n == 0 {
		return notFoundErr("account", acc.ID)
	}
	return nil
}

func (r *SQLiteRepository) DeleteAccount(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM account WHERE account_id = ?`, id); err != nil {
		return fmt.Errorf("delete account %d: %w", id, err)
	}
	return nil
}
