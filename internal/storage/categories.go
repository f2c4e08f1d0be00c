package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"budgetd/internal/core"
)

func scanCategory(row interface{ Scan(...any) error }) (core.Category, error) {
	var (
		cat    core.Category
		budget sql.NullInt64
		parent sql.NullInt64
	)
	if err := row.Scan(&cat.ID, &cat.Name, &budget, &parent); err != nil {
		return core.Category{}, err
	}
	cat.Budget = fromNullInt64(budget)
	cat.ParentID = fromNullInt64(parent)
	return cat, nil
}

func (r *SQLiteRepository) ListCategories(ctx context.Context) ([]core.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT category_id, name, budget, parent_id
		FROM category`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []core.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

func (r *SQLiteRepository) CreateCategory(ctx context.Context, cat core.Category) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO category (name, budget, parent_id)
		VALUES (?, ?, ?)
		RETURNING category_id`,
		cat.Name, nullInt64(cat.Budget), nullInt64(cat.ParentID),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert category: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetCategoryByID(ctx context.Context, id int64) (core.Category, error) {
	cat, err := scanCategory(r.db.QueryRowContext(ctx, `
		SELECT category_id, name, budget, parent_id
		FROM category
		WHERE category_id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return core.Category{}, notFoundErr("category", id)
	}
	if err != nil {
		return core.Category{}, fmt.Errorf("get category %d: %w", id, err)
	}
	return cat, nil
}

func (r *SQLiteRepository) UpdateCategory(ctx context.Context, cat core.Category) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE category
		SET name = ?,
		    budget = ?
		WHERE category_id = ?`,
		cat.Name, nullInt64(cat.Budget), cat.ID)
	if err != nil {
		return fmt.Errorf("update category %d: %w", cat.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update category %d: rows affected: %w", cat.ID, err)
	}
	if n == 0 {
		return notFoundErr("category", cat.ID)
	}
	return nil
}

// DeleteCategory removes the row; the schema clears parent_id on child
// categories and category_id on records that pointed at it.
func (r *SQLiteRepository) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM category WHERE category_id = ?`, id); err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return nil
}
