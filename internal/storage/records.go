package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"budgetd/internal/core"
	"budgetd/internal/services"
)

// record_type is a label-code lookup table seeded by the migrations.
func recordTypeCode(t core.RecordType) (int64, error) {
	switch t {
	case core.Income:
		return 1, nil
	case core.Outcome:
		return 2, nil
	case core.Transfer:
		return 3, nil
	default:
		return 0, fmt.Errorf("unknown record type %q", t)
	}
}

// recordColumns is the shared projection for record reads. The category
// join is LEFT so a record without a category still comes back; its
// budget is deliberately not joined.
const recordColumns = `
	SELECT
		record.record_id,
		record.account_id,
		record.amount,
		record.description,
		record_type.name AS record_type,
		record.created_at,
		record.updated_at,
		category.category_id,
		category.name,
		category.parent_id
	FROM record
	JOIN record_type ON record.record_type = record_type.record_type_id
	LEFT JOIN category ON record.category_id = category.category_id`

func scanRecord(row interface{ Scan(...any) error }) (core.Record, error) {
	var (
		rec       core.Record
		desc      sql.NullString
		typeLabel string
		createdAt string
		updatedAt string
		catID     sql.NullInt64
		catName   sql.NullString
		catParent sql.NullInt64
	)
	err := row.Scan(&rec.ID, &rec.AccountID, &rec.Amount, &desc, &typeLabel,
		&createdAt, &updatedAt, &catID, &catName, &catParent)
	if err != nil {
		return core.Record{}, err
	}

	rec.Description = fromNullString(desc)

	t, err := core.ParseRecordType(typeLabel)
	if err != nil {
		return core.Record{}, fmt.Errorf("stored record type: %w", err)
	}
	rec.Type = t

	if rec.CreatedAt, err = parseTime(createdAt); err != nil {
		return core.Record{}, err
	}
	if rec.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return core.Record{}, err
	}

	if catID.Valid {
		rec.Category = &core.Category{
			ID:       catID.Int64,
			Name:     catName.String,
			ParentID: fromNullInt64(catParent),
		}
	}
	return rec, nil
}

// ListRecords composes the base projection with the optional category
// equality filter, limit and offset, in that order. An offset without a
// limit still applies: LIMIT -1 is SQLite's unbounded limit.
func (r *SQLiteRepository) ListRecords(ctx context.Context, filter services.ListRecordsCmd) ([]core.Record, error) {
	qb := newQueryBuilder(recordColumns)
	if filter.CategoryID != nil {
		qb.pushBind(" WHERE record.category_id = ?", *filter.CategoryID)
	}
	switch {
	case filter.Limit != nil:
		qb.pushBind(" LIMIT ?", *filter.Limit)
	case filter.Offset != nil:
		qb.push(" LIMIT -1")
	}
	if filter.Offset != nil {
		qb.pushBind(" OFFSET ?", *filter.Offset)
	}

	query, args := qb.query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []core.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

func (r *SQLiteRepository) CreateRecord(ctx context.Context, rec core.Record) (int64, error) {
	var categoryID *int64
	if rec.Category != nil {
		categoryID = &rec.Category.ID
	}

	typeCode, err := recordTypeCode(rec.Type)
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}

	var id int64
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO record (account_id, amount, description, record_type, category_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING record_id`,
		rec.AccountID, rec.Amount, nullString(rec.Description),
		typeCode, nullInt64(categoryID),
		formatTime(rec.CreatedAt), formatTime(rec.UpdatedAt),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetRecordByID(ctx context.Context, id int64) (core.Record, error) {
	rec, err := scanRecord(r.db.QueryRowContext(ctx, recordColumns+` WHERE record.record_id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return core.Record{}, notFoundErr("record", id)
	}
	if err != nil {
		return core.Record{}, fmt.Errorf("get record %d: %w", id, err)
	}
	return rec, nil
}

func (r *SQLiteRepository) UpdateRecord(ctx context.Context, rec core.Record) error {
	var categoryID *int64
	if rec.Category != nil {
		categoryID = &rec.Category.ID
	}

	typeCode, err := recordTypeCode(rec.Type)
	if err != nil {
		return fmt.Errorf("update record %d: %w", rec.ID, err)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE record
		SET amount = ?,
		    description = ?,
		    record_type = ?,
		    category_id = ?,
		    updated_at = ?
		WHERE record_id = ?`,
		rec.Amount, nullString(rec.Description), typeCode,
		nullInt64(categoryID), formatTime(rec.UpdatedAt), rec.ID)
	if err != nil {
		return fmt.Errorf("update record %d: %w", rec.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update record %d: rows affected: %w", rec.ID, err)
	}
	if n == 0 {
		return notFoundErr("record", rec.ID)
	}
	return nil
}

func (r *SQLiteRepository) DeleteRecord(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM record WHERE record_id = ?`, id); err != nil {
		return fmt.Errorf("delete record %d: %w", id, err)
	}
	return nil
}
