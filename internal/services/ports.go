package services

import (
	"context"

	"budgetd/internal/core"
)

// AccountRepository is the storage contract for accounts. Create returns
// the assigned identity only; callers re-fetch for the materialized row.
type AccountRepository interface {
	ListAccounts(ctx context.Context) ([]core.Account, error)
	CreateAccount(ctx context.Context, acc core.Account) (int64, error)
	GetAccountByID(ctx context.Context, id int64) (core.Account, error)
	UpdateAccount(ctx context.Context, acc core.Account) error
	DeleteAccount(ctx context.Context, id int64) error
}

// CategoryRepository is the storage contract for categories.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]core.Category, error)
	CreateCategory(ctx context.Context, cat core.Category) (int64, error)
	GetCategoryByID(ctx context.Context, id int64) (core.Category, error)
	UpdateCategory(ctx context.Context, cat core.Category) error
	DeleteCategory(ctx context.Context, id int64) error
}

// RecordRepository is the storage contract for records. ListRecords takes
// the optional filter; every field unset means "all rows".
type RecordRepository interface {
	ListRecords(ctx context.Context, filter ListRecordsCmd) ([]core.Record, error)
	CreateRecord(ctx context.Context, rec core.Record) (int64, error)
	GetRecordByID(ctx context.Context, id int64) (core.Record, error)
	UpdateRecord(ctx context.Context, rec core.Record) error
	DeleteRecord(ctx context.Context, id int64) error
}

// Repository is what a storage backend must satisfy to serve the whole
// service layer.
type Repository interface {
	AccountRepository
	CategoryRepository
	RecordRepository
}

// EventPublisher receives entity-change notifications after successful
// writes. Publishing is best effort; failures never fail the request.
type EventPublisher interface {
	PublishEntityChange(ctx context.Context, entity, op string, id int64) error
}
