package storage

import (
	"context"
	"sync"

	"budgetd/internal/core"
	"budgetd/internal/services"
)

// MemoryRepository is a mutex-guarded in-memory backend mirroring the
// SQLite semantics: ids assigned on insert, not-found on missing rows,
// idempotent deletes, cascade-null on category removal, and category
// hydration without budget on record reads. It backs the service tests
// and the zero-setup "memory" backend.
type MemoryRepository struct {
	mu sync.Mutex

	nextAccountID  int64
	nextCategoryID int64
	nextRecordID   int64

	accounts   []core.Account
	categories []core.Category
	records    []memRecord
}

// memRecord keeps the category as an id, like the real table; hydration
// happens on read so reads always reflect the live category row.
type memRecord struct {
	rec        core.Record
	categoryID *int64
}

var _ services.Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextAccountID:  1,
		nextCategoryID: 1,
		nextRecordID:   1,
	}
}

func (m *MemoryRepository) ListAccounts(_ context.Context) ([]core.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]core.Account(nil), m.accounts...), nil
}

func (m *MemoryRepository) CreateAccount(_ context.Context, acc core.Account) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc.ID = m.nextAccountID
	m.nextAccountID++
	m.accounts = append(m.accounts, acc)
	return acc.ID, nil
}

func (m *MemoryRepository) GetAccountByID(_ context.Context, id int64) (core.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, acc := range m.accounts {
		if acc.ID == id {
			return acc, nil
		}
	}
	return core.Account{}, notFoundErr("account", id)
}

func (m *MemoryRepository) UpdateAccount(_ context.Context, acc core.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.accounts {
		if m.accounts[i].ID == acc.ID {
			m.accounts[i] = acc
			return nil
		}
	}
	return notFoundErr("account", acc.ID)
}

func (m *MemoryRepository) DeleteAccount(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.accounts {
		if m.accounts[i].ID == id {
			m.accounts = append(m.accounts[:i], m.accounts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MemoryRepository) ListCategories(_ context.Context) ([]core.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]core.Category(nil), m.categories...), nil
}

func (m *MemoryRepository) CreateCategory(_ context.Context, cat core.Category) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cat.ID = m.nextCategoryID
	m.nextCategoryID++
	m.categories = append(m.categories, cat)
	return cat.ID, nil
}

func (m *MemoryRepository) GetCategoryByID(_ context.Context, id int64) (core.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cat := range m.categories {
		if cat.ID == id {
			return cat, nil
		}
	}
	return core.Category{}, notFoundErr("category", id)
}

func (m *MemoryRepository) UpdateCategory(_ context.Context, cat core.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.categories {
		if m.categories[i].ID == cat.ID {
			m.categories[i] = cat
			return nil
		}
	}
	return notFoundErr("category", cat.ID)
}

// DeleteCategory mirrors the ON DELETE SET NULL schema rules: child
// categories lose their parent, records lose their category.
func (m *MemoryRepository) DeleteCategory(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.categories {
		if m.categories[i].ID != id {
			continue
		}
		m.categories = append(m.categories[:i], m.categories[i+1:]...)
		for j := range m.categories {
			if m.categories[j].ParentID != nil && *m.categories[j].ParentID == id {
				m.categories[j].ParentID = nil
			}
		}
		for j := range m.records {
			if m.records[j].categoryID != nil && *m.records[j].categoryID == id {
				m.records[j].categoryID = nil
			}
		}
		return nil
	}
	return nil
}

// hydrate resolves the record's category reference against the live
// category rows. Budget is omitted, matching the SQL projection.
func (m *MemoryRepository) hydrate(mr memRecord) core.Record {
	rec := mr.rec
	rec.Category = nil
	if mr.categoryID != nil {
		for _, cat := range m.categories {
			if cat.ID == *mr.categoryID {
				rec.Category = &core.Category{ID: cat.ID, Name: cat.Name, ParentID: cat.ParentID}
				break
			}
		}
	}
	return rec
}

func (m *MemoryRepository) ListRecords(_ context.Context, filter services.ListRecordsCmd) ([]core.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []core.Record
	for _, mr := range m.records {
		if filter.CategoryID != nil {
			if mr.categoryID == nil || *mr.categoryID != *filter.CategoryID {
				continue
			}
		}
		out = append(out, m.hydrate(mr))
	}

	if filter.Offset != nil {
		if off := int(*filter.Offset); off < len(out) {
			out = out[off:]
		} else {
			out = nil
		}
	}
	if filter.Limit != nil && int64(len(out)) > *filter.Limit {
		out = out[:*filter.Limit]
	}
	return out, nil
}

func (m *MemoryRepository) CreateRecord(_ context.Context, rec core.Record) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var categoryID *int64
	if rec.Category != nil {
		id := rec.Category.ID
		categoryID = &id
	}
	rec.ID = m.nextRecordID
	m.nextRecordID++
	m.records = append(m.records, memRecord{rec: rec, categoryID: categoryID})
	return rec.ID, nil
}

func (m *MemoryRepository) GetRecordByID(_ context.Context, id int64) (core.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, mr := range m.records {
		if mr.rec.ID == id {
			return m.hydrate(mr), nil
		}
	}
	return core.Record{}, notFoundErr("record", id)
}

func (m *MemoryRepository) UpdateRecord(_ context.Context, rec core.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.records {
		if m.records[i].rec.ID == rec.ID {
			var categoryID *int64
			if rec.Category != nil {
				id := rec.Category.ID
				categoryID = &id
			}
			m.records[i] = memRecord{rec: rec, categoryID: categoryID}
			return nil
		}
	}
	return notFoundErr("record", rec.ID)
}

func (m *MemoryRepository) DeleteRecord(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.records {
		if m.records[i].rec.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return nil
}
