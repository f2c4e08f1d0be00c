package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetd/internal/core"
	"budgetd/internal/services"
)

func seedRecord(t *testing.T, repo *SQLiteRepository, accountID int64, recordType string, amount int64, cat *core.Category, desc *string) int64 {
	t.Helper()
	rec, err := core.NewRecord(accountID, recordType, amount, cat, desc)
	require.NoError(t, err)
	id, err := repo.CreateRecord(context.Background(), rec)
	require.NoError(t, err)
	return id
}

func TestSQLiteRecordRoundTrip(t *testing.T) {
	repo := createTestRepo(t)
	ctx := context.Background()

	id := seedRecord(t, repo, 1, "Outcome", 1500, nil, strPtr("Coffee"))

	got, err := repo.GetRecordByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, int64(1), got.AccountID)
	assert.Equal(t, core.Outcome, got.Type)
	assert.Equal(t, int64(1500), got.Amount)
	require.NotNil(t, got.Description)
	assert.Equal(t, "Coffee", *got.Description)
	assert.Nil(t, got.Category)
	assert.False(t, got.CreatedAt.IsZero())
	assert.True(t, got.CreatedAt.Equal(got.UpdatedAt))
}

// A record without a category must still come back from reads: the
// category join is outer.
func TestSQLiteRecordWithoutCategorySurvivesJoin(t *testing.T) {
	repo := createTestRepo(t)
	ctx := context.Background()

	id := seedRecord(t, repo, 1, "Income", 100, nil, nil)

	records, err := repo.ListRecords(ctx, services.ListRecordsCmd{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0].ID)
	assert.Nil(t, records[0].Category)
}

func TestSQLiteRecordHydratesCategory(t *testing.T) {
	repo := createTestRepo(t)
	ctx := context.Background()

	catID, err := repo.CreateCategory(ctx, core.Category{Name: "Food", Budget: int64Ptr(500)})
	require.NoError(t, err)
	cat, err := repo.GetCategoryByID(ctx, catID)
	require.NoError(t, err)

	id := seedRecord(t, repo, 1, "Outcome", 1200, &cat, nil)

	got, err := repo.GetRecordByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.Category)
	assert.Equal(t, catID, got.Category.ID)
	assert.Equal(t, "Food", got.Category.Name)
	// Budget is not part of the record projection.
	assert.Nil(t, got.Category.Budget)
}

func TestSQLiteListRecordsFilters(t *testing.T) {
	repo := createTestRepo(t)
	ctx := context.Background()

	catID, err := repo.CreateCategory(ctx, core.Category{Name: "Food"})
	require.NoError(t, err)
	cat, err := repo.GetCategoryByID(ctx, catID)
	require.NoError(t, err)

	var ids []int64
	for i := 0; i < 3; i++ {
		ids = append(ids, seedRecord(t, repo, 1, "Outcome", int64(100*(i+1)), &cat, nil))
	}
	uncategorized := seedRecord(t, repo, 1, "Income", 999, nil, nil)

	t.Run("by category", func(t *testing.T) {
		records, err := repo.ListRecords(ctx, services.ListRecordsCmd{CategoryID: &catID})
		require.NoError(t, err)
		require.Len(t, records, 3)
		for _, rec := range records {
			require.NotNil(t, rec.Category)
			assert.Equal(t, catID, rec.Category.ID)
			assert.NotEqual(t, uncategorized, rec.ID)
		}
	})

	t.Run("limit", func(t *testing.T) {
		records, err := repo.ListRecords(ctx, services.ListRecordsCmd{Limit: int64Ptr(2)})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, ids[0], records[0].ID)
	})

	t.Run("limit and offset", func(t *testing.T) {
		records, err := repo.ListRecords(ctx, services.ListRecordsCmd{Limit: int64Ptr(2), Offset: int64Ptr(1)})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, ids[1], records[0].ID)
		assert.Equal(t, ids[2], records[1].ID)
	})

	t.Run("offset without limit", func(t *testing.T) {
		records, err := repo.ListRecords(ctx, services.ListRecordsCmd{Offset: int64Ptr(3)})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, uncategorized, records[0].ID)
	})

	t.Run("all filters", func(t *testing.T) {
		records, err := repo.ListRecords(ctx, services.ListRecordsCmd{
			CategoryID: &catID,
			Limit:      int64Ptr(1),
			Offset:     int64Ptr(2),
		})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, ids[2], records[0].ID)
	})
}

func TestSQLiteUpdateRecord(t *testing.T) {
	repo := createTestRepo(t)
	ctx := context.Background()

	id := seedRecord(t, repo, 1, "Outcome", 100, nil, nil)

	rec, err := repo.GetRecordByID(ctx, id)
	require.NoError(t, err)
	require.NoError(t, rec.SetAmount(250))
	rec.Description = strPtr("groceries")
	rec.UpdatedAt = time.Now().Add(time.Second)
	require.NoError(t, repo.UpdateRecord(ctx, rec))

	got, err := repo.GetRecordByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(250), got.Amount)
	require.NotNil(t, got.Description)
	assert.Equal(t, "groceries", *got.Description)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestSQLiteUpdateMissingRecordIsNotFound(t *testing.T) {
	repo := createTestRepo(t)

	rec, err := core.NewRecord(1, "Income", 100, nil, nil)
	require.NoError(t, err)
	rec.ID = 777
	assert.ErrorIs(t, repo.UpdateRecord(context.Background(), rec), core.ErrNotFound)
}

func TestRecordTypeCodeIsExhaustive(t *testing.T) {
	tests := []struct {
		recordType core.RecordType
		code       int64
	}{
		{core.Income, 1},
		{core.Outcome, 2},
		{core.Transfer, 3},
	}
	for _, tt := range tests {
		code, err := recordTypeCode(tt.recordType)
		require.NoError(t, err)
		assert.Equal(t, tt.code, code, tt.recordType)
	}

	_, err := recordTypeCode(core.RecordType("Refund"))
	assert.Error(t, err)
}

func TestSQLitePersistRejectsUnknownRecordType(t *testing.T) {
	repo := createTestRepo(t)
	ctx := context.Background()

	id := seedRecord(t, repo, 1, "Outcome", 100, nil, nil)

	rec, err := repo.GetRecordByID(ctx, id)
	require.NoError(t, err)
	rec.Type = core.RecordType("Refund")

	assert.Error(t, repo.UpdateRecord(ctx, rec))
	_, err = repo.CreateRecord(ctx, rec)
	assert.Error(t, err)

	// The stored row is untouched.
	got, err := repo.GetRecordByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, core.Outcome, got.Type)
}

func TestQueryBuilderComposition(t *testing.T) {
	qb := newQueryBuilder("SELECT * FROM record")
	qb.pushBind(" WHERE record.category_id = ?", int64(5))
	qb.pushBind(" LIMIT ?", int64(10))
	qb.pushBind(" OFFSET ?", int64(20))

	query, args := qb.query()
	assert.Equal(t, "SELECT * FROM record WHERE record.category_id = ? LIMIT ? OFFSET ?", query)
	assert.Equal(t, []any{int64(5), int64(10), int64(20)}, args)
}

func TestQueryBuilderNoFilters(t *testing.T) {
	qb := newQueryBuilder("SELECT * FROM record")
	query, args := qb.query()
	assert.Equal(t, "SELECT * FROM record", query)
	assert.Empty(t, args)
}
