package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetd/internal/core"
	"budgetd/internal/services"
)

// createTestRepo opens a migrated SQLite repository under a per-test
// temp dir.
func createTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	repo, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err, "create test repository")
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func int64Ptr(v int64) *int64 { return &v }
func strPtr(s string) *string { return &s }

func mustAccount(t *testing.T, name, accountType string, balance int64) core.Account {
	t.Helper()
	acc, err := core.NewAccount(name, balance, accountType)
	require.NoError(t, err)
	return acc
}

func TestSQLiteAccountRoundTrip(t *testing.T) {
	repo := createTestRepo(t)
	ctx := context.Background()

	acc := mustAccount(t, "Checking", "Cash", 2500)
	id, err := repo.CreateAccount(ctx, acc)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	got, err := repo.GetAccountByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Checking", got.Name)
	assert.Equal(t, core.Cash, got.Type)
	assert.Equal(t, int64(2500), got.Balance)
}

func TestSQLiteListAccounts(t *testing.T) {
	repo := createTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateAccount(ctx, mustAccount(t, "Wallet", "Cash", 0))
	require.NoError(t, err)
	_, err = repo.CreateAccount(ctx, mustAccount(t, "Visa", "CreditCard", -10000))
	require.NoError(t, err)

	accounts, err := repo.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Wallet", accounts[0].Name)
	assert.Equal(t, "Visa", accounts[1].Name)
}

func TestSQLiteUpdateAccount(t *testing.T) {
	repo := createTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateAccount(ctx, mustAccount(t, "Old", "DebitCard", 0))
	require.NoError(t, err)

	acc, err := repo.GetAccountByID(ctx, id)
	require.NoError(t, err)
	acc.Name = "New"
	require.NoError(t, repo.UpdateAccount(ctx, acc))

	got, err := repo.GetAccountByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
}

func TestSQLiteUpdateMissingAccountIsNotFound(t *testing.T) {
	repo := createTestRepo(t)

	acc := mustAccount(t, "Ghost", "Cash", 0)
	acc.ID = 999
	err := repo.UpdateAccount(context.Background(), acc)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestSQLiteGetMissingAccountIsNotFound(t *testing.T) {
	repo := createTestRepo(t)

	_, err := repo.GetAccountByID(context.Background(), 42)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

// Deleting an absent id looks exactly like deleting an existing one, for
// every entity kind.
func TestSQLiteDeleteIsIdempotent(t *testing.T) {
	repo := createTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateAccount(ctx, mustAccount(t, "Gone", "Cash", 0))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteAccount(ctx, id))
	require.NoError(t, repo.DeleteAccount(ctx, id))
	require.NoError(t, repo.DeleteCategory(ctx, 12345))
	require.NoError(t, repo.DeleteRecord(ctx, 12345))
}

func TestSQLiteCategoryRoundTrip(t *testing.T) {
	repo := createTestRepo(t)
	ctx := context.Background()

	cat, err := core.NewCategory("Groceries", int64Ptr(500), nil)
	require.NoError(t, err)

	id, err := repo.CreateCategory(ctx, cat)
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	got, err := repo.GetCategoryByID(ctx, id)
	require.NoError(t, err)
	want := cat
	want.ID = id
	assert.Equal(t, want, got)
}

func TestSQLiteCategoryHierarchy(t *testing.T) {
	repo := createTestRepo(t)
	ctx := context.Background()

	parentID, err := repo.CreateCategory(ctx, core.Category{Name: "Home"})
	require.NoError(t, err)

	childID, err := repo.CreateCategory(ctx, core.Category{Name: "Rent", ParentID: &parentID})
	require.NoError(t, err)

	child, err := repo.GetCategoryByID(ctx, childID)
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, parentID, *child.ParentID)
}

// Removing a category clears the reference on children and records
// instead of deleting them.
func TestSQLiteDeleteCategoryCascadesNull(t *testing.T) {
	repo := createTestRepo(t)
	ctx := context.Background()

	parentID, err := repo.CreateCategory(ctx, core.Category{Name: "Home"})
	require.NoError(t, err)
	childID, err := repo.CreateCategory(ctx, core.Category{Name: "Rent", ParentID: &parentID})
	require.NoError(t, err)

	parent, err := repo.GetCategoryByID(ctx, parentID)
	require.NoError(t, err)
	rec, err := core.NewRecord(1, "Outcome", 100, &parent, nil)
	require.NoError(t, err)
	recID, err := repo.CreateRecord(ctx, rec)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteCategory(ctx, parentID))

	child, err := repo.GetCategoryByID(ctx, childID)
	require.NoError(t, err)
	assert.Nil(t, child.ParentID)

	got, err := repo.GetRecordByID(ctx, recID)
	require.NoError(t, err)
	assert.Nil(t, got.Category)
}

func TestMemoryRepositoryMatchesSQLiteBehavior(t *testing.T) {
	ctx := context.Background()
	backends := map[string]services.Repository{
		"sqlite": createTestRepo(t),
		"memory": NewMemoryRepository(),
	}

	for name, repo := range backends {
		t.Run(name, func(t *testing.T) {
			id, err := repo.CreateAccount(ctx, mustAccount(t, "Checking", "Cash", 0))
			require.NoError(t, err)
			require.Greater(t, id, int64(0))

			_, err = repo.GetAccountByID(ctx, id+1)
			assert.ErrorIs(t, err, core.ErrNotFound)

			acc, err := repo.GetAccountByID(ctx, id)
			require.NoError(t, err)
			acc.Name = "Renamed"
			require.NoError(t, repo.UpdateAccount(ctx, acc))

			acc.ID = id + 1
			assert.ErrorIs(t, repo.UpdateAccount(ctx, acc), core.ErrNotFound)

			require.NoError(t, repo.DeleteAccount(ctx, id))
			require.NoError(t, repo.DeleteAccount(ctx, id))
		})
	}
}
