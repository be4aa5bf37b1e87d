package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/swipelist/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "swipelist.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestAddAssignsIncreasingPositions(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, domain.Item{ID: "a", Title: "first"}))
	require.NoError(t, repo.Add(ctx, domain.Item{ID: "b", Title: "second"}))

	items, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
	assert.Less(t, items[0].Position, items[1].Position)
}

func TestAddDuplicateID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, domain.Item{ID: "a", Title: "first"}))
	err := repo.Add(ctx, domain.Item{ID: "a", Title: "again"})
	assert.ErrorIs(t, err, domain.ErrItemExists)
}

func TestGetMissingItem(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestSetArchivedHidesFromList(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, domain.Item{ID: "a", Title: "keep"}))
	require.NoError(t, repo.Add(ctx, domain.Item{ID: "b", Title: "archive me"}))
	require.NoError(t, repo.SetArchived(ctx, "b", true))

	active, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "a", active[0].ID)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	item, err := repo.Get(ctx, "b")
	require.NoError(t, err)
	assert.True(t, item.IsArchived)
	assert.NotNil(t, item.ArchivedAt)

	require.NoError(t, repo.SetArchived(ctx, "b", false))
	item, err = repo.Get(ctx, "b")
	require.NoError(t, err)
	assert.False(t, item.IsArchived)
	assert.Nil(t, item.ArchivedAt)
}

func TestToggleFlag(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, domain.Item{ID: "a", Title: "flag me"}))

	require.NoError(t, repo.ToggleFlag(ctx, "a"))
	item, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, item.IsFlagged)

	require.NoError(t, repo.ToggleFlag(ctx, "a"))
	item, err = repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, item.IsFlagged)

	assert.ErrorIs(t, repo.ToggleFlag(ctx, "missing"), domain.ErrItemNotFound)
}

func TestDeleteAndUpdateNote(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, domain.Item{ID: "a", Title: "note"}))
	require.NoError(t, repo.UpdateNote(ctx, "a", "remember the milk"))

	item, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "remember the milk", item.Note)

	require.NoError(t, repo.Delete(ctx, "a"))
	assert.ErrorIs(t, repo.Delete(ctx, "a"), domain.ErrItemNotFound)
	assert.ErrorIs(t, repo.UpdateNote(ctx, "a", "x"), domain.ErrItemNotFound)
}
