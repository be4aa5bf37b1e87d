package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/swipelist/internal/domain"
	portsmocks "github.com/renato0307/swipelist/internal/ports/mocks"
)

func TestAddItem_GeneratesIDAndTrimsTitle(t *testing.T) {
	itemRepo := portsmocks.NewMockItemRepository(t)

	var stored domain.Item
	itemRepo.EXPECT().Add(mock.Anything, mock.Anything).
		Run(func(_ context.Context, item domain.Item) { stored = item }).
		Return(nil)

	service := NewItemService(itemRepo)
	item, err := service.Add(context.Background(), AddItemParams{Title: "  buy milk  ", Note: "2l"})

	require.NoError(t, err)
	assert.Equal(t, "buy milk", item.Title)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, stored.ID, item.ID)
	assert.Equal(t, "2l", stored.Note)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestAddItem_RejectsEmptyTitle(t *testing.T) {
	itemRepo := portsmocks.NewMockItemRepository(t)

	service := NewItemService(itemRepo)
	_, err := service.Add(context.Background(), AddItemParams{Title: "   "})

	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestArchiveItem_WrapsRepositoryError(t *testing.T) {
	itemRepo := portsmocks.NewMockItemRepository(t)
	itemRepo.EXPECT().SetArchived(mock.Anything, "a", true).
		Return(domain.ErrItemNotFound)

	service := NewItemService(itemRepo)
	err := service.Archive(context.Background(), "a")

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestListItems(t *testing.T) {
	itemRepo := portsmocks.NewMockItemRepository(t)
	itemRepo.EXPECT().List(mock.Anything, false).
		Return([]domain.Item{{ID: "a"}, {ID: "b"}}, nil)

	service := NewItemService(itemRepo)
	items, err := service.List(context.Background(), false)

	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestListItems_Error(t *testing.T) {
	itemRepo := portsmocks.NewMockItemRepository(t)
	itemRepo.EXPECT().List(mock.Anything, true).
		Return(nil, errors.New("disk on fire"))

	service := NewItemService(itemRepo)
	_, err := service.List(context.Background(), true)

	assert.ErrorContains(t, err, "disk on fire")
}
