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

func TestSwipeDispatcher_Dispatch(t *testing.T) {
	tests := []struct {
		name        string
		action      domain.SwipeAction
		setup       func(repo *portsmocks.MockItemRepository)
		wantOpen    bool
		wantRefresh bool
	}{
		{
			name:   "archive",
			action: domain.SwipeActionArchive,
			setup: func(repo *portsmocks.MockItemRepository) {
				repo.EXPECT().SetArchived(mock.Anything, "item-1", true).Return(nil)
			},
			wantRefresh: true,
		},
		{
			name:   "delete",
			action: domain.SwipeActionDelete,
			setup: func(repo *portsmocks.MockItemRepository) {
				repo.EXPECT().Delete(mock.Anything, "item-1").Return(nil)
			},
			wantRefresh: true,
		},
		{
			name:   "flag",
			action: domain.SwipeActionFlag,
			setup: func(repo *portsmocks.MockItemRepository) {
				repo.EXPECT().ToggleFlag(mock.Anything, "item-1").Return(nil)
			},
			wantRefresh: true,
		},
		{
			name:     "open",
			action:   domain.SwipeActionOpen,
			wantOpen: true,
		},
		{
			name:   "do nothing",
			action: domain.SwipeActionDoNothing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			itemRepo := portsmocks.NewMockItemRepository(t)
			if tt.setup != nil {
				tt.setup(itemRepo)
			}

			dispatcher := NewSwipeDispatcher(NewItemService(itemRepo), SwipeSettings{
				Right: DirectionSettings{OnSwipe: tt.action},
			})

			result, err := dispatcher.Dispatch(context.Background(), "item-1", domain.DirectionRight)

			require.NoError(t, err)
			assert.Equal(t, tt.action, result.Action)
			assert.Equal(t, "item-1", result.ItemID)
			assert.Equal(t, tt.wantOpen, result.Open)
			assert.Equal(t, tt.wantRefresh, result.Refresh)
		})
	}
}

func TestSwipeDispatcher_DisabledDirection(t *testing.T) {
	itemRepo := portsmocks.NewMockItemRepository(t)

	dispatcher := NewSwipeDispatcher(NewItemService(itemRepo), SwipeSettings{
		Left: DirectionSettings{OnSwipe: domain.SwipeActionDisabled},
	})

	_, err := dispatcher.Dispatch(context.Background(), "item-1", domain.DirectionLeft)
	assert.ErrorContains(t, err, "not enabled")
}

func TestSwipeDispatcher_RepositoryError(t *testing.T) {
	itemRepo := portsmocks.NewMockItemRepository(t)
	itemRepo.EXPECT().Delete(mock.Anything, "item-1").Return(errors.New("locked"))

	dispatcher := NewSwipeDispatcher(NewItemService(itemRepo), SwipeSettings{
		Left: DirectionSettings{OnSwipe: domain.SwipeActionDelete},
	})

	_, err := dispatcher.Dispatch(context.Background(), "item-1", domain.DirectionLeft)
	assert.ErrorContains(t, err, "locked")
}

func TestSwipeDispatcher_RunButtonAction(t *testing.T) {
	itemRepo := portsmocks.NewMockItemRepository(t)
	itemRepo.EXPECT().ToggleFlag(mock.Anything, "item-1").Return(nil)

	dispatcher := NewSwipeDispatcher(NewItemService(itemRepo), SwipeSettings{})

	result, err := dispatcher.Run(context.Background(), "item-1", domain.SwipeActionFlag)
	require.NoError(t, err)
	assert.True(t, result.Refresh)
	assert.Empty(t, result.Direction)

	_, err = dispatcher.Run(context.Background(), "item-1", domain.SwipeActionDisabled)
	assert.ErrorContains(t, err, "unsupported")
}
