package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/swipelist/internal/domain"
	portsmocks "github.com/renato0307/swipelist/internal/ports/mocks"
	"github.com/renato0307/swipelist/internal/services"
)

func TestItemsNote_EditSavesChangedNote(t *testing.T) {
	repo := portsmocks.NewMockItemRepository(t)
	noteEditor := portsmocks.NewMockNoteEditor(t)

	repo.EXPECT().Get(mock.Anything, "a").Return(&domain.Item{ID: "a", Note: "old"}, nil)
	noteEditor.EXPECT().Edit("old").Return("new", nil)
	repo.EXPECT().UpdateNote(mock.Anything, "a", "new").Return(nil)

	c := &ItemsNoteCmd{Edit: true, ID: "a"}
	require.NoError(t, c.run(services.NewItemService(repo), noteEditor))
}

func TestItemsNote_EditUnchangedSkipsUpdate(t *testing.T) {
	repo := portsmocks.NewMockItemRepository(t)
	noteEditor := portsmocks.NewMockNoteEditor(t)

	repo.EXPECT().Get(mock.Anything, "a").Return(&domain.Item{ID: "a", Note: "same"}, nil)
	noteEditor.EXPECT().Edit("same").Return("same", nil)

	c := &ItemsNoteCmd{Edit: true, ID: "a"}
	require.NoError(t, c.run(services.NewItemService(repo), noteEditor))
}

func TestItemsNote_EditorFailure(t *testing.T) {
	repo := portsmocks.NewMockItemRepository(t)
	noteEditor := portsmocks.NewMockNoteEditor(t)

	repo.EXPECT().Get(mock.Anything, "a").Return(&domain.Item{ID: "a"}, nil)
	noteEditor.EXPECT().Edit("").Return("", errors.New("editor failed"))

	c := &ItemsNoteCmd{Edit: true, ID: "a"}
	err := c.run(services.NewItemService(repo), noteEditor)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "editor failed")
}

func TestItemsNote_Clear(t *testing.T) {
	repo := portsmocks.NewMockItemRepository(t)
	repo.EXPECT().UpdateNote(mock.Anything, "a", "").Return(nil)

	c := &ItemsNoteCmd{Clear: true, ID: "a", Note: "ignored"}
	require.NoError(t, c.run(services.NewItemService(repo), nil))
}

func TestItemsNote_RequiresInput(t *testing.T) {
	repo := portsmocks.NewMockItemRepository(t)

	c := &ItemsNoteCmd{ID: "a"}
	err := c.run(services.NewItemService(repo), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "provide a note")
}

func TestItemsNote_NotFound(t *testing.T) {
	repo := portsmocks.NewMockItemRepository(t)
	repo.EXPECT().UpdateNote(mock.Anything, "zz", "hello").
		Return(domain.ErrItemNotFound)

	c := &ItemsNoteCmd{ID: "zz", Note: "hello"}
	err := c.run(services.NewItemService(repo), nil)

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"up", "k"}, splitList(" up , k ,"))
	assert.Nil(t, splitList(" , "))
}
