package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/logging"
	"github.com/renato0307/swipelist/internal/ports"
)

// ErrEmptyTitle is returned when an item is added without a title
var ErrEmptyTitle = errors.New("item title cannot be empty")

// ItemService handles item CRUD and metadata operations
type ItemService struct {
	itemRepo ports.ItemRepository
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo ports.ItemRepository) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
	}
}

// List returns items ordered by position
func (s *ItemService) List(ctx context.Context, includeArchived bool) ([]domain.Item, error) {
	items, err := s.itemRepo.List(ctx, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// Get returns a single item
func (s *ItemService) Get(ctx context.Context, id string) (*domain.Item, error) {
	return s.itemRepo.Get(ctx, id)
}

// Add creates an item with a fresh ID
func (s *ItemService) Add(ctx context.Context, params AddItemParams) (*domain.Item, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	item := domain.Item{
		CreatedAt: time.Now().UTC(),
		ID:        uuid.New().String(),
		Note:      params.Note,
		Title:     title,
	}

	logging.Logger.Info("Adding item", "id", item.ID, "title", item.Title)
	if err := s.itemRepo.Add(ctx, item); err != nil {
		logging.Logger.Error("Failed to add item", "id", item.ID, "error", err)
		return nil, fmt.Errorf("failed to add item: %w", err)
	}
	return &item, nil
}

// Archive hides an item from the default list
func (s *ItemService) Archive(ctx context.Context, id string) error {
	return s.setArchived(ctx, id, true)
}

// Unarchive brings an archived item back into the list
func (s *ItemService) Unarchive(ctx context.Context, id string) error {
	return s.setArchived(ctx, id, false)
}

func (s *ItemService) setArchived(ctx context.Context, id string, archived bool) error {
	logging.Logger.Info("Setting item archive state", "id", id, "archived", archived)
	if err := s.itemRepo.SetArchived(ctx, id, archived); err != nil {
		logging.Logger.Error("Failed to update archive state", "id", id, "error", err)
		return fmt.Errorf("failed to update archive state: %w", err)
	}
	return nil
}

// Delete permanently removes an item
func (s *ItemService) Delete(ctx context.Context, id string) error {
	logging.Logger.Info("Deleting item", "id", id)
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		logging.Logger.Error("Failed to delete item", "id", id, "error", err)
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// ToggleFlag flips the flagged state of an item
func (s *ItemService) ToggleFlag(ctx context.Context, id string) error {
	if err := s.itemRepo.ToggleFlag(ctx, id); err != nil {
		logging.Logger.Error("Failed to toggle flag", "id", id, "error", err)
		return fmt.Errorf("failed to toggle flag: %w", err)
	}
	return nil
}

// UpdateNote replaces the note of an item
func (s *ItemService) UpdateNote(ctx context.Context, id, note string) error {
	if err := s.itemRepo.UpdateNote(ctx, id, note); err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	return nil
}
