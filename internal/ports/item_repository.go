package ports

//go:generate mockery --config ../../.mockery.yaml

import (
	"context"

	"github.com/renato0307/swipelist/internal/domain"
)

// ItemReader reads list items
type ItemReader interface {
	Get(ctx context.Context, id string) (*domain.Item, error)
	List(ctx context.Context, includeArchived bool) ([]domain.Item, error)
}

// ItemWriter creates and deletes list items
type ItemWriter interface {
	Add(ctx context.Context, item domain.Item) error
	Delete(ctx context.Context, id string) error
}

// ItemMetadataUpdater updates item metadata
type ItemMetadataUpdater interface {
	SetArchived(ctx context.Context, id string, archived bool) error
	ToggleFlag(ctx context.Context, id string) error
	UpdateNote(ctx context.Context, id, note string) error
}

// ItemRepository is the composite interface
type ItemRepository interface {
	ItemReader
	ItemWriter
	ItemMetadataUpdater
	Close() error
}
