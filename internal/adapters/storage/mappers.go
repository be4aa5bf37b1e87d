package storage

import (
	"github.com/renato0307/swipelist/internal/domain"
)

// itemModelToDomain converts an ItemModel (GORM) to domain.Item
func itemModelToDomain(m ItemModel, flag ItemFlagModel, archive ItemArchiveModel) domain.Item {
	return domain.Item{
		ArchivedAt: archive.ArchivedAt,
		CreatedAt:  m.CreatedAt,
		ID:         m.ID,
		IsArchived: archive.IsArchived,
		IsFlagged:  flag.IsFlagged,
		Note:       m.Note,
		Position:   m.Position,
		Title:      m.Title,
	}
}

// domainToItemModel converts a domain.Item to ItemModel (GORM)
func domainToItemModel(i domain.Item) ItemModel {
	return ItemModel{
		CreatedAt: i.CreatedAt,
		ID:        i.ID,
		Note:      i.Note,
		Position:  i.Position,
		Title:     i.Title,
	}
}
