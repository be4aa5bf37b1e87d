package storage

import "time"

// ItemModel is the GORM model for items table
type ItemModel struct {
	CreatedAt time.Time
	ID        string `gorm:"primaryKey"`
	Note      string `gorm:"not null;default:''"`
	Position  int    `gorm:"not null;default:0;index:idx_position"`
	Title     string `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ItemModel) TableName() string { return "items" }

// ItemFlagModel is the GORM model for item flags
type ItemFlagModel struct {
	CreatedAt time.Time
	FlaggedAt *time.Time `gorm:"default:null"`
	IsFlagged bool       `gorm:"not null;default:false"`
	ItemID    string     `gorm:"primaryKey"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ItemFlagModel) TableName() string { return "item_flags" }

// ItemArchiveModel is the GORM model for item archive status
type ItemArchiveModel struct {
	ArchivedAt *time.Time `gorm:"default:null"`
	CreatedAt  time.Time
	IsArchived bool   `gorm:"not null;default:false"`
	ItemID     string `gorm:"primaryKey"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (ItemArchiveModel) TableName() string { return "item_archives" }
