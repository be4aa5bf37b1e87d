package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/renato0307/swipelist/internal/domain"
	"github.com/renato0307/swipelist/internal/logging"
	"github.com/renato0307/swipelist/internal/ports"
)

// SQLiteRepository implements ports.ItemRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.ItemRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the swipelist logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("SWIPELIST_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access from the TUI and the CLI
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&ItemModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate item schema: %w", err)
	}

	migrator := db.Migrator()

	if !migrator.HasTable(&ItemFlagModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS item_flags (
				item_id TEXT PRIMARY KEY,
				is_flagged INTEGER NOT NULL DEFAULT 0,
				flagged_at DATETIME,
				created_at DATETIME,
				updated_at DATETIME,
				FOREIGN KEY (item_id) REFERENCES items(id) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create item_flags table: %w", err)
		}
	}

	if !migrator.HasTable(&ItemArchiveModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS item_archives (
				item_id TEXT PRIMARY KEY,
				is_archived INTEGER NOT NULL DEFAULT 0,
				archived_at DATETIME,
				created_at DATETIME,
				updated_at DATETIME,
				FOREIGN KEY (item_id) REFERENCES items(id) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create item_archives table: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements ItemReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.Item, error) {
	var item ItemModel
	var flag ItemFlagModel
	var archive ItemArchiveModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("id = ?", id).First(&item).Error; err != nil {
				return err
			}

			// Extension rows are optional
			tx.Where("item_id = ?", id).Limit(1).Find(&flag)
			tx.Where("item_id = ?", id).Limit(1).Find(&archive)
			return nil
		})
	}, 3)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item %s: %w", id, domain.ErrItemNotFound)
		}
		return nil, err
	}

	result := itemModelToDomain(item, flag, archive)
	return &result, nil
}

// List implements ItemReader.List, ordered by position
func (r *SQLiteRepository) List(ctx context.Context, includeArchived bool) ([]domain.Item, error) {
	var items []ItemModel
	var flags []ItemFlagModel
	var archives []ItemArchiveModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			query := tx.Order("position ASC").Order("created_at ASC")
			if !includeArchived {
				query = query.Where("id NOT IN (SELECT item_id FROM item_archives WHERE is_archived = 1)")
			}
			if err := query.Find(&items).Error; err != nil {
				return err
			}
			if err := tx.Find(&flags).Error; err != nil {
				return err
			}
			return tx.Find(&archives).Error
		})
	}, 3)
	if err != nil {
		return nil, err
	}

	flagMap := make(map[string]ItemFlagModel, len(flags))
	for _, f := range flags {
		flagMap[f.ItemID] = f
	}
	archiveMap := make(map[string]ItemArchiveModel, len(archives))
	for _, a := range archives {
		archiveMap[a.ItemID] = a
	}

	result := make([]domain.Item, len(items))
	for i, item := range items {
		result[i] = itemModelToDomain(item, flagMap[item.ID], archiveMap[item.ID])
	}
	return result, nil
}

// Add implements ItemWriter.Add; the item is appended after the last position
func (r *SQLiteRepository) Add(ctx context.Context, item domain.Item) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var maxPosition int
			tx.Model(&ItemModel{}).Select("COALESCE(MAX(position), 0)").Scan(&maxPosition)

			model := domainToItemModel(item)
			model.Position = maxPosition + 1

			if err := tx.Create(&model).Error; err != nil {
				if isConstraintError(err) {
					return fmt.Errorf("item %s: %w", item.ID, domain.ErrItemExists)
				}
				return fmt.Errorf("failed to create item: %w", err)
			}
			return nil
		})
	}, 3)
}

// Delete implements ItemWriter.Delete
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Where("id = ?", id).Delete(&ItemModel{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("item %s: %w", id, domain.ErrItemNotFound)
			}
			return nil
		})
	}, 3)
}

// SetArchived implements ItemMetadataUpdater.SetArchived
func (r *SQLiteRepository) SetArchived(ctx context.Context, id string, archived bool) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := ensureItem(tx, id); err != nil {
				return err
			}

			var archivedAt *time.Time
			if archived {
				now := time.Now().UTC()
				archivedAt = &now
			}

			var archive ItemArchiveModel
			err := tx.Where("item_id = ?", id).First(&archive).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(&ItemArchiveModel{
					ArchivedAt: archivedAt,
					IsArchived: archived,
					ItemID:     id,
				}).Error
			}
			if err != nil {
				return fmt.Errorf("failed to load archive: %w", err)
			}

			archive.IsArchived = archived
			archive.ArchivedAt = archivedAt
			return tx.Save(&archive).Error
		})
	}, 3)
}

// ToggleFlag implements ItemMetadataUpdater.ToggleFlag
func (r *SQLiteRepository) ToggleFlag(ctx context.Context, id string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := ensureItem(tx, id); err != nil {
				return err
			}

			var flag ItemFlagModel
			err := tx.Where("item_id = ?", id).First(&flag).Error

			if errors.Is(err, gorm.ErrRecordNotFound) {
				now := time.Now().UTC()
				return tx.Create(&ItemFlagModel{
					FlaggedAt: &now,
					IsFlagged: true,
					ItemID:    id,
				}).Error
			}
			if err != nil {
				return fmt.Errorf("failed to load flag: %w", err)
			}

			flag.IsFlagged = !flag.IsFlagged
			if flag.IsFlagged {
				now := time.Now().UTC()
				flag.FlaggedAt = &now
			} else {
				flag.FlaggedAt = nil
			}

			return tx.Save(&flag).Error
		})
	}, 3)
}

// UpdateNote implements ItemMetadataUpdater.UpdateNote
func (r *SQLiteRepository) UpdateNote(ctx context.Context, id, note string) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&ItemModel{}).
			Where("id = ?", id).
			Update("note", note)
		if result.Error != nil {
			return fmt.Errorf("failed to update note: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("item %s: %w", id, domain.ErrItemNotFound)
		}
		return nil
	}, 3)
}

func ensureItem(tx *gorm.DB, id string) error {
	var count int64
	if err := tx.Model(&ItemModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("item %s: %w", id, domain.ErrItemNotFound)
	}
	return nil
}

func isConstraintError(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
