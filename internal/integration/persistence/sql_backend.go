package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/integration/persistence/model"
)

// SQLBackend implements adapter.KeyValueBackend over a single-table GORM
// store. It carries the file-based deployments (sqlite) and server
// deployments (postgres); the driver choice lives in infra/db.
type SQLBackend struct {
	db *gorm.DB
}

// NewSQLBackend creates a SQL-backed key-value store.
func NewSQLBackend(db *gorm.DB) *SQLBackend {
	return &SQLBackend{db: db}
}

// Get returns the raw value for key.
func (b *SQLBackend) Get(ctx context.Context, key string) (string, bool, error) {
	var row model.KeyValueModel
	result := b.db.WithContext(ctx).Where("key = ?", key).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("sql get %q: %w", key, result.Error)
	}
	return row.Value, true, nil
}

// Set writes the raw value under key, inserting or updating in place.
func (b *SQLBackend) Set(ctx context.Context, key, value string) error {
	row := model.KeyValueModel{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	result := b.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row)
	if result.Error != nil {
		return fmt.Errorf("sql set %q: %w", key, result.Error)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (b *SQLBackend) Delete(ctx context.Context, key string) error {
	result := b.db.WithContext(ctx).Where("key = ?", key).Delete(&model.KeyValueModel{})
	if result.Error != nil {
		return fmt.Errorf("sql delete %q: %w", key, result.Error)
	}
	return nil
}

// Clear wipes the whole key-value table.
func (b *SQLBackend) Clear(ctx context.Context) error {
	result := b.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.KeyValueModel{})
	if result.Error != nil {
		return fmt.Errorf("sql clear: %w", result.Error)
	}
	return nil
}

// Ping reports database reachability.
func (b *SQLBackend) Ping(ctx context.Context) error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

var _ adapter.KeyValueBackend = (*SQLBackend)(nil)
var _ adapter.KeyValueBackend = (*RedisBackend)(nil)
