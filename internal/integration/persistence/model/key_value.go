// Package model defines the database models for persistence.
package model

import "time"

// KeyValueModel is one durable slice entry in the SQL key-value backend.
type KeyValueModel struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName specifies the table name for KeyValueModel.
func (KeyValueModel) TableName() string {
	return "finance_slices"
}
