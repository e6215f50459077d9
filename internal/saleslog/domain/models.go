// Package domain contains the persisted sale record model.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// SaleRecord is an immutable snapshot of a completed invoice. Dump holds the
// full line item sequence as JSON; aggregates are always re-derived from it so
// a stored total can never drift from the computed one.
type SaleRecord struct {
	ID        snowflake.ID   `gorm:"primaryKey" json:"id"`
	Dump      datatypes.JSON `gorm:"type:text;not null" json:"dump"`
	CreatedAt time.Time      `gorm:"column:created_at;not null;index" json:"created_at"`
}

// TableName sets the database table name.
func (SaleRecord) TableName() string { return "sales_log" }
