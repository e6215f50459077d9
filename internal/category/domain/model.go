// Package domain contains the taxable category model shared by invoice
// creation and category administration.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Category is a named taxable classification. TaxRate is a percentage
// (e.g. 18 means 18%). Taxable is derived from the rate and stored for
// direct filtering.
type Category struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"column:category_name;type:text;not null;uniqueIndex" json:"category_name"`
	TaxRate   float64      `gorm:"column:tax_rate;not null;default:0" json:"tax_rate"`
	Taxable   bool         `gorm:"not null;default:false" json:"taxable"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Category) TableName() string { return "item_categories" }
