// Package domain contains the line item model and the tax breakdown rules
// applied at entry time.
package domain

import (
	"github.com/bwmarrin/snowflake"
)

// LineItem is one priced entry on an invoice. Category name and tax rate are
// value copies captured when the item was added; replaying an old record never
// consults the category directory, so later category edits or deletes cannot
// change history. The JSON field names are the persisted dump format and must
// not be renamed.
type LineItem struct {
	SN             int           `json:"sn"`
	Name           string        `json:"name"`
	CategoryID     *snowflake.ID `json:"categoryId"`
	CategoryName   string        `json:"categoryName"`
	Qty            float64       `json:"qty"`
	Price          float64       `json:"price"`
	TaxRate        float64       `json:"taxRate"`
	TotalBeforeTax float64       `json:"totalBeforeTax"`
	TaxAmount      float64       `json:"taxAmount"`
	TotalAfterTax  float64       `json:"totalAfterTax"`
}

// Breakdown is the derived monetary result for a single line.
type Breakdown struct {
	TotalBeforeTax float64
	TaxAmount      float64
	TotalAfterTax  float64
}

// Aggregate sums the breakdowns of all items on an invoice.
type Aggregate struct {
	Subtotal   float64 `json:"subtotal"`
	TotalTax   float64 `json:"total_tax"`
	GrandTotal float64 `json:"grand_total"`
}

// AggregateOf derives order totals from stored line items. Sale records never
// persist totals, so this is the single source for historical aggregates too.
func AggregateOf(items []LineItem) Aggregate {
	var agg Aggregate
	for _, item := range items {
		agg.Subtotal += item.TotalBeforeTax
		agg.TotalTax += item.TaxAmount
		agg.GrandTotal += item.TotalBeforeTax + item.TaxAmount
	}
	return agg
}
