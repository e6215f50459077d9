package domain

import (
	"strings"

	"github.com/bwmarrin/snowflake"
)

// AddItemInput carries resolved category values; resolving an id against the
// directory is the caller's job.
type AddItemInput struct {
	Name         string
	CategoryID   *snowflake.ID
	CategoryName string
	TaxRate      float64
	Qty          float64
	Price        float64
}

// Accumulator owns the item sequence of the invoice currently being built.
// It is Empty until the first successful AddItem and returns to Empty only
// through Clear. Not safe for concurrent use; the owning session serializes
// access.
type Accumulator struct {
	items []LineItem
}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// AddItem validates input, computes the tax breakdown and appends a line with
// the next dense sequence number. State is untouched when validation fails.
func (a *Accumulator) AddItem(input AddItemInput) (LineItem, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return LineItem{}, ErrInvalidItemName
	}
	if input.Qty <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	if input.Price < 0 {
		return LineItem{}, ErrInvalidPrice
	}
	if input.TaxRate < 0 {
		return LineItem{}, ErrInvalidCategory
	}

	breakdown := Compute(input.Qty, input.Price, input.TaxRate)

	item := LineItem{
		SN:             len(a.items) + 1,
		Name:           name,
		CategoryName:   input.CategoryName,
		Qty:            input.Qty,
		Price:          input.Price,
		TaxRate:        input.TaxRate,
		TotalBeforeTax: breakdown.TotalBeforeTax,
		TaxAmount:      breakdown.TaxAmount,
		TotalAfterTax:  breakdown.TotalAfterTax,
	}
	if input.CategoryID != nil {
		id := *input.CategoryID
		item.CategoryID = &id
	}

	a.items = append(a.items, item)
	return item, nil
}

func (a *Accumulator) Empty() bool { return len(a.items) == 0 }

func (a *Accumulator) Len() int { return len(a.items) }

// Items returns a copy of the current sequence.
func (a *Accumulator) Items() []LineItem {
	out := make([]LineItem, len(a.items))
	copy(out, a.items)
	return out
}

// Aggregate sums full-precision breakdowns; rounding would compound across
// lines.
func (a *Accumulator) Aggregate() Aggregate {
	return AggregateOf(a.items)
}

// Clear transitions back to Empty. Callers invoke it only after the ledger
// accepted the sequence.
func (a *Accumulator) Clear() {
	a.items = nil
}
