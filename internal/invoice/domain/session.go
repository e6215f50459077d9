package domain

import (
	"context"
	"time"
)

// Session is the in-progress invoice owned by the single operator. All
// operations are sequential user actions; implementations serialize access.
type Session interface {
	AddItem(ctx context.Context, req AddItemRequest) (LineItem, error)
	Items() []LineItem
	Aggregate() Aggregate
	// Checkout persists the sequence and renders the printable document.
	// The session clears only when persistence succeeded; on failure the
	// items stay so the same checkout can be retried.
	Checkout(ctx context.Context) (*CheckoutResult, error)
	// Discard drops the whole in-progress invoice.
	Discard()
}

type AddItemRequest struct {
	Name       string  `json:"name"`
	CategoryID string  `json:"categoryId"`
	Qty        float64 `json:"qty"`
	Price      float64 `json:"price"`
}

type CheckoutResult struct {
	SaleID       string    `json:"sale_id"`
	CreatedAt    time.Time `json:"created_at"`
	DocumentPath string    `json:"document_path"`
	Aggregate    Aggregate `json:"aggregate"`
}
