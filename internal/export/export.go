// Package export renders invoices into fixed-layout PDF documents.
package export

import (
	"context"
	"errors"

	invoicedomain "github.com/tillworks/posledger/internal/invoice/domain"
)

// ErrExport classifies rendering and save failures. Exports are never retried
// automatically.
var ErrExport = errors.New("export_failed")

// Request describes one printable document. Filename is the caller-supplied
// artifact identifier without extension: a timestamp-derived name for a fresh
// checkout, the sale record id for a replay. EmptyCategory is the placeholder
// rendered for lines without a category.
type Request struct {
	Title         string
	DateLabel     string
	SaleLabel     string
	Filename      string
	EmptyCategory string
	Items         []invoicedomain.LineItem
	Aggregate     invoicedomain.Aggregate
}

// Service lays out and saves a printable document, returning the saved path.
type Service interface {
	Export(ctx context.Context, req Request) (string, error)
}
