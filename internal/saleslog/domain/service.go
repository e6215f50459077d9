package domain

import (
	"context"
	"time"

	invoicedomain "github.com/tillworks/posledger/internal/invoice/domain"
)

// ListQuery narrows a history listing. Zero values mean no limit, descending
// order, no lower time bound.
type ListQuery struct {
	Limit        int
	OrderBy      string
	CreatedAfter time.Time
}

type Service interface {
	// Append durably stores the item sequence as one record and returns it.
	// The write is all-or-nothing; on failure the caller keeps its
	// in-progress state and may retry.
	Append(ctx context.Context, items []invoicedomain.LineItem) (*SaleRecord, error)
	// List returns records ordered by creation time, most recent first
	// unless the query asks for ascending.
	List(ctx context.Context, q ListQuery) ([]SaleRecord, error)
	Get(ctx context.Context, id string) (*SaleRecord, error)
	// Replay decodes a record's dump back into the original sequence. It is
	// the exact inverse of Append's encoding.
	Replay(record SaleRecord) ([]invoicedomain.LineItem, error)
}
