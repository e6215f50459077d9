package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
	categorydomain "github.com/tillworks/posledger/internal/category/domain"
	"github.com/tillworks/posledger/internal/clock"
	"github.com/tillworks/posledger/internal/config"
	"github.com/tillworks/posledger/internal/export"
	invoicedomain "github.com/tillworks/posledger/internal/invoice/domain"
	saleslogdomain "github.com/tillworks/posledger/internal/saleslog/domain"
	"github.com/tillworks/posledger/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type SessionParam struct {
	fx.In

	Log        *zap.Logger
	Clock      clock.Clock
	Layout     *config.LayoutConfigHolder
	Categories categorydomain.Repository
	Ledger     saleslogdomain.Service
	Exporter   export.Service
}

// Session serializes every operation with one mutex: there is exactly one
// operator and one in-progress invoice per process.
type Session struct {
	mu  sync.Mutex
	acc *invoicedomain.Accumulator

	log        *zap.Logger
	clock      clock.Clock
	layout     *config.LayoutConfigHolder
	categories categorydomain.Repository
	ledger     saleslogdomain.Service
	exporter   export.Service
}

func NewSession(p SessionParam) invoicedomain.Session {
	return &Session{
		acc:        invoicedomain.NewAccumulator(),
		log:        p.Log.Named("invoice.session"),
		clock:      p.Clock,
		layout:     p.Layout,
		categories: p.Categories,
		ledger:     p.Ledger,
		exporter:   p.Exporter,
	}
}

// AddItem resolves the category (when one is selected) and appends a line.
// The rate and name are captured as values; nothing on the line references
// the directory afterwards.
func (s *Session) AddItem(ctx context.Context, req invoicedomain.AddItemRequest) (invoicedomain.LineItem, error) {
	input := invoicedomain.AddItemInput{
		Name:  req.Name,
		Qty:   req.Qty,
		Price: req.Price,
	}

	if raw := strings.TrimSpace(req.CategoryID); raw != "" {
		id, err := snowflake.ParseString(raw)
		if err != nil {
			return invoicedomain.LineItem{}, invoicedomain.ErrInvalidCategory
		}
		category, err := s.categories.FindByID(ctx, id)
		if err != nil {
			return invoicedomain.LineItem{}, db.StoreUnavailable(err)
		}
		// An id that no longer resolves behaves like no selection: rate 0,
		// empty category name.
		if category != nil {
			input.CategoryID = &category.ID
			input.CategoryName = category.Name
			input.TaxRate = category.TaxRate
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.acc.AddItem(input)
	if err != nil {
		return invoicedomain.LineItem{}, err
	}

	s.log.Debug("line item added",
		zap.Int("sn", item.SN),
		zap.Float64("total_after_tax", item.TotalAfterTax),
	)
	return item, nil
}

func (s *Session) Items() []invoicedomain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acc.Items()
}

func (s *Session) Aggregate() invoicedomain.Aggregate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acc.Aggregate()
}

func (s *Session) Checkout(ctx context.Context) (*invoicedomain.CheckoutResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.acc.Empty() {
		return nil, invoicedomain.ErrEmptyInvoice
	}

	items := s.acc.Items()
	aggregate := s.acc.Aggregate()
	now := s.clock.Now()
	layout := s.layout.Get()

	path, err := s.exporter.Export(ctx, export.Request{
		Title:         layout.Title,
		DateLabel:     "Date: " + now.Format(layout.DateFormat),
		Filename:      fmt.Sprintf("%s_%d", layout.FilenameStem, now.UnixMilli()),
		EmptyCategory: layout.EmptyCategory,
		Items:         items,
		Aggregate:     aggregate,
	})
	if err != nil {
		// Items stay; checkout can be retried as-is.
		return nil, err
	}

	record, err := s.ledger.Append(ctx, items)
	if err != nil {
		// Persistence failed after the document was written. The session
		// keeps its items so a retry re-persists the same sequence.
		return nil, err
	}

	s.acc.Clear()

	s.log.Info("invoice checked out",
		zap.String("sale_id", record.ID.String()),
		zap.Int("items", len(items)),
		zap.Float64("grand_total", aggregate.GrandTotal),
	)

	return &invoicedomain.CheckoutResult{
		SaleID:       record.ID.String(),
		CreatedAt:    record.CreatedAt,
		DocumentPath: path,
		Aggregate:    aggregate,
	}, nil
}

func (s *Session) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.acc.Clear()
}
