package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/tillworks/posledger/internal/clock"
	invoicedomain "github.com/tillworks/posledger/internal/invoice/domain"
	saleslogdomain "github.com/tillworks/posledger/internal/saleslog/domain"
	"github.com/tillworks/posledger/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ServiceParam struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  saleslogdomain.Repository
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  saleslogdomain.Repository
}

func NewService(p ServiceParam) saleslogdomain.Service {
	return &Service{
		log:   p.Log.Named("saleslog.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

// Append encodes the sequence with two-space indentation. Replay depends on
// json.Unmarshal being the exact inverse, not on the whitespace, but keeping
// the historical dump format means old and new records look alike in the
// store.
func (s *Service) Append(ctx context.Context, items []invoicedomain.LineItem) (*saleslogdomain.SaleRecord, error) {
	if len(items) == 0 {
		return nil, saleslogdomain.ErrNothingToLog
	}

	dump, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode line items: %w", err)
	}

	record := &saleslogdomain.SaleRecord{
		ID:        s.genID.Generate(),
		Dump:      dump,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.Create(ctx, record); err != nil {
		s.log.Error("append sale record failed", zap.Error(err))
		return nil, db.StoreUnavailable(err)
	}

	s.log.Info("sale record appended",
		zap.String("sale_id", record.ID.String()),
		zap.Int("items", len(items)),
	)
	return record, nil
}

func (s *Service) List(ctx context.Context, q saleslogdomain.ListQuery) ([]saleslogdomain.SaleRecord, error) {
	records, err := s.repo.List(ctx, q)
	if err != nil {
		s.log.Error("list sale records failed", zap.Error(err))
		return nil, db.StoreUnavailable(err)
	}
	return records, nil
}

func (s *Service) Get(ctx context.Context, id string) (*saleslogdomain.SaleRecord, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, saleslogdomain.ErrInvalidID
	}

	record, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		s.log.Error("get sale record failed", zap.Error(err))
		return nil, db.StoreUnavailable(err)
	}
	if record == nil {
		return nil, saleslogdomain.ErrNotFound
	}
	return record, nil
}

// Replay failures are scoped to the single record; callers listing history
// skip the bad record and keep going.
func (s *Service) Replay(record saleslogdomain.SaleRecord) ([]invoicedomain.LineItem, error) {
	var items []invoicedomain.LineItem
	if err := json.Unmarshal(record.Dump, &items); err != nil {
		s.log.Warn("corrupt sale record",
			zap.String("sale_id", record.ID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", saleslogdomain.ErrCorruptRecord, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty dump", saleslogdomain.ErrCorruptRecord)
	}
	return items, nil
}
