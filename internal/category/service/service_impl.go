package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	categorydomain "github.com/tillworks/posledger/internal/category/domain"
	"github.com/tillworks/posledger/internal/clock"
	"github.com/tillworks/posledger/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type ServiceParam struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  categorydomain.Repository
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  categorydomain.Repository
}

func NewService(p ServiceParam) categorydomain.Service {
	return &Service{
		log:   p.Log.Named("category.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]categorydomain.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("list categories failed", zap.Error(err))
		return nil, db.StoreUnavailable(err)
	}
	return categories, nil
}

func (s *Service) Create(ctx context.Context, req categorydomain.CreateRequest) (*categorydomain.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, categorydomain.ErrInvalidName
	}
	if req.TaxRate == nil || *req.TaxRate < 0 {
		return nil, categorydomain.ErrInvalidTaxRate
	}

	now := s.clock.Now()
	category := &categorydomain.Category{
		ID:        s.genID.Generate(),
		Name:      name,
		TaxRate:   *req.TaxRate,
		Taxable:   *req.TaxRate > 0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, categorydomain.ErrDuplicateName
		}
		s.log.Error("create category failed", zap.Error(err))
		return nil, db.StoreUnavailable(err)
	}

	s.log.Info("category created",
		zap.String("category_id", category.ID.String()),
		zap.Float64("tax_rate", category.TaxRate),
	)
	return category, nil
}

func (s *Service) Update(ctx context.Context, req categorydomain.UpdateRequest) (*categorydomain.Category, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, categorydomain.ErrInvalidID
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, categorydomain.ErrInvalidName
	}
	if req.TaxRate == nil || *req.TaxRate < 0 {
		return nil, categorydomain.ErrInvalidTaxRate
	}

	patch := map[string]any{
		"category_name": name,
		"tax_rate":      *req.TaxRate,
		"taxable":       *req.TaxRate > 0,
		"updated_at":    s.clock.Now(),
	}

	affected, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, categorydomain.ErrDuplicateName
		}
		s.log.Error("update category failed", zap.Error(err))
		return nil, db.StoreUnavailable(err)
	}
	if affected == 0 {
		return nil, categorydomain.ErrNotFound
	}

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, db.StoreUnavailable(err)
	}
	if category == nil {
		return nil, categorydomain.ErrNotFound
	}
	return category, nil
}

// Delete is idempotent at the store level. Line items captured before the
// delete keep their copied rate and name.
func (s *Service) Delete(ctx context.Context, id string) error {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return categorydomain.ErrInvalidID
	}

	if err := s.repo.Delete(ctx, parsed); err != nil {
		s.log.Error("delete category failed", zap.Error(err))
		return db.StoreUnavailable(err)
	}

	s.log.Info("category deleted", zap.String("category_id", parsed.String()))
	return nil
}
