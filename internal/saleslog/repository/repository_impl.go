package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	saleslogdomain "github.com/tillworks/posledger/internal/saleslog/domain"
	"github.com/tillworks/posledger/pkg/db/option"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) saleslogdomain.Repository {
	return &repo{db: db}
}

func (r *repo) Create(ctx context.Context, record *saleslogdomain.SaleRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repo) List(ctx context.Context, q saleslogdomain.ListQuery) ([]saleslogdomain.SaleRecord, error) {
	opts := []option.QueryOption{
		option.WithSortBy(option.WithQuerySortBy("created_at", q.OrderBy, map[string]bool{"created_at": true})),
		option.WithLimit(q.Limit),
	}
	if !q.CreatedAfter.IsZero() {
		opts = append(opts, option.ApplyOperator(option.Condition{
			Field:    "created_at",
			Operator: option.GTE,
			Value:    q.CreatedAfter,
		}))
	}

	stmt := r.db.WithContext(ctx).Model(&saleslogdomain.SaleRecord{})
	for _, opt := range opts {
		stmt = opt.Apply(stmt)
	}

	var records []saleslogdomain.SaleRecord
	if err := stmt.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*saleslogdomain.SaleRecord, error) {
	var record saleslogdomain.SaleRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}
