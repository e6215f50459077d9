package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Create(ctx context.Context, record *SaleRecord) error
	List(ctx context.Context, q ListQuery) ([]SaleRecord, error)
	FindByID(ctx context.Context, id snowflake.ID) (*SaleRecord, error)
}
