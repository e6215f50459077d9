package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	List(ctx context.Context) ([]Category, error)
	FindByID(ctx context.Context, id snowflake.ID) (*Category, error)
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, id snowflake.ID, patch map[string]any) (int64, error)
	Delete(ctx context.Context, id snowflake.ID) error
}
