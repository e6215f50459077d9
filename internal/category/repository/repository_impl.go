package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	categorydomain "github.com/tillworks/posledger/internal/category/domain"
	"github.com/tillworks/posledger/pkg/db/option"
	"github.com/tillworks/posledger/pkg/repository"
	"gorm.io/gorm"
)

type repo struct {
	store repository.Repository[categorydomain.Category]
}

func NewRepository(db *gorm.DB) categorydomain.Repository {
	return &repo{store: repository.ProvideStore[categorydomain.Category](db)}
}

func (r *repo) List(ctx context.Context) ([]categorydomain.Category, error) {
	rows, err := r.store.Find(ctx, &categorydomain.Category{},
		option.WithSortBy(option.QuerySortBy{SortBy: "id", OrderBy: "asc", Allow: map[string]bool{"id": true}}),
	)
	if err != nil {
		return nil, err
	}

	categories := make([]categorydomain.Category, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		categories = append(categories, *row)
	}
	return categories, nil
}

func (r *repo) FindByID(ctx context.Context, id snowflake.ID) (*categorydomain.Category, error) {
	return r.store.FindOne(ctx, &categorydomain.Category{ID: id})
}

func (r *repo) Create(ctx context.Context, category *categorydomain.Category) error {
	return r.store.Create(ctx, category)
}

func (r *repo) Update(ctx context.Context, id snowflake.ID, patch map[string]any) (int64, error) {
	return r.store.Update(ctx, id.String(), patch)
}

func (r *repo) Delete(ctx context.Context, id snowflake.ID) error {
	return r.store.Delete(ctx, id.String())
}
