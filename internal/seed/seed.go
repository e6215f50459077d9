// Package seed bootstraps a usable category directory on first start.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	categorydomain "github.com/tillworks/posledger/internal/category/domain"
	"github.com/tillworks/posledger/pkg/repository"
	"gorm.io/gorm"
)

var defaultCategories = []struct {
	name string
	rate float64
}{
	{"Groceries", 0},
	{"Electronics", 18},
	{"Apparel", 12},
	{"Services", 5},
}

// EnsureDefaultCategories inserts the starter categories when the directory
// is empty. Existing data is never touched.
func EnsureDefaultCategories(db *gorm.DB, node *snowflake.Node) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	if node == nil {
		return errors.New("seed id node is required")
	}

	ctx := context.Background()
	store := repository.ProvideStore[categorydomain.Category](db)

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txStore := store.WithTrx(tx)

		count, err := txStore.Count(ctx, &categorydomain.Category{})
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()
		for _, def := range defaultCategories {
			category := categorydomain.Category{
				ID:        node.Generate(),
				Name:      def.name,
				TaxRate:   def.rate,
				Taxable:   def.rate > 0,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := txStore.Create(ctx, &category); err != nil {
				return err
			}
		}
		return nil
	})
}
