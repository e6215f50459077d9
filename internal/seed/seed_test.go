package seed

import (
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	categorydomain "github.com/tillworks/posledger/internal/category/domain"
	"gorm.io/gorm"
)

func TestEnsureDefaultCategories(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&categorydomain.Category{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	require.NoError(t, EnsureDefaultCategories(db, node))

	var categories []categorydomain.Category
	require.NoError(t, db.Find(&categories).Error)
	require.Len(t, categories, 4)

	byName := make(map[string]categorydomain.Category, len(categories))
	for _, c := range categories {
		byName[c.Name] = c
	}
	assert.False(t, byName["Groceries"].Taxable)
	assert.InDelta(t, 18, byName["Electronics"].TaxRate, 1e-9)

	// A second run never touches existing data.
	require.NoError(t, EnsureDefaultCategories(db, node))
	var count int64
	require.NoError(t, db.Model(&categorydomain.Category{}).Count(&count).Error)
	assert.EqualValues(t, 4, count)
}

func TestEnsureDefaultCategoriesRequiresDeps(t *testing.T) {
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	assert.Error(t, EnsureDefaultCategories(nil, node))

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	assert.Error(t, EnsureDefaultCategories(db, nil))
}
