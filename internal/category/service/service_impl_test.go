package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	categorydomain "github.com/tillworks/posledger/internal/category/domain"
	"github.com/tillworks/posledger/internal/category/repository"
	"github.com/tillworks/posledger/internal/clock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) categorydomain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&categorydomain.Category{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return NewService(ServiceParam{
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)),
		Repo:  repository.NewRepository(db),
	})
}

func rate(v float64) *float64 { return &v }

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  categorydomain.CreateRequest
		want error
	}{
		{"blank name", categorydomain.CreateRequest{Name: "   ", TaxRate: rate(5)}, categorydomain.ErrInvalidName},
		{"missing rate", categorydomain.CreateRequest{Name: "Books"}, categorydomain.ErrInvalidTaxRate},
		{"negative rate", categorydomain.CreateRequest{Name: "Books", TaxRate: rate(-1)}, categorydomain.ErrInvalidTaxRate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateAndList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	groceries, err := svc.Create(ctx, categorydomain.CreateRequest{Name: "  Groceries  ", TaxRate: rate(0)})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", groceries.Name)
	assert.False(t, groceries.Taxable)

	electronics, err := svc.Create(ctx, categorydomain.CreateRequest{Name: "Electronics", TaxRate: rate(18)})
	require.NoError(t, err)
	assert.True(t, electronics.Taxable)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, groceries.ID, list[0].ID)
	assert.Equal(t, electronics.ID, list[1].ID)
}

func TestCreateDuplicateName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, categorydomain.CreateRequest{Name: "Books", TaxRate: rate(5)})
	require.NoError(t, err)

	_, err = svc.Create(ctx, categorydomain.CreateRequest{Name: "Books", TaxRate: rate(10)})
	assert.ErrorIs(t, err, categorydomain.ErrDuplicateName)
}

func TestUpdate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, categorydomain.CreateRequest{Name: "Apparel", TaxRate: rate(12)})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, categorydomain.UpdateRequest{
		ID:      created.ID.String(),
		Name:    "Clothing",
		TaxRate: rate(0),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Clothing", updated.Name)
	assert.Zero(t, updated.TaxRate)
	assert.False(t, updated.Taxable)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Clothing", list[0].Name)
}

func TestUpdateUnknownID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Update(context.Background(), categorydomain.UpdateRequest{
		ID:      "99999",
		Name:    "Ghost",
		TaxRate: rate(1),
	})
	assert.ErrorIs(t, err, categorydomain.ErrNotFound)
}

func TestUpdateMalformedID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Update(context.Background(), categorydomain.UpdateRequest{
		ID:      "abc",
		Name:    "Ghost",
		TaxRate: rate(1),
	})
	assert.ErrorIs(t, err, categorydomain.ErrInvalidID)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, categorydomain.CreateRequest{Name: "Services", TaxRate: rate(5)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID.String()))
	require.NoError(t, svc.Delete(ctx, created.ID.String()))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
