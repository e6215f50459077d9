package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tillworks/posledger/internal/clock"
	invoicedomain "github.com/tillworks/posledger/internal/invoice/domain"
	saleslogdomain "github.com/tillworks/posledger/internal/saleslog/domain"
	"github.com/tillworks/posledger/internal/saleslog/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T, fake *clock.FakeClock) saleslogdomain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&saleslogdomain.SaleRecord{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return NewService(ServiceParam{
		Log:   zap.NewNop(),
		GenID: node,
		Clock: fake,
		Repo:  repository.NewRepository(db),
	})
}

func sampleItems() []invoicedomain.LineItem {
	acc := invoicedomain.NewAccumulator()
	_, _ = acc.AddItem(invoicedomain.AddItemInput{Name: "Coffee", CategoryName: "Groceries", Qty: 2, Price: 3.5, TaxRate: 5})
	_, _ = acc.AddItem(invoicedomain.AddItemInput{Name: "Notebook", Qty: 1, Price: 2.25})
	return acc.Items()
}

func TestAppendReplayRoundTrip(t *testing.T) {
	fake := clock.NewFakeClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	svc := newTestService(t, fake)

	items := sampleItems()
	record, err := svc.Append(context.Background(), items)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, fake.Now(), record.CreatedAt)

	replayed, err := svc.Replay(*record)
	require.NoError(t, err)
	assert.Equal(t, items, replayed)
}

func TestAppendRejectsEmptySequence(t *testing.T) {
	fake := clock.NewFakeClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	svc := newTestService(t, fake)

	_, err := svc.Append(context.Background(), nil)
	assert.ErrorIs(t, err, saleslogdomain.ErrNothingToLog)
}

func TestListOrdersByCreatedAtDescending(t *testing.T) {
	fake := clock.NewFakeClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	svc := newTestService(t, fake)

	first, err := svc.Append(context.Background(), sampleItems())
	require.NoError(t, err)

	fake.Advance(time.Minute)
	second, err := svc.Append(context.Background(), sampleItems())
	require.NoError(t, err)

	fake.Advance(time.Minute)
	third, err := svc.Append(context.Background(), sampleItems())
	require.NoError(t, err)

	records, err := svc.List(context.Background(), saleslogdomain.ListQuery{})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, third.ID, records[0].ID)
	assert.Equal(t, second.ID, records[1].ID)
	assert.Equal(t, first.ID, records[2].ID)
}

func TestListQueryNarrowing(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	fake := clock.NewFakeClock(start)
	svc := newTestService(t, fake)

	first, err := svc.Append(context.Background(), sampleItems())
	require.NoError(t, err)

	fake.Advance(time.Minute)
	second, err := svc.Append(context.Background(), sampleItems())
	require.NoError(t, err)

	fake.Advance(time.Minute)
	third, err := svc.Append(context.Background(), sampleItems())
	require.NoError(t, err)

	limited, err := svc.List(context.Background(), saleslogdomain.ListQuery{Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, third.ID, limited[0].ID)
	assert.Equal(t, second.ID, limited[1].ID)

	ascending, err := svc.List(context.Background(), saleslogdomain.ListQuery{OrderBy: "asc"})
	require.NoError(t, err)
	require.Len(t, ascending, 3)
	assert.Equal(t, first.ID, ascending[0].ID)

	recent, err := svc.List(context.Background(), saleslogdomain.ListQuery{
		CreatedAfter: start.Add(30 * time.Second),
	})
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, third.ID, recent[0].ID)
	assert.Equal(t, second.ID, recent[1].ID)
}

func TestReplayCorruptRecord(t *testing.T) {
	fake := clock.NewFakeClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	svc := newTestService(t, fake)

	_, err := svc.Replay(saleslogdomain.SaleRecord{Dump: []byte("{not json")})
	assert.ErrorIs(t, err, saleslogdomain.ErrCorruptRecord)

	_, err = svc.Replay(saleslogdomain.SaleRecord{Dump: []byte("[]")})
	assert.ErrorIs(t, err, saleslogdomain.ErrCorruptRecord)
}

func TestGetUnknownRecord(t *testing.T) {
	fake := clock.NewFakeClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	svc := newTestService(t, fake)

	_, err := svc.Get(context.Background(), "12345")
	assert.ErrorIs(t, err, saleslogdomain.ErrNotFound)

	_, err = svc.Get(context.Background(), "not-a-number")
	assert.ErrorIs(t, err, saleslogdomain.ErrInvalidID)
}
