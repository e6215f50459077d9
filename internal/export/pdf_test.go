package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	configpkg "github.com/tillworks/posledger/internal/config"
	invoicedomain "github.com/tillworks/posledger/internal/invoice/domain"
	"go.uber.org/zap"
)

func TestExportWritesDocument(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewService(configpkg.Config{ExportDir: dir}, zap.NewNop())
	require.NoError(t, err)

	acc := invoicedomain.NewAccumulator()
	_, err = acc.AddItem(invoicedomain.AddItemInput{Name: "Coffee", CategoryName: "Groceries", Qty: 2, Price: 3.5, TaxRate: 5})
	require.NoError(t, err)
	_, err = acc.AddItem(invoicedomain.AddItemInput{Name: "Notebook", Qty: 1, Price: 2.25})
	require.NoError(t, err)

	path, err := svc.Export(context.Background(), Request{
		Title:     "Invoice",
		DateLabel: "Date: 2025-03-01 10:00:00",
		Filename:  "invoice_1740823200000",
		Items:     acc.Items(),
		Aggregate: acc.Aggregate(),
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "invoice_1740823200000.pdf"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.True(t, len(raw) > 4 && string(raw[:4]) == "%PDF")
}

func TestCategoryOrPlaceholder(t *testing.T) {
	named := invoicedomain.LineItem{CategoryName: "Groceries"}
	bare := invoicedomain.LineItem{}

	assert.Equal(t, "Groceries", categoryOrPlaceholder(named, "(none)"))
	assert.Equal(t, "(none)", categoryOrPlaceholder(bare, "(none)"))
	assert.Equal(t, "-", categoryOrPlaceholder(bare, ""))
}

func TestExportCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	_, err := NewService(configpkg.Config{ExportDir: dir}, zap.NewNop())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
