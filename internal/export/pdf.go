package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	configpkg "github.com/tillworks/posledger/internal/config"
	invoicedomain "github.com/tillworks/posledger/internal/invoice/domain"
	"go.uber.org/zap"
)

type pdfExporter struct {
	log *zap.Logger
	dir string
}

// NewService builds the maroto-backed exporter writing under cfg.ExportDir.
func NewService(cfg configpkg.Config, log *zap.Logger) (Service, error) {
	if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create export dir: %v", ErrExport, err)
	}
	return &pdfExporter{
		log: log.Named("export.service"),
		dir: cfg.ExportDir,
	}, nil
}

func (e *pdfExporter) Export(ctx context.Context, req Request) (string, error) {
	_ = ctx // maroto renders in-memory; nothing to cancel

	raw, err := e.render(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExport, err)
	}

	path := filepath.Join(e.dir, req.Filename+".pdf")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("%w: save document: %v", ErrExport, err)
	}

	e.log.Info("document exported",
		zap.String("path", path),
		zap.Int("items", len(req.Items)),
	)
	return path, nil
}

func (e *pdfExporter) render(req Request) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(10,
		text.NewCol(12, req.Title, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)
	if req.SaleLabel != "" {
		m.AddRow(6,
			text.NewCol(12, req.SaleLabel, props.Text{Size: 10}),
		)
	}
	m.AddRow(8,
		text.NewCol(12, req.DateLabel, props.Text{Size: 10}),
	)

	// Table header
	m.AddRow(8,
		text.NewCol(1, "SN", headerProps(align.Left)),
		text.NewCol(2, "Item Name", headerProps(align.Left)),
		text.NewCol(2, "Category", headerProps(align.Left)),
		text.NewCol(1, "Qty", headerProps(align.Right)),
		text.NewCol(1, "Price", headerProps(align.Right)),
		text.NewCol(1, "Tax %", headerProps(align.Right)),
		text.NewCol(2, "Total Before Tax", headerProps(align.Right)),
		text.NewCol(1, "Tax Amount", headerProps(align.Right)),
		text.NewCol(1, "Total After Tax", headerProps(align.Right)),
	)

	for _, item := range req.Items {
		m.AddRow(7,
			text.NewCol(1, strconv.Itoa(item.SN), cellProps(align.Left)),
			text.NewCol(2, item.Name, cellProps(align.Left)),
			text.NewCol(2, categoryOrPlaceholder(item, req.EmptyCategory), cellProps(align.Left)),
			text.NewCol(1, formatNumber(item.Qty), cellProps(align.Right)),
			text.NewCol(1, formatMoney(item.Price), cellProps(align.Right)),
			text.NewCol(1, formatNumber(item.TaxRate), cellProps(align.Right)),
			text.NewCol(2, formatMoney(item.TotalBeforeTax), cellProps(align.Right)),
			text.NewCol(1, formatMoney(item.TaxAmount), cellProps(align.Right)),
			text.NewCol(1, formatMoney(item.TotalAfterTax), cellProps(align.Right)),
		)
	}

	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Subtotal", cellProps(align.Right)),
		text.NewCol(2, formatMoney(req.Aggregate.Subtotal), cellProps(align.Right)),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Total Tax", cellProps(align.Right)),
		text.NewCol(2, formatMoney(req.Aggregate.TotalTax), cellProps(align.Right)),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Total", headerProps(align.Right)),
		text.NewCol(2, formatMoney(req.Aggregate.GrandTotal), headerProps(align.Right)),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func headerProps(a align.Type) props.Text {
	return props.Text{Style: fontstyle.Bold, Size: 9, Align: a}
}

func cellProps(a align.Type) props.Text {
	return props.Text{Size: 9, Align: a}
}

func categoryOrPlaceholder(item invoicedomain.LineItem, placeholder string) string {
	if item.CategoryName == "" {
		if placeholder == "" {
			return "-"
		}
		return placeholder
	}
	return item.CategoryName
}

// formatMoney rounds to two decimals; this is the only place monetary values
// lose precision.
func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
