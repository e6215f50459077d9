package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tillworks/posledger/internal/export"
	invoicedomain "github.com/tillworks/posledger/internal/invoice/domain"
	saleslogdomain "github.com/tillworks/posledger/internal/saleslog/domain"
)

type saleSummary struct {
	ID        string                   `json:"id"`
	CreatedAt time.Time                `json:"created_at"`
	Items     []invoicedomain.LineItem `json:"items"`
	Aggregate invoicedomain.Aggregate  `json:"aggregate"`
}

// ListSales replays every record to attach derived aggregates. A record that
// fails to decode is skipped; the rest of the history still renders.
// Supported query params: limit (positive int), order (asc/desc),
// since (RFC 3339 lower bound on created_at).
func (s *Server) ListSales(c *gin.Context) {
	query, err := parseSalesQuery(c)
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	records, err := s.salesSvc.List(c.Request.Context(), query)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	summaries := make([]saleSummary, 0, len(records))
	skipped := 0
	for _, record := range records {
		items, err := s.salesSvc.Replay(record)
		if err != nil {
			skipped++
			continue
		}
		summaries = append(summaries, saleSummary{
			ID:        record.ID.String(),
			CreatedAt: record.CreatedAt,
			Items:     items,
			Aggregate: invoicedomain.AggregateOf(items),
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": summaries, "skipped": skipped})
}

func parseSalesQuery(c *gin.Context) (saleslogdomain.ListQuery, error) {
	var query saleslogdomain.ListQuery

	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return query, ErrInvalidRequest
		}
		query.Limit = limit
	}

	switch order := strings.ToLower(strings.TrimSpace(c.Query("order"))); order {
	case "", "asc", "desc":
		query.OrderBy = order
	default:
		return query, ErrInvalidRequest
	}

	if raw := strings.TrimSpace(c.Query("since")); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return query, ErrInvalidRequest
		}
		query.CreatedAfter = since
	}

	return query, nil
}

func (s *Server) ExportSale(c *gin.Context) {
	record, err := s.salesSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	items, err := s.salesSvc.Replay(*record)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	layout := s.layout.Get()
	path, err := s.exporter.Export(c.Request.Context(), export.Request{
		Title:         layout.Title,
		SaleLabel:     "Sale ID: " + record.ID.String(),
		DateLabel:     "Date: " + record.CreatedAt.Format(layout.DateFormat),
		Filename:      fmt.Sprintf("%s_%s", layout.FilenameStem, record.ID.String()),
		EmptyCategory: layout.EmptyCategory,
		Items:         items,
		Aggregate:     invoicedomain.AggregateOf(items),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"document_path": path}})
}
