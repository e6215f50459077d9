package option

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// QueryOption mutates a gorm statement before execution.
type QueryOption interface {
	Apply(*gorm.DB) *gorm.DB
}

type optionFunc func(*gorm.DB) *gorm.DB

func (f optionFunc) Apply(stmt *gorm.DB) *gorm.DB { return f(stmt) }

// Operator is a SQL comparison operator usable in a Condition.
type Operator string

const (
	EQ  Operator = "="
	GT  Operator = ">"
	GTE Operator = ">="
	LT  Operator = "<"
	LTE Operator = "<="
)

// Condition expresses a single field comparison.
type Condition struct {
	Field    string
	Operator Operator
	Value    any
}

// ApplyOperator adds a comparison condition to the statement.
func ApplyOperator(cond Condition) QueryOption {
	return optionFunc(func(stmt *gorm.DB) *gorm.DB {
		return stmt.Where(fmt.Sprintf("%s %s ?", cond.Field, cond.Operator), cond.Value)
	})
}

// QuerySortBy describes a sort request restricted to allowed columns.
type QuerySortBy struct {
	SortBy  string
	OrderBy string
	Allow   map[string]bool
}

// WithQuerySortBy builds a QuerySortBy from raw request values.
func WithQuerySortBy(sortBy, orderBy string, allow map[string]bool) QuerySortBy {
	return QuerySortBy{SortBy: sortBy, OrderBy: orderBy, Allow: allow}
}

// WithSortBy orders the statement by an allowed column, descending by default.
func WithSortBy(sort QuerySortBy) QueryOption {
	return optionFunc(func(stmt *gorm.DB) *gorm.DB {
		column := strings.TrimSpace(sort.SortBy)
		if column == "" || !sort.Allow[column] {
			return stmt
		}
		direction := "DESC"
		if strings.EqualFold(strings.TrimSpace(sort.OrderBy), "asc") {
			direction = "ASC"
		}
		return stmt.Order(column + " " + direction)
	})
}

// WithLimit caps the number of returned rows.
func WithLimit(limit int) QueryOption {
	return optionFunc(func(stmt *gorm.DB) *gorm.DB {
		if limit <= 0 {
			return stmt
		}
		return stmt.Limit(limit)
	})
}
