package domain

import "context"

type Service interface {
	List(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, req CreateRequest) (*Category, error)
	Update(ctx context.Context, req UpdateRequest) (*Category, error)
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	Name    string   `json:"category_name"`
	TaxRate *float64 `json:"tax_rate"`
}

type UpdateRequest struct {
	ID      string   `json:"id"`
	Name    string   `json:"category_name"`
	TaxRate *float64 `json:"tax_rate"`
}
