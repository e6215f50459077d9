package domain

import "errors"

var (
	ErrInvalidItemName = errors.New("invalid_item_name")
	ErrInvalidQuantity = errors.New("invalid_quantity")
	ErrInvalidPrice    = errors.New("invalid_price")
	ErrInvalidCategory = errors.New("invalid_category")
	ErrEmptyInvoice    = errors.New("empty_invoice")
)
