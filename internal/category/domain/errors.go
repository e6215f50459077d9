package domain

import "errors"

var (
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidTaxRate = errors.New("invalid_tax_rate")
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("not_found")
	ErrDuplicateName  = errors.New("duplicate_name")
)
