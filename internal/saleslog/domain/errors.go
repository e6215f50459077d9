package domain

import "errors"

var (
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
	ErrCorruptRecord = errors.New("corrupt_record")
	ErrNothingToLog  = errors.New("nothing_to_log")
)
