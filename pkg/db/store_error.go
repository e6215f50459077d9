package db

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable classifies transport-level store failures. User input
// problems never wrap it; callers surface it as a retryable condition.
var ErrStoreUnavailable = errors.New("store_unavailable")

// StoreUnavailable wraps err so errors.Is(err, ErrStoreUnavailable) holds.
func StoreUnavailable(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
