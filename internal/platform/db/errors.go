package db

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks a transient backing-store failure. Callers decide
// retry policy; the repositories never retry internally.
var ErrUnavailable = errors.New("storage unavailable")

// WrapErr tags a driver error as a storage failure while keeping the
// original error in the chain.
func WrapErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}
