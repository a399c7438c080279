package errors

import "errors"

// ErrDuplicateKey is the store-agnostic duplicate-key signal. Repository
// adapters map their driver's uniqueness violation to this sentinel so the
// catch-and-refetch reconciliation is an explicit branch in the usecases
// rather than a driver-specific catch.
var ErrDuplicateKey = errors.New("duplicate key violates unique constraint")

// IsDuplicateKey reports whether err carries the duplicate-key sentinel.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}
