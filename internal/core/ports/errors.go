package ports

import "errors"

var (
	// ErrStaleWrite is returned by conditional writes whose guard no longer
	// matches the stored row, e.g. a status that changed since it was read.
	ErrStaleWrite = errors.New("stale write")

	// ErrDuplicateKey is returned when a write violates a uniqueness constraint.
	ErrDuplicateKey = errors.New("duplicate key")
)
