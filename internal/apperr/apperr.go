// Package apperr holds the error taxonomy shared by the store, service
// and handler layers.
package apperr

import "errors"

var (
	// ErrNotFound is the only error the entity stores raise.
	ErrNotFound = errors.New("not found")

	// ErrNotImplemented marks reserved operations (delete) that must
	// surface 501 rather than succeed or 404.
	ErrNotImplemented = errors.New("not implemented")

	// ErrIdempotencyConflict is returned when a request replays an
	// Idempotent-Key that was already accepted.
	ErrIdempotencyConflict = errors.New("idempotent key already exists")
)
