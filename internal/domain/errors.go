// Package domain holds the error taxonomy shared by every stage of the
// transcript-to-metadata pipeline.
package domain

import "errors"

var (
	// ErrNotFound signals a missing transcript or summary record.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput signals empty or malformed text passed to a stage.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreUnavailable signals a persistence connectivity failure.
	ErrStoreUnavailable = errors.New("store unavailable")
)
