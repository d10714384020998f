package models

import "errors"

// Sentinel errors shared across storage and the HTTP boundary. Handlers map
// these to status codes; anything else is treated as an internal fault and
// only a generic message leaves the process.
var (
	// ErrValidation marks a create payload with a missing or malformed
	// required field. 400 at the boundary.
	ErrValidation = errors.New("validation error")

	// ErrInvalidQuery marks a search with no from/to text. 400 at the boundary.
	ErrInvalidQuery = errors.New("from and to locations are required")

	// ErrStoreUnavailable means the backing persistence cannot be reached.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrSearchFailed wraps a query execution fault inside the store.
	ErrSearchFailed = errors.New("search failed")
)
