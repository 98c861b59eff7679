package repository

import "errors"

var (
	// ErrNotFound indicates the requested row does not exist for the caller.
	// Ownership-scoped lookups return it for foreign rows as well, so callers
	// cannot tell absence and cross-tenant access apart.
	ErrNotFound = errors.New("record not found")
	// ErrConflict indicates a unique constraint violation.
	ErrConflict = errors.New("record already exists")
)
