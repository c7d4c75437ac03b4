package types

import "errors"

// Candidate validation errors. Add rejects a candidate with one of these
// before anything reaches the collection.
var (
	ErrMissingField  = errors.New("name, description, and price are required")
	ErrInvalidPrice  = errors.New("price must be greater than zero")
	ErrInvalidCourse = errors.New("invalid course")
)

// Store lifecycle and lookup errors.
var (
	ErrNotFound    = errors.New("menu item not found")
	ErrInvalidID   = errors.New("invalid menu item ID")
	ErrStoreClosed = errors.New("store is closed")
	ErrAlreadyOpen = errors.New("store is already open")
)
