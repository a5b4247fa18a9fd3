package catalog

import "errors"

var (
	// ErrNotFound indicates no city has the requested id.
	// Callers render a "not found" view; it is never fatal.
	ErrNotFound = errors.New("city not found")

	// ErrDuplicateID indicates two records share an id.
	ErrDuplicateID = errors.New("duplicate city id")

	// ErrEmptyID indicates a record without an id.
	ErrEmptyID = errors.New("empty city id")
)
