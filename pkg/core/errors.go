package core

import "errors"

// Common errors.
var (
	// ErrMissingID marks a persisted record without an id field.
	ErrMissingID = errors.New("note record has no id")

	// ErrDuplicateID marks a persisted collection that violates the
	// id-uniqueness invariant.
	ErrDuplicateID = errors.New("duplicate note id")
)
