package core

import "errors"

// Common errors.
//
// Every error here is recovered at the boundary where it occurs; none of
// them should crash the application.
var (
	// ErrValidation signals a required text field was empty at save time.
	ErrValidation = errors.New("required field is empty")

	// ErrNotFound signals a mutation targeted an id that is not in the
	// collection (e.g. a stale reference).
	ErrNotFound = errors.New("record not found")

	// ErrMalformed signals an import payload that is not valid JSON.
	ErrMalformed = errors.New("import data is not valid JSON")

	// ErrNotAnArray signals an import payload whose top-level value is not
	// a JSON array.
	ErrNotAnArray = errors.New("import data is not a JSON array")
)
