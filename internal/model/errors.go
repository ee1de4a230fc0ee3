package model

import "errors"

// Validation errors reported for malformed routine entries.
var (
	ErrEmptyTask     = errors.New("task must not be empty")
	ErrInvalidRating = errors.New("rating outside configured scale")
	ErrInvalidDay    = errors.New("unknown weekday")
)
