package repositories

import "errors"

var (
	// ErrNotFound is returned when no document matches the given key.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateID is returned when an insert collides on _id.
	ErrDuplicateID = errors.New("duplicate id")
)
