package repository

import "errors"

var (
	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a uniqueness rule.
	ErrDuplicate = errors.New("duplicate record")
)
