// Package repository carries the persistence sentinel errors and query
// options shared by the domain services and the SQLite implementations.
// The repository interfaces themselves live with their consumers in the
// domain packages.
package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint (label title, board owner, card/label pair)
	ErrDuplicate = errors.New("duplicate")

	// ErrForeignKeyViolation is returned when a foreign key constraint fails
	ErrForeignKeyViolation = errors.New("foreign key violation")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
