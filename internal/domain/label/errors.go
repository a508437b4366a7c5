package label

import "errors"

var (
	// ErrLabelNotFound indicates the label doesn't exist.
	ErrLabelNotFound = errors.New("label not found")
	// ErrDuplicateTitle indicates a label with the same title already exists.
	ErrDuplicateTitle = errors.New("label title already exists")
	// ErrInvalidInput indicates invalid label input.
	ErrInvalidInput = errors.New("invalid label input")
)
