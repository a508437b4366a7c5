package board

import "errors"

var (
	// ErrBoardNotFound indicates the board doesn't exist.
	ErrBoardNotFound = errors.New("board not found")
	// ErrListNotFound indicates the list doesn't exist.
	ErrListNotFound = errors.New("list not found")
	// ErrCardNotFound indicates the card doesn't exist.
	ErrCardNotFound = errors.New("card not found")
	// ErrOwnerNotFound indicates the owning construction project doesn't exist.
	ErrOwnerNotFound = errors.New("owner not found")
	// ErrInvalidInput indicates invalid board input.
	ErrInvalidInput = errors.New("invalid board input")
	// ErrCardNotInList indicates a reorder referenced a card that is not a
	// member of the list being reordered.
	ErrCardNotInList = errors.New("card not in list")
)
