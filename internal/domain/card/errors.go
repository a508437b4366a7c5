package card

import "errors"

var (
	// ErrCardNotFound indicates the card doesn't exist.
	ErrCardNotFound = errors.New("card not found")
	// ErrChecklistNotFound indicates the checklist doesn't exist.
	ErrChecklistNotFound = errors.New("checklist not found")
	// ErrItemNotFound indicates the checklist item doesn't exist, or does
	// not belong to the checklist named in the request.
	ErrItemNotFound = errors.New("checklist item not found")
	// ErrCommentNotFound indicates the comment doesn't exist.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrAttachmentNotFound indicates the attachment doesn't exist.
	ErrAttachmentNotFound = errors.New("attachment not found")
	// ErrInvalidInput indicates invalid card detail input.
	ErrInvalidInput = errors.New("invalid card detail input")
)
