package mcp

import (
	"errors"
	"fmt"

	"github.com/Guigui98712/glog-quadro/internal/domain/board"
	"github.com/Guigui98712/glog-quadro/internal/domain/card"
	"github.com/Guigui98712/glog-quadro/internal/domain/label"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Returns nil for
// errors without a dedicated code.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, board.ErrBoardNotFound):
		return &APIError{Code: "BOARD_NOT_FOUND", Message: "board not found", RecoveryHint: "Call get_board with an owner_id to resolve the board"}
	case errors.Is(err, board.ErrListNotFound):
		return &APIError{Code: "LIST_NOT_FOUND", Message: "list not found", RecoveryHint: "Check the list ID against get_board"}
	case errors.Is(err, board.ErrOwnerNotFound):
		return &APIError{Code: "OWNER_NOT_FOUND", Message: "owner not found", RecoveryHint: "Check the owner ID"}
	case errors.Is(err, board.ErrCardNotInList):
		return &APIError{Code: "CARD_NOT_IN_LIST", Message: "card ids do not match the list contents", RecoveryHint: "Pass every card of the list exactly once"}
	case errors.Is(err, board.ErrCardNotFound), errors.Is(err, card.ErrCardNotFound):
		return &APIError{Code: "CARD_NOT_FOUND", Message: "card not found", RecoveryHint: "Check the card ID against get_board"}
	case errors.Is(err, card.ErrChecklistNotFound):
		return &APIError{Code: "CHECKLIST_NOT_FOUND", Message: "checklist not found", RecoveryHint: "Check the checklist ID against get_card"}
	case errors.Is(err, card.ErrItemNotFound):
		return &APIError{Code: "ITEM_NOT_FOUND", Message: "checklist item not found", RecoveryHint: "Check the item ID and its checklist against get_card"}
	case errors.Is(err, card.ErrCommentNotFound):
		return &APIError{Code: "COMMENT_NOT_FOUND", Message: "comment not found"}
	case errors.Is(err, card.ErrAttachmentNotFound):
		return &APIError{Code: "ATTACHMENT_NOT_FOUND", Message: "attachment not found"}
	case errors.Is(err, label.ErrLabelNotFound):
		return &APIError{Code: "LABEL_NOT_FOUND", Message: "label not found", RecoveryHint: "Call list_labels for the catalog"}
	case errors.Is(err, label.ErrDuplicateTitle):
		return &APIError{Code: "DUPLICATE_LABEL", Message: "a label with this title already exists", RecoveryHint: "Reuse the existing label"}
	case errors.Is(err, board.ErrInvalidInput), errors.Is(err, card.ErrInvalidInput), errors.Is(err, label.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	default:
		return nil
	}
}
