package mcp

import (
	"encoding/base64"
	"fmt"
)

// StatusResponse is the result of operations with no payload.
type StatusResponse struct {
	Status string `json:"status"`
}

type GetBoardParams struct {
	OwnerID string `json:"owner_id"`
	BoardID string `json:"board_id,omitempty"`
}

type CreateListParams struct {
	BoardID string `json:"board_id"`
	Title   string `json:"title"`
}

type RenameListParams struct {
	ListID string `json:"list_id"`
	Title  string `json:"title"`
}

type DeleteListParams struct {
	ListID string `json:"list_id"`
}

type CreateCardParams struct {
	ListID      string   `json:"list_id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	DueDate     string   `json:"due_date,omitempty"`
	Labels      []string `json:"labels,omitempty"`
}

type GetCardParams struct {
	CardID string `json:"card_id"`
}

type UpdateCardParams struct {
	CardID       string  `json:"card_id"`
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	DueDate      string  `json:"due_date,omitempty"`
	ClearDueDate bool    `json:"clear_due_date,omitempty"`
}

type MoveCardParams struct {
	CardID       string `json:"card_id"`
	TargetListID string `json:"target_list_id"`
}

type ReorderCardsParams struct {
	ListID  string   `json:"list_id"`
	CardIDs []string `json:"card_ids"`
}

type DeleteCardParams struct {
	CardID string `json:"card_id"`
}

type SearchCardsParams struct {
	BoardID string `json:"board_id"`
	Query   string `json:"query"`
	Limit   int    `json:"limit,omitempty"`
	Offset  int    `json:"offset,omitempty"`
}

type AddChecklistParams struct {
	CardID string `json:"card_id"`
	Title  string `json:"title"`
}

type DeleteChecklistParams struct {
	ChecklistID string `json:"checklist_id"`
}

type AddChecklistItemParams struct {
	ChecklistID string `json:"checklist_id"`
	Title       string `json:"title"`
}

type ToggleChecklistItemParams struct {
	ChecklistID string `json:"checklist_id"`
	ItemID      string `json:"item_id"`
	Checked     bool   `json:"checked"`
}

type DeleteChecklistItemParams struct {
	ItemID string `json:"item_id"`
}

type CreateLabelParams struct {
	Title string `json:"title"`
	Color string `json:"color"`
}

type CardLabelParams struct {
	CardID  string `json:"card_id"`
	LabelID string `json:"label_id"`
}

type AddCommentParams struct {
	CardID   string `json:"card_id"`
	AuthorID string `json:"author_id,omitempty"`
	Content  string `json:"content"`
}

type DeleteCommentParams struct {
	CommentID string `json:"comment_id"`
}

type AddAttachmentParams struct {
	CardID   string `json:"card_id"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type,omitempty"`
	// Content is the base64-encoded file body.
	Content string `json:"content"`
}

type DeleteAttachmentParams struct {
	AttachmentID string `json:"attachment_id"`
}

func decodeContent(raw string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid attachment content: %w", err)
	}
	return data, nil
}
