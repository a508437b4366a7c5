package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Guigui98712/glog-quadro/internal/domain/board"
	"github.com/Guigui98712/glog-quadro/internal/domain/card"
	"github.com/Guigui98712/glog-quadro/internal/domain/label"
	"github.com/Guigui98712/glog-quadro/internal/repository"
)

// BoardService defines board operations needed by MCP.
type BoardService interface {
	GetTree(ctx context.Context, boardID string) (*board.Tree, error)
	CreateList(ctx context.Context, boardID, title string) (*board.List, error)
	RenameList(ctx context.Context, listID, title string) error
	DeleteList(ctx context.Context, listID string) error
	CreateCard(ctx context.Context, req board.CreateCardRequest) (*board.Card, error)
	UpdateCard(ctx context.Context, req board.UpdateCardRequest) (*board.Card, error)
	MoveCard(ctx context.Context, cardID, targetListID string) error
	ReorderCards(ctx context.Context, listID string, cardIDs []string) error
	DeleteCard(ctx context.Context, cardID string) error
}

// BoardResolver maps an owner to its board, creating it on first use.
type BoardResolver interface {
	Resolve(ctx context.Context, ownerID string) (*board.Board, error)
}

// CardService defines card detail operations needed by MCP.
type CardService interface {
	GetDetail(ctx context.Context, cardID string) (*card.Detail, error)
	AddChecklist(ctx context.Context, cardID, title string) (*card.Checklist, error)
	DeleteChecklist(ctx context.Context, checklistID string) error
	AddChecklistItem(ctx context.Context, checklistID, title string) (*card.ChecklistItem, error)
	ToggleChecklistItem(ctx context.Context, checklistID, itemID string, checked bool) error
	DeleteChecklistItem(ctx context.Context, itemID string) error
	SetLabel(ctx context.Context, cardID, labelID string) error
	UnsetLabel(ctx context.Context, cardID, labelID string) error
	AddComment(ctx context.Context, cardID, authorID, content string) (*card.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
	AddAttachment(ctx context.Context, req card.AddAttachmentRequest) (*card.Attachment, error)
	DeleteAttachment(ctx context.Context, attachmentID string) error
}

// LabelService defines label catalog operations needed by MCP.
type LabelService interface {
	EnsureDefaults(ctx context.Context) ([]label.Label, error)
	Create(ctx context.Context, title, color string) (*label.Label, error)
	List(ctx context.Context) ([]label.Label, error)
}

// SearchService defines card search operations needed by MCP.
type SearchService interface {
	SearchCards(ctx context.Context, boardID, query string, opts repository.SearchOptions) ([]board.SearchResult, error)
}

// Handler dispatches MCP commands.
type Handler struct {
	boards   BoardService
	resolver BoardResolver
	cards    CardService
	labels   LabelService
	search   SearchService
}

// NewHandler creates a new MCP handler.
func NewHandler(boards BoardService, resolver BoardResolver, cards CardService, labels LabelService, search SearchService) *Handler {
	return &Handler{
		boards:   boards,
		resolver: resolver,
		cards:    cards,
		labels:   labels,
		search:   search,
	}
}

// Handle dispatches MCP requests to domain services. userID is the
// authenticated principal and serves as the default comment author.
func (h *Handler) Handle(ctx context.Context, userID, method string, params json.RawMessage) (any, error) {
	switch method {
	case "get_board":
		var req GetBoardParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		boardID := req.BoardID
		if boardID == "" {
			b, err := h.resolver.Resolve(ctx, req.OwnerID)
			if err != nil {
				return nil, mapError(err)
			}
			boardID = b.ID
		}
		tree, err := h.boards.GetTree(ctx, boardID)
		if err != nil {
			return nil, mapError(err)
		}
		return tree, nil

	case "create_list":
		var req CreateListParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		l, err := h.boards.CreateList(ctx, req.BoardID, req.Title)
		if err != nil {
			return nil, mapError(err)
		}
		return l, nil

	case "rename_list":
		var req RenameListParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.boards.RenameList(ctx, req.ListID, req.Title); err != nil {
			return nil, mapError(err)
		}
		return okResponse(), nil

	case "delete_list":
		var req DeleteListParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.boards.DeleteList(ctx, req.ListID); err != nil {
			return nil, mapError(err)
		}
		return okResponse(), nil

	case "create_card":
		var req CreateCardParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		due, err := parseDueDate(req.DueDate)
		if err != nil {
			return nil, err
		}
		c, err := h.boards.CreateCard(ctx, board.CreateCardRequest{
			ListID:      req.ListID,
			Title:       req.Title,
			Description: req.Description,
			DueDate:     due,
			LabelTitles: req.Labels,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return c, nil

	case "get_card":
		var req GetCardParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		detail, err := h.cards.GetDetail(ctx, req.CardID)
		if err != nil {
			return nil, mapError(err)
		}
		return detail, nil

	case "update_card":
		var req UpdateCardParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		due, err := parseDueDate(req.DueDate)
		if err != nil {
			return nil, err
		}
		c, err := h.boards.UpdateCard(ctx, board.UpdateCardRequest{
			ID:           req.CardID,
			Title:        req.Title,
			Description:  req.Description,
			DueDate:      due,
			ClearDueDate: req.ClearDueDate,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return c, nil

	case "move_card":
		var req MoveCardParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.boards.MoveCard(ctx, req.CardID, req.TargetListID); err != nil {
			return nil, mapError(err)
		}
		return okResponse(), nil

	case "reorder_cards":
		var req ReorderCardsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.boards.ReorderCards(ctx, req.ListID, req.CardIDs); err != nil {
			return nil, mapError(err)
		}
		return okResponse(), nil

	case "delete_card":
		var req DeleteCardParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.boards.DeleteCard(ctx, req.CardID); err != nil {
			return nil, mapError(err)
		}
		return okResponse(), nil

	case "search_cards":
		var req SearchCardsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		results, err := h.search.SearchCards(ctx, req.BoardID, req.Query, repository.SearchOptions{
			Limit:  req.Limit,
			Offset: req.Offset,
		})
		if err != nil {
			return nil, mapError(err)
		}
		if results == nil {
			results = []board.SearchResult{}
		}
		return results, nil

	case "add_checklist":
		var req AddChecklistParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		cl, err := h.cards.AddChecklist(ctx, req.CardID, req.Title)
		if err != nil {
			return nil, mapError(err)
		}
		return cl, nil

	case "delete_checklist":
		var req DeleteChecklistParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.cards.DeleteChecklist(ctx, req.ChecklistID); err != nil {
			return nil, mapError(err)
		}
		return okResponse(), nil

	case "add_checklist_item":
		var req AddChecklistItemParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		item, err := h.cards.AddChecklistItem(ctx, req.ChecklistID, req.Title)
		if err != nil {
			return nil, mapError(err)
		}
		return item, nil

	case "toggle_checklist_item":
		var req ToggleChecklistItemParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.cards.ToggleChecklistItem(ctx, req.ChecklistID, req.ItemID, req.Checked); err != nil {
			return nil, mapError(err)
		}
		return okResponse(), nil

	case "delete_checklist_item":
		var req DeleteChecklistItemParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.cards.DeleteChecklistItem(ctx, req.ItemID); err != nil {
			return nil, mapError(err)
		}
		return okResponse(), nil

	case "list_labels":
		labels, err := h.labels.List(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		if labels == nil {
			labels = []label.Label{}
		}
		return labels, nil

	case "create_label":
		var req CreateLabelParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		lbl, err := h.labels.Create(ctx, req.Title, req.Color)
		if err != nil {
			return nil, mapError(err)
		}
		return lbl, nil

	case "set_label":
		var req CardLabelParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.cards.SetLabel(ctx, req.CardID, req.LabelID); err != nil {
			return nil, mapError(err)
		}
		return okResponse(), nil

	case "unset_label":
		var req CardLabelParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.cards.UnsetLabel(ctx, req.CardID, req.LabelID); err != nil {
			return nil, mapError(err)
		}
		return okResponse(), nil

	case "add_comment":
		var req AddCommentParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		authorID := req.AuthorID
		if authorID == "" {
			authorID = userID
		}
		c, err := h.cards.AddComment(ctx, req.CardID, authorID, req.Content)
		if err != nil {
			return nil, mapError(err)
		}
		return c, nil

	case "delete_comment":
		var req DeleteCommentParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.cards.DeleteComment(ctx, req.CommentID); err != nil {
			return nil, mapError(err)
		}
		return okResponse(), nil

	case "add_attachment":
		var req AddAttachmentParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		content, err := decodeContent(req.Content)
		if err != nil {
			return nil, err
		}
		a, err := h.cards.AddAttachment(ctx, card.AddAttachmentRequest{
			CardID:   req.CardID,
			FileName: req.FileName,
			FileType: req.FileType,
			Content:  content,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return a, nil

	case "delete_attachment":
		var req DeleteAttachmentParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.cards.DeleteAttachment(ctx, req.AttachmentID); err != nil {
			return nil, mapError(err)
		}
		return okResponse(), nil

	default:
		return nil, fmt.Errorf("unknown method: %s", method)
	}
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	return json.Unmarshal(params, out)
}

func parseDueDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid due_date %q: %w", raw, err)
	}
	return &t, nil
}

func okResponse() StatusResponse {
	return StatusResponse{Status: "ok"}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
