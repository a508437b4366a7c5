package board

import (
	"context"

	"github.com/Guigui98712/glog-quadro/internal/domain/label"
)

// BoardRepository provides persistence for boards.
type BoardRepository interface {
	Create(ctx context.Context, b *Board) error
	Get(ctx context.Context, id string) (*Board, error)
	GetByOwner(ctx context.Context, ownerID string) (*Board, error)
}

// ListRepository provides persistence for lists.
type ListRepository interface {
	Create(ctx context.Context, l *List) error
	Get(ctx context.Context, id string) (*List, error)
	Rename(ctx context.Context, id, title string) error
	Delete(ctx context.Context, id string) error
	ListByBoard(ctx context.Context, boardID string) ([]List, error)
}

// CardRepository provides persistence for cards.
type CardRepository interface {
	Create(ctx context.Context, c *Card) error
	Get(ctx context.Context, id string) (*Card, error)
	Update(ctx context.Context, c *Card) error
	ListByList(ctx context.Context, listID string) ([]Card, error)
	Move(ctx context.Context, cardID, targetListID string, position int64) error
	UpdatePositions(ctx context.Context, listID string, cardIDs []string, positions []int64) error
}

// CardLabelRepository attaches catalog labels to cards.
type CardLabelRepository interface {
	Add(ctx context.Context, cardID, labelID string) error
}

// OwnerRepository is the owner-record collaborator: it stores the board
// reference on the construction project row.
type OwnerRepository interface {
	GetBoardRef(ctx context.Context, ownerID string) (string, error)
	SetBoardRef(ctx context.Context, ownerID, boardID string) error
}

// LabelFinder resolves label titles against the global catalog.
type LabelFinder interface {
	FindByTitle(ctx context.Context, title string) (*label.Label, error)
}

// CardCascade deletes a card together with all its sub-entities. It is
// implemented by the card detail service; the board service invokes it so
// list deletion cascades through full card deletion.
type CardCascade interface {
	DeleteCard(ctx context.Context, cardID string) error
}
