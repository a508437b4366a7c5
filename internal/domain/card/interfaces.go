package card

import (
	"context"

	"github.com/Guigui98712/glog-quadro/internal/domain/board"
	"github.com/Guigui98712/glog-quadro/internal/domain/label"
)

// CardReader reads and deletes card rows. Structural card mutations live in
// the board service; this package only needs existence checks, the detail
// read, and the final row delete at the end of the cascade.
type CardReader interface {
	Get(ctx context.Context, id string) (*board.Card, error)
	Delete(ctx context.Context, id string) error
}

// ChecklistRepository provides persistence for checklists.
type ChecklistRepository interface {
	Create(ctx context.Context, cl *Checklist) error
	Get(ctx context.Context, id string) (*Checklist, error)
	Delete(ctx context.Context, id string) error
	ListByCard(ctx context.Context, cardID string) ([]Checklist, error)
}

// ChecklistItemRepository provides persistence for checklist items.
type ChecklistItemRepository interface {
	Create(ctx context.Context, item *ChecklistItem) error
	Get(ctx context.Context, id string) (*ChecklistItem, error)
	SetChecked(ctx context.Context, id string, checked bool) error
	Delete(ctx context.Context, id string) error
	DeleteByChecklist(ctx context.Context, checklistID string) error
	ListByChecklist(ctx context.Context, checklistID string) ([]ChecklistItem, error)
}

// CardLabelRepository manages the card/label join rows.
type CardLabelRepository interface {
	Add(ctx context.Context, cardID, labelID string) error
	Remove(ctx context.Context, cardID, labelID string) error
	Exists(ctx context.Context, cardID, labelID string) (bool, error)
	DeleteByCard(ctx context.Context, cardID string) error
	ListByCard(ctx context.Context, cardID string) ([]label.Label, error)
}

// CommentRepository provides persistence for comments.
type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id string) error
	DeleteByCard(ctx context.Context, cardID string) error
	ListByCard(ctx context.Context, cardID string) ([]Comment, error)
}

// AttachmentRepository provides persistence for attachment rows. The files
// themselves live in blob storage.
type AttachmentRepository interface {
	Create(ctx context.Context, a *Attachment) error
	Get(ctx context.Context, id string) (*Attachment, error)
	Delete(ctx context.Context, id string) error
	ListByCard(ctx context.Context, cardID string) ([]Attachment, error)
}

// LabelGetter fetches catalog labels by id.
type LabelGetter interface {
	Get(ctx context.Context, id string) (*label.Label, error)
}

// BlobStore is the external file storage collaborator.
type BlobStore interface {
	Upload(ctx context.Context, path string, content []byte, contentType string) (string, error)
	Delete(ctx context.Context, path string) error
	PublicURL(path string) string
	PathFromURL(fileURL string) (string, error)
}
