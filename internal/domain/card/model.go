package card

import (
	"time"

	"github.com/Guigui98712/glog-quadro/internal/domain/board"
	"github.com/Guigui98712/glog-quadro/internal/domain/label"
)

// Checklist groups items on a card, ordered by position.
type Checklist struct {
	ID        string    `json:"id"`
	CardID    string    `json:"card_id"`
	Title     string    `json:"title"`
	Position  int64     `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// ChecklistItem is a single checkable entry.
type ChecklistItem struct {
	ID          string    `json:"id"`
	ChecklistID string    `json:"checklist_id"`
	Title       string    `json:"title"`
	Position    int64     `json:"position"`
	Checked     bool      `json:"checked"`
	CreatedAt   time.Time `json:"created_at"`
}

// ChecklistTree is a checklist with its items in position order.
type ChecklistTree struct {
	Checklist
	Items []ChecklistItem `json:"items"`
}

// Comment is immutable once created. There is no edit operation.
type Comment struct {
	ID        string    `json:"id"`
	CardID    string    `json:"card_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Attachment references a file that lives in blob storage.
type Attachment struct {
	ID        string    `json:"id"`
	CardID    string    `json:"card_id"`
	FileName  string    `json:"file_name"`
	FileURL   string    `json:"file_url"`
	FileType  string    `json:"file_type"`
	FileSize  int64     `json:"file_size"`
	CreatedAt time.Time `json:"created_at"`
}

// Detail is the full card read model. Labels are always the normalized
// catalog representation; the raw join rows never leave this package.
type Detail struct {
	board.Card
	Labels      []label.Label   `json:"labels"`
	Checklists  []ChecklistTree `json:"checklists"`
	Comments    []Comment       `json:"comments"`
	Attachments []Attachment    `json:"attachments"`
}
