package board

import "time"

// Board is the Kanban container owned by exactly one construction project.
// It is created lazily on first resolution and holds no data of its own
// beyond the owner reference.
type Board struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// List is a named column within a board. Position defines render order;
// ties are broken by creation order.
type List struct {
	ID        string    `json:"id"`
	BoardID   string    `json:"board_id"`
	Title     string    `json:"title"`
	Position  int64     `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// Card is a tracked item. A card belongs to exactly one list at a time;
// moving it changes ListID and Position together.
type Card struct {
	ID          string     `json:"id"`
	ListID      string     `json:"list_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Position    int64      `json:"position"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Owner is the construction project ("obra") record a board belongs to.
// BoardID is the persisted board reference, empty until first resolution.
type Owner struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BoardID   string    `json:"board_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SearchResult is one full-text match over card titles and descriptions.
type SearchResult struct {
	Card
	ListTitle string `json:"list_title"`
}

// ListTree is a list with its cards in position order.
type ListTree struct {
	List
	Cards []Card `json:"cards"`
}

// Tree is the full board read model: lists in position order, each with
// its cards in position order.
type Tree struct {
	Board
	Lists []ListTree `json:"lists"`
}
