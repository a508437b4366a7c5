package label

import "time"

// Label is a named, colored tag from the global catalog. Cards reference
// labels through a join; labels are never owned or deleted by a card.
type Label struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// Defaults is the seed catalog ensured on startup. Colors follow the
// product's pendência states.
var Defaults = []Label{
	{Title: "Urgente", Color: "#eb5a46"},
	{Title: "Fazendo", Color: "#f2d600"},
	{Title: "Concluído", Color: "#61bd4f"},
}
