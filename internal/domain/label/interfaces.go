package label

import "context"

// Repository provides persistence for the label catalog.
type Repository interface {
	Create(ctx context.Context, lbl *Label) error
	Get(ctx context.Context, id string) (*Label, error)
	GetByTitle(ctx context.Context, title string) (*Label, error)
	List(ctx context.Context) ([]Label, error)
}
