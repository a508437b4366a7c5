package label

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Guigui98712/glog-quadro/internal/repository"
	"github.com/google/uuid"
)

// Service maintains the global label catalog.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new label service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// EnsureDefaults inserts any missing default labels and returns the full
// catalog. Existing labels are never touched: a default whose title already
// exists keeps whatever color it has.
func (s *Service) EnsureDefaults(ctx context.Context) ([]Label, error) {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing labels: %w", err)
	}

	present := make(map[string]bool, len(existing))
	for _, lbl := range existing {
		present[lbl.Title] = true
	}

	for _, def := range Defaults {
		if present[def.Title] {
			continue
		}
		lbl := &Label{
			ID:        uuid.NewString(),
			Title:     def.Title,
			Color:     def.Color,
			CreatedAt: time.Now(),
		}
		if err := s.repo.Create(ctx, lbl); err != nil {
			// A concurrent seeding run may have inserted it between the
			// list and the insert; treat that as already present.
			if errors.Is(err, repository.ErrDuplicate) {
				continue
			}
			return nil, fmt.Errorf("seeding label %q: %w", def.Title, err)
		}
		if s.logger != nil {
			s.logger.Info("seeded default label", "title", lbl.Title, "color", lbl.Color)
		}
	}

	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing labels: %w", err)
	}
	return catalog, nil
}

// Create adds a label to the catalog. Titles are unique; the check runs
// before the insert so a duplicate reports ErrDuplicateTitle instead of a
// raw constraint error.
func (s *Service) Create(ctx context.Context, title, color string) (*Label, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(color) == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.repo.GetByTitle(ctx, title); err == nil {
		return nil, ErrDuplicateTitle
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("checking label title: %w", err)
	}

	lbl := &Label{
		ID:        uuid.NewString(),
		Title:     title,
		Color:     color,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, lbl); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateTitle
		}
		return nil, fmt.Errorf("creating label: %w", err)
	}
	return lbl, nil
}

// Get fetches a label by ID.
func (s *Service) Get(ctx context.Context, id string) (*Label, error) {
	lbl, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLabelNotFound
		}
		return nil, fmt.Errorf("getting label: %w", err)
	}
	return lbl, nil
}

// FindByTitle fetches a label by its unique title.
func (s *Service) FindByTitle(ctx context.Context, title string) (*Label, error) {
	lbl, err := s.repo.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLabelNotFound
		}
		return nil, fmt.Errorf("finding label by title: %w", err)
	}
	return lbl, nil
}

// List returns the full catalog.
func (s *Service) List(ctx context.Context) ([]Label, error) {
	return s.repo.List(ctx)
}
