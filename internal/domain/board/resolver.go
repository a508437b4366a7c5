package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Guigui98712/glog-quadro/internal/repository"
	"github.com/google/uuid"
)

// Resolver maps an owner (construction project) to its one board, creating
// it on first use. New boards are deliberately empty: earlier versions of
// the product seeded default lists, this one does not.
//
// Two truly concurrent resolutions for the same owner race on the create;
// the unique owner index keeps a single winner and the loser re-reads the
// winner's board instead of producing a second one. Sequential resolutions
// always return the same board.
type Resolver struct {
	boards BoardRepository
	owners OwnerRepository
	logger *slog.Logger
}

// NewResolver creates a new board resolver.
func NewResolver(boards BoardRepository, owners OwnerRepository, logger *slog.Logger) *Resolver {
	return &Resolver{boards: boards, owners: owners, logger: logger}
}

// Resolve returns the owner's board, creating and persisting it if the
// owner has no valid board reference yet.
func (r *Resolver) Resolve(ctx context.Context, ownerID string) (*Board, error) {
	ref, err := r.owners.GetBoardRef(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("getting board ref: %w", err)
	}

	if ref != "" {
		b, err := r.boards.Get(ctx, ref)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("getting board: %w", err)
		}
		// Stored reference points at a board that no longer exists.
		if r.logger != nil {
			r.logger.Warn("dangling board reference", "owner_id", ownerID, "board_id", ref)
		}
	}

	b := &Board{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		CreatedAt: time.Now(),
	}
	if err := r.boards.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return r.adoptExisting(ctx, ownerID)
		}
		return nil, fmt.Errorf("creating board: %w", err)
	}

	if err := r.owners.SetBoardRef(ctx, ownerID, b.ID); err != nil {
		return nil, fmt.Errorf("persisting board ref: %w", err)
	}
	if r.logger != nil {
		r.logger.Info("created board", "owner_id", ownerID, "board_id", b.ID)
	}
	return b, nil
}

// adoptExisting handles a lost creation race or a dangling reference with a
// surviving board row: read the board that won the unique owner index and
// point the owner at it.
func (r *Resolver) adoptExisting(ctx context.Context, ownerID string) (*Board, error) {
	b, err := r.boards.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("getting existing board for owner: %w", err)
	}
	if err := r.owners.SetBoardRef(ctx, ownerID, b.ID); err != nil {
		return nil, fmt.Errorf("persisting board ref: %w", err)
	}
	return b, nil
}
