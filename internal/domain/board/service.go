package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Guigui98712/glog-quadro/internal/domain/label"
	"github.com/Guigui98712/glog-quadro/internal/domain/position"
	"github.com/Guigui98712/glog-quadro/internal/repository"
	"github.com/google/uuid"
)

// Service owns the Board/List/Card aggregate and its structural mutations.
type Service struct {
	boards     BoardRepository
	lists      ListRepository
	cards      CardRepository
	cardLabels CardLabelRepository
	labels     LabelFinder
	cascade    CardCascade
	logger     *slog.Logger
}

// NewService creates a new board service.
func NewService(
	boards BoardRepository,
	lists ListRepository,
	cards CardRepository,
	cardLabels CardLabelRepository,
	labels LabelFinder,
	cascade CardCascade,
	logger *slog.Logger,
) *Service {
	return &Service{
		boards:     boards,
		lists:      lists,
		cards:      cards,
		cardLabels: cardLabels,
		labels:     labels,
		cascade:    cascade,
		logger:     logger,
	}
}

// GetTree returns the full board read model: lists ordered by position,
// each with its cards ordered by position.
func (s *Service) GetTree(ctx context.Context, boardID string) (*Tree, error) {
	b, err := s.boards.Get(ctx, boardID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("getting board: %w", err)
	}

	lists, err := s.lists.ListByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("listing lists: %w", err)
	}

	tree := &Tree{Board: *b, Lists: make([]ListTree, 0, len(lists))}
	for _, l := range lists {
		cards, err := s.cards.ListByList(ctx, l.ID)
		if err != nil {
			return nil, fmt.Errorf("listing cards for list %s: %w", l.ID, err)
		}
		tree.Lists = append(tree.Lists, ListTree{List: l, Cards: cards})
	}
	return tree, nil
}

// CreateList appends a new list to the board. No duplicate-title constraint:
// two lists may share a title.
func (s *Service) CreateList(ctx context.Context, boardID, title string) (*List, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidInput
	}
	if _, err := s.boards.Get(ctx, boardID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("getting board: %w", err)
	}

	siblings, err := s.lists.ListByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("listing lists: %w", err)
	}

	l := &List{
		ID:        uuid.NewString(),
		BoardID:   boardID,
		Title:     title,
		Position:  position.Next(listPositions(siblings)),
		CreatedAt: time.Now(),
	}
	if err := s.lists.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("creating list: %w", err)
	}
	return l, nil
}

// RenameList updates the list title and nothing else.
func (s *Service) RenameList(ctx context.Context, listID, title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrInvalidInput
	}
	if err := s.lists.Rename(ctx, listID, title); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrListNotFound
		}
		return fmt.Errorf("renaming list: %w", err)
	}
	return nil
}

// DeleteList deletes a list and every card in it. Cards go through the full
// card cascade one at a time; the first failure aborts the remaining
// deletions and surfaces, leaving already-deleted cards gone. Re-running the
// whole delete is safe: children that are already gone read as not-found and
// are skipped.
func (s *Service) DeleteList(ctx context.Context, listID string) error {
	if _, err := s.lists.Get(ctx, listID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrListNotFound
		}
		return fmt.Errorf("getting list: %w", err)
	}

	cards, err := s.cards.ListByList(ctx, listID)
	if err != nil {
		return fmt.Errorf("listing cards: %w", err)
	}
	for _, c := range cards {
		if err := s.cascade.DeleteCard(ctx, c.ID); err != nil {
			return fmt.Errorf("deleting card %s in list %s: %w", c.ID, listID, err)
		}
	}

	if err := s.lists.Delete(ctx, listID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("deleting list: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("deleted list", "list_id", listID, "cards", len(cards))
	}
	return nil
}

// CreateCardRequest defines card creation inputs. LabelTitles that don't
// resolve against the catalog are skipped, not created.
type CreateCardRequest struct {
	ListID      string
	Title       string
	Description string
	DueDate     *time.Time
	LabelTitles []string
}

// CreateCard appends a new card to a list.
func (s *Service) CreateCard(ctx context.Context, req CreateCardRequest) (*Card, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidInput
	}
	if _, err := s.lists.Get(ctx, req.ListID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrListNotFound
		}
		return nil, fmt.Errorf("getting list: %w", err)
	}

	siblings, err := s.cards.ListByList(ctx, req.ListID)
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}

	c := &Card{
		ID:          uuid.NewString(),
		ListID:      req.ListID,
		Title:       req.Title,
		Description: req.Description,
		Position:    position.Next(cardPositions(siblings)),
		DueDate:     req.DueDate,
		CreatedAt:   time.Now(),
	}
	if err := s.cards.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("creating card: %w", err)
	}

	seen := make(map[string]bool, len(req.LabelTitles))
	for _, title := range req.LabelTitles {
		if seen[title] {
			continue
		}
		seen[title] = true
		lbl, err := s.labels.FindByTitle(ctx, title)
		if err != nil {
			if errors.Is(err, label.ErrLabelNotFound) {
				if s.logger != nil {
					s.logger.Warn("skipping unknown label", "title", title, "card_id", c.ID)
				}
				continue
			}
			return nil, fmt.Errorf("resolving label %q: %w", title, err)
		}
		if err := s.cardLabels.Add(ctx, c.ID, lbl.ID); err != nil {
			return nil, fmt.Errorf("attaching label %q: %w", title, err)
		}
	}
	return c, nil
}

// UpdateCardRequest defines partial card updates. Nil pointer fields are
// left untouched; ClearDueDate removes the due date.
type UpdateCardRequest struct {
	ID           string
	Title        *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
}

// UpdateCard applies a partial update to a card's own fields. List
// membership and position are not touched here; that is MoveCard's job.
func (s *Service) UpdateCard(ctx context.Context, req UpdateCardRequest) (*Card, error) {
	c, err := s.cards.Get(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("getting card: %w", err)
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrInvalidInput
		}
		c.Title = *req.Title
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.ClearDueDate {
		c.DueDate = nil
	} else if req.DueDate != nil {
		c.DueDate = req.DueDate
	}

	if err := s.cards.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("updating card: %w", err)
	}
	return c, nil
}

// MoveCard moves a card to the end of the target list. List membership and
// position change in a single row update, so the caller never observes a
// card with a stale position in the new list.
func (s *Service) MoveCard(ctx context.Context, cardID, targetListID string) error {
	if _, err := s.cards.Get(ctx, cardID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCardNotFound
		}
		return fmt.Errorf("getting card: %w", err)
	}
	if _, err := s.lists.Get(ctx, targetListID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrListNotFound
		}
		return fmt.Errorf("getting target list: %w", err)
	}

	targets, err := s.cards.ListByList(ctx, targetListID)
	if err != nil {
		return fmt.Errorf("listing target cards: %w", err)
	}

	pos := position.Next(cardPositions(targets))
	if err := s.cards.Move(ctx, cardID, targetListID, pos); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCardNotFound
		}
		return fmt.Errorf("moving card: %w", err)
	}
	return nil
}

// ReorderCards reindexes a list's cards into the given exact order. The id
// set must match the list's membership exactly.
func (s *Service) ReorderCards(ctx context.Context, listID string, cardIDs []string) error {
	if _, err := s.lists.Get(ctx, listID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrListNotFound
		}
		return fmt.Errorf("getting list: %w", err)
	}
	current, err := s.cards.ListByList(ctx, listID)
	if err != nil {
		return fmt.Errorf("listing cards: %w", err)
	}

	members := make(map[string]bool, len(current))
	for _, c := range current {
		members[c.ID] = true
	}
	if len(cardIDs) != len(current) {
		return fmt.Errorf("%w: got %d ids for %d cards", ErrInvalidInput, len(cardIDs), len(current))
	}
	for _, id := range cardIDs {
		if !members[id] {
			return fmt.Errorf("%w: %s", ErrCardNotInList, id)
		}
		delete(members, id)
	}

	if err := s.cards.UpdatePositions(ctx, listID, cardIDs, position.Sequence(len(cardIDs))); err != nil {
		return fmt.Errorf("reordering cards: %w", err)
	}
	return nil
}

// DeleteCard removes a card and all its sub-entities via the card cascade.
func (s *Service) DeleteCard(ctx context.Context, cardID string) error {
	return s.cascade.DeleteCard(ctx, cardID)
}

func listPositions(lists []List) []int64 {
	out := make([]int64, len(lists))
	for i, l := range lists {
		out[i] = l.Position
	}
	return out
}

func cardPositions(cards []Card) []int64 {
	out := make([]int64, len(cards))
	for i, c := range cards {
		out[i] = c.Position
	}
	return out
}
