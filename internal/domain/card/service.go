package card

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

// Service mutates a card's nested collections: checklists, items, labels,
// comments, attachments. It is independent of which list owns the card.
type Service struct {
	cards       CardReader
	checklists  ChecklistRepository
	items       ChecklistItemRepository
	cardLabels  CardLabelRepository
	labels      LabelGetter
	comments    CommentRepository
	attachments AttachmentRepository
	blobs       BlobStore
	logger      *slog.Logger
}

// NewService creates a new card detail service.
func NewService(
	cards CardReader,
	checklists ChecklistRepository,
	items ChecklistItemRepository,
	cardLabels CardLabelRepository,
	labels LabelGetter,
	comments CommentRepository,
	attachments AttachmentRepository,
	blobs BlobStore,
	logger *slog.Logger,
) *Service {
	return &Service{
		cards:       cards,
		checklists:  checklists,
		items:       items,
		cardLabels:  cardLabels,
		labels:      labels,
		comments:    comments,
		attachments: attachments,
		blobs:       blobs,
		logger:      logger,
	}
}

// GetDetail returns the full card read model: normalized labels, checklists
// with items in position order, comments newest first, attachments.
func (s *Service) GetDetail(ctx context.Context, cardID string) (*Detail, error) {
	c, err := s.cards.Get(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("getting card: %w", err)
	}

	labels, err := s.cardLabels.ListByCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("listing card labels: %w", err)
	}

	checklists, err := s.checklists.ListByCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("listing checklists: %w", err)
	}
	trees := make([]ChecklistTree, 0, len(checklists))
	for _, cl := range checklists {
		items, err := s.items.ListByChecklist(ctx, cl.ID)
		if err != nil {
			return nil, fmt.Errorf("listing checklist items: %w", err)
		}
		trees = append(trees, ChecklistTree{Checklist: cl, Items: items})
	}

	comments, err := s.comments.ListByCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	attachments, err := s.attachments.ListByCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("listing attachments: %w", err)
	}

	return &Detail{
		Card:        *c,
		Labels:      labels,
		Checklists:  trees,
		Comments:    comments,
		Attachments: attachments,
	}, nil
}

// AddChecklist appends an empty checklist to the card.
func (s *Service) AddChecklist(ctx context.Context, cardID, title string) (*Checklist, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidInput
	}
	if err := s.ensureCard(ctx, cardID); err != nil {
		return nil, err
	}

	siblings, err := s.checklists.ListByCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("listing checklists: %w", err)
	}

	cl := &Checklist{
		ID:        uuid.NewString(),
		CardID:    cardID,
		Title:     title,
		Position:  position.Next(checklistPositions(siblings)),
		CreatedAt: time.Now(),
	}
	if err := s.checklists.Create(ctx, cl); err != nil {
		return nil, fmt.Errorf("creating checklist: %w", err)
	}
	return cl, nil
}

// DeleteChecklist deletes a checklist and its items. Items go first in an
// explicit step; the backend gives no cascade guarantee for this subtree.
func (s *Service) DeleteChecklist(ctx context.Context, checklistID string) error {
	if _, err := s.checklists.Get(ctx, checklistID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrChecklistNotFound
		}
		return fmt.Errorf("getting checklist: %w", err)
	}

	if err := s.items.DeleteByChecklist(ctx, checklistID); err != nil {
		return fmt.Errorf("deleting checklist items: %w", err)
	}
	if err := s.checklists.Delete(ctx, checklistID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("deleting checklist: %w", err)
	}
	return nil
}

// AddChecklistItem appends an unchecked item to a checklist.
func (s *Service) AddChecklistItem(ctx context.Context, checklistID, title string) (*ChecklistItem, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidInput
	}
	if _, err := s.checklists.Get(ctx, checklistID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrChecklistNotFound
		}
		return nil, fmt.Errorf("getting checklist: %w", err)
	}

	siblings, err := s.items.ListByChecklist(ctx, checklistID)
	if err != nil {
		return nil, fmt.Errorf("listing checklist items: %w", err)
	}

	item := &ChecklistItem{
		ID:          uuid.NewString(),
		ChecklistID: checklistID,
		Title:       title,
		Position:    position.Next(itemPositions(siblings)),
		Checked:     false,
		CreatedAt:   time.Now(),
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("creating checklist item: %w", err)
	}
	return item, nil
}

// ToggleChecklistItem sets an item's checked state. Pure boolean flip: no
// effect on the checklist or the card.
func (s *Service) ToggleChecklistItem(ctx context.Context, checklistID, itemID string, checked bool) error {
	item, err := s.items.Get(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("getting checklist item: %w", err)
	}
	if item.ChecklistID != checklistID {
		return ErrItemNotFound
	}

	if err := s.items.SetChecked(ctx, itemID, checked); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("toggling checklist item: %w", err)
	}
	return nil
}

// DeleteChecklistItem removes a single item.
func (s *Service) DeleteChecklistItem(ctx context.Context, itemID string) error {
	if err := s.items.Delete(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("deleting checklist item: %w", err)
	}
	return nil
}

// SetLabel attaches a catalog label to the card. Idempotent: setting a
// label that is already present is a no-op, not a duplicate-key error.
func (s *Service) SetLabel(ctx context.Context, cardID, labelID string) error {
	if err := s.ensureCard(ctx, cardID); err != nil {
		return err
	}
	if _, err := s.labels.Get(ctx, labelID); err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, label.ErrLabelNotFound) {
			return label.ErrLabelNotFound
		}
		return fmt.Errorf("getting label: %w", err)
	}

	present, err := s.cardLabels.Exists(ctx, cardID, labelID)
	if err != nil {
		return fmt.Errorf("checking card label: %w", err)
	}
	if present {
		return nil
	}

	if err := s.cardLabels.Add(ctx, cardID, labelID); err != nil {
		// Lost a race with an identical set; already in the desired state.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("adding card label: %w", err)
	}
	return nil
}

// UnsetLabel detaches a label from the card. Unsetting an absent label is a
// no-op. Only the join row goes away; the catalog label survives.
func (s *Service) UnsetLabel(ctx context.Context, cardID, labelID string) error {
	present, err := s.cardLabels.Exists(ctx, cardID, labelID)
	if err != nil {
		return fmt.Errorf("checking card label: %w", err)
	}
	if !present {
		return nil
	}

	if err := s.cardLabels.Remove(ctx, cardID, labelID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("removing card label: %w", err)
	}
	return nil
}

// AddComment appends a comment. Comments are immutable once created.
func (s *Service) AddComment(ctx context.Context, cardID, authorID, content string) (*Comment, error) {
	if strings.TrimSpace(content) == "" || strings.TrimSpace(authorID) == "" {
		return nil, ErrInvalidInput
	}
	if err := s.ensureCard(ctx, cardID); err != nil {
		return nil, err
	}

	c := &Comment{
		ID:        uuid.NewString(),
		CardID:    cardID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}
	return c, nil
}

// DeleteComment removes a comment.
func (s *Service) DeleteComment(ctx context.Context, commentID string) error {
	if err := s.comments.Delete(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("deleting comment: %w", err)
	}
	return nil
}

// AddAttachmentRequest defines attachment creation inputs.
type AddAttachmentRequest struct {
	CardID   string
	FileName string
	FileType string
	Content  []byte
}

// AddAttachment uploads the file to blob storage, then inserts the row
// referencing the resulting URL. If the insert fails after a successful
// upload, the orphaned blob is deleted as compensation.
func (s *Service) AddAttachment(ctx context.Context, req AddAttachmentRequest) (*Attachment, error) {
	if strings.TrimSpace(req.FileName) == "" || len(req.Content) == 0 {
		return nil, ErrInvalidInput
	}
	if err := s.ensureCard(ctx, req.CardID); err != nil {
		return nil, err
	}

	path := objectPath(req.CardID, req.FileName)
	url, err := s.blobs.Upload(ctx, path, req.Content, req.FileType)
	if err != nil {
		return nil, fmt.Errorf("uploading attachment: %w", err)
	}

	a := &Attachment{
		ID:        uuid.NewString(),
		CardID:    req.CardID,
		FileName:  req.FileName,
		FileURL:   url,
		FileType:  req.FileType,
		FileSize:  int64(len(req.Content)),
		CreatedAt: time.Now(),
	}
	if err := s.attachments.Create(ctx, a); err != nil {
		if delErr := s.blobs.Delete(ctx, path); delErr != nil && s.logger != nil {
			s.logger.Error("orphaned blob after failed attachment insert",
				"path", path, "error", delErr)
		}
		return nil, fmt.Errorf("creating attachment row: %w", err)
	}
	return a, nil
}

// DeleteAttachment removes the stored file, then the row. Blob first: if
// the blob delete fails the row stays and the error surfaces, so metadata
// keeps pointing at a file that still exists and the whole operation can be
// retried.
func (s *Service) DeleteAttachment(ctx context.Context, attachmentID string) error {
	a, err := s.attachments.Get(ctx, attachmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAttachmentNotFound
		}
		return fmt.Errorf("getting attachment: %w", err)
	}

	if err := s.deleteBlob(ctx, a); err != nil {
		return err
	}
	if err := s.attachments.Delete(ctx, attachmentID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("deleting attachment row: %w", err)
	}
	return nil
}

// DeleteCard deletes a card together with everything it owns, in a fixed
// order: checklist items, checklists, label joins, comments, attachments
// (blob then row), and finally the card row. The first failing step aborts
// the rest and surfaces; a retry skips children that are already gone.
func (s *Service) DeleteCard(ctx context.Context, cardID string) error {
	if _, err := s.cards.Get(ctx, cardID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Already deleted; repeating the cascade is a no-op.
			return nil
		}
		return fmt.Errorf("getting card: %w", err)
	}

	checklists, err := s.checklists.ListByCard(ctx, cardID)
	if err != nil {
		return fmt.Errorf("listing checklists: %w", err)
	}
	for _, cl := range checklists {
		if err := s.items.DeleteByChecklist(ctx, cl.ID); err != nil {
			return fmt.Errorf("deleting items of checklist %s: %w", cl.ID, err)
		}
		if err := s.checklists.Delete(ctx, cl.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("deleting checklist %s: %w", cl.ID, err)
		}
	}

	if err := s.cardLabels.DeleteByCard(ctx, cardID); err != nil {
		return fmt.Errorf("deleting card labels: %w", err)
	}
	if err := s.comments.DeleteByCard(ctx, cardID); err != nil {
		return fmt.Errorf("deleting comments: %w", err)
	}

	attachments, err := s.attachments.ListByCard(ctx, cardID)
	if err != nil {
		return fmt.Errorf("listing attachments: %w", err)
	}
	for _, a := range attachments {
		if err := s.deleteBlob(ctx, &a); err != nil {
			return err
		}
		if err := s.attachments.Delete(ctx, a.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("deleting attachment %s: %w", a.ID, err)
		}
	}

	if err := s.cards.Delete(ctx, cardID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("deleting card: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("deleted card", "card_id", cardID,
			"checklists", len(checklists), "attachments", len(attachments))
	}
	return nil
}

func (s *Service) deleteBlob(ctx context.Context, a *Attachment) error {
	path, err := s.blobs.PathFromURL(a.FileURL)
	if err != nil {
		return fmt.Errorf("resolving blob path for attachment %s: %w", a.ID, err)
	}
	if err := s.blobs.Delete(ctx, path); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("deleting blob for attachment %s: %w", a.ID, err)
	}
	return nil
}

func (s *Service) ensureCard(ctx context.Context, cardID string) error {
	if _, err := s.cards.Get(ctx, cardID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCardNotFound
		}
		return fmt.Errorf("getting card: %w", err)
	}
	return nil
}

func objectPath(cardID, fileName string) string {
	return fmt.Sprintf("cards/%s/%s-%s", cardID, uuid.NewString(), fileName)
}

func checklistPositions(checklists []Checklist) []int64 {
	out := make([]int64, len(checklists))
	for i, cl := range checklists {
		out[i] = cl.Position
	}
	return out
}

func itemPositions(items []ChecklistItem) []int64 {
	out := make([]int64, len(items))
	for i, item := range items {
		out[i] = item.Position
	}
	return out
}
