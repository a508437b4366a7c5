package mocks

import (
	"context"

	"github.com/Guigui98712/glog-quadro/internal/domain/board"
	"github.com/Guigui98712/glog-quadro/internal/domain/card"
	"github.com/Guigui98712/glog-quadro/internal/domain/label"
	"github.com/Guigui98712/glog-quadro/internal/repository"
	"github.com/stretchr/testify/mock"
)

// BoardRepository is a mock for board.BoardRepository.
type BoardRepository struct {
	mock.Mock
}

func (m *BoardRepository) Create(ctx context.Context, b *board.Board) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BoardRepository) Get(ctx context.Context, id string) (*board.Board, error) {
	args := m.Called(ctx, id)
	if b, ok := args.Get(0).(*board.Board); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BoardRepository) GetByOwner(ctx context.Context, ownerID string) (*board.Board, error) {
	args := m.Called(ctx, ownerID)
	if b, ok := args.Get(0).(*board.Board); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BoardRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ListRepository is a mock for board.ListRepository.
type ListRepository struct {
	mock.Mock
}

func (m *ListRepository) Create(ctx context.Context, l *board.List) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *ListRepository) Get(ctx context.Context, id string) (*board.List, error) {
	args := m.Called(ctx, id)
	if l, ok := args.Get(0).(*board.List); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ListRepository) Rename(ctx context.Context, id, title string) error {
	args := m.Called(ctx, id, title)
	return args.Error(0)
}

func (m *ListRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ListRepository) ListByBoard(ctx context.Context, boardID string) ([]board.List, error) {
	args := m.Called(ctx, boardID)
	if list, ok := args.Get(0).([]board.List); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// CardRepository is a mock for board.CardRepository and card.CardReader.
type CardRepository struct {
	mock.Mock
}

func (m *CardRepository) Create(ctx context.Context, c *board.Card) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CardRepository) Get(ctx context.Context, id string) (*board.Card, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*board.Card); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CardRepository) Update(ctx context.Context, c *board.Card) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CardRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CardRepository) ListByList(ctx context.Context, listID string) ([]board.Card, error) {
	args := m.Called(ctx, listID)
	if list, ok := args.Get(0).([]board.Card); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CardRepository) Move(ctx context.Context, cardID, targetListID string, position int64) error {
	args := m.Called(ctx, cardID, targetListID, position)
	return args.Error(0)
}

func (m *CardRepository) UpdatePositions(ctx context.Context, listID string, cardIDs []string, positions []int64) error {
	args := m.Called(ctx, listID, cardIDs, positions)
	return args.Error(0)
}

// ChecklistRepository is a mock for card.ChecklistRepository.
type ChecklistRepository struct {
	mock.Mock
}

func (m *ChecklistRepository) Create(ctx context.Context, cl *card.Checklist) error {
	args := m.Called(ctx, cl)
	return args.Error(0)
}

func (m *ChecklistRepository) Get(ctx context.Context, id string) (*card.Checklist, error) {
	args := m.Called(ctx, id)
	if cl, ok := args.Get(0).(*card.Checklist); ok {
		return cl, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ChecklistRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ChecklistRepository) ListByCard(ctx context.Context, cardID string) ([]card.Checklist, error) {
	args := m.Called(ctx, cardID)
	if list, ok := args.Get(0).([]card.Checklist); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ChecklistItemRepository is a mock for card.ChecklistItemRepository.
type ChecklistItemRepository struct {
	mock.Mock
}

func (m *ChecklistItemRepository) Create(ctx context.Context, item *card.ChecklistItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *ChecklistItemRepository) Get(ctx context.Context, id string) (*card.ChecklistItem, error) {
	args := m.Called(ctx, id)
	if item, ok := args.Get(0).(*card.ChecklistItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ChecklistItemRepository) SetChecked(ctx context.Context, id string, checked bool) error {
	args := m.Called(ctx, id, checked)
	return args.Error(0)
}

func (m *ChecklistItemRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ChecklistItemRepository) DeleteByChecklist(ctx context.Context, checklistID string) error {
	args := m.Called(ctx, checklistID)
	return args.Error(0)
}

func (m *ChecklistItemRepository) ListByChecklist(ctx context.Context, checklistID string) ([]card.ChecklistItem, error) {
	args := m.Called(ctx, checklistID)
	if list, ok := args.Get(0).([]card.ChecklistItem); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// LabelRepository is a mock for label.Repository.
type LabelRepository struct {
	mock.Mock
}

func (m *LabelRepository) Create(ctx context.Context, lbl *label.Label) error {
	args := m.Called(ctx, lbl)
	return args.Error(0)
}

func (m *LabelRepository) Get(ctx context.Context, id string) (*label.Label, error) {
	args := m.Called(ctx, id)
	if lbl, ok := args.Get(0).(*label.Label); ok {
		return lbl, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *LabelRepository) GetByTitle(ctx context.Context, title string) (*label.Label, error) {
	args := m.Called(ctx, title)
	if lbl, ok := args.Get(0).(*label.Label); ok {
		return lbl, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *LabelRepository) List(ctx context.Context) ([]label.Label, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]label.Label); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// CardLabelRepository is a mock for card.CardLabelRepository.
type CardLabelRepository struct {
	mock.Mock
}

func (m *CardLabelRepository) Add(ctx context.Context, cardID, labelID string) error {
	args := m.Called(ctx, cardID, labelID)
	return args.Error(0)
}

func (m *CardLabelRepository) Remove(ctx context.Context, cardID, labelID string) error {
	args := m.Called(ctx, cardID, labelID)
	return args.Error(0)
}

func (m *CardLabelRepository) Exists(ctx context.Context, cardID, labelID string) (bool, error) {
	args := m.Called(ctx, cardID, labelID)
	return args.Bool(0), args.Error(1)
}

func (m *CardLabelRepository) DeleteByCard(ctx context.Context, cardID string) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

func (m *CardLabelRepository) ListByCard(ctx context.Context, cardID string) ([]label.Label, error) {
	args := m.Called(ctx, cardID)
	if list, ok := args.Get(0).([]label.Label); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// CommentRepository is a mock for card.CommentRepository.
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Create(ctx context.Context, c *card.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CommentRepository) DeleteByCard(ctx context.Context, cardID string) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

func (m *CommentRepository) ListByCard(ctx context.Context, cardID string) ([]card.Comment, error) {
	args := m.Called(ctx, cardID)
	if list, ok := args.Get(0).([]card.Comment); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// AttachmentRepository is a mock for card.AttachmentRepository.
type AttachmentRepository struct {
	mock.Mock
}

func (m *AttachmentRepository) Create(ctx context.Context, a *card.Attachment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *AttachmentRepository) Get(ctx context.Context, id string) (*card.Attachment, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*card.Attachment); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AttachmentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AttachmentRepository) ListByCard(ctx context.Context, cardID string) ([]card.Attachment, error) {
	args := m.Called(ctx, cardID)
	if list, ok := args.Get(0).([]card.Attachment); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// OwnerRepository is a mock for board.OwnerRepository.
type OwnerRepository struct {
	mock.Mock
}

func (m *OwnerRepository) Create(ctx context.Context, o *board.Owner) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *OwnerRepository) Get(ctx context.Context, id string) (*board.Owner, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*board.Owner); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OwnerRepository) GetBoardRef(ctx context.Context, ownerID string) (string, error) {
	args := m.Called(ctx, ownerID)
	return args.String(0), args.Error(1)
}

func (m *OwnerRepository) SetBoardRef(ctx context.Context, ownerID, boardID string) error {
	args := m.Called(ctx, ownerID, boardID)
	return args.Error(0)
}

// SearchRepository is a mock for the full-text card search repository.
type SearchRepository struct {
	mock.Mock
}

func (m *SearchRepository) SearchCards(ctx context.Context, boardID, query string, opts repository.SearchOptions) ([]board.SearchResult, error) {
	args := m.Called(ctx, boardID, query, opts)
	if list, ok := args.Get(0).([]board.SearchResult); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// BlobStore is a mock for the blob storage collaborator.
type BlobStore struct {
	mock.Mock
}

func (m *BlobStore) Upload(ctx context.Context, path string, content []byte, contentType string) (string, error) {
	args := m.Called(ctx, path, content, contentType)
	return args.String(0), args.Error(1)
}

func (m *BlobStore) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *BlobStore) PublicURL(path string) string {
	args := m.Called(path)
	return args.String(0)
}

func (m *BlobStore) PathFromURL(fileURL string) (string, error) {
	args := m.Called(fileURL)
	return args.String(0), args.Error(1)
}

// CardCascade is a mock for the board service's card deletion collaborator.
type CardCascade struct {
	mock.Mock
}

func (m *CardCascade) DeleteCard(ctx context.Context, cardID string) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}
