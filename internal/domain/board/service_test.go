package board_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guigui98712/glog-quadro/internal/domain/board"
	"github.com/Guigui98712/glog-quadro/internal/domain/label"
	"github.com/Guigui98712/glog-quadro/internal/repository"
	"github.com/Guigui98712/glog-quadro/internal/repository/mocks"
)

type labelFinderStub struct {
	labels map[string]*label.Label
}

func (f *labelFinderStub) FindByTitle(_ context.Context, title string) (*label.Label, error) {
	if lbl, ok := f.labels[title]; ok {
		return lbl, nil
	}
	return nil, label.ErrLabelNotFound
}

func TestBoardService_GetTree(t *testing.T) {
	ctx := context.Background()

	boards := &mocks.BoardRepository{}
	lists := &mocks.ListRepository{}
	cards := &mocks.CardRepository{}

	boards.On("Get", ctx, "b1").Return(&board.Board{ID: "b1", OwnerID: "o1"}, nil)
	lists.On("ListByBoard", ctx, "b1").Return([]board.List{
		{ID: "l1", BoardID: "b1", Title: "A fazer", Position: 1000},
		{ID: "l2", BoardID: "b1", Title: "Feito", Position: 2000},
	}, nil)
	cards.On("ListByList", ctx, "l1").Return([]board.Card{
		{ID: "c1", ListID: "l1", Title: "Pintar parede", Position: 1000},
	}, nil)
	cards.On("ListByList", ctx, "l2").Return([]board.Card{}, nil)

	svc := board.NewService(boards, lists, cards, nil, nil, nil, nil)
	tree, err := svc.GetTree(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, tree.Lists, 2)
	require.Equal(t, "A fazer", tree.Lists[0].Title)
	require.Len(t, tree.Lists[0].Cards, 1)
	require.Empty(t, tree.Lists[1].Cards)
}

func TestBoardService_GetTreeNotFound(t *testing.T) {
	ctx := context.Background()

	boards := &mocks.BoardRepository{}
	boards.On("Get", ctx, "missing").Return(nil, repository.ErrNotFound)

	svc := board.NewService(boards, nil, nil, nil, nil, nil, nil)
	_, err := svc.GetTree(ctx, "missing")
	require.ErrorIs(t, err, board.ErrBoardNotFound)
}

func TestBoardService_CreateListAppends(t *testing.T) {
	ctx := context.Background()

	boards := &mocks.BoardRepository{}
	lists := &mocks.ListRepository{}

	boards.On("Get", ctx, "b1").Return(&board.Board{ID: "b1"}, nil)
	lists.On("ListByBoard", ctx, "b1").Return([]board.List{
		{ID: "l1", Position: 1000},
		{ID: "l2", Position: 2000},
	}, nil)
	lists.On("Create", ctx, mock.Anything).Return(nil)

	svc := board.NewService(boards, lists, nil, nil, nil, nil, nil)
	l, err := svc.CreateList(ctx, "b1", "Em andamento")
	require.NoError(t, err)
	require.NotEmpty(t, l.ID)
	require.Equal(t, int64(3000), l.Position)
}

func TestBoardService_CreateListValidation(t *testing.T) {
	svc := board.NewService(nil, nil, nil, nil, nil, nil, nil)
	_, err := svc.CreateList(context.Background(), "b1", "   ")
	require.ErrorIs(t, err, board.ErrInvalidInput)
}

func TestBoardService_CreateCardAttachesKnownLabels(t *testing.T) {
	ctx := context.Background()

	lists := &mocks.ListRepository{}
	cards := &mocks.CardRepository{}
	cardLabels := &mocks.CardLabelRepository{}
	finder := &labelFinderStub{labels: map[string]*label.Label{
		"Urgente": {ID: "lb1", Title: "Urgente"},
	}}

	lists.On("Get", ctx, "l1").Return(&board.List{ID: "l1"}, nil)
	cards.On("ListByList", ctx, "l1").Return([]board.Card{}, nil)
	cards.On("Create", ctx, mock.Anything).Return(nil)
	cardLabels.On("Add", ctx, mock.Anything, "lb1").Return(nil)

	svc := board.NewService(nil, lists, cards, cardLabels, finder, nil, nil)
	c, err := svc.CreateCard(ctx, board.CreateCardRequest{
		ListID:      "l1",
		Title:       "Pintar parede",
		LabelTitles: []string{"Urgente", "Urgente", "Inexistente"},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1000), c.Position)

	// One attach despite the duplicate title; unknown titles are skipped.
	cardLabels.AssertNumberOfCalls(t, "Add", 1)
}

func TestBoardService_UpdateCardPartial(t *testing.T) {
	ctx := context.Background()

	cards := &mocks.CardRepository{}
	existing := &board.Card{ID: "c1", ListID: "l1", Title: "old", Description: "desc"}
	cards.On("Get", ctx, "c1").Return(existing, nil)
	cards.On("Update", ctx, mock.Anything).Return(nil)

	svc := board.NewService(nil, nil, cards, nil, nil, nil, nil)

	title := "new"
	c, err := svc.UpdateCard(ctx, board.UpdateCardRequest{ID: "c1", Title: &title})
	require.NoError(t, err)
	require.Equal(t, "new", c.Title)
	require.Equal(t, "desc", c.Description)
}

func TestBoardService_UpdateCardClearDueDate(t *testing.T) {
	ctx := context.Background()

	cards := &mocks.CardRepository{}
	due := board.Card{ID: "c1", Title: "t"}
	cards.On("Get", ctx, "c1").Return(&due, nil)
	cards.On("Update", ctx, mock.Anything).Return(nil)

	svc := board.NewService(nil, nil, cards, nil, nil, nil, nil)
	c, err := svc.UpdateCard(ctx, board.UpdateCardRequest{ID: "c1", ClearDueDate: true})
	require.NoError(t, err)
	require.Nil(t, c.DueDate)
}

func TestBoardService_MoveCardAppendsToTarget(t *testing.T) {
	ctx := context.Background()

	lists := &mocks.ListRepository{}
	cards := &mocks.CardRepository{}

	cards.On("Get", ctx, "c1").Return(&board.Card{ID: "c1", ListID: "l1"}, nil)
	lists.On("Get", ctx, "l2").Return(&board.List{ID: "l2"}, nil)
	cards.On("ListByList", ctx, "l2").Return([]board.Card{
		{ID: "c9", Position: 5000},
	}, nil)
	cards.On("Move", ctx, "c1", "l2", int64(6000)).Return(nil)

	svc := board.NewService(nil, lists, cards, nil, nil, nil, nil)
	require.NoError(t, svc.MoveCard(ctx, "c1", "l2"))
	cards.AssertExpectations(t)
}

func TestBoardService_MoveCardTargetMissing(t *testing.T) {
	ctx := context.Background()

	lists := &mocks.ListRepository{}
	cards := &mocks.CardRepository{}

	cards.On("Get", ctx, "c1").Return(&board.Card{ID: "c1"}, nil)
	lists.On("Get", ctx, "missing").Return(nil, repository.ErrNotFound)

	svc := board.NewService(nil, lists, cards, nil, nil, nil, nil)
	require.ErrorIs(t, svc.MoveCard(ctx, "c1", "missing"), board.ErrListNotFound)
}

func TestBoardService_ReorderCards(t *testing.T) {
	ctx := context.Background()

	lists := &mocks.ListRepository{}
	cards := &mocks.CardRepository{}

	lists.On("Get", ctx, "l1").Return(&board.List{ID: "l1"}, nil)
	cards.On("ListByList", ctx, "l1").Return([]board.Card{
		{ID: "c1", Position: 1000},
		{ID: "c2", Position: 2000},
		{ID: "c3", Position: 3000},
	}, nil)
	cards.On("UpdatePositions", ctx, "l1", []string{"c3", "c1", "c2"}, []int64{1000, 2000, 3000}).Return(nil)

	svc := board.NewService(nil, lists, cards, nil, nil, nil, nil)
	require.NoError(t, svc.ReorderCards(ctx, "l1", []string{"c3", "c1", "c2"}))
	cards.AssertExpectations(t)
}

func TestBoardService_ReorderCardsUnknownList(t *testing.T) {
	ctx := context.Background()

	lists := &mocks.ListRepository{}
	cards := &mocks.CardRepository{}

	lists.On("Get", ctx, "missing").Return(nil, repository.ErrNotFound)

	svc := board.NewService(nil, lists, cards, nil, nil, nil, nil)
	require.ErrorIs(t, svc.ReorderCards(ctx, "missing", []string{"c1"}), board.ErrListNotFound)
	cards.AssertNotCalled(t, "ListByList", ctx, "missing")
}

func TestBoardService_ReorderCardsRejectsPartialSet(t *testing.T) {
	ctx := context.Background()

	lists := &mocks.ListRepository{}
	cards := &mocks.CardRepository{}

	lists.On("Get", ctx, "l1").Return(&board.List{ID: "l1"}, nil)
	cards.On("ListByList", ctx, "l1").Return([]board.Card{
		{ID: "c1"}, {ID: "c2"},
	}, nil)

	svc := board.NewService(nil, lists, cards, nil, nil, nil, nil)

	err := svc.ReorderCards(ctx, "l1", []string{"c1"})
	require.ErrorIs(t, err, board.ErrInvalidInput)

	err = svc.ReorderCards(ctx, "l1", []string{"c1", "intruso"})
	require.ErrorIs(t, err, board.ErrCardNotInList)

	err = svc.ReorderCards(ctx, "l1", []string{"c1", "c1"})
	require.ErrorIs(t, err, board.ErrCardNotInList)
}

func TestBoardService_DeleteListCascadesPerCard(t *testing.T) {
	ctx := context.Background()

	lists := &mocks.ListRepository{}
	cards := &mocks.CardRepository{}
	cascade := &mocks.CardCascade{}

	lists.On("Get", ctx, "l1").Return(&board.List{ID: "l1"}, nil)
	cards.On("ListByList", ctx, "l1").Return([]board.Card{
		{ID: "c1"}, {ID: "c2"},
	}, nil)
	cascade.On("DeleteCard", ctx, "c1").Return(nil)
	cascade.On("DeleteCard", ctx, "c2").Return(nil)
	lists.On("Delete", ctx, "l1").Return(nil)

	svc := board.NewService(nil, lists, cards, nil, nil, cascade, nil)
	require.NoError(t, svc.DeleteList(ctx, "l1"))
	cascade.AssertExpectations(t)
	lists.AssertExpectations(t)
}

func TestBoardService_DeleteListAbortsOnCascadeFailure(t *testing.T) {
	ctx := context.Background()

	lists := &mocks.ListRepository{}
	cards := &mocks.CardRepository{}
	cascade := &mocks.CardCascade{}

	boom := errors.New("blob store offline")
	lists.On("Get", ctx, "l1").Return(&board.List{ID: "l1"}, nil)
	cards.On("ListByList", ctx, "l1").Return([]board.Card{
		{ID: "c1"}, {ID: "c2"},
	}, nil)
	cascade.On("DeleteCard", ctx, "c1").Return(boom)

	svc := board.NewService(nil, lists, cards, nil, nil, cascade, nil)
	err := svc.DeleteList(ctx, "l1")
	require.ErrorIs(t, err, boom)

	// The list row and the second card must survive.
	cascade.AssertNotCalled(t, "DeleteCard", ctx, "c2")
	lists.AssertNotCalled(t, "Delete", ctx, "l1")
}
