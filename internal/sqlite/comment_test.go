package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Guigui98712/glog-quadro/internal/domain/card"
	"github.com/Guigui98712/glog-quadro/internal/repository"
)

func TestCommentRepository_CreateAndList(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	b := seedBoard(t, db)
	l := seedList(t, db, b.ID, "A fazer", 1000)
	c := seedCard(t, db, l.ID, "Pintar parede", 1000)

	comment := &card.Comment{
		ID:        "cm1",
		CardID:    c.ID,
		AuthorID:  "user1",
		Content:   "Falta comprar a tinta",
		CreatedAt: time.Now(),
	}
	err := repo.Create(ctx, comment)
	require.NoError(t, err)

	comments, err := repo.ListByCard(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Equal(t, "cm1", comments[0].ID)
	require.Equal(t, "user1", comments[0].AuthorID)
	require.Equal(t, "Falta comprar a tinta", comments[0].Content)
}

func TestCommentRepository_CreateUnknownCard(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	comment := &card.Comment{ID: "cm1", CardID: "ghost", AuthorID: "user1", Content: "Perdido", CreatedAt: time.Now()}
	err := repo.Create(ctx, comment)
	require.Equal(t, repository.ErrForeignKeyViolation, err)
}

func TestCommentRepository_ListNewestFirst(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	b := seedBoard(t, db)
	l := seedList(t, db, b.ID, "A fazer", 1000)
	c := seedCard(t, db, l.ID, "Pintar parede", 1000)

	for _, id := range []string{"cm1", "cm2", "cm3"} {
		comment := &card.Comment{ID: id, CardID: c.ID, AuthorID: "user1", Content: id, CreatedAt: time.Now()}
		require.NoError(t, repo.Create(ctx, comment))
		time.Sleep(10 * time.Millisecond)
	}

	comments, err := repo.ListByCard(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	require.Equal(t, "cm3", comments[0].ID)
	require.Equal(t, "cm2", comments[1].ID)
	require.Equal(t, "cm1", comments[2].ID)
}

func TestCommentRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	b := seedBoard(t, db)
	l := seedList(t, db, b.ID, "A fazer", 1000)
	c := seedCard(t, db, l.ID, "Pintar parede", 1000)

	comment := &card.Comment{ID: "cm1", CardID: c.ID, AuthorID: "user1", Content: "Feito", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, comment))

	err := repo.Delete(ctx, "cm1")
	require.NoError(t, err)

	err = repo.Delete(ctx, "cm1")
	require.Equal(t, repository.ErrNotFound, err)
}

func TestCommentRepository_DeleteByCard(t *testing.T) {
	db := NewTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	b := seedBoard(t, db)
	l := seedList(t, db, b.ID, "A fazer", 1000)
	c := seedCard(t, db, l.ID, "Pintar parede", 1000)

	for _, id := range []string{"cm1", "cm2"} {
		comment := &card.Comment{ID: id, CardID: c.ID, AuthorID: "user1", Content: id, CreatedAt: time.Now()}
		require.NoError(t, repo.Create(ctx, comment))
	}

	err := repo.DeleteByCard(ctx, c.ID)
	require.NoError(t, err)

	comments, err := repo.ListByCard(ctx, c.ID)
	require.NoError(t, err)
	require.Empty(t, comments)
}
