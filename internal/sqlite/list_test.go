package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Guigui98712/glog-quadro/internal/domain/board"
	"github.com/Guigui98712/glog-quadro/internal/repository"
)

func TestListRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewListRepository(db)
	ctx := context.Background()

	b := seedBoard(t, db)

	l := &board.List{ID: "l1", BoardID: b.ID, Title: "A fazer", Position: 1000, CreatedAt: time.Now()}
	err := repo.Create(ctx, l)
	require.NoError(t, err)

	retrieved, err := repo.Get(ctx, "l1")
	require.NoError(t, err)
	require.Equal(t, "l1", retrieved.ID)
	require.Equal(t, b.ID, retrieved.BoardID)
	require.Equal(t, "A fazer", retrieved.Title)
	require.Equal(t, int64(1000), retrieved.Position)

	_, err = repo.Get(ctx, "nonexistent")
	require.Equal(t, repository.ErrNotFound, err)
}

func TestListRepository_CreateUnknownBoard(t *testing.T) {
	db := NewTestDB(t)
	repo := NewListRepository(db)
	ctx := context.Background()

	l := &board.List{ID: "l1", BoardID: "ghost", Title: "A fazer", Position: 1000, CreatedAt: time.Now()}
	err := repo.Create(ctx, l)
	require.Equal(t, repository.ErrForeignKeyViolation, err)
}

func TestListRepository_Rename(t *testing.T) {
	db := NewTestDB(t)
	repo := NewListRepository(db)
	ctx := context.Background()

	b := seedBoard(t, db)
	l := seedList(t, db, b.ID, "A fazer", 1000)

	err := repo.Rename(ctx, l.ID, "Em andamento")
	require.NoError(t, err)

	retrieved, err := repo.Get(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, "Em andamento", retrieved.Title)
	require.Equal(t, int64(1000), retrieved.Position)

	err = repo.Rename(ctx, "nonexistent", "Nada")
	require.Equal(t, repository.ErrNotFound, err)
}

func TestListRepository_ListByBoard(t *testing.T) {
	db := NewTestDB(t)
	repo := NewListRepository(db)
	ctx := context.Background()

	b := seedBoard(t, db)
	seedList(t, db, b.ID, "Concluído", 3000)
	seedList(t, db, b.ID, "A fazer", 1000)
	seedList(t, db, b.ID, "Fazendo", 2000)

	lists, err := repo.ListByBoard(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, lists, 3)
	require.Equal(t, "A fazer", lists[0].Title)
	require.Equal(t, "Fazendo", lists[1].Title)
	require.Equal(t, "Concluído", lists[2].Title)

	lists, err = repo.ListByBoard(ctx, "other-board")
	require.NoError(t, err)
	require.Empty(t, lists)
}

func TestListRepository_ListByBoard_PositionTies(t *testing.T) {
	db := NewTestDB(t)
	repo := NewListRepository(db)
	ctx := context.Background()

	b := seedBoard(t, db)
	first := seedList(t, db, b.ID, "Primeira", 1000)
	time.Sleep(10 * time.Millisecond)
	second := seedList(t, db, b.ID, "Segunda", 1000)

	// Equal positions fall back to creation order
	lists, err := repo.ListByBoard(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, lists, 2)
	require.Equal(t, first.ID, lists[0].ID)
	require.Equal(t, second.ID, lists[1].ID)
}

func TestListRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewListRepository(db)
	ctx := context.Background()

	b := seedBoard(t, db)
	l := seedList(t, db, b.ID, "A fazer", 1000)

	err := repo.Delete(ctx, l.ID)
	require.NoError(t, err)

	_, err = repo.Get(ctx, l.ID)
	require.Equal(t, repository.ErrNotFound, err)

	err = repo.Delete(ctx, l.ID)
	require.Equal(t, repository.ErrNotFound, err)
}

func TestListRepository_DeleteWithCards(t *testing.T) {
	db := NewTestDB(t)
	repo := NewListRepository(db)
	ctx := context.Background()

	b := seedBoard(t, db)
	l := seedList(t, db, b.ID, "A fazer", 1000)
	seedCard(t, db, l.ID, "Pintar parede", 1000)

	// The foreign key keeps a list alive while it still has cards
	err := repo.Delete(ctx, l.ID)
	require.Equal(t, repository.ErrForeignKeyViolation, err)
}
