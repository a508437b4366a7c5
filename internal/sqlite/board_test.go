package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Guigui98712/glog-quadro/internal/domain/board"
	"github.com/Guigui98712/glog-quadro/internal/repository"
)

func TestBoardRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewBoardRepository(db)
	ctx := context.Background()

	owner := &board.Owner{ID: "o1", Name: "Obra Centro", CreatedAt: time.Now()}
	require.NoError(t, NewOwnerRepository(db).Create(ctx, owner))

	b := &board.Board{ID: "b1", OwnerID: "o1", CreatedAt: time.Now()}
	err := repo.Create(ctx, b)
	require.NoError(t, err)

	retrieved, err := repo.Get(ctx, "b1")
	require.NoError(t, err)
	require.Equal(t, "b1", retrieved.ID)
	require.Equal(t, "o1", retrieved.OwnerID)

	_, err = repo.Get(ctx, "nonexistent")
	require.Equal(t, repository.ErrNotFound, err)
}

func TestBoardRepository_GetByOwner(t *testing.T) {
	db := NewTestDB(t)
	repo := NewBoardRepository(db)
	ctx := context.Background()

	b := seedBoard(t, db)

	retrieved, err := repo.GetByOwner(ctx, b.OwnerID)
	require.NoError(t, err)
	require.Equal(t, b.ID, retrieved.ID)

	_, err = repo.GetByOwner(ctx, "stranger")
	require.Equal(t, repository.ErrNotFound, err)
}

func TestBoardRepository_OneBoardPerOwner(t *testing.T) {
	db := NewTestDB(t)
	repo := NewBoardRepository(db)
	ctx := context.Background()

	b := seedBoard(t, db)

	// A second board for the same owner violates the unique index
	dup := &board.Board{ID: "b2", OwnerID: b.OwnerID, CreatedAt: time.Now()}
	err := repo.Create(ctx, dup)
	require.Equal(t, repository.ErrDuplicate, err)
}

func TestBoardRepository_CreateUnknownOwner(t *testing.T) {
	db := NewTestDB(t)
	repo := NewBoardRepository(db)
	ctx := context.Background()

	b := &board.Board{ID: "b1", OwnerID: "ghost", CreatedAt: time.Now()}
	err := repo.Create(ctx, b)
	require.Equal(t, repository.ErrForeignKeyViolation, err)
}

func TestBoardRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewBoardRepository(db)
	ctx := context.Background()

	b := seedBoard(t, db)

	err := repo.Delete(ctx, b.ID)
	require.NoError(t, err)

	_, err = repo.Get(ctx, b.ID)
	require.Equal(t, repository.ErrNotFound, err)

	err = repo.Delete(ctx, b.ID)
	require.Equal(t, repository.ErrNotFound, err)
}
