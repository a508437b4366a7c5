package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Guigui98712/glog-quadro/internal/domain/board"
	"github.com/Guigui98712/glog-quadro/internal/repository"
)

// BoardRepository implements board.BoardRepository for SQLite
type BoardRepository struct {
	db *DB
}

// NewBoardRepository creates a new BoardRepository
func NewBoardRepository(db *DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// Create creates a new board. The unique owner index rejects a second board
// for the same owner with repository.ErrDuplicate.
func (r *BoardRepository) Create(ctx context.Context, b *board.Board) error {
	query := `
		INSERT INTO boards (id, owner_id, created_at)
		VALUES (?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, b.ID, b.OwnerID, b.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create board: %w", err)
	}

	return nil
}

// Get retrieves a board by ID
func (r *BoardRepository) Get(ctx context.Context, id string) (*board.Board, error) {
	query := `
		SELECT id, owner_id, created_at
		FROM boards
		WHERE id = ?
	`

	var b board.Board
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.OwnerID, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	return &b, nil
}

// GetByOwner retrieves the one board belonging to an owner
func (r *BoardRepository) GetByOwner(ctx context.Context, ownerID string) (*board.Board, error) {
	query := `
		SELECT id, owner_id, created_at
		FROM boards
		WHERE owner_id = ?
	`

	var b board.Board
	err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&b.ID, &b.OwnerID, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get board by owner: %w", err)
	}

	return &b, nil
}

// Delete removes a board row
func (r *BoardRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
