package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Guigui98712/glog-quadro/internal/domain/board"
	"github.com/Guigui98712/glog-quadro/internal/repository"
)

// ListRepository implements board.ListRepository for SQLite
type ListRepository struct {
	db *DB
}

// NewListRepository creates a new ListRepository
func NewListRepository(db *DB) *ListRepository {
	return &ListRepository{db: db}
}

// Create creates a new list
func (r *ListRepository) Create(ctx context.Context, l *board.List) error {
	query := `
		INSERT INTO lists (id, board_id, title, position, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, l.ID, l.BoardID, l.Title, l.Position, l.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create list: %w", err)
	}

	return nil
}

// Get retrieves a list by ID
func (r *ListRepository) Get(ctx context.Context, id string) (*board.List, error) {
	query := `
		SELECT id, board_id, title, position, created_at
		FROM lists
		WHERE id = ?
	`

	var l board.List
	err := r.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.BoardID, &l.Title, &l.Position, &l.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}

	return &l, nil
}

// Rename updates the list title and nothing else
func (r *ListRepository) Rename(ctx context.Context, id, title string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE lists SET title = ? WHERE id = ?`, title, id)
	if err != nil {
		return fmt.Errorf("failed to rename list: %w", err)
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

// Delete removes a list row. Cards must already be gone; the foreign key
// rejects deleting a list that still has cards.
func (r *ListRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM lists WHERE id = ?`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to delete list: %w", err)
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

// ListByBoard returns a board's lists ordered by position, ties broken by
// creation order
func (r *ListRepository) ListByBoard(ctx context.Context, boardID string) ([]board.List, error) {
	query := `
		SELECT id, board_id, title, position, created_at
		FROM lists
		WHERE board_id = ?
		ORDER BY position ASC, created_at ASC, rowid ASC
	`

	rows, err := r.db.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}
	defer rows.Close()

	var lists []board.List
	for rows.Next() {
		var l board.List
		if err := rows.Scan(&l.ID, &l.BoardID, &l.Title, &l.Position, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating list rows: %w", err)
	}

	return lists, nil
}
