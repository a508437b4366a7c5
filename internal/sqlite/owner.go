package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Guigui98712/glog-quadro/internal/domain/board"
	"github.com/Guigui98712/glog-quadro/internal/repository"
)

// OwnerRepository implements board.OwnerRepository for SQLite. Owners
// are the construction project records the boards hang off.
type OwnerRepository struct {
	db *DB
}

// NewOwnerRepository creates a new OwnerRepository
func NewOwnerRepository(db *DB) *OwnerRepository {
	return &OwnerRepository{db: db}
}

// Create creates a new owner record
func (r *OwnerRepository) Create(ctx context.Context, o *board.Owner) error {
	query := `
		INSERT INTO owners (id, name, board_id, created_at)
		VALUES (?, ?, ?, ?)
	`

	var boardID any
	if o.BoardID != "" {
		boardID = o.BoardID
	}
	_, err := r.db.ExecContext(ctx, query, o.ID, o.Name, boardID, o.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create owner: %w", err)
	}

	return nil
}

// Get retrieves an owner by ID
func (r *OwnerRepository) Get(ctx context.Context, id string) (*board.Owner, error) {
	query := `
		SELECT id, name, board_id, created_at
		FROM owners
		WHERE id = ?
	`

	var o board.Owner
	var boardID sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.Name, &boardID, &o.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	o.BoardID = boardID.String

	return &o, nil
}

// GetBoardRef returns the owner's stored board reference, empty when the
// owner has never resolved a board
func (r *OwnerRepository) GetBoardRef(ctx context.Context, ownerID string) (string, error) {
	var boardID sql.NullString
	err := r.db.QueryRowContext(ctx, `SELECT board_id FROM owners WHERE id = ?`, ownerID).Scan(&boardID)
	if err == sql.ErrNoRows {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get board ref: %w", err)
	}
	return boardID.String, nil
}

// SetBoardRef persists the board reference onto the owner row
func (r *OwnerRepository) SetBoardRef(ctx context.Context, ownerID, boardID string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE owners SET board_id = ? WHERE id = ?`, boardID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to set board ref: %w", err)
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
