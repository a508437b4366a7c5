package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Guigui98712/glog-quadro/internal/domain/board"
	"github.com/Guigui98712/glog-quadro/internal/repository"
)

// CardRepository implements board.CardRepository and card.CardReader for SQLite
type CardRepository struct {
	db *DB
}

// NewCardRepository creates a new CardRepository
func NewCardRepository(db *DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create creates a new card
func (r *CardRepository) Create(ctx context.Context, c *board.Card) error {
	query := `
		INSERT INTO cards (id, list_id, title, description, position, due_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.ListID,
		c.Title,
		c.Description,
		c.Position,
		nullTime(c.DueDate),
		c.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create card: %w", err)
	}

	return nil
}

// Get retrieves a card by ID
func (r *CardRepository) Get(ctx context.Context, id string) (*board.Card, error) {
	query := `
		SELECT id, list_id, title, description, position, due_date, created_at
		FROM cards
		WHERE id = ?
	`

	return scanCardRow(r.db.QueryRowContext(ctx, query, id))
}

// Update writes a card's own fields. List membership and position are only
// changed through Move and UpdatePositions.
func (r *CardRepository) Update(ctx context.Context, c *board.Card) error {
	query := `
		UPDATE cards
		SET title = ?, description = ?, due_date = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, c.Title, c.Description, nullTime(c.DueDate), c.ID)
	if err != nil {
		return fmt.Errorf("failed to update card: %w", err)
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

// Delete removes a card row. Sub-entity rows must already be gone.
func (r *CardRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to delete card: %w", err)
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

// ListByList returns a list's cards ordered by position, ties broken by
// creation order
func (r *CardRepository) ListByList(ctx context.Context, listID string) ([]board.Card, error) {
	query := `
		SELECT id, list_id, title, description, position, due_date, created_at
		FROM cards
		WHERE list_id = ?
		ORDER BY position ASC, created_at ASC, rowid ASC
	`

	rows, err := r.db.QueryContext(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	var cards []board.Card
	for rows.Next() {
		c, err := scanCardRow(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating card rows: %w", err)
	}

	return cards, nil
}

// Move sets list membership and position in one row update, so the pair
// changes atomically
func (r *CardRepository) Move(ctx context.Context, cardID, targetListID string, position int64) error {
	query := `
		UPDATE cards
		SET list_id = ?, position = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, targetListID, position, cardID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to move card: %w", err)
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

// UpdatePositions reindexes a list's cards inside one transaction
func (r *CardRepository) UpdatePositions(ctx context.Context, listID string, cardIDs []string, positions []int64) error {
	if len(cardIDs) != len(positions) {
		return repository.ErrInvalidInput
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE cards
		SET position = ?
		WHERE id = ? AND list_id = ?
	`
	for i, id := range cardIDs {
		result, err := tx.ExecContext(ctx, query, positions[i], id, listID)
		if err != nil {
			return fmt.Errorf("failed to update position of card %s: %w", id, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if affected == 0 {
			return repository.ErrNotFound
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCardRow(row rowScanner) (*board.Card, error) {
	var c board.Card
	var due sql.NullTime
	err := row.Scan(&c.ID, &c.ListID, &c.Title, &c.Description, &c.Position, &due, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan card: %w", err)
	}
	if due.Valid {
		t := due.Time
		c.DueDate = &t
	}
	return &c, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
