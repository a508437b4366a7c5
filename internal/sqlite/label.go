package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Guigui98712/glog-quadro/internal/domain/label"
	"github.com/Guigui98712/glog-quadro/internal/repository"
)

// LabelRepository implements label.Repository for SQLite
type LabelRepository struct {
	db *DB
}

// NewLabelRepository creates a new LabelRepository
func NewLabelRepository(db *DB) *LabelRepository {
	return &LabelRepository{db: db}
}

// Create inserts a catalog label. The unique title index reports a
// duplicate as repository.ErrDuplicate.
func (r *LabelRepository) Create(ctx context.Context, lbl *label.Label) error {
	query := `
		INSERT INTO labels (id, title, color, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, lbl.ID, lbl.Title, lbl.Color, lbl.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create label: %w", err)
	}

	return nil
}

// Get retrieves a label by ID
func (r *LabelRepository) Get(ctx context.Context, id string) (*label.Label, error) {
	query := `
		SELECT id, title, color, created_at
		FROM labels
		WHERE id = ?
	`

	var lbl label.Label
	err := r.db.QueryRowContext(ctx, query, id).Scan(&lbl.ID, &lbl.Title, &lbl.Color, &lbl.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get label: %w", err)
	}

	return &lbl, nil
}

// GetByTitle retrieves a label by its unique title
func (r *LabelRepository) GetByTitle(ctx context.Context, title string) (*label.Label, error) {
	query := `
		SELECT id, title, color, created_at
		FROM labels
		WHERE title = ?
	`

	var lbl label.Label
	err := r.db.QueryRowContext(ctx, query, title).Scan(&lbl.ID, &lbl.Title, &lbl.Color, &lbl.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get label by title: %w", err)
	}

	return &lbl, nil
}

// List returns the full catalog ordered by creation
func (r *LabelRepository) List(ctx context.Context) ([]label.Label, error) {
	query := `
		SELECT id, title, color, created_at
		FROM labels
		ORDER BY created_at ASC, rowid ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	defer rows.Close()

	var labels []label.Label
	for rows.Next() {
		var lbl label.Label
		if err := rows.Scan(&lbl.ID, &lbl.Title, &lbl.Color, &lbl.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan label: %w", err)
		}
		labels = append(labels, lbl)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating label rows: %w", err)
	}

	return labels, nil
}

// CardLabelRepository implements card.CardLabelRepository for SQLite
type CardLabelRepository struct {
	db *DB
}

// NewCardLabelRepository creates a new CardLabelRepository
func NewCardLabelRepository(db *DB) *CardLabelRepository {
	return &CardLabelRepository{db: db}
}

// Add inserts a join row
func (r *CardLabelRepository) Add(ctx context.Context, cardID, labelID string) error {
	query := `
		INSERT INTO card_labels (card_id, label_id)
		VALUES (?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, cardID, labelID)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to add card label: %w", err)
	}

	return nil
}

// Remove deletes a join row
func (r *CardLabelRepository) Remove(ctx context.Context, cardID, labelID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM card_labels WHERE card_id = ? AND label_id = ?`, cardID, labelID)
	if err != nil {
		return fmt.Errorf("failed to remove card label: %w", err)
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

// Exists reports whether the join row is present
func (r *CardLabelRepository) Exists(ctx context.Context, cardID, labelID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM card_labels WHERE card_id = ? AND label_id = ?`,
		cardID, labelID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check card label: %w", err)
	}
	return count > 0, nil
}

// DeleteByCard removes all of a card's join rows. The catalog labels
// themselves are untouched.
func (r *CardLabelRepository) DeleteByCard(ctx context.Context, cardID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM card_labels WHERE card_id = ?`, cardID)
	if err != nil {
		return fmt.Errorf("failed to delete card labels: %w", err)
	}
	return nil
}

// ListByCard returns the normalized catalog labels attached to a card
func (r *CardLabelRepository) ListByCard(ctx context.Context, cardID string) ([]label.Label, error) {
	query := `
		SELECT l.id, l.title, l.color, l.created_at
		FROM card_labels cl
		JOIN labels l ON l.id = cl.label_id
		WHERE cl.card_id = ?
		ORDER BY l.created_at ASC, l.rowid ASC
	`

	rows, err := r.db.QueryContext(ctx, query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list card labels: %w", err)
	}
	defer rows.Close()

	var labels []label.Label
	for rows.Next() {
		var lbl label.Label
		if err := rows.Scan(&lbl.ID, &lbl.Title, &lbl.Color, &lbl.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan card label: %w", err)
		}
		labels = append(labels, lbl)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating card label rows: %w", err)
	}

	return labels, nil
}
