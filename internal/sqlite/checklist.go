package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Guigui98712/glog-quadro/internal/domain/card"
	"github.com/Guigui98712/glog-quadro/internal/repository"
)

// ChecklistRepository implements card.ChecklistRepository for SQLite
type ChecklistRepository struct {
	db *DB
}

// NewChecklistRepository creates a new ChecklistRepository
func NewChecklistRepository(db *DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

// Create creates a new checklist
func (r *ChecklistRepository) Create(ctx context.Context, cl *card.Checklist) error {
	query := `
		INSERT INTO checklists (id, card_id, title, position, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, cl.ID, cl.CardID, cl.Title, cl.Position, cl.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create checklist: %w", err)
	}

	return nil
}

// Get retrieves a checklist by ID
func (r *ChecklistRepository) Get(ctx context.Context, id string) (*card.Checklist, error) {
	query := `
		SELECT id, card_id, title, position, created_at
		FROM checklists
		WHERE id = ?
	`

	var cl card.Checklist
	err := r.db.QueryRowContext(ctx, query, id).Scan(&cl.ID, &cl.CardID, &cl.Title, &cl.Position, &cl.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get checklist: %w", err)
	}

	return &cl, nil
}

// Delete removes a checklist row. Items must already be gone.
func (r *ChecklistRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM checklists WHERE id = ?`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to delete checklist: %w", err)
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

// ListByCard returns a card's checklists ordered by position
func (r *ChecklistRepository) ListByCard(ctx context.Context, cardID string) ([]card.Checklist, error) {
	query := `
		SELECT id, card_id, title, position, created_at
		FROM checklists
		WHERE card_id = ?
		ORDER BY position ASC, created_at ASC, rowid ASC
	`

	rows, err := r.db.QueryContext(ctx, query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklists: %w", err)
	}
	defer rows.Close()

	var checklists []card.Checklist
	for rows.Next() {
		var cl card.Checklist
		if err := rows.Scan(&cl.ID, &cl.CardID, &cl.Title, &cl.Position, &cl.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan checklist: %w", err)
		}
		checklists = append(checklists, cl)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating checklist rows: %w", err)
	}

	return checklists, nil
}

// ChecklistItemRepository implements card.ChecklistItemRepository for SQLite
type ChecklistItemRepository struct {
	db *DB
}

// NewChecklistItemRepository creates a new ChecklistItemRepository
func NewChecklistItemRepository(db *DB) *ChecklistItemRepository {
	return &ChecklistItemRepository{db: db}
}

// Create creates a new checklist item
func (r *ChecklistItemRepository) Create(ctx context.Context, item *card.ChecklistItem) error {
	query := `
		INSERT INTO checklist_items (id, checklist_id, title, position, checked, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.ChecklistID,
		item.Title,
		item.Position,
		item.Checked,
		item.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create checklist item: %w", err)
	}

	return nil
}

// Get retrieves a checklist item by ID
func (r *ChecklistItemRepository) Get(ctx context.Context, id string) (*card.ChecklistItem, error) {
	query := `
		SELECT id, checklist_id, title, position, checked, created_at
		FROM checklist_items
		WHERE id = ?
	`

	var item card.ChecklistItem
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.ChecklistID,
		&item.Title,
		&item.Position,
		&item.Checked,
		&item.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get checklist item: %w", err)
	}

	return &item, nil
}

// SetChecked flips the checked flag
func (r *ChecklistItemRepository) SetChecked(ctx context.Context, id string, checked bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE checklist_items SET checked = ? WHERE id = ?`, checked, id)
	if err != nil {
		return fmt.Errorf("failed to set checked: %w", err)
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

// Delete removes a single item
func (r *ChecklistItemRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM checklist_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete checklist item: %w", err)
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

// DeleteByChecklist removes all items of a checklist. Deleting zero rows is
// fine: a repeated cascade sees an already-empty checklist.
func (r *ChecklistItemRepository) DeleteByChecklist(ctx context.Context, checklistID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM checklist_items WHERE checklist_id = ?`, checklistID)
	if err != nil {
		return fmt.Errorf("failed to delete checklist items: %w", err)
	}
	return nil
}

// ListByChecklist returns a checklist's items ordered by position
func (r *ChecklistItemRepository) ListByChecklist(ctx context.Context, checklistID string) ([]card.ChecklistItem, error) {
	query := `
		SELECT id, checklist_id, title, position, checked, created_at
		FROM checklist_items
		WHERE checklist_id = ?
		ORDER BY position ASC, created_at ASC, rowid ASC
	`

	rows, err := r.db.QueryContext(ctx, query, checklistID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist items: %w", err)
	}
	defer rows.Close()

	var items []card.ChecklistItem
	for rows.Next() {
		var item card.ChecklistItem
		err := rows.Scan(
			&item.ID,
			&item.ChecklistID,
			&item.Title,
			&item.Position,
			&item.Checked,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checklist item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating checklist item rows: %w", err)
	}

	return items, nil
}
