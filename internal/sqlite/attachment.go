package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Guigui98712/glog-quadro/internal/domain/card"
	"github.com/Guigui98712/glog-quadro/internal/repository"
)

// AttachmentRepository implements card.AttachmentRepository for SQLite.
// Rows only; the files live in blob storage.
type AttachmentRepository struct {
	db *DB
}

// NewAttachmentRepository creates a new AttachmentRepository
func NewAttachmentRepository(db *DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

// Create inserts an attachment row
func (r *AttachmentRepository) Create(ctx context.Context, a *card.Attachment) error {
	query := `
		INSERT INTO attachments (id, card_id, file_name, file_url, file_type, file_size, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.CardID,
		a.FileName,
		a.FileURL,
		a.FileType,
		a.FileSize,
		a.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create attachment: %w", err)
	}

	return nil
}

// Get retrieves an attachment by ID
func (r *AttachmentRepository) Get(ctx context.Context, id string) (*card.Attachment, error) {
	query := `
		SELECT id, card_id, file_name, file_url, file_type, file_size, created_at
		FROM attachments
		WHERE id = ?
	`

	var a card.Attachment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID,
		&a.CardID,
		&a.FileName,
		&a.FileURL,
		&a.FileType,
		&a.FileSize,
		&a.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}

	return &a, nil
}

// Delete removes an attachment row
func (r *AttachmentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM attachments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
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

// ListByCard returns a card's attachments in upload order
func (r *AttachmentRepository) ListByCard(ctx context.Context, cardID string) ([]card.Attachment, error) {
	query := `
		SELECT id, card_id, file_name, file_url, file_type, file_size, created_at
		FROM attachments
		WHERE card_id = ?
		ORDER BY created_at ASC, rowid ASC
	`

	rows, err := r.db.QueryContext(ctx, query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	defer rows.Close()

	var attachments []card.Attachment
	for rows.Next() {
		var a card.Attachment
		err := rows.Scan(
			&a.ID,
			&a.CardID,
			&a.FileName,
			&a.FileURL,
			&a.FileType,
			&a.FileSize,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attachment: %w", err)
		}
		attachments = append(attachments, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attachment rows: %w", err)
	}

	return attachments, nil
}
