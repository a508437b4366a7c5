package sqlite

import (
	"context"
	"fmt"

	"github.com/Guigui98712/glog-quadro/internal/domain/card"
	"github.com/Guigui98712/glog-quadro/internal/repository"
)

// CommentRepository implements card.CommentRepository for SQLite
type CommentRepository struct {
	db *DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a comment. There is no update: comments are immutable.
func (r *CommentRepository) Create(ctx context.Context, c *card.Comment) error {
	query := `
		INSERT INTO comments (id, card_id, author_id, content, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, c.ID, c.CardID, c.AuthorID, c.Content, c.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// Delete removes a comment
func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
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

// DeleteByCard removes all comments of a card
func (r *CommentRepository) DeleteByCard(ctx context.Context, cardID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE card_id = ?`, cardID)
	if err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}
	return nil
}

// ListByCard returns a card's comments newest first, ties broken by
// insertion order
func (r *CommentRepository) ListByCard(ctx context.Context, cardID string) ([]card.Comment, error) {
	query := `
		SELECT id, card_id, author_id, content, created_at
		FROM comments
		WHERE card_id = ?
		ORDER BY created_at DESC, rowid DESC
	`

	rows, err := r.db.QueryContext(ctx, query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []card.Comment
	for rows.Next() {
		var c card.Comment
		if err := rows.Scan(&c.ID, &c.CardID, &c.AuthorID, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}
