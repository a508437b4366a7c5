package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Guigui98712/glog-quadro/internal/domain/board"
	"github.com/Guigui98712/glog-quadro/internal/repository"
)

// SearchRepository provides FTS5 card search for SQLite
type SearchRepository struct {
	db *DB
}

// NewSearchRepository creates a new SearchRepository
func NewSearchRepository(db *DB) *SearchRepository {
	return &SearchRepository{db: db}
}

// SearchCards performs a full-text search over a board's card titles and
// descriptions
func (r *SearchRepository) SearchCards(ctx context.Context, boardID, query string, opts repository.SearchOptions) ([]board.SearchResult, error) {
	baseQuery := `
		SELECT
			c.id, c.list_id, c.title, c.description, c.position, c.due_date, c.created_at,
			l.title as list_title
		FROM cards_fts
		JOIN cards c ON c.rowid = cards_fts.rowid
		JOIN lists l ON l.id = c.list_id
		WHERE l.board_id = ? AND cards_fts MATCH ?
		ORDER BY rank
	`

	args := []any{boardID, query}
	if opts.Limit > 0 {
		baseQuery += " LIMIT ?"
		args = append(args, opts.Limit)
	} else if opts.Offset > 0 {
		// SQLite only accepts OFFSET after a LIMIT; -1 means unbounded
		baseQuery += " LIMIT -1"
	}
	if opts.Offset > 0 {
		baseQuery += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search cards: %w", err)
	}
	defer rows.Close()

	var results []board.SearchResult
	for rows.Next() {
		var result board.SearchResult
		var due sql.NullTime
		err := rows.Scan(
			&result.ID,
			&result.ListID,
			&result.Title,
			&result.Description,
			&result.Position,
			&due,
			&result.CreatedAt,
			&result.ListTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan search result: %w", err)
		}
		if due.Valid {
			t := due.Time
			result.DueDate = &t
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating search results: %w", err)
	}

	return results, nil
}
