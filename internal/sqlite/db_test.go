package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Guigui98712/glog-quadro/internal/domain/board"
	"github.com/Guigui98712/glog-quadro/internal/domain/card"
	"github.com/Guigui98712/glog-quadro/internal/domain/label"
)

// Every repository satisfies the interface its consuming domain service
// declares.
var (
	_ board.BoardRepository        = (*BoardRepository)(nil)
	_ board.ListRepository         = (*ListRepository)(nil)
	_ board.CardRepository         = (*CardRepository)(nil)
	_ board.CardLabelRepository    = (*CardLabelRepository)(nil)
	_ board.OwnerRepository        = (*OwnerRepository)(nil)
	_ card.CardReader              = (*CardRepository)(nil)
	_ card.ChecklistRepository     = (*ChecklistRepository)(nil)
	_ card.ChecklistItemRepository = (*ChecklistItemRepository)(nil)
	_ card.CardLabelRepository     = (*CardLabelRepository)(nil)
	_ card.CommentRepository       = (*CommentRepository)(nil)
	_ card.AttachmentRepository    = (*AttachmentRepository)(nil)
	_ label.Repository             = (*LabelRepository)(nil)
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// seedBoard creates an owner with a board and returns the board
func seedBoard(t *testing.T, db *DB) *board.Board {
	t.Helper()
	ctx := context.Background()

	owner := &board.Owner{
		ID:        uuid.NewString(),
		Name:      "Obra Teste",
		CreatedAt: time.Now(),
	}
	require.NoError(t, NewOwnerRepository(db).Create(ctx, owner))

	b := &board.Board{
		ID:        uuid.NewString(),
		OwnerID:   owner.ID,
		CreatedAt: time.Now(),
	}
	require.NoError(t, NewBoardRepository(db).Create(ctx, b))

	return b
}

// seedList creates a list on the given board
func seedList(t *testing.T, db *DB, boardID, title string, position int64) *board.List {
	t.Helper()

	l := &board.List{
		ID:        uuid.NewString(),
		BoardID:   boardID,
		Title:     title,
		Position:  position,
		CreatedAt: time.Now(),
	}
	require.NoError(t, NewListRepository(db).Create(context.Background(), l))

	return l
}

// seedCard creates a card on the given list
func seedCard(t *testing.T, db *DB, listID, title string, position int64) *board.Card {
	t.Helper()

	c := &board.Card{
		ID:        uuid.NewString(),
		ListID:    listID,
		Title:     title,
		Position:  position,
		CreatedAt: time.Now(),
	}
	require.NoError(t, NewCardRepository(db).Create(context.Background(), c))

	return c
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	// Verify all tables were created
	tables := []string{
		"owners",
		"boards",
		"lists",
		"cards",
		"labels",
		"card_labels",
		"checklists",
		"checklist_items",
		"comments",
		"attachments",
		"cards_fts",
		"api_keys",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

// TestFTSIndex verifies the full-text search index is synchronized
func TestFTSIndex(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	b := seedBoard(t, db)
	l := seedList(t, db, b.ID, "A fazer", 1000)
	c := seedCard(t, db, l.ID, "Pintar parede externa", 1000)

	// The insert trigger should have populated the index
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cards_fts WHERE cards_fts MATCH ?`,
		"parede").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count, "should find 1 card matching 'parede'")

	// Update the card and verify the index follows
	_, err = db.ExecContext(ctx, `UPDATE cards SET title = ? WHERE id = ?`, "Instalar janela", c.ID)
	require.NoError(t, err)

	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cards_fts WHERE cards_fts MATCH ?`,
		"janela").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count, "should find 1 card matching 'janela' after update")

	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cards_fts WHERE cards_fts MATCH ?`,
		"parede").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 0, count, "should find 0 cards matching 'parede' after update")

	// Delete the card and verify the index is emptied
	_, err = db.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, c.ID)
	require.NoError(t, err)

	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cards_fts WHERE cards_fts MATCH ?`,
		"janela").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 0, count, "should find 0 cards after delete")
}
