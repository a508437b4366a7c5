package testserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Guigui98712/glog-quadro/internal/blob"
	"github.com/Guigui98712/glog-quadro/internal/domain/board"
	"github.com/Guigui98712/glog-quadro/internal/domain/card"
	"github.com/Guigui98712/glog-quadro/internal/domain/label"
	"github.com/Guigui98712/glog-quadro/internal/mcp"
	"github.com/Guigui98712/glog-quadro/internal/sqlite"
	"github.com/Guigui98712/glog-quadro/internal/transport"
)

// TestServer is a fully wired HTTP stack backed by an in-memory
// database and an in-memory blob store.
type TestServer struct {
	Server *httptest.Server
	DB     *sqlite.DB
	Blobs  *blob.MemoryStore
	Token  string
	UserID string
}

func New(t *testing.T, token, userID string) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	boardRepo := sqlite.NewBoardRepository(db)
	listRepo := sqlite.NewListRepository(db)
	cardRepo := sqlite.NewCardRepository(db)
	checklistRepo := sqlite.NewChecklistRepository(db)
	itemRepo := sqlite.NewChecklistItemRepository(db)
	labelRepo := sqlite.NewLabelRepository(db)
	cardLabelRepo := sqlite.NewCardLabelRepository(db)
	commentRepo := sqlite.NewCommentRepository(db)
	attachmentRepo := sqlite.NewAttachmentRepository(db)
	ownerRepo := sqlite.NewOwnerRepository(db)
	searchRepo := sqlite.NewSearchRepository(db)

	blobs := blob.NewMemoryStore()

	labelSvc := label.NewService(labelRepo, nil)
	cardSvc := card.NewService(cardRepo, checklistRepo, itemRepo, cardLabelRepo, labelSvc, commentRepo, attachmentRepo, blobs, nil)
	boardSvc := board.NewService(boardRepo, listRepo, cardRepo, cardLabelRepo, labelSvc, cardSvc, nil)
	resolver := board.NewResolver(boardRepo, ownerRepo, nil)

	_, err = labelSvc.EnsureDefaults(context.Background())
	require.NoError(t, err)

	handler := mcp.NewHandler(boardSvc, resolver, cardSvc, labelSvc, searchRepo)

	keyResolver := &apiKeyResolver{db: db}
	server := httptest.NewServer(transport.NewServer(handler, transport.AuthMiddleware(keyResolver)))

	ts := &TestServer{
		Server: server,
		DB:     db,
		Blobs:  blobs,
		Token:  token,
		UserID: userID,
	}

	require.NoError(t, ts.AddAPIKey(token, userID))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}

func (ts *TestServer) AddAPIKey(token, userID string) error {
	hash := hashToken(token)
	_, err := ts.DB.Exec(
		`INSERT INTO api_keys (key_hash, user_id, created_at) VALUES (?, ?, ?)`,
		hash, userID, time.Now(),
	)
	return err
}

type apiKeyResolver struct {
	db *sqlite.DB
}

func (r *apiKeyResolver) ResolveUser(ctx context.Context, token string) (string, error) {
	hash := hashToken(token)
	var userID string
	err := r.db.QueryRowContext(ctx, `SELECT user_id FROM api_keys WHERE key_hash = ?`, hash).Scan(&userID)
	if err != nil || userID == "" {
		return "", transport.ErrUnauthorized
	}
	return userID, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
