package functional_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Guigui98712/glog-quadro/internal/domain/board"
	"github.com/Guigui98712/glog-quadro/internal/sqlite"
	"github.com/Guigui98712/glog-quadro/internal/testserver"
)

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
	ID      any             `json:"id,omitempty"`
}

type rpcError struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func rpcCall(t *testing.T, ts *testserver.TestServer, method string, params any) rpcResponse {
	t.Helper()

	payload := map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"id":      1,
	}
	if params != nil {
		payload["params"] = params
	}

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+"/mcp", bytes.NewBuffer(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+ts.Token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(bodyBytes))
	}

	var result rpcResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

// call makes an RPC call and decodes the result into out
func call(t *testing.T, ts *testserver.TestServer, method string, params, out any) {
	t.Helper()

	resp := rpcCall(t, ts, method, params)
	require.Nil(t, resp.Error, "RPC error on %s: %v", method, resp.Error)
	if out != nil {
		require.NoError(t, json.Unmarshal(resp.Result, out))
	}
}

// seedOwner inserts an owner row through the server's database handle
func seedOwner(t *testing.T, ts *testserver.TestServer, name string) string {
	t.Helper()

	owner := &board.Owner{ID: uuid.NewString(), Name: name, CreatedAt: time.Now()}
	require.NoError(t, sqlite.NewOwnerRepository(ts.DB).Create(context.Background(), owner))
	return owner.ID
}

func TestFunctional_Authentication(t *testing.T) {
	ts := testserver.New(t, "secret-token", "user1")

	// No Authorization header
	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+"/mcp",
		bytes.NewBufferString(`{"jsonrpc":"2.0","method":"list_labels","id":1}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Wrong token
	req, err = http.NewRequest(http.MethodPost, ts.Server.URL+"/mcp",
		bytes.NewBufferString(`{"jsonrpc":"2.0","method":"list_labels","id":1}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer wrong-token")

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestFunctional_Health(t *testing.T) {
	ts := testserver.New(t, "secret-token", "user1")

	resp, err := http.Get(ts.Server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFunctional_BoardWorkflow(t *testing.T) {
	ts := testserver.New(t, "secret-token", "user1")
	ownerID := seedOwner(t, ts, "Obra Jardins")

	// First get_board creates the board on the fly
	var tree struct {
		ID    string `json:"id"`
		Lists []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
			Cards []struct {
				ID    string `json:"id"`
				Title string `json:"title"`
			} `json:"cards"`
		} `json:"lists"`
	}
	call(t, ts, "get_board", map[string]any{"owner_id": ownerID}, &tree)
	require.NotEmpty(t, tree.ID)
	require.Empty(t, tree.Lists)
	boardID := tree.ID

	// A second resolve lands on the same board
	call(t, ts, "get_board", map[string]any{"owner_id": ownerID}, &tree)
	require.Equal(t, boardID, tree.ID)

	var list struct {
		ID string `json:"id"`
	}
	call(t, ts, "create_list", map[string]any{"board_id": boardID, "title": "A fazer"}, &list)

	var created struct {
		ID string `json:"id"`
	}
	call(t, ts, "create_card", map[string]any{
		"list_id": list.ID,
		"title":   "Pintar parede externa",
		"labels":  []string{"Urgente"},
	}, &created)

	// The default catalog label came back attached
	var detail struct {
		ID     string `json:"id"`
		Labels []struct {
			Title string `json:"title"`
			Color string `json:"color"`
		} `json:"labels"`
		Checklists []struct {
			ID    string `json:"id"`
			Items []struct {
				ID      string `json:"id"`
				Checked bool   `json:"checked"`
			} `json:"items"`
		} `json:"checklists"`
		Comments []struct {
			AuthorID string `json:"author_id"`
			Content  string `json:"content"`
		} `json:"comments"`
		Attachments []struct {
			ID       string `json:"id"`
			FileName string `json:"file_name"`
			FileURL  string `json:"file_url"`
		} `json:"attachments"`
	}
	call(t, ts, "get_card", map[string]any{"card_id": created.ID}, &detail)
	require.Len(t, detail.Labels, 1)
	require.Equal(t, "Urgente", detail.Labels[0].Title)
	require.Equal(t, "#eb5a46", detail.Labels[0].Color)

	var checklist struct {
		ID string `json:"id"`
	}
	call(t, ts, "add_checklist", map[string]any{"card_id": created.ID, "title": "Materiais"}, &checklist)

	var item struct {
		ID string `json:"id"`
	}
	call(t, ts, "add_checklist_item", map[string]any{"checklist_id": checklist.ID, "title": "Tinta"}, &item)
	call(t, ts, "toggle_checklist_item", map[string]any{
		"checklist_id": checklist.ID,
		"item_id":      item.ID,
		"checked":      true,
	}, nil)

	// Comment author falls back to the authenticated user
	call(t, ts, "add_comment", map[string]any{"card_id": created.ID, "content": "Parede norte pronta"}, nil)

	content := base64.StdEncoding.EncodeToString([]byte("conteudo da planta"))
	call(t, ts, "add_attachment", map[string]any{
		"card_id":   created.ID,
		"file_name": "planta.pdf",
		"file_type": "application/pdf",
		"content":   content,
	}, nil)
	require.Equal(t, 1, ts.Blobs.Len())

	call(t, ts, "get_card", map[string]any{"card_id": created.ID}, &detail)
	require.Len(t, detail.Checklists, 1)
	require.Len(t, detail.Checklists[0].Items, 1)
	require.True(t, detail.Checklists[0].Items[0].Checked)
	require.Len(t, detail.Comments, 1)
	require.Equal(t, "user1", detail.Comments[0].AuthorID)
	require.Len(t, detail.Attachments, 1)
	require.Equal(t, "planta.pdf", detail.Attachments[0].FileName)

	var results []struct {
		ID        string `json:"id"`
		ListTitle string `json:"list_title"`
	}
	call(t, ts, "search_cards", map[string]any{"board_id": boardID, "query": "parede"}, &results)
	require.Len(t, results, 1)
	require.Equal(t, created.ID, results[0].ID)
	require.Equal(t, "A fazer", results[0].ListTitle)

	// Cascading delete clears the blob store too
	call(t, ts, "delete_card", map[string]any{"card_id": created.ID}, nil)
	require.Equal(t, 0, ts.Blobs.Len())

	resp := rpcCall(t, ts, "get_card", map[string]any{"card_id": created.ID})
	require.NotNil(t, resp.Error)
	require.Contains(t, resp.Error.Message, "CARD_NOT_FOUND")
}

func TestFunctional_UnknownOwner(t *testing.T) {
	ts := testserver.New(t, "secret-token", "user1")

	resp := rpcCall(t, ts, "get_board", map[string]any{"owner_id": "ghost"})
	require.NotNil(t, resp.Error)
	require.Contains(t, resp.Error.Message, "OWNER_NOT_FOUND")
}

func TestFunctional_Labels(t *testing.T) {
	ts := testserver.New(t, "secret-token", "user1")

	var labels []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	call(t, ts, "list_labels", nil, &labels)
	require.Len(t, labels, 3)

	var created struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	call(t, ts, "create_label", map[string]any{"title": "Elétrica", "color": "#0079bf"}, &created)

	call(t, ts, "list_labels", nil, &labels)
	require.Len(t, labels, 4)

	resp := rpcCall(t, ts, "create_label", map[string]any{"title": "Elétrica", "color": "#000000"})
	require.NotNil(t, resp.Error)
	require.Contains(t, resp.Error.Message, "DUPLICATE_LABEL")
}
