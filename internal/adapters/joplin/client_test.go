package joplin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"hidenb/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "secret")
}

func TestClient_ListFoldersPages(t *testing.T) {
	var pages []string
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/folders", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("token"))
		assert.Equal(t, "id,parent_id,title", r.URL.Query().Get("fields"))

		pageNum, _ := strconv.Atoi(r.URL.Query().Get("page"))
		pages = append(pages, r.URL.Query().Get("page"))

		var body map[string]any
		switch pageNum {
		case 1:
			body = map[string]any{
				"items":    []map[string]string{{"id": "A", "parent_id": "", "title": "Archive"}},
				"has_more": true,
			}
		default:
			body = map[string]any{
				"items":    []map[string]string{{"id": "B", "parent_id": "A", "title": "Old"}},
				"has_more": false,
			}
		}
		json.NewEncoder(w).Encode(body)
	})

	folders, err := client.ListFolders(context.Background())
	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Equal(t, "A", folders[0].ID)
	assert.Equal(t, "A", folders[1].ParentID)
	assert.Equal(t, []string{"1", "2"}, pages)
}

func TestClient_ListNotesOrder(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notes", r.URL.Path)
		assert.Equal(t, "title", r.URL.Query().Get("order_by"))
		assert.Equal(t, "ASC", r.URL.Query().Get("order_dir"))
		json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]string{
				{"id": "n1", "parent_id": "A", "title": "Apple"},
				{"id": "n2", "parent_id": "C", "title": "Banana"},
			},
			"has_more": false,
		})
	})

	notes, err := client.ListNotes(context.Background(), ports.NoteQuery{OrderBy: "title", OrderDir: "asc"})
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "n1", notes[0].ID)
	assert.Equal(t, "C", notes[1].ParentID)
}

func TestClient_Errors(t *testing.T) {
	t.Run("forbidden", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Invalid token", http.StatusForbidden)
		})
		_, err := client.ListFolders(context.Background())
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("server error", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})
		_, err := client.ListNotes(context.Background(), ports.NoteQuery{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("bad json", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{"))
		})
		_, err := client.ListFolders(context.Background())
		assert.Error(t, err)
	})
}

func TestClient_Ping(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ping" {
			w.Write([]byte("JoplinClipperServer"))
			return
		}
		http.NotFound(w, r)
	})
	assert.NoError(t, client.Ping(context.Background()))
}
