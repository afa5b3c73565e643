package joplin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hidenb/internal/domain"
	"hidenb/internal/logger"
	"hidenb/internal/ports"
)

// DefaultAPIURL is where the desktop app's Web Clipper service listens
const DefaultAPIURL = "http://127.0.0.1:41184"

const pageLimit = 100

// ErrUnauthorized is returned when the API rejects the token
var ErrUnauthorized = errors.New("joplin: invalid or missing API token")

// Client implements ports.DataSource over the Joplin Data API
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Ensure Client implements ports.DataSource
var _ ports.DataSource = (*Client)(nil)

// NewClient creates a Data API client. An empty baseURL uses DefaultAPIURL.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type page[T any] struct {
	Items   []T  `json:"items"`
	HasMore bool `json:"has_more"`
}

type folderItem struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id"`
	Title    string `json:"title"`
}

type noteItem struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id"`
	Title    string `json:"title"`
}

// Ping checks that the service is running
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ping", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("joplin service unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("joplin ping: status %d", resp.StatusCode)
	}
	return nil
}

// ListFolders returns every notebook
func (c *Client) ListFolders(ctx context.Context) ([]domain.Folder, error) {
	items, err := fetchAll[folderItem](ctx, c, "/folders", url.Values{
		"fields": {"id,parent_id,title"},
	})
	if err != nil {
		return nil, err
	}

	folders := make([]domain.Folder, len(items))
	for i, it := range items {
		folders[i] = domain.Folder{ID: it.ID, ParentID: it.ParentID, Title: it.Title}
	}
	return folders, nil
}

// ListNotes returns every note in the requested order
func (c *Client) ListNotes(ctx context.Context, q ports.NoteQuery) ([]domain.Note, error) {
	orderBy := q.OrderBy
	if orderBy == "" {
		orderBy = "title"
	}
	orderDir := strings.ToUpper(q.OrderDir)
	if orderDir == "" {
		orderDir = "ASC"
	}

	items, err := fetchAll[noteItem](ctx, c, "/notes", url.Values{
		"fields":    {"id,parent_id,title"},
		"order_by":  {orderBy},
		"order_dir": {orderDir},
	})
	if err != nil {
		return nil, err
	}

	notes := make([]domain.Note, len(items))
	for i, it := range items {
		notes[i] = domain.Note{ID: it.ID, ParentID: it.ParentID, Title: it.Title}
	}
	return notes, nil
}

// fetchAll follows has_more until the collection is exhausted
func fetchAll[T any](ctx context.Context, c *Client, path string, params url.Values) ([]T, error) {
	var all []T
	for pageNum := 1; ; pageNum++ {
		q := url.Values{}
		for k, v := range params {
			q[k] = v
		}
		q.Set("token", c.token)
		q.Set("limit", strconv.Itoa(pageLimit))
		q.Set("page", strconv.Itoa(pageNum))

		var p page[T]
		if err := c.get(ctx, path, q, &p); err != nil {
			return nil, err
		}
		all = append(all, p.Items...)

		logger.Debug("Fetched Joplin page", map[string]interface{}{
			"path":  path,
			"page":  pageNum,
			"items": len(p.Items),
		})

		if !p.HasMore || len(p.Items) == 0 {
			return all, nil
		}
	}
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decode response: %w", path, err)
	}
	return nil
}
