package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"hidenb/internal/domain"
	"hidenb/internal/ports"
)

// DataSource implements ports.DataSource over fixed folders and notes
type DataSource struct {
	mu      sync.Mutex
	Folders []domain.Folder
	Notes   []domain.Note
	Err     error
}

// Ensure DataSource implements ports.DataSource
var _ ports.DataSource = (*DataSource)(nil)

// ListFolders returns a copy of Folders
func (d *DataSource) ListFolders(_ context.Context) ([]domain.Folder, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Err != nil {
		return nil, d.Err
	}
	return slices.Clone(d.Folders), nil
}

// ListNotes returns Notes sorted by title, case-insensitively
func (d *DataSource) ListNotes(_ context.Context, query ports.NoteQuery) ([]domain.Note, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Err != nil {
		return nil, d.Err
	}
	notes := slices.Clone(d.Notes)
	slices.SortStableFunc(notes, func(a, b domain.Note) int {
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	})
	if strings.EqualFold(query.OrderDir, "DESC") {
		slices.Reverse(notes)
	}
	return notes, nil
}
