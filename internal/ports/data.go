package ports

import (
	"context"

	"hidenb/internal/domain"
)

// NoteQuery controls note listing order
type NoteQuery struct {
	OrderBy  string // "title" when empty
	OrderDir string // "ASC" or "DESC", ASC when empty
}

// DataSource gives read access to the host's folders and notes
type DataSource interface {
	ListFolders(ctx context.Context) ([]domain.Folder, error)
	ListNotes(ctx context.Context, query NoteQuery) ([]domain.Note, error)
}
