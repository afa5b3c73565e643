package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hidenb/internal/domain"
	"hidenb/internal/ports"
)

// ProfileDatabase is the file Joplin keeps its notes in, relative to the profile directory
const ProfileDatabase = "database.sqlite"

// noteOrderColumns maps accepted NoteQuery.OrderBy values to columns
var noteOrderColumns = map[string]string{
	"":             "title COLLATE NOCASE",
	"title":        "title COLLATE NOCASE",
	"updated_time": "updated_time",
	"created_time": "created_time",
	"order":        "\"order\"",
}

// ProfileSource implements ports.DataSource by reading a Joplin profile
// database directly. It never writes to the profile.
type ProfileSource struct {
	db         *sql.DB
	hasDeleted bool
}

// Ensure ProfileSource implements ports.DataSource
var _ ports.DataSource = (*ProfileSource)(nil)

// OpenProfile opens the database.sqlite inside profileDir read-only
func OpenProfile(profileDir string) (*ProfileSource, error) {
	profileDir, err := expandHome(profileDir)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(profileDir, ProfileDatabase)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("joplin profile database: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	p := &ProfileSource{db: db}
	// Profiles created before the trash feature have no deleted_time column.
	p.hasDeleted, err = p.hasColumn("folders", "deleted_time")
	if err != nil {
		db.Close()
		return nil, err
	}
	return p, nil
}

// Close closes the database connection
func (p *ProfileSource) Close() error {
	return p.db.Close()
}

// ListFolders returns every notebook that is not in the trash
func (p *ProfileSource) ListFolders(ctx context.Context) ([]domain.Folder, error) {
	query := `SELECT id, parent_id, title FROM folders`
	if p.hasDeleted {
		query += ` WHERE deleted_time = 0`
	}

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var folders []domain.Folder
	for rows.Next() {
		var f domain.Folder
		var parent sql.NullString
		if err := rows.Scan(&f.ID, &parent, &f.Title); err != nil {
			return nil, err
		}
		f.ParentID = parent.String
		folders = append(folders, f)
	}
	return folders, rows.Err()
}

// ListNotes returns every note that is neither a conflict copy nor trashed
func (p *ProfileSource) ListNotes(ctx context.Context, q ports.NoteQuery) ([]domain.Note, error) {
	column, ok := noteOrderColumns[q.OrderBy]
	if !ok {
		return nil, fmt.Errorf("unsupported note order: %s", q.OrderBy)
	}
	dir := "ASC"
	if strings.EqualFold(q.OrderDir, "DESC") {
		dir = "DESC"
	}

	query := `SELECT id, parent_id, title FROM notes WHERE is_conflict = 0`
	if p.hasDeleted {
		query += ` AND deleted_time = 0`
	}
	query += fmt.Sprintf(" ORDER BY %s %s, id", column, dir)

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		var n domain.Note
		var parent sql.NullString
		if err := rows.Scan(&n.ID, &parent, &n.Title); err != nil {
			return nil, err
		}
		n.ParentID = parent.String
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (p *ProfileSource) hasColumn(table, column string) (bool, error) {
	rows, err := p.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("failed to inspect %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
