package domain

import (
	"slices"
	"strings"
)

// TrashFolderID is the reserved id the host uses for its Trash pseudo-folder.
const TrashFolderID = "de1e7ede1e7ede1e7ede1e7ede1e7ede"

// Folder is a notebook in the host's folder forest. An empty ParentID marks a root.
type Folder struct {
	ID       string
	ParentID string
	Title    string
}

// IsTrash reports whether the folder is the Trash or lives directly inside it
func (f Folder) IsTrash() bool {
	return f.ID == TrashFolderID || f.ParentID == TrashFolderID
}

// Note is only used to pick a replacement selection
type Note struct {
	ID       string
	ParentID string
	Title    string
}

// FolderRow is a folder positioned for sidebar rendering
type FolderRow struct {
	Folder
	Depth  int
	Hidden bool
}

// FlattenFolders orders the forest depth-first, siblings by title, and marks
// rows whose id is in the hidden set. Folders whose parent is unknown are
// treated as roots so nothing is dropped.
func FlattenFolders(folders []Folder, hidden HiddenSet) []FolderRow {
	known := make(map[string]bool, len(folders))
	for _, f := range folders {
		known[f.ID] = true
	}

	children := make(map[string][]Folder)
	for _, f := range folders {
		parent := f.ParentID
		if parent != "" && !known[parent] {
			parent = ""
		}
		children[parent] = append(children[parent], f)
	}
	for _, list := range children {
		slices.SortStableFunc(list, func(a, b Folder) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		})
	}

	rows := make([]FolderRow, 0, len(folders))
	visited := make(map[string]bool, len(folders))
	var walk func(parent string, depth int)
	walk = func(parent string, depth int) {
		for _, f := range children[parent] {
			if visited[f.ID] {
				continue
			}
			visited[f.ID] = true
			rows = append(rows, FolderRow{Folder: f, Depth: depth, Hidden: hidden.Contains(f.ID)})
			walk(f.ID, depth+1)
		}
	}
	walk("", 0)
	return rows
}
