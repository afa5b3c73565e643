package ports

import (
	"context"

	"hidenb/internal/domain"
)

// CommandOpenNote selects a note in the host. Its single argument is the note ID.
const CommandOpenNote = "openNote"

// Workspace exposes the host's current selection
type Workspace interface {
	// SelectedFolder returns nil when no folder is selected
	SelectedFolder(ctx context.Context) (*domain.Folder, error)
}

// CommandRunner executes a named host command
type CommandRunner interface {
	Execute(ctx context.Context, name string, args ...string) error
}
