package application

import (
	"context"
	"fmt"
	"slices"

	"hidenb/internal/domain"
	"hidenb/internal/logger"
	"hidenb/internal/ports"
)

// Redirect describes what the selection guard decided for a blocked folder
type Redirect struct {
	FolderID string
	NoteID   string // empty when every note is inside a hidden folder
}

// SelectionGuard moves the selection off hidden notebooks and the Trash
type SelectionGuard struct {
	settings  *Settings
	data      ports.DataSource
	workspace ports.Workspace
	runner    ports.CommandRunner
}

// NewSelectionGuard creates a new SelectionGuard
func NewSelectionGuard(settings *Settings, data ports.DataSource, workspace ports.Workspace, runner ports.CommandRunner) *SelectionGuard {
	return &SelectionGuard{
		settings:  settings,
		data:      data,
		workspace: workspace,
		runner:    runner,
	}
}

// Evaluate decides whether folder must be left and which note to open instead.
// It returns nil when nothing is hidden, nothing is selected or the folder is
// visible.
func (g *SelectionGuard) Evaluate(ctx context.Context, folder *domain.Folder) (*Redirect, error) {
	hidden, err := g.settings.Hidden(ctx)
	if err != nil {
		return nil, err
	}
	if hidden.Len() == 0 || folder == nil || !domain.IsBlocked(*folder, hidden) {
		return nil, nil
	}

	notes, err := g.data.ListNotes(ctx, ports.NoteQuery{OrderBy: "title", OrderDir: "ASC"})
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	redirect := &Redirect{FolderID: folder.ID}
	if note, ok := domain.FirstVisibleNote(notes, hidden); ok {
		redirect.NoteID = note.ID
	}
	return redirect, nil
}

// Enforce evaluates folder and opens the replacement note, if any
func (g *SelectionGuard) Enforce(ctx context.Context, folder *domain.Folder) (*Redirect, error) {
	redirect, err := g.Evaluate(ctx, folder)
	if err != nil || redirect == nil || redirect.NoteID == "" {
		return redirect, err
	}
	if err := g.runner.Execute(ctx, ports.CommandOpenNote, redirect.NoteID); err != nil {
		return redirect, fmt.Errorf("open note %s: %w", redirect.NoteID, err)
	}

	logger.Info("Redirected selection away from hidden notebook", map[string]interface{}{
		"folder": redirect.FolderID,
		"note":   redirect.NoteID,
	})
	return redirect, nil
}

// HandleSelectionChanged re-checks the newly selected folder. Failures are
// logged and never returned so navigation is not blocked.
func (g *SelectionGuard) HandleSelectionChanged(ctx context.Context) {
	g.enforceSelected(ctx, "selection changed")
}

// HandleSettingsChanged re-checks the current folder when the hidden set changed
func (g *SelectionGuard) HandleSettingsChanged(ctx context.Context, keys []string) {
	if !slices.Contains(keys, SettingHiddenNotebookIDs) {
		return
	}
	g.enforceSelected(ctx, "hidden notebooks changed")
}

func (g *SelectionGuard) enforceSelected(ctx context.Context, trigger string) {
	folder, err := g.workspace.SelectedFolder(ctx)
	if err != nil {
		logger.Error("Selection guard could not read the selected folder", err, map[string]interface{}{
			"trigger": trigger,
		})
		return
	}
	redirect, err := g.Enforce(ctx, folder)
	if err != nil {
		logger.Error("Selection guard failed", err, map[string]interface{}{
			"trigger": trigger,
		})
		return
	}
	if redirect != nil && redirect.NoteID == "" {
		logger.Warn("Selected notebook is hidden but no visible note exists", map[string]interface{}{
			"folder": redirect.FolderID,
		})
	}
}
