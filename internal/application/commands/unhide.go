package commands

import (
	"context"
	"fmt"

	"hidenb/internal/application"
	"hidenb/internal/domain"
)

// UnhideNotebookResult contains the result of revealing one notebook
type UnhideNotebookResult struct {
	FolderID string
	Hidden   []string
	Removed  []string
	Message  string
}

// UnhideNotebookCommand reveals a notebook and its sub-notebooks. The Trash
// stays hidden while the show-trash flag is off.
type UnhideNotebookCommand struct {
	env      Env
	FolderID string
}

// NewUnhideNotebookCommand creates a new UnhideNotebookCommand
func NewUnhideNotebookCommand(env Env, folderID string) *UnhideNotebookCommand {
	return &UnhideNotebookCommand{
		env:      env,
		FolderID: folderID,
	}
}

// Validate checks if the unhide operation is valid
func (c *UnhideNotebookCommand) Validate() error {
	if err := application.ValidateRequired("folderID", c.FolderID); err != nil {
		return err
	}
	if c.FolderID == domain.TrashFolderID {
		return &application.ValidationError{
			Field:   "folderID",
			Message: "the Trash is controlled by the show-trash setting",
		}
	}
	return nil
}

// Execute runs the unhide command
func (c *UnhideNotebookCommand) Execute(ctx context.Context) (*UnhideNotebookResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	hidden, err := c.env.Settings.Hidden(ctx)
	if err != nil {
		return nil, err
	}
	if !hidden.Contains(c.FolderID) {
		return nil, fmt.Errorf("notebook %s: %w", c.FolderID, application.ErrNotFound)
	}

	folders, err := c.env.Data.ListFolders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	if ancestor, ok := domain.HiddenAncestor(c.FolderID, hidden, folders); ok {
		return nil, &application.ValidationError{
			Field:   "folderID",
			Message: fmt.Sprintf("parent notebook %s is hidden; unhide it first", ancestor),
		}
	}
	flags, err := c.env.Settings.Flags(ctx)
	if err != nil {
		return nil, err
	}

	reveal := append([]string{c.FolderID}, domain.Descendants(c.FolderID, folders)...)
	updated := hidden.Without(reveal...)
	if !flags.ShowTrash {
		updated = updated.With(domain.TrashFolderID)
	}

	if err := c.env.Settings.SetHidden(ctx, updated); err != nil {
		return nil, err
	}
	if err := c.env.Stylesheet.Refresh(ctx); err != nil {
		return nil, err
	}

	removed := hidden.Without(updated.IDs()...).IDs()
	return &UnhideNotebookResult{
		FolderID: c.FolderID,
		Hidden:   updated.IDs(),
		Removed:  removed,
		Message:  fmt.Sprintf("Revealed %d notebook(s)", len(removed)),
	}, nil
}
