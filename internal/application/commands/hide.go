package commands

import (
	"context"
	"fmt"

	"hidenb/internal/application"
	"hidenb/internal/domain"
	"hidenb/internal/logger"
)

// HideNotebookResult contains the result of hiding a notebook
type HideNotebookResult struct {
	FolderID      string
	Hidden        []string // full hidden set after the command
	Added         []string // ids newly hidden, target first
	AlreadyHidden bool
	Message       string
}

// HideNotebookCommand hides a notebook together with all of its sub-notebooks
type HideNotebookCommand struct {
	env      Env
	FolderID string
}

// NewHideNotebookCommand creates a new HideNotebookCommand
func NewHideNotebookCommand(env Env, folderID string) *HideNotebookCommand {
	return &HideNotebookCommand{
		env:      env,
		FolderID: folderID,
	}
}

// Validate checks if the hide operation is valid
func (c *HideNotebookCommand) Validate() error {
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

// Execute runs the hide command. When hiding would leave no notebook visible
// the user is notified and a PolicyError is returned; nothing is written.
func (c *HideNotebookCommand) Execute(ctx context.Context) (*HideNotebookResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	hidden, err := c.env.Settings.Hidden(ctx)
	if err != nil {
		return nil, err
	}
	folders, err := c.env.Data.ListFolders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}

	if !domain.MayHide(c.FolderID, hidden, folders) {
		return nil, c.refuse(ctx)
	}

	if hidden.Contains(c.FolderID) {
		return &HideNotebookResult{
			FolderID:      c.FolderID,
			Hidden:        hidden.IDs(),
			AlreadyHidden: true,
			Message:       fmt.Sprintf("Notebook %s is already hidden", c.FolderID),
		}, nil
	}

	updated := domain.ExpandHidden(c.FolderID, hidden, folders)
	// The one-level check above misses deeper chains.
	if domain.HidesAll(updated, folders) {
		return nil, c.refuse(ctx)
	}
	if err := c.env.Settings.SetHidden(ctx, updated); err != nil {
		return nil, err
	}
	if err := c.env.Stylesheet.Refresh(ctx); err != nil {
		return nil, err
	}

	added := updated.Without(hidden.IDs()...).IDs()
	msg := fmt.Sprintf("Hid notebook %s", c.FolderID)
	if n := len(added) - 1; n > 0 {
		msg = fmt.Sprintf("%s and %d sub-notebook(s)", msg, n)
	}

	return &HideNotebookResult{
		FolderID: c.FolderID,
		Hidden:   updated.IDs(),
		Added:    added,
		Message:  msg,
	}, nil
}

func (c *HideNotebookCommand) refuse(ctx context.Context) error {
	if err := c.env.Dialogs.Notify(ctx, application.LastNotebookNotice); err != nil {
		logger.Error("Failed to show notice", err)
	}
	return &application.PolicyError{
		FolderID: c.FolderID,
		Reason:   "no other notebook would remain visible",
	}
}
