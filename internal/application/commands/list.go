package commands

import (
	"context"
	"fmt"

	"hidenb/internal/domain"
)

// ListNotebooksResult is the sidebar as the user would see it configured
type ListNotebooksResult struct {
	Rows   []domain.FolderRow
	Hidden []string
	Flags  domain.DisplayFlags
}

// ListNotebooksCommand lists every notebook with its hidden state
type ListNotebooksCommand struct {
	env Env
}

// NewListNotebooksCommand creates a new ListNotebooksCommand
func NewListNotebooksCommand(env Env) *ListNotebooksCommand {
	return &ListNotebooksCommand{env: env}
}

// Execute runs the list command
func (c *ListNotebooksCommand) Execute(ctx context.Context) (*ListNotebooksResult, error) {
	folders, err := c.env.Data.ListFolders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	hidden, err := c.env.Settings.Hidden(ctx)
	if err != nil {
		return nil, err
	}
	flags, err := c.env.Settings.Flags(ctx)
	if err != nil {
		return nil, err
	}

	// Folders below a hidden notebook are hidden with it.
	effective := hidden
	for _, id := range hidden.IDs() {
		effective = domain.ExpandHidden(id, effective, folders)
	}

	return &ListNotebooksResult{
		Rows:   domain.FlattenFolders(folders, effective),
		Hidden: hidden.IDs(),
		Flags:  flags,
	}, nil
}

// StylesheetResult is the generated CSS and where it is written
type StylesheetResult struct {
	CSS  string
	Path string
}

// StylesheetCommand renders the current stylesheet, optionally rewriting it
type StylesheetCommand struct {
	env     Env
	Refresh bool
}

// NewStylesheetCommand creates a new StylesheetCommand
func NewStylesheetCommand(env Env, refresh bool) *StylesheetCommand {
	return &StylesheetCommand{env: env, Refresh: refresh}
}

// Execute runs the stylesheet command
func (c *StylesheetCommand) Execute(ctx context.Context) (*StylesheetResult, error) {
	if c.Refresh {
		if err := c.env.Stylesheet.Refresh(ctx); err != nil {
			return nil, err
		}
	}
	css, err := c.env.Stylesheet.Render(ctx)
	if err != nil {
		return nil, err
	}
	return &StylesheetResult{CSS: css, Path: c.env.Stylesheet.Path()}, nil
}
