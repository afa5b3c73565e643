package commands

import (
	"context"
	"fmt"

	"hidenb/internal/application"
	"hidenb/internal/domain"
)

// ShowHiddenNotebooksResult contains the result of revealing every notebook
type ShowHiddenNotebooksResult struct {
	Cancelled bool
	Hidden    []string
	Message   string
}

// ShowHiddenNotebooksCommand reveals every hidden notebook after confirmation
type ShowHiddenNotebooksCommand struct {
	env Env
}

// NewShowHiddenNotebooksCommand creates a new ShowHiddenNotebooksCommand
func NewShowHiddenNotebooksCommand(env Env) *ShowHiddenNotebooksCommand {
	return &ShowHiddenNotebooksCommand{env: env}
}

// Execute asks for confirmation and resets the hidden set to its baseline
func (c *ShowHiddenNotebooksCommand) Execute(ctx context.Context) (*ShowHiddenNotebooksResult, error) {
	ok, err := c.env.Dialogs.Confirm(ctx, application.ShowHiddenPrompt)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm: %w", err)
	}
	if !ok {
		return &ShowHiddenNotebooksResult{Cancelled: true, Message: "Cancelled"}, nil
	}

	flags, err := c.env.Settings.Flags(ctx)
	if err != nil {
		return nil, err
	}
	baseline := domain.BaselineHidden(flags)
	if err := c.env.Settings.SetHidden(ctx, baseline); err != nil {
		return nil, err
	}
	if err := c.env.Stylesheet.Refresh(ctx); err != nil {
		return nil, err
	}

	return &ShowHiddenNotebooksResult{
		Hidden:  baseline.IDs(),
		Message: "All notebooks are visible",
	}, nil
}
