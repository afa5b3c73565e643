package commands

import (
	"context"
	"fmt"

	"hidenb/internal/application"
	"hidenb/internal/domain"
)

// ToggleResult contains the new value of a toggled sidebar entry
type ToggleResult struct {
	Flag    string
	Visible bool
	Message string
}

// ToggleAllNotesCommand shows or hides the "All notes" entry
type ToggleAllNotesCommand struct {
	env Env
}

// NewToggleAllNotesCommand creates a new ToggleAllNotesCommand
func NewToggleAllNotesCommand(env Env) *ToggleAllNotesCommand {
	return &ToggleAllNotesCommand{env: env}
}

// Execute flips showAllNotes
func (c *ToggleAllNotesCommand) Execute(ctx context.Context) (*ToggleResult, error) {
	flags, err := c.env.Settings.Flags(ctx)
	if err != nil {
		return nil, err
	}
	visible := !flags.ShowAllNotes
	if err := c.env.Settings.SetFlag(ctx, application.SettingShowAllNotes, visible); err != nil {
		return nil, err
	}
	if err := c.env.Stylesheet.Refresh(ctx); err != nil {
		return nil, err
	}
	return &ToggleResult{
		Flag:    application.SettingShowAllNotes,
		Visible: visible,
		Message: toggleMessage(`"All notes"`, visible),
	}, nil
}

// ToggleTrashCommand shows or hides the Trash, keeping the Trash id in the
// hidden set in step with the flag.
type ToggleTrashCommand struct {
	env Env
}

// NewToggleTrashCommand creates a new ToggleTrashCommand
func NewToggleTrashCommand(env Env) *ToggleTrashCommand {
	return &ToggleTrashCommand{env: env}
}

// Execute flips showTrash and persists the flag and the hidden set together
func (c *ToggleTrashCommand) Execute(ctx context.Context) (*ToggleResult, error) {
	flags, err := c.env.Settings.Flags(ctx)
	if err != nil {
		return nil, err
	}
	hidden, err := c.env.Settings.Hidden(ctx)
	if err != nil {
		return nil, err
	}

	flags.ShowTrash = !flags.ShowTrash
	if flags.ShowTrash {
		hidden = hidden.Without(domain.TrashFolderID)
	} else {
		hidden = hidden.With(domain.TrashFolderID)
	}

	if err := c.env.Settings.Save(ctx, hidden, flags); err != nil {
		return nil, err
	}
	if err := c.env.Stylesheet.Refresh(ctx); err != nil {
		return nil, err
	}
	return &ToggleResult{
		Flag:    application.SettingShowTrash,
		Visible: flags.ShowTrash,
		Message: toggleMessage(`"Trash"`, flags.ShowTrash),
	}, nil
}

func toggleMessage(entry string, visible bool) string {
	if visible {
		return fmt.Sprintf("%s is now shown in the sidebar", entry)
	}
	return fmt.Sprintf("%s is now hidden from the sidebar", entry)
}
