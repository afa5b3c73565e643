package joplin

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"hidenb/internal/ports"
)

// CommandOpenFolder selects a notebook in the desktop app
const CommandOpenFolder = "openFolder"

// Opener implements ports.CommandRunner by handing joplin:// callback URLs
// to the operating system, which forwards them to the running desktop app.
type Opener struct {
	// launch runs the platform opener; replaced in tests
	launch func(ctx context.Context, uri string) error
}

// Ensure Opener implements ports.CommandRunner
var _ ports.CommandRunner = (*Opener)(nil)

// NewOpener creates a new Joplin opener
func NewOpener() *Opener {
	return &Opener{launch: openURI}
}

// Execute runs openNote or openFolder with the item ID as the only argument
func (o *Opener) Execute(ctx context.Context, name string, args ...string) error {
	if len(args) != 1 {
		return fmt.Errorf("%s expects one ID, got %d arguments", name, len(args))
	}
	uri, err := BuildURI(name, args[0])
	if err != nil {
		return err
	}
	return o.launch(ctx, uri)
}

// BuildURI constructs the joplin:// callback URL for a command
func BuildURI(name, id string) (string, error) {
	switch name {
	case ports.CommandOpenNote, CommandOpenFolder:
	default:
		return "", fmt.Errorf("unsupported command: %s", name)
	}
	if id == "" {
		return "", fmt.Errorf("%s: empty ID", name)
	}
	return fmt.Sprintf("joplin://x-callback-url/%s?id=%s", name, url.QueryEscape(id)), nil
}

func openURI(ctx context.Context, uri string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", uri)
	case "linux":
		cmd = exec.CommandContext(ctx, "xdg-open", uri)
	case "windows":
		cmd = exec.CommandContext(ctx, "cmd", "/c", "start", "", uri)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return cmd.Run()
}
