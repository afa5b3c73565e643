package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// fallbackEditors are tried in order when neither $VISUAL nor $EDITOR is set
var fallbackEditors = []string{"nvim", "vim", "vi", "nano"}

// Opener launches the user's editor on a stylesheet
type Opener struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{getenv: os.Getenv, lookPath: exec.LookPath}
}

// Command returns an exec.Cmd editing path, attached to the terminal.
// The TUI hands it to tea.ExecProcess.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor := o.find()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

func (o *Opener) find() string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if v := o.getenv(env); v != "" {
			return v
		}
	}
	for _, name := range fallbackEditors {
		if path, err := o.lookPath(name); err == nil {
			return path
		}
	}
	return ""
}
