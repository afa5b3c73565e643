package memory

import (
	"context"
	"slices"
	"sync"

	"hidenb/internal/domain"
	"hidenb/internal/ports"
)

// Workspace implements ports.Workspace with a settable selection
type Workspace struct {
	mu       sync.Mutex
	selected *domain.Folder
}

// Ensure Workspace implements ports.Workspace
var _ ports.Workspace = (*Workspace)(nil)

// Select changes the selected folder; nil clears it
func (w *Workspace) Select(folder *domain.Folder) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if folder == nil {
		w.selected = nil
		return
	}
	f := *folder
	w.selected = &f
}

// SelectedFolder returns the selected folder or nil
func (w *Workspace) SelectedFolder(_ context.Context) (*domain.Folder, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.selected == nil {
		return nil, nil
	}
	f := *w.selected
	return &f, nil
}

// Call is one recorded command execution
type Call struct {
	Name string
	Args []string
}

// Runner implements ports.CommandRunner by recording calls
type Runner struct {
	mu    sync.Mutex
	calls []Call
	Err   error
}

// Ensure Runner implements ports.CommandRunner
var _ ports.CommandRunner = (*Runner)(nil)

// Execute records the call and returns Err
func (r *Runner) Execute(_ context.Context, name string, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Name: name, Args: slices.Clone(args)})
	return r.Err
}

// Calls returns the recorded calls
func (r *Runner) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

// Dialogs implements ports.Dialogs with a fixed answer. Surfaces without an
// interactive prompt (MCP, pre-confirmed TUI actions) use it too.
type Dialogs struct {
	mu      sync.Mutex
	Answer  bool
	prompts []string
	notices []string
}

// Ensure Dialogs implements ports.Dialogs
var _ ports.Dialogs = (*Dialogs)(nil)

// NewDialogs creates dialogs that answer every confirmation with answer
func NewDialogs(answer bool) *Dialogs {
	return &Dialogs{Answer: answer}
}

// Confirm records the prompt and returns Answer
func (d *Dialogs) Confirm(_ context.Context, message string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.prompts = append(d.prompts, message)
	return d.Answer, nil
}

// Notify records the notice
func (d *Dialogs) Notify(_ context.Context, message string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notices = append(d.notices, message)
	return nil
}

// Prompts returns every confirmation message shown
func (d *Dialogs) Prompts() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.prompts)
}

// Notices returns every notice shown
func (d *Dialogs) Notices() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.notices)
}

// Chrome implements ports.Chrome by keeping files in memory
type Chrome struct {
	mu     sync.Mutex
	files  map[string]string
	loaded []string
}

// Ensure Chrome implements ports.Chrome
var _ ports.Chrome = (*Chrome)(nil)

// WriteFile stores text under path
func (c *Chrome) WriteFile(_ context.Context, path, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.files == nil {
		c.files = make(map[string]string)
	}
	c.files[path] = text
	return nil
}

// LoadStylesheet records the load request
func (c *Chrome) LoadStylesheet(_ context.Context, path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = append(c.loaded, path)
	return nil
}

// File returns the last text written to path
func (c *Chrome) File(path string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	text, ok := c.files[path]
	return text, ok
}

// Loads returns how many times a stylesheet was loaded
func (c *Chrome) Loads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.loaded)
}
