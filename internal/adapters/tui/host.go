package tui

import (
	"context"
	"sync"

	"hidenb/internal/domain"
	"hidenb/internal/ports"
)

// Selection is the notebook under the sidebar cursor after enter.
// It implements ports.Workspace for the selection guard.
type Selection struct {
	mu     sync.Mutex
	folder *domain.Folder
}

// Ensure Selection implements ports.Workspace
var _ ports.Workspace = (*Selection)(nil)

// Set replaces the selection; nil clears it
func (s *Selection) Set(folder *domain.Folder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if folder == nil {
		s.folder = nil
		return
	}
	f := *folder
	s.folder = &f
}

// SelectedFolder returns the current selection
func (s *Selection) SelectedFolder(_ context.Context) (*domain.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.folder == nil {
		return nil, nil
	}
	f := *s.folder
	return &f, nil
}

// Redirects forwards host commands and remembers the last note opened, so the
// sidebar can tell the user where the guard sent them.
type Redirects struct {
	next ports.CommandRunner

	mu   sync.Mutex
	last string
}

// Ensure Redirects implements ports.CommandRunner
var _ ports.CommandRunner = (*Redirects)(nil)

// NewRedirects wraps next; a nil next only records
func NewRedirects(next ports.CommandRunner) *Redirects {
	return &Redirects{next: next}
}

// Execute records openNote calls and forwards every call
func (r *Redirects) Execute(ctx context.Context, name string, args ...string) error {
	if name == ports.CommandOpenNote && len(args) == 1 {
		r.mu.Lock()
		r.last = args[0]
		r.mu.Unlock()
	}
	if r.next == nil {
		return nil
	}
	return r.next.Execute(ctx, name, args...)
}

// Take returns and clears the last opened note ID
func (r *Redirects) Take() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.last
	r.last = ""
	return id
}
