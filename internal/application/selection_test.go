package application

import (
	"context"
	"errors"
	"testing"

	"hidenb/internal/adapters/memory"
	"hidenb/internal/domain"
	"hidenb/internal/ports"
)

type guardFixture struct {
	store     *memory.SettingsStore
	data      *memory.DataSource
	workspace *memory.Workspace
	runner    *memory.Runner
	guard     *SelectionGuard
}

func newGuardFixture(hidden ...string) *guardFixture {
	ids := make([]any, len(hidden))
	for i, id := range hidden {
		ids[i] = id
	}
	f := &guardFixture{
		store: memory.NewSettingsStore(map[string]any{SettingHiddenNotebookIDs: ids}),
		data: &memory.DataSource{
			Folders: []domain.Folder{{ID: "A"}, {ID: "B", ParentID: "A"}, {ID: "C"}},
			Notes: []domain.Note{
				{ID: "n1", ParentID: "A", Title: "Alpha"},
				{ID: "n2", ParentID: "C", Title: "Beta"},
			},
		},
		workspace: &memory.Workspace{},
		runner:    &memory.Runner{},
	}
	f.guard = NewSelectionGuard(NewSettings(f.store), f.data, f.workspace, f.runner)
	return f
}

func TestSelectionGuard_RedirectsFromHiddenFolder(t *testing.T) {
	f := newGuardFixture("A")
	f.workspace.Select(&domain.Folder{ID: "A"})

	f.guard.HandleSelectionChanged(context.Background())

	calls := f.runner.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 command, got %v", calls)
	}
	if calls[0].Name != ports.CommandOpenNote || calls[0].Args[0] != "n2" {
		t.Errorf("expected openNote n2, got %+v", calls[0])
	}
}

func TestSelectionGuard_Evaluate(t *testing.T) {
	tests := []struct {
		name       string
		hidden     []string
		folder     *domain.Folder
		wantNil    bool
		wantNoteID string
	}{
		{name: "nothing hidden", folder: &domain.Folder{ID: "A"}, wantNil: true},
		{name: "no selection", hidden: []string{"A"}, wantNil: true},
		{name: "visible folder", hidden: []string{"A"}, folder: &domain.Folder{ID: "C"}, wantNil: true},
		{name: "hidden folder", hidden: []string{"A"}, folder: &domain.Folder{ID: "A"}, wantNoteID: "n2"},
		{name: "child of hidden folder", hidden: []string{"A"}, folder: &domain.Folder{ID: "B", ParentID: "A"}, wantNoteID: "n2"},
		{name: "trash", hidden: []string{"X"}, folder: &domain.Folder{ID: TrashFolderID}, wantNoteID: "n1"},
		{name: "every note hidden", hidden: []string{"A", "C"}, folder: &domain.Folder{ID: "A"}, wantNoteID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGuardFixture(tt.hidden...)
			got, err := f.guard.Evaluate(context.Background(), tt.folder)
			if err != nil {
				t.Fatalf("Evaluate() error: %v", err)
			}
			if tt.wantNil {
				if got != nil {
					t.Errorf("expected no redirect, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a redirect, got nil")
			}
			if got.NoteID != tt.wantNoteID {
				t.Errorf("NoteID = %q, want %q", got.NoteID, tt.wantNoteID)
			}
		})
	}
}

func TestSelectionGuard_NoVisibleNoteDoesNothing(t *testing.T) {
	f := newGuardFixture("A", "C")
	f.workspace.Select(&domain.Folder{ID: "A"})

	f.guard.HandleSelectionChanged(context.Background())

	if calls := f.runner.Calls(); len(calls) != 0 {
		t.Errorf("expected no command, got %v", calls)
	}
}

func TestSelectionGuard_SettingsChangeFiltersKeys(t *testing.T) {
	f := newGuardFixture("A")
	f.workspace.Select(&domain.Folder{ID: "A"})

	f.guard.HandleSettingsChanged(context.Background(), []string{SettingShowAllNotes})
	if calls := f.runner.Calls(); len(calls) != 0 {
		t.Fatalf("unrelated key must not trigger the guard, got %v", calls)
	}

	f.guard.HandleSettingsChanged(context.Background(), []string{SettingHiddenNotebookIDs})
	if calls := f.runner.Calls(); len(calls) != 1 {
		t.Errorf("expected a redirect after the hidden set changed, got %v", calls)
	}
}

func TestSelectionGuard_ErrorsAreSwallowed(t *testing.T) {
	f := newGuardFixture("A")
	f.workspace.Select(&domain.Folder{ID: "A"})
	f.data.Err = errors.New("database locked")

	// Must not panic or propagate.
	f.guard.HandleSelectionChanged(context.Background())

	if _, err := f.guard.Enforce(context.Background(), &domain.Folder{ID: "A"}); err == nil {
		t.Error("Enforce() should report the data error to direct callers")
	}
	if calls := f.runner.Calls(); len(calls) != 0 {
		t.Errorf("expected no command, got %v", calls)
	}
}

func TestSelectionGuard_RunnerErrorIsReported(t *testing.T) {
	f := newGuardFixture("A")
	f.runner.Err = errors.New("host unavailable")

	redirect, err := f.guard.Enforce(context.Background(), &domain.Folder{ID: "A"})
	if err == nil {
		t.Fatal("expected error from runner")
	}
	if redirect == nil || redirect.NoteID != "n2" {
		t.Errorf("redirect should still describe the decision, got %+v", redirect)
	}
}
