package commands

import (
	"context"
	"errors"
	"testing"

	"hidenb/internal/application"
	"hidenb/internal/domain"
)

func TestHideNotebookCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		folderID string
		wantErr  bool
		errMsg   string
	}{
		{name: "valid folder ID", folderID: "A"},
		{name: "empty folder ID", folderID: "", wantErr: true, errMsg: "folder ID is required"},
		{name: "blank folder ID", folderID: "  ", wantErr: true, errMsg: "folder ID is required"},
		{name: "trash", folderID: domain.TrashFolderID, wantErr: true, errMsg: "show-trash setting"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &HideNotebookCommand{FolderID: tt.folderID}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestHideNotebookCommand_HidesSubNotebooks(t *testing.T) {
	f := newFixture(t, []domain.Folder{
		{ID: "A"},
		{ID: "B", ParentID: "A"},
		{ID: "C"},
	}, nil)

	result, err := NewHideNotebookCommand(f.env, "A").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hidden := f.hidden(t)
	if !hidden.Contains("A") || !hidden.Contains("B") {
		t.Errorf("expected A and B hidden, got %v", hidden.IDs())
	}
	if hidden.Contains("C") {
		t.Error("C must remain visible")
	}
	if len(result.Added) != 2 {
		t.Errorf("expected 2 added ids, got %v", result.Added)
	}
	if !contains(result.Message, "1 sub-notebook") {
		t.Errorf("unexpected message %q", result.Message)
	}

	css := f.css(t)
	if !contains(css, `data-id="A"`) || !contains(css, `data-id="B"`) {
		t.Errorf("stylesheet not regenerated:\n%s", css)
	}
	if len(f.dialogs.Notices()) != 0 {
		t.Errorf("no notice expected, got %v", f.dialogs.Notices())
	}
}

func TestHideNotebookCommand_HidesDeepDescendants(t *testing.T) {
	f := newFixture(t, []domain.Folder{
		{ID: "A"},
		{ID: "B", ParentID: "A"},
		{ID: "D", ParentID: "B"},
		{ID: "C"},
	}, nil)

	if _, err := NewHideNotebookCommand(f.env, "A").Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.hidden(t).Contains("D") {
		t.Errorf("grandchild should be hidden, got %v", f.hidden(t).IDs())
	}
}

func TestHideNotebookCommand_RefusesLastNotebook(t *testing.T) {
	f := newFixture(t, []domain.Folder{{ID: "A"}}, nil)

	result, err := NewHideNotebookCommand(f.env, "A").Execute(context.Background())
	if err == nil {
		t.Fatalf("expected error, got result %+v", result)
	}
	if !errors.Is(err, application.ErrLastNotebook) {
		t.Errorf("expected ErrLastNotebook, got %v", err)
	}

	if f.hidden(t).Len() != 0 {
		t.Errorf("hidden set must be unchanged, got %v", f.hidden(t).IDs())
	}
	notices := f.dialogs.Notices()
	if len(notices) != 1 || notices[0] != application.LastNotebookNotice {
		t.Errorf("expected last-notebook notice, got %v", notices)
	}
	if f.store.Writes != 0 {
		t.Errorf("expected no writes, got %d", f.store.Writes)
	}
}

func TestHideNotebookCommand_AlreadyHidden(t *testing.T) {
	f := newFixture(t, []domain.Folder{{ID: "A"}, {ID: "C"}, {ID: "D"}}, map[string]any{
		application.SettingHiddenNotebookIDs: []any{"A"},
	})

	result, err := NewHideNotebookCommand(f.env, "A").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.AlreadyHidden {
		t.Error("expected AlreadyHidden")
	}
	if f.store.Writes != 0 {
		t.Errorf("expected no writes, got %d", f.store.Writes)
	}
}

func TestHideNotebookCommand_DataError(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.data.Err = errors.New("connection refused")

	if _, err := NewHideNotebookCommand(f.env, "A").Execute(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if f.store.Writes != 0 {
		t.Errorf("nothing may be persisted on failure, got %d writes", f.store.Writes)
	}
}

func TestHideNotebookCommand_RefusesWhenClosureCoversEveryNotebook(t *testing.T) {
	f := newFixture(t, []domain.Folder{
		{ID: "A"},
		{ID: "B", ParentID: "A"},
		{ID: "C", ParentID: "B"},
	}, nil)

	_, err := NewHideNotebookCommand(f.env, "A").Execute(context.Background())
	if !errors.Is(err, application.ErrLastNotebook) {
		t.Fatalf("expected ErrLastNotebook, got %v", err)
	}
	if f.hidden(t).Len() != 0 {
		t.Errorf("hidden set must be unchanged, got %v", f.hidden(t).IDs())
	}
	if f.store.Writes != 0 {
		t.Errorf("expected no writes, got %d", f.store.Writes)
	}
	notices := f.dialogs.Notices()
	if len(notices) != 1 || notices[0] != application.LastNotebookNotice {
		t.Errorf("expected last-notebook notice, got %v", notices)
	}
}

func TestHideNotebookCommand_RejectsTrash(t *testing.T) {
	f := newFixture(t, []domain.Folder{{ID: "A"}}, nil)

	_, err := NewHideNotebookCommand(f.env, domain.TrashFolderID).Execute(context.Background())
	var valErr *application.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if f.hidden(t).Len() != 0 || !f.flags(t).ShowTrash {
		t.Errorf("state changed: hidden=%v flags=%+v", f.hidden(t).IDs(), f.flags(t))
	}
}
