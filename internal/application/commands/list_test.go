package commands

import (
	"context"
	"testing"

	"hidenb/internal/application"
	"hidenb/internal/domain"
)

func TestListNotebooksCommand(t *testing.T) {
	f := newFixture(t, []domain.Folder{
		{ID: "A", Title: "Archive"},
		{ID: "B", ParentID: "A", Title: "Old"},
		{ID: "C", Title: "Current"},
	}, map[string]any{
		application.SettingHiddenNotebookIDs: []any{"A"},
		application.SettingShowAllNotes:      false,
	})

	result, err := NewListNotebooksCommand(f.env).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(result.Rows))
	}

	hidden := map[string]bool{}
	for _, r := range result.Rows {
		hidden[r.ID] = r.Hidden
	}
	if !hidden["A"] || !hidden["B"] || hidden["C"] {
		t.Errorf("unexpected hidden state: %v", hidden)
	}
	if result.Flags.ShowAllNotes {
		t.Error("expected ShowAllNotes=false")
	}
}

func TestStylesheetCommand(t *testing.T) {
	f := newFixture(t, nil, map[string]any{
		application.SettingHiddenNotebookIDs: []any{"X"},
	})

	result, err := NewStylesheetCommand(f.env, true).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !contains(result.CSS, `data-id="X"`) {
		t.Errorf("unexpected css %q", result.CSS)
	}
	if f.css(t) != result.CSS {
		t.Error("refresh should write the same stylesheet it returns")
	}
}
