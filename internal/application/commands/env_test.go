package commands

import (
	"context"
	"strings"
	"testing"

	"hidenb/internal/adapters/memory"
	"hidenb/internal/application"
	"hidenb/internal/domain"
)

type fixture struct {
	env     Env
	store   *memory.SettingsStore
	data    *memory.DataSource
	dialogs *memory.Dialogs
	chrome  *memory.Chrome
}

func newFixture(t *testing.T, folders []domain.Folder, values map[string]any) *fixture {
	t.Helper()
	store := memory.NewSettingsStore(values)
	settings := application.NewSettings(store)
	if err := settings.RegisterDefaults(context.Background()); err != nil {
		t.Fatalf("RegisterDefaults() error: %v", err)
	}
	f := &fixture{
		store:   store,
		data:    &memory.DataSource{Folders: folders},
		dialogs: memory.NewDialogs(true),
		chrome:  &memory.Chrome{},
	}
	f.env = Env{
		Settings:   settings,
		Data:       f.data,
		Dialogs:    f.dialogs,
		Stylesheet: application.NewStylesheet(settings, f.chrome, t.TempDir()),
	}
	return f
}

func (f *fixture) hidden(t *testing.T) domain.HiddenSet {
	t.Helper()
	h, err := f.env.Settings.Hidden(context.Background())
	if err != nil {
		t.Fatalf("Hidden() error: %v", err)
	}
	return h
}

func (f *fixture) flags(t *testing.T) domain.DisplayFlags {
	t.Helper()
	fl, err := f.env.Settings.Flags(context.Background())
	if err != nil {
		t.Fatalf("Flags() error: %v", err)
	}
	return fl
}

func (f *fixture) css(t *testing.T) string {
	t.Helper()
	css, ok := f.chrome.File(f.env.Stylesheet.Path())
	if !ok {
		t.Fatal("stylesheet was never written")
	}
	return css
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
