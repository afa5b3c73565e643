package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"hidenb/internal/adapters/memory"
	"hidenb/internal/adapters/tui/views"
	"hidenb/internal/application"
	"hidenb/internal/application/commands"
	"hidenb/internal/domain"
)

func newTestApp(t *testing.T) (*App, *application.Settings) {
	t.Helper()
	ctx := context.Background()

	settings := application.NewSettings(memory.NewSettingsStore(nil))
	data := &memory.DataSource{Folders: []domain.Folder{{ID: "A"}, {ID: "C"}}}
	sel := &Selection{}
	redirects := NewRedirects(nil)
	stylesheet := application.NewStylesheet(settings, &memory.Chrome{}, t.TempDir())
	engine := application.NewEngine(settings, stylesheet, application.NewSelectionGuard(settings, data, sel, redirects))
	if err := engine.Activate(ctx); err != nil {
		t.Fatal(err)
	}
	if err := settings.SetHidden(ctx, domain.NewHiddenSet("A")); err != nil {
		t.Fatal(err)
	}

	app := NewApp(views.Backend{
		Env:       commands.Env{Settings: settings, Data: data, Dialogs: memory.NewDialogs(false), Stylesheet: stylesheet},
		Engine:    engine,
		Selection: sel,
		Redirects: redirects,
	}, nil)
	run(app, app.Init())
	return app, settings
}

func run(app *App, cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		_, cmd = app.Update(msg)
	}
}

func key(app *App, s string) {
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	run(app, cmd)
}

func TestApp_ShowHiddenConfirmation(t *testing.T) {
	t.Run("cancel keeps hidden notebooks", func(t *testing.T) {
		app, settings := newTestApp(t)

		key(app, "U")
		if app.state != ViewConfirm {
			t.Fatalf("expected confirm view, got %v", app.state)
		}
		key(app, "n")

		if app.state != ViewSidebar {
			t.Errorf("expected sidebar, got %v", app.state)
		}
		hidden, _ := settings.Hidden(context.Background())
		if hidden.Len() != 1 {
			t.Errorf("hidden = %v", hidden.IDs())
		}
	})

	t.Run("confirm reveals everything", func(t *testing.T) {
		app, settings := newTestApp(t)

		key(app, "U")
		key(app, "y")

		hidden, _ := settings.Hidden(context.Background())
		if hidden.Len() != 0 {
			t.Errorf("hidden = %v", hidden.IDs())
		}
	})
}

func TestApp_Help(t *testing.T) {
	app, _ := newTestApp(t)

	key(app, "?")
	if app.state != ViewHelp {
		t.Fatalf("expected help view, got %v", app.state)
	}
	key(app, "?")
	if app.state != ViewSidebar {
		t.Errorf("expected sidebar, got %v", app.state)
	}
}

func TestRedirects(t *testing.T) {
	next := &memory.Runner{}
	r := NewRedirects(next)

	if err := r.Execute(context.Background(), "openNote", "n1"); err != nil {
		t.Fatal(err)
	}
	if got := r.Take(); got != "n1" {
		t.Errorf("Take() = %q, want n1", got)
	}
	if got := r.Take(); got != "" {
		t.Errorf("second Take() = %q, want empty", got)
	}
	if len(next.Calls()) != 1 {
		t.Errorf("call was not forwarded")
	}
}
