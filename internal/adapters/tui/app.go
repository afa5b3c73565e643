package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"hidenb/internal/adapters/editor"
	"hidenb/internal/adapters/tui/views"
)

// ViewState represents the current view
type ViewState int

const (
	ViewSidebar ViewState = iota
	ViewConfirm
	ViewHelp
)

// App is the main TUI application model
type App struct {
	editor *editor.Opener

	state   ViewState
	sidebar *views.SidebarModel
	confirm *views.ConfirmationModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(backend views.Backend, ed *editor.Opener) *App {
	return &App{
		editor:  ed,
		state:   ViewSidebar,
		sidebar: views.NewSidebarModel(backend),
		confirm: views.NewConfirmationModel(),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.sidebar.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.sidebar.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToConfirmMsg:
		a.state = ViewConfirm
		a.confirm.SetPrompt(msg.Prompt)
		return a, nil

	case views.SwitchToSidebarMsg:
		if a.state == ViewConfirm {
			a.sidebar.SetMessage("Cancelled", views.LevelInfo)
		}
		a.state = ViewSidebar
		return a, nil

	case views.ConfirmedMsg:
		a.state = ViewSidebar
		return a, a.sidebar.ShowHidden()

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.sidebar.SetMessage(msg.err.Error(), views.LevelError)
		}
		return a, a.sidebar.Reload()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewSidebar:
		_, cmd = a.sidebar.Update(msg)
	case ViewConfirm:
		_, cmd = a.confirm.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewConfirm:
		return a.confirm.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.sidebar.View()
	}
}
