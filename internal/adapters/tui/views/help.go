package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"hidenb/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToSidebarMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Hide Notebooks"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	for _, k := range []key.Binding{SidebarKeys.Up, SidebarKeys.Down, SidebarKeys.Select} {
		b.WriteString(helpLine(k))
	}
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Notebooks"))
	b.WriteString("\n")
	for _, k := range []key.Binding{SidebarKeys.Hide, SidebarKeys.Unhide, SidebarKeys.ShowAll, SidebarKeys.Reveal} {
		b.WriteString(helpLine(k))
	}
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Sidebar entries"))
	b.WriteString("\n")
	for _, k := range []key.Binding{SidebarKeys.AllNotes, SidebarKeys.Trash} {
		b.WriteString(helpLine(k))
	}
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Stylesheet"))
	b.WriteString("\n")
	for _, k := range []key.Binding{SidebarKeys.CopyCSS, SidebarKeys.EditChrome, SidebarKeys.Reload} {
		b.WriteString(helpLine(k))
	}
	b.WriteString("\n")

	b.WriteString(styles.MutedText.Render("  Hiding a notebook also hides its sub-notebooks."))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  The last visible notebook can't be hidden."))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(k key.Binding) string {
	h := k.Help()
	return "  " + styles.HelpKey.Render(padRight(h.Key, 12)) + styles.HelpDesc.Render(h.Desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
