package views

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hidenb/internal/adapters/memory"
	"hidenb/internal/adapters/tui/styles"
	"hidenb/internal/application"
	"hidenb/internal/application/commands"
	"hidenb/internal/domain"
)

// SidebarKeyMap defines key bindings for the sidebar view
type SidebarKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Hide       key.Binding
	Unhide     key.Binding
	ShowAll    key.Binding
	AllNotes   key.Binding
	Trash      key.Binding
	Reveal     key.Binding
	CopyCSS    key.Binding
	EditChrome key.Binding
	Reload     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var SidebarKeys = SidebarKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Hide: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "hide"),
	),
	Unhide: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "unhide"),
	),
	ShowAll: key.NewBinding(
		key.WithKeys("U"),
		key.WithHelp("U", "show all hidden"),
	),
	AllNotes: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "toggle all notes"),
	),
	Trash: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle trash"),
	),
	Reveal: key.NewBinding(
		key.WithKeys("."),
		key.WithHelp(".", "reveal hidden"),
	),
	CopyCSS: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy css"),
	),
	EditChrome: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit userchrome.css"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Backend is what the sidebar drives
type Backend struct {
	Env    commands.Env
	Engine *application.Engine

	// Selection receives the folder chosen with enter
	Selection interface{ Set(*domain.Folder) }

	// Redirects reports the note the selection guard opened, if any
	Redirects interface{ Take() string }

	// UserChrome is the stylesheet opened by the edit key
	UserChrome string
}

type rowKind int

const (
	rowAllNotes rowKind = iota
	rowFolder
	rowTrash
)

// SidebarRow is one line of the sidebar
type SidebarRow struct {
	Kind   rowKind
	Folder domain.FolderRow
	Hidden bool
}

// Title returns the text shown for the row
func (r SidebarRow) Title() string {
	switch r.Kind {
	case rowAllNotes:
		return "All notes"
	case rowTrash:
		return "Trash"
	default:
		return r.Folder.Title
	}
}

// BuildRows lays out the sidebar the way the desktop app would show it.
// With reveal set, hidden entries are kept and marked.
func BuildRows(list *commands.ListNotebooksResult, reveal bool) []SidebarRow {
	var rows []SidebarRow

	if list.Flags.ShowAllNotes || reveal {
		rows = append(rows, SidebarRow{Kind: rowAllNotes, Hidden: !list.Flags.ShowAllNotes})
	}
	for _, f := range list.Rows {
		if f.Hidden && !reveal {
			continue
		}
		rows = append(rows, SidebarRow{Kind: rowFolder, Folder: f, Hidden: f.Hidden})
	}
	if list.Flags.ShowTrash || reveal {
		rows = append(rows, SidebarRow{Kind: rowTrash, Hidden: !list.Flags.ShowTrash})
	}
	return rows
}

// SidebarModel is the model for the notebook sidebar
type SidebarModel struct {
	ViewState
	backend Backend
	list    *commands.ListNotebooksResult
	rows    []SidebarRow
	cursor  int
	offset  int
	reveal  bool
}

// NewSidebarModel creates a new sidebar model
func NewSidebarModel(backend Backend) *SidebarModel {
	return &SidebarModel{backend: backend}
}

type listLoadedMsg struct {
	list *commands.ListNotebooksResult
}

type errMsg struct {
	err error
}

// doneMsg reports a finished command; the list is reloaded afterwards
type doneMsg struct {
	message string
	level   MessageLevel
}

// statusMsg reports something that did not change the list
type statusMsg struct {
	message string
	level   MessageLevel
}

// Init initializes the sidebar
func (m *SidebarModel) Init() tea.Cmd {
	return m.load
}

func (m *SidebarModel) load() tea.Msg {
	list, err := commands.NewListNotebooksCommand(m.backend.Env).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return listLoadedMsg{list}
}

// Update handles messages for the sidebar
func (m *SidebarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case listLoadedMsg:
		m.list = msg.list
		m.refreshRows()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), LevelError)
		return m, nil

	case doneMsg:
		m.SetMessage(msg.message, msg.level)
		return m, m.load

	case statusMsg:
		m.SetMessage(msg.message, msg.level)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, SidebarKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, SidebarKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SidebarKeys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SidebarKeys.Select):
			if row, ok := m.selectedRow(); ok {
				return m, m.selectRow(row)
			}
			return m, nil

		case key.Matches(msg, SidebarKeys.Hide):
			if row, ok := m.selectedRow(); ok && row.Kind == rowFolder {
				return m, m.hide(row.Folder.ID)
			}
			return m, nil

		case key.Matches(msg, SidebarKeys.Unhide):
			if row, ok := m.selectedRow(); ok && row.Kind == rowFolder {
				return m, m.unhide(row.Folder.ID)
			}
			return m, nil

		case key.Matches(msg, SidebarKeys.ShowAll):
			return m, func() tea.Msg {
				return SwitchToConfirmMsg{Prompt: application.ShowHiddenPrompt}
			}

		case key.Matches(msg, SidebarKeys.AllNotes):
			return m, m.toggle(commands.NewToggleAllNotesCommand(m.backend.Env).Execute)

		case key.Matches(msg, SidebarKeys.Trash):
			return m, m.toggle(commands.NewToggleTrashCommand(m.backend.Env).Execute)

		case key.Matches(msg, SidebarKeys.Reveal):
			m.reveal = !m.reveal
			m.refreshRows()
			return m, nil

		case key.Matches(msg, SidebarKeys.CopyCSS):
			return m, m.copyCSS

		case key.Matches(msg, SidebarKeys.EditChrome):
			if m.backend.UserChrome == "" {
				return m, nil
			}
			path := m.backend.UserChrome
			return m, func() tea.Msg { return OpenEditorMsg{Path: path} }

		case key.Matches(msg, SidebarKeys.Reload):
			return m, m.load

		case key.Matches(msg, SidebarKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}

	return m, nil
}

func (m *SidebarModel) hide(folderID string) tea.Cmd {
	env := m.backend.Env
	return func() tea.Msg {
		env.Dialogs = memory.NewDialogs(false)
		result, err := commands.NewHideNotebookCommand(env, folderID).Execute(context.Background())
		if errors.Is(err, application.ErrLastNotebook) {
			return statusMsg{application.LastNotebookNotice, LevelNotice}
		}
		if err != nil {
			return errMsg{err}
		}
		return doneMsg{message: result.Message}
	}
}

func (m *SidebarModel) unhide(folderID string) tea.Cmd {
	env := m.backend.Env
	return func() tea.Msg {
		result, err := commands.NewUnhideNotebookCommand(env, folderID).Execute(context.Background())
		if errors.Is(err, application.ErrNotFound) {
			return statusMsg{"Notebook is not hidden", LevelNotice}
		}
		if err != nil {
			return errMsg{err}
		}
		return doneMsg{message: result.Message}
	}
}

// ShowHidden reveals every notebook; the user has already confirmed
func (m *SidebarModel) ShowHidden() tea.Cmd {
	env := m.backend.Env
	return func() tea.Msg {
		env.Dialogs = memory.NewDialogs(true)
		result, err := commands.NewShowHiddenNotebooksCommand(env).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return doneMsg{message: result.Message}
	}
}

func (m *SidebarModel) toggle(run func(context.Context) (*commands.ToggleResult, error)) tea.Cmd {
	return func() tea.Msg {
		result, err := run(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return doneMsg{message: result.Message}
	}
}

func (m *SidebarModel) selectRow(row SidebarRow) tea.Cmd {
	b := m.backend
	return func() tea.Msg {
		var folder *domain.Folder
		switch row.Kind {
		case rowFolder:
			f := row.Folder.Folder
			folder = &f
		case rowTrash:
			folder = &domain.Folder{ID: domain.TrashFolderID, Title: "Trash"}
		}

		b.Selection.Set(folder)
		b.Engine.SelectionChanged(context.Background())

		if noteID := b.Redirects.Take(); noteID != "" {
			return statusMsg{fmt.Sprintf("%s is hidden, opened note %s instead", row.Title(), noteID), LevelNotice}
		}
		return statusMsg{message: "Selected " + row.Title()}
	}
}

func (m *SidebarModel) copyCSS() tea.Msg {
	result, err := commands.NewStylesheetCommand(m.backend.Env, false).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	if err := clipboard.WriteAll(result.CSS); err != nil {
		return errMsg{fmt.Errorf("copy to clipboard: %w", err)}
	}
	return statusMsg{message: fmt.Sprintf("Copied %d bytes of CSS", len(result.CSS))}
}

func (m *SidebarModel) selectedRow() (SidebarRow, bool) {
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		return m.rows[m.cursor], true
	}
	return SidebarRow{}, false
}

func (m *SidebarModel) refreshRows() {
	if m.list == nil {
		return
	}
	m.rows = BuildRows(m.list, m.reveal)
	// Clamp cursor
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// listHeight is how many rows fit between the header and the footer
func (m *SidebarModel) listHeight() int {
	if m.Height <= 0 {
		return len(m.rows)
	}
	return max(m.Height-10, 3)
}

// View renders the sidebar
func (m *SidebarModel) View() string {
	if m.list == nil {
		if m.Message != "" {
			return styles.App.Render(RenderMessage(m.Message, m.Level))
		}
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Notebooks"))
	b.WriteString("\n")
	subtitle := fmt.Sprintf("%d hidden", len(m.list.Hidden))
	if m.reveal {
		subtitle += " · revealing hidden notebooks"
	}
	b.WriteString(styles.Subtitle.Render(subtitle))
	b.WriteString("\n\n")

	// Keep the cursor inside the visible window.
	height := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+height {
		m.offset = m.cursor - height + 1
	}
	end := min(m.offset+height, len(m.rows))

	for i := m.offset; i < end; i++ {
		b.WriteString(renderRow(m.rows[i], i == m.cursor))
		b.WriteString("\n")
	}
	if len(m.rows) == 0 {
		b.WriteString(styles.MutedText.Render("  (nothing visible)"))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.Level))
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		SidebarKeys.Select, SidebarKeys.Hide, SidebarKeys.Unhide,
		SidebarKeys.Reveal, SidebarKeys.Help, SidebarKeys.Quit,
	))

	return styles.App.Render(b.String())
}

func renderRow(row SidebarRow, selected bool) string {
	indent := ""
	if row.Kind == rowFolder {
		indent = strings.Repeat("  ", row.Folder.Depth)
	}

	prefix := styles.TreeShown
	if row.Hidden {
		prefix = styles.TreeHidden
	}

	var style lipgloss.Style
	switch {
	case row.Hidden:
		style = styles.NodeHidden
	case row.Kind != rowFolder:
		style = styles.NodeSpecial
	case row.Folder.Depth == 0:
		style = styles.NodeRoot
	default:
		style = styles.NodeFolder
	}

	text := row.Title()
	styled := style.Render(text)
	if selected {
		styled = styles.NodeSelected.Render(text)
	}

	return fmt.Sprintf("%s%s%s", indent, styles.TreeBranch.Render(prefix), styled)
}

// Reload reloads the notebook list
func (m *SidebarModel) Reload() tea.Cmd {
	return m.load
}
