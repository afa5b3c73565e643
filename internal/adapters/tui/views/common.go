package views

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width   int
	Height  int
	Message string
	Level   MessageLevel
}

// MessageLevel selects how a status message is styled
type MessageLevel int

const (
	LevelInfo MessageLevel = iota
	LevelNotice
	LevelError
)

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, level MessageLevel) {
	s.Message = msg
	s.Level = level
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.Level = LevelInfo
}

// Messages for view switching
type SwitchToHelpMsg struct{}

type SwitchToSidebarMsg struct{}

// SwitchToConfirmMsg asks the app to show Prompt and wait for y/n
type SwitchToConfirmMsg struct {
	Prompt string
}

// ConfirmedMsg is sent when the user accepts the pending confirmation
type ConfirmedMsg struct{}

// OpenEditorMsg asks the app to suspend and edit Path
type OpenEditorMsg struct {
	Path string
}
