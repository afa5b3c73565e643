package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"hidenb/internal/adapters/tui/styles"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a status message styled by level
func RenderMessage(message string, level MessageLevel) string {
	if message == "" {
		return ""
	}
	switch level {
	case LevelError:
		return styles.ErrorMsg.Render(message)
	case LevelNotice:
		return styles.Notice.Render(message)
	default:
		return styles.Success.Render(message)
	}
}
