package domain

import (
	"fmt"
	"strings"
)

// GenerateStylesheet renders the sidebar CSS for a hidden set and display
// flags. Output depends only on the inputs; with nothing hidden and both
// entries shown it is empty.
func GenerateStylesheet(hidden HiddenSet, flags DisplayFlags) string {
	var b strings.Builder

	for _, id := range hidden.IDs() {
		writeHideRule(&b, wrapperSelector(id))
	}

	if !flags.ShowAllNotes {
		writeHideRule(&b, ".all-notes")
	}

	// Trash is the last sidebar section, so everything after it goes too.
	if !flags.ShowTrash {
		writeHideRule(&b, wrapperSelector(TrashFolderID)+" ~ *")
	}

	return b.String()
}

func writeHideRule(b *strings.Builder, selector string) {
	b.WriteString(selector)
	b.WriteString(" {\n\tdisplay: none !important;\n}\n")
}

func wrapperSelector(id string) string {
	return `.list-item-wrapper[data-id="` + cssEscape(id) + `"]`
}

// cssEscape escapes id for use inside a double-quoted CSS string. Control
// characters become hex escapes terminated by a space.
func cssEscape(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, "\\%x ", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
