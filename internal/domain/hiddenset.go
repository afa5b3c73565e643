package domain

import "slices"

// Setting keys shared with the host's settings section
const (
	SettingHiddenNotebookIDs = "hiddenNotebookIds"
	SettingShowAllNotes      = "showAllNotes"
	SettingShowTrash         = "showTrash"

	SettingsSection      = "hideNotebooksSection"
	SettingsSectionLabel = "Hide Notebooks"
)

// SettingKeys lists every key that affects the generated stylesheet
var SettingKeys = []string{SettingHiddenNotebookIDs, SettingShowAllNotes, SettingShowTrash}

// HiddenSet is an insertion-ordered set of folder ids. The zero value is empty
// and ready to use.
type HiddenSet struct {
	ids []string
}

// NewHiddenSet builds a set from ids, dropping empty and duplicate entries
func NewHiddenSet(ids ...string) HiddenSet {
	var s HiddenSet
	for _, id := range ids {
		s = s.With(id)
	}
	return s
}

// Contains reports whether id is hidden
func (s HiddenSet) Contains(id string) bool {
	return id != "" && slices.Contains(s.ids, id)
}

// Len returns the number of hidden ids
func (s HiddenSet) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the ids in insertion order
func (s HiddenSet) IDs() []string {
	return slices.Clone(s.ids)
}

// With returns a set that also contains id
func (s HiddenSet) With(id string) HiddenSet {
	if id == "" || s.Contains(id) {
		return s
	}
	return HiddenSet{ids: append(slices.Clone(s.ids), id)}
}

// Without returns a set with every listed id removed
func (s HiddenSet) Without(ids ...string) HiddenSet {
	kept := make([]string, 0, len(s.ids))
	for _, id := range s.ids {
		if !slices.Contains(ids, id) {
			kept = append(kept, id)
		}
	}
	return HiddenSet{ids: kept}
}

// Equal compares membership, ignoring order
func (s HiddenSet) Equal(other HiddenSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, id := range s.ids {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

// DisplayFlags controls the two fixed sidebar pseudo-entries
type DisplayFlags struct {
	ShowAllNotes bool
	ShowTrash    bool
}

// DefaultDisplayFlags shows both entries
func DefaultDisplayFlags() DisplayFlags {
	return DisplayFlags{ShowAllNotes: true, ShowTrash: true}
}

// BaselineHidden is what remains hidden after every notebook is revealed:
// Trash stays hidden while the show-trash flag is off.
func BaselineHidden(flags DisplayFlags) HiddenSet {
	if flags.ShowTrash {
		return HiddenSet{}
	}
	return NewHiddenSet(TrashFolderID)
}
