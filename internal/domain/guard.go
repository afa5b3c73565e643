package domain

// UnhiddenCount estimates how many folders stay visible once target is hidden.
// It only looks one level down: a folder counts as hidden when it, or its
// parent, is in hidden or is target.
func UnhiddenCount(target string, hidden HiddenSet, folders []Folder) int {
	count := len(folders)
	for _, f := range folders {
		if hidden.Contains(f.ID) || hidden.Contains(f.ParentID) ||
			f.ID == target || (target != "" && f.ParentID == target) {
			count--
		}
	}
	return count
}

// MayHide reports whether hiding target still leaves at least one folder visible
func MayHide(target string, hidden HiddenSet, folders []Folder) bool {
	return UnhiddenCount(target, hidden, folders) > 0
}

// IsBlocked reports whether a selected folder must not stay selected
func IsBlocked(f Folder, hidden HiddenSet) bool {
	return hidden.Contains(f.ID) || hidden.Contains(f.ParentID) || f.IsTrash()
}

// FirstVisibleNote returns the first note, in the given order, whose folder is
// not hidden.
func FirstVisibleNote(notes []Note, hidden HiddenSet) (Note, bool) {
	for _, n := range notes {
		if !hidden.Contains(n.ParentID) {
			return n, true
		}
	}
	return Note{}, false
}

// HidesAll reports whether every folder is in hidden. An empty folder list is
// never fully hidden.
func HidesAll(hidden HiddenSet, folders []Folder) bool {
	if len(folders) == 0 {
		return false
	}
	for _, f := range folders {
		if !hidden.Contains(f.ID) {
			return false
		}
	}
	return true
}

// HiddenAncestor returns the nearest ancestor of id that is in hidden.
func HiddenAncestor(id string, hidden HiddenSet, folders []Folder) (string, bool) {
	parents := make(map[string]string, len(folders))
	for _, f := range folders {
		parents[f.ID] = f.ParentID
	}

	seen := map[string]bool{id: true}
	for p := parents[id]; p != "" && !seen[p]; p = parents[p] {
		if hidden.Contains(p) {
			return p, true
		}
		seen[p] = true
	}
	return "", false
}
