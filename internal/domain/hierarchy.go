package domain

// ExpandHidden returns current plus target plus every folder below target,
// followed to any depth. Each pass over folders adds the children of ids
// already collected; the scan stops on the first pass that adds nothing, so
// parent cycles in corrupt data still terminate.
func ExpandHidden(target string, current HiddenSet, folders []Folder) HiddenSet {
	result := current.With(target)
	if target == "" {
		return result
	}

	for {
		added := false
		for _, f := range folders {
			if f.ParentID != "" && result.Contains(f.ParentID) && !result.Contains(f.ID) {
				result = result.With(f.ID)
				added = true
			}
		}
		if !added {
			return result
		}
	}
}

// Descendants lists every folder below target, nearest first
func Descendants(target string, folders []Folder) []string {
	if target == "" {
		return nil
	}
	seen := NewHiddenSet(target)
	var out []string
	frontier := []string{target}
	for len(frontier) > 0 {
		var next []string
		for _, f := range folders {
			for _, parent := range frontier {
				if f.ParentID == parent && !seen.Contains(f.ID) {
					seen = seen.With(f.ID)
					out = append(out, f.ID)
					next = append(next, f.ID)
				}
			}
		}
		frontier = next
	}
	return out
}
