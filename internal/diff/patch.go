package diff

import "strings"

// Apply rebuilds file content from a patch: Added and Unchanged lines
// are kept in order, Removed lines are dropped. The result carries no
// trailing newline, matching the line-splitting convention used by
// Lines, so Apply(Lines(old, new)) reproduces new up to a trailing
// newline.
func Apply(patch []Line) string {
	var kept []string
	for _, line := range patch {
		if line.Op == Removed {
			continue
		}
		kept = append(kept, line.Content)
	}
	return strings.Join(kept, "\n")
}
