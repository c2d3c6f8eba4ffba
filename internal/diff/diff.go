// Package diff implements the positional line diff used for file
// comparisons. Lines are compared index by index, not aligned: an
// insertion near the top shifts every following line and shows up as a
// cascade of removed/added pairs.
package diff

import "github.com/minigit-vcs/minigit/utils"

// Op classifies a line in a diff.
type Op int

const (
	Unchanged Op = iota
	Added
	Removed
)

// Line is a single diff line: its classification and content.
type Line struct {
	Op      Op
	Content string
}

// String renders the line in patch form: a two-character marker
// followed by the content.
func (l Line) String() string {
	switch l.Op {
	case Added:
		return "+ " + l.Content
	case Removed:
		return "- " + l.Content
	default:
		return "  " + l.Content
	}
}

// Lines computes the positional diff between two file contents. Both
// inputs are split on newlines and walked by index: a line present only
// in the new content is Added, present only in the old content is
// Removed, and differing at the same index yields a Removed/Added pair.
// Contents differing only in a trailing newline compare equal.
func Lines(oldContent, newContent string) []Line {
	oldLines := utils.SplitLines(oldContent)
	newLines := utils.SplitLines(newContent)

	maxLines := len(oldLines)
	if len(newLines) > maxLines {
		maxLines = len(newLines)
	}

	var result []Line
	for i := 0; i < maxLines; i++ {
		switch {
		case i >= len(oldLines):
			result = append(result, Line{Op: Added, Content: newLines[i]})
		case i >= len(newLines):
			result = append(result, Line{Op: Removed, Content: oldLines[i]})
		case oldLines[i] != newLines[i]:
			result = append(result, Line{Op: Removed, Content: oldLines[i]})
			result = append(result, Line{Op: Added, Content: newLines[i]})
		default:
			result = append(result, Line{Op: Unchanged, Content: oldLines[i]})
		}
	}
	return result
}
