package objects

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/minigit-vcs/minigit/internal/constants"
)

// Object is the interface implemented by every content-addressed record
// stored in the repository's object space.
type Object interface {
	// Hash returns the SHA-1 hash of the object as a 40-character
	// lowercase hexadecimal string.
	Hash() string
	// Data returns the complete serialized record, tag line included,
	// exactly as it is written to disk.
	Data() []byte
}

// DecodeObject parses a serialized record into the concrete object type
// named by its tag line. Records with an unrecognized tag are rejected
// with ErrCorruptObject.
func DecodeObject(data []byte) (Object, error) {
	switch {
	case bytes.HasPrefix(data, []byte(constants.BlobPrefix)):
		return DecodeBlob(data)
	case bytes.HasPrefix(data, []byte(constants.CommitPrefix)):
		return DecodeCommit(data)
	default:
		return nil, fmt.Errorf("unrecognized record tag: %w", ErrCorruptObject)
	}
}

// lineReader walks the newline-separated fields of a record in order.
// Decoders consume one prefixed field at a time and fail fast on the
// first line that does not match.
type lineReader struct {
	lines []string
	pos   int
}

func newLineReader(data []byte) *lineReader {
	lines := strings.Split(string(data), "\n")
	// A well-formed record ends with a newline, which leaves one empty
	// trailing element behind.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return &lineReader{lines: lines}
}

// next consumes the current line and returns it with prefix stripped.
func (r *lineReader) next(prefix string) (string, error) {
	field := strings.TrimSpace(prefix)
	if r.pos >= len(r.lines) {
		return "", fmt.Errorf("record truncated before %q field: %w", field, ErrCorruptObject)
	}
	line := r.lines[r.pos]
	if !strings.HasPrefix(line, prefix) {
		return "", fmt.Errorf("expected %q field, found %q: %w", field, line, ErrCorruptObject)
	}
	r.pos++
	return strings.TrimPrefix(line, prefix), nil
}

// exhausted reports whether every line has been consumed.
func (r *lineReader) exhausted() bool {
	return r.pos == len(r.lines)
}
