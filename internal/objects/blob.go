package objects

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/minigit-vcs/minigit/internal/constants"
	"github.com/minigit-vcs/minigit/utils"
)

// Blob is an immutable snapshot of a single file's content. The hash is
// computed once at construction and the record layout is:
//
//	blob <hash>
//	filename <name>
//	content <length>
//	<raw bytes>
type Blob struct {
	content  []byte
	filename string
	hash     string
}

// NewBlob creates a blob for the given file content. The filename is
// recorded for display purposes only; identity is derived from the
// content alone, so two files with equal bytes share one blob hash.
func NewBlob(content []byte, filename string) (*Blob, error) {
	if filename == "" {
		return nil, fmt.Errorf("blob filename must not be empty")
	}
	if strings.ContainsRune(filename, '\n') {
		return nil, fmt.Errorf("blob filename must not contain newlines: %q", filename)
	}

	hash, err := utils.ComputeHash(content, utils.BlobObjectType)
	if err != nil {
		return nil, fmt.Errorf("failed to compute blob hash: %w", err)
	}

	return &Blob{
		content:  content,
		filename: filename,
		hash:     hash,
	}, nil
}

// Hash returns the blob's SHA-1 hash.
func (b *Blob) Hash() string {
	return b.hash
}

// Filename returns the name the file carried when the blob was created.
func (b *Blob) Filename() string {
	return b.filename
}

// Content returns the raw file bytes.
func (b *Blob) Content() []byte {
	return b.content
}

// Size returns the content length in bytes.
func (b *Blob) Size() int {
	return len(b.content)
}

// Data returns the serialized blob record.
func (b *Blob) Data() []byte {
	var buf bytes.Buffer
	buf.WriteString(constants.BlobPrefix + b.hash + "\n")
	buf.WriteString(constants.FilenamePrefix + b.filename + "\n")
	buf.WriteString(constants.ContentPrefix + strconv.Itoa(len(b.content)) + "\n")
	buf.Write(b.content)
	return buf.Bytes()
}

// DecodeBlob parses a serialized blob record. The declared content
// length must match the remaining bytes exactly and the stored hash
// must match the hash recomputed from the content; any deviation is
// reported as ErrCorruptObject.
func DecodeBlob(data []byte) (*Blob, error) {
	tagLine, rest, ok := cutLine(data)
	if !ok || !strings.HasPrefix(tagLine, constants.BlobPrefix) {
		return nil, fmt.Errorf("missing blob tag line: %w", ErrCorruptObject)
	}
	storedHash := strings.TrimPrefix(tagLine, constants.BlobPrefix)
	if len(storedHash) != constants.HashStringLength {
		return nil, fmt.Errorf("malformed blob hash %q: %w", storedHash, ErrCorruptObject)
	}

	filenameLine, rest, ok := cutLine(rest)
	if !ok || !strings.HasPrefix(filenameLine, constants.FilenamePrefix) {
		return nil, fmt.Errorf("missing blob filename line: %w", ErrCorruptObject)
	}
	filename := strings.TrimPrefix(filenameLine, constants.FilenamePrefix)
	if filename == "" {
		return nil, fmt.Errorf("empty blob filename: %w", ErrCorruptObject)
	}

	contentLine, rest, ok := cutLine(rest)
	if !ok || !strings.HasPrefix(contentLine, constants.ContentPrefix) {
		return nil, fmt.Errorf("missing blob content line: %w", ErrCorruptObject)
	}
	length, err := strconv.Atoi(strings.TrimPrefix(contentLine, constants.ContentPrefix))
	if err != nil || length < 0 {
		return nil, fmt.Errorf("malformed blob content length: %w", ErrCorruptObject)
	}
	if len(rest) != length {
		return nil, fmt.Errorf("blob content is %d bytes, record declares %d: %w", len(rest), length, ErrCorruptObject)
	}

	blob, err := NewBlob(rest, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild blob: %w", ErrCorruptObject)
	}
	if blob.hash != storedHash {
		return nil, fmt.Errorf("blob hash mismatch, stored %s computed %s: %w", storedHash, blob.hash, ErrCorruptObject)
	}

	return blob, nil
}

// cutLine splits the first newline-terminated line off data. The
// returned line excludes the newline itself.
func cutLine(data []byte) (line string, rest []byte, ok bool) {
	before, after, found := bytes.Cut(data, []byte("\n"))
	if !found {
		return "", nil, false
	}
	return string(before), after, true
}
