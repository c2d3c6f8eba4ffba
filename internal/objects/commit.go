package objects

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/minigit-vcs/minigit/internal/constants"
	"github.com/minigit-vcs/minigit/utils"
)

// Commit is an immutable snapshot of the tracked tree together with its
// position in history. The file table maps every tracked filename to
// its blob hash, so a single commit is sufficient to restore the whole
// working state. The hash covers the record body, everything after the
// tag line, which makes it deterministic for a given message, author,
// timestamp, parent list and file table.
type Commit struct {
	hash      string
	message   string
	author    string
	timestamp time.Time
	parents   []string
	files     map[string]string
}

// NewCommit creates a commit and computes its hash. Message and author
// must be single-line; parent hashes are deduplicated while preserving
// order, as a merge of a branch with itself has only one real parent.
// Timestamps are truncated to whole seconds to match the serialized
// resolution.
func NewCommit(message, author string, timestamp time.Time, parents []string, files map[string]string) (*Commit, error) {
	if strings.ContainsRune(message, '\n') {
		return nil, fmt.Errorf("commit message must be single-line")
	}
	if strings.ContainsRune(author, '\n') {
		return nil, fmt.Errorf("commit author must be single-line")
	}

	uniqueParents := make([]string, 0, len(parents))
	seen := make(map[string]bool, len(parents))
	for _, parent := range parents {
		if len(parent) != constants.HashStringLength {
			return nil, fmt.Errorf("malformed parent hash %q", parent)
		}
		if seen[parent] {
			continue
		}
		seen[parent] = true
		uniqueParents = append(uniqueParents, parent)
	}

	fileTable := make(map[string]string, len(files))
	for filename, blobHash := range files {
		if filename == "" || strings.ContainsRune(filename, '\n') {
			return nil, fmt.Errorf("malformed filename %q in file table", filename)
		}
		if len(blobHash) != constants.HashStringLength {
			return nil, fmt.Errorf("malformed blob hash %q for file %q", blobHash, filename)
		}
		fileTable[filename] = blobHash
	}

	normalized := time.Unix(timestamp.Unix(), 0)
	body := commitBody(message, author, normalized, uniqueParents, fileTable)
	hash, err := utils.ComputeHash(body, utils.CommitObjectType)
	if err != nil {
		return nil, fmt.Errorf("failed to compute commit hash: %w", err)
	}

	return &Commit{
		hash:      hash,
		message:   message,
		author:    author,
		timestamp: normalized,
		parents:   uniqueParents,
		files:     fileTable,
	}, nil
}

// Hash returns the commit's SHA-1 hash.
func (c *Commit) Hash() string {
	return c.hash
}

// Message returns the commit message.
func (c *Commit) Message() string {
	return c.message
}

// Author returns the commit author.
func (c *Commit) Author() string {
	return c.author
}

// Timestamp returns the commit creation time at second resolution.
func (c *Commit) Timestamp() time.Time {
	return c.timestamp
}

// Parents returns the parent hashes in recorded order. The first entry
// is always the commit's own branch line; a second entry marks a merge.
func (c *Commit) Parents() []string {
	parents := make([]string, len(c.parents))
	copy(parents, c.parents)
	return parents
}

// FirstParent returns the first parent hash, or false for a root commit.
func (c *Commit) FirstParent() (string, bool) {
	if len(c.parents) == 0 {
		return "", false
	}
	return c.parents[0], true
}

// IsMergeCommit reports whether the commit joins two history lines.
func (c *Commit) IsMergeCommit() bool {
	return len(c.parents) > 1
}

// IsRootCommit reports whether the commit has no parents.
func (c *Commit) IsRootCommit() bool {
	return len(c.parents) == 0
}

// Files returns a copy of the file table mapping filenames to blob
// hashes.
func (c *Commit) Files() map[string]string {
	files := make(map[string]string, len(c.files))
	for filename, blobHash := range c.files {
		files[filename] = blobHash
	}
	return files
}

// FileHash returns the blob hash recorded for filename.
func (c *Commit) FileHash(filename string) (string, bool) {
	blobHash, ok := c.files[filename]
	return blobHash, ok
}

// TracksFile reports whether filename appears in the commit's file table.
func (c *Commit) TracksFile(filename string) bool {
	_, ok := c.files[filename]
	return ok
}

// Data returns the serialized commit record.
func (c *Commit) Data() []byte {
	var buf bytes.Buffer
	buf.WriteString(constants.CommitPrefix + c.hash + "\n")
	buf.Write(commitBody(c.message, c.author, c.timestamp, c.parents, c.files))
	return buf.Bytes()
}

// commitBody builds the hashed portion of the record. File lines are
// emitted in filename order so equal tables always serialize equally.
func commitBody(message, author string, timestamp time.Time, parents []string, files map[string]string) []byte {
	var buf bytes.Buffer
	buf.WriteString(constants.MessagePrefix + message + "\n")
	buf.WriteString(constants.AuthorPrefix + author + "\n")
	buf.WriteString(constants.TimestampPrefix + strconv.FormatInt(timestamp.Unix(), 10) + "\n")

	buf.WriteString(constants.ParentsPrefix + strconv.Itoa(len(parents)) + "\n")
	for _, parent := range parents {
		buf.WriteString(constants.ParentPrefix + parent + "\n")
	}

	filenames := make([]string, 0, len(files))
	for filename := range files {
		filenames = append(filenames, filename)
	}
	sort.Strings(filenames)

	buf.WriteString(constants.FilesPrefix + strconv.Itoa(len(files)) + "\n")
	for _, filename := range filenames {
		buf.WriteString(constants.FilePrefix + filename + " " + files[filename] + "\n")
	}
	return buf.Bytes()
}

// DecodeCommit parses a serialized commit record. Field order is fixed,
// the parent and file counts must match the lines that follow, and the
// stored hash must match the hash recomputed from the parsed fields;
// any deviation is reported as ErrCorruptObject.
func DecodeCommit(data []byte) (*Commit, error) {
	reader := newLineReader(data)

	storedHash, err := reader.next(constants.CommitPrefix)
	if err != nil {
		return nil, err
	}
	if len(storedHash) != constants.HashStringLength {
		return nil, fmt.Errorf("malformed commit hash %q: %w", storedHash, ErrCorruptObject)
	}

	message, err := reader.next(constants.MessagePrefix)
	if err != nil {
		return nil, err
	}
	author, err := reader.next(constants.AuthorPrefix)
	if err != nil {
		return nil, err
	}

	timestampField, err := reader.next(constants.TimestampPrefix)
	if err != nil {
		return nil, err
	}
	seconds, err := strconv.ParseInt(timestampField, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed commit timestamp %q: %w", timestampField, ErrCorruptObject)
	}

	parentCountField, err := reader.next(constants.ParentsPrefix)
	if err != nil {
		return nil, err
	}
	parentCount, err := strconv.Atoi(parentCountField)
	if err != nil || parentCount < 0 {
		return nil, fmt.Errorf("malformed parent count %q: %w", parentCountField, ErrCorruptObject)
	}
	parents := make([]string, 0, parentCount)
	for i := 0; i < parentCount; i++ {
		parent, err := reader.next(constants.ParentPrefix)
		if err != nil {
			return nil, err
		}
		parents = append(parents, parent)
	}

	fileCountField, err := reader.next(constants.FilesPrefix)
	if err != nil {
		return nil, err
	}
	fileCount, err := strconv.Atoi(fileCountField)
	if err != nil || fileCount < 0 {
		return nil, fmt.Errorf("malformed file count %q: %w", fileCountField, ErrCorruptObject)
	}
	files := make(map[string]string, fileCount)
	for i := 0; i < fileCount; i++ {
		entry, err := reader.next(constants.FilePrefix)
		if err != nil {
			return nil, err
		}
		// Filenames may contain spaces; the hash is the field after
		// the last one.
		cut := strings.LastIndex(entry, " ")
		if cut <= 0 || cut == len(entry)-1 {
			return nil, fmt.Errorf("malformed file entry %q: %w", entry, ErrCorruptObject)
		}
		files[entry[:cut]] = entry[cut+1:]
	}

	if !reader.exhausted() {
		return nil, fmt.Errorf("trailing data after file table: %w", ErrCorruptObject)
	}

	commit, err := NewCommit(message, author, time.Unix(seconds, 0), parents, files)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild commit: %w", ErrCorruptObject)
	}
	if commit.hash != storedHash {
		return nil, fmt.Errorf("commit hash mismatch, stored %s computed %s: %w", storedHash, commit.hash, ErrCorruptObject)
	}

	return commit, nil
}
