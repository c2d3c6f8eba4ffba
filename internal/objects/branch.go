package objects

import (
	"fmt"
	"strings"

	"github.com/minigit-vcs/minigit/internal/constants"
)

// Branch is a named, movable pointer to a commit. Unlike blobs and
// commits it is mutable and lives in the refs directory keyed by name
// rather than in the content-addressed object space. Its record layout
// is:
//
//	branch <name>
//	commit <hash>
type Branch struct {
	name       string
	commitHash string
}

// NewBranch creates a branch pointing at commitHash. An empty hash is
// valid and represents a branch in a repository with no commits yet.
// Branch names become filenames under refs, so separators and path
// traversal names are rejected.
func NewBranch(name, commitHash string) (*Branch, error) {
	if err := validateBranchName(name); err != nil {
		return nil, err
	}
	if commitHash != "" && len(commitHash) != constants.HashStringLength {
		return nil, fmt.Errorf("malformed commit hash %q for branch %q", commitHash, name)
	}
	return &Branch{name: name, commitHash: commitHash}, nil
}

func validateBranchName(name string) error {
	if name == "" {
		return fmt.Errorf("branch name must not be empty")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid branch name %q", name)
	}
	if strings.ContainsAny(name, "/\\\n") {
		return fmt.Errorf("branch name %q must not contain separators or newlines", name)
	}
	return nil
}

// Name returns the branch name.
func (b *Branch) Name() string {
	return b.name
}

// CommitHash returns the hash of the commit the branch points at, or
// the empty string if no commit has been made on it yet.
func (b *Branch) CommitHash() string {
	return b.commitHash
}

// IsEmpty reports whether the branch has no commits yet.
func (b *Branch) IsEmpty() bool {
	return b.commitHash == ""
}

// SetCommitHash advances the branch pointer to a new commit.
func (b *Branch) SetCommitHash(commitHash string) error {
	if len(commitHash) != constants.HashStringLength {
		return fmt.Errorf("malformed commit hash %q for branch %q", commitHash, b.name)
	}
	b.commitHash = commitHash
	return nil
}

// Data returns the serialized branch record.
func (b *Branch) Data() []byte {
	return []byte(constants.BranchPrefix + b.name + "\n" + constants.CommitPrefix + b.commitHash + "\n")
}

// DecodeBranch parses a serialized branch record.
func DecodeBranch(data []byte) (*Branch, error) {
	reader := newLineReader(data)

	name, err := reader.next(constants.BranchPrefix)
	if err != nil {
		return nil, err
	}
	commitHash, err := reader.next(constants.CommitPrefix)
	if err != nil {
		return nil, err
	}
	if !reader.exhausted() {
		return nil, fmt.Errorf("trailing data after branch record: %w", ErrCorruptObject)
	}

	branch, err := NewBranch(name, commitHash)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild branch: %w", ErrCorruptObject)
	}
	return branch, nil
}
