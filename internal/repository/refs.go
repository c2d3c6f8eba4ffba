package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/minigit-vcs/minigit/internal/constants"
	"github.com/minigit-vcs/minigit/internal/objects"
)

func (r *Repository) headPath() string {
	return filepath.Join(r.path, constants.MiniGit, constants.Head)
}

func (r *Repository) refPath(name string) string {
	return filepath.Join(r.path, constants.MiniGit, constants.Refs, name)
}

// saveHead persists the HEAD commit hash. Only the hash is persisted;
// the current branch name is process state.
func (r *Repository) saveHead(commitHash string) error {
	if err := os.WriteFile(r.headPath(), []byte(commitHash), constants.FilePerms); err != nil {
		return fmt.Errorf("failed to write HEAD: %v: %w", err, objects.ErrStorageUnavailable)
	}
	return nil
}

// loadHead reads the HEAD commit hash. A missing HEAD file means no
// commits exist yet.
func (r *Repository) loadHead() (string, error) {
	data, err := os.ReadFile(r.headPath())
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %v: %w", err, objects.ErrStorageUnavailable)
	}
	return strings.TrimSpace(string(data)), nil
}

// saveBranch writes a branch record into the refs space, one file per
// branch keyed by name.
func (r *Repository) saveBranch(branch *objects.Branch) error {
	if err := os.WriteFile(r.refPath(branch.Name()), branch.Data(), constants.FilePerms); err != nil {
		return fmt.Errorf("failed to write branch %q: %v: %w", branch.Name(), err, objects.ErrStorageUnavailable)
	}
	return nil
}

// loadBranches reads every branch record from the refs directory. A
// record that does not decode fails the open.
func (r *Repository) loadBranches() error {
	refsDir := filepath.Join(r.path, constants.MiniGit, constants.Refs)
	entries, err := os.ReadDir(refsDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read refs directory: %v: %w", err, objects.ErrStorageUnavailable)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(refsDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read branch record %q: %v: %w", entry.Name(), err, objects.ErrStorageUnavailable)
		}

		branch, err := objects.DecodeBranch(data)
		if err != nil {
			return fmt.Errorf("failed to decode branch record %q: %w", entry.Name(), err)
		}
		r.branches[branch.Name()] = branch
	}
	return nil
}
