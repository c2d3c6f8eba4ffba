package repository

import (
	"errors"
	"log/slog"

	"github.com/minigit-vcs/minigit/internal/constants"
	"github.com/minigit-vcs/minigit/internal/objects"
)

// Ancestors returns the first-parent ancestor chain of commitHash,
// starting with the commit itself. The walk follows only first parents,
// so the second line of a merge commit is invisible to it and the
// common-ancestor search is exact only for histories built from simple
// branch-and-merge use. The walk ends at a root commit, at a hash
// missing from the store (the edge of known history), or at the
// traversal bound.
func (r *Repository) Ancestors(commitHash string) ([]string, error) {
	var ancestors []string
	current := commitHash

	for current != "" && len(ancestors) < constants.MaxHistoryDepth {
		commit, err := r.store.ReadCommit(current)
		if errors.Is(err, objects.ErrNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}

		ancestors = append(ancestors, current)

		parent, ok := commit.FirstParent()
		if !ok {
			break
		}
		current = parent
	}

	if len(ancestors) == constants.MaxHistoryDepth {
		slog.Warn("Ancestor walk hit traversal bound", "start", commitHash, "bound", constants.MaxHistoryDepth)
	}

	return ancestors, nil
}

// LowestCommonAncestor returns the first commit on b's first-parent
// chain that also appears on a's chain, or the empty string when the
// histories share no commit. Since either endpoint counts as its own
// ancestor, merging a commit with its own descendant yields the older
// of the two.
func (r *Repository) LowestCommonAncestor(a, b string) (string, error) {
	ancestorsA, err := r.Ancestors(a)
	if err != nil {
		return "", err
	}
	ancestorsB, err := r.Ancestors(b)
	if err != nil {
		return "", err
	}

	seen := make(map[string]bool, len(ancestorsA))
	for _, hash := range ancestorsA {
		seen[hash] = true
	}

	for _, hash := range ancestorsB {
		if seen[hash] {
			return hash, nil
		}
	}
	return "", nil
}
