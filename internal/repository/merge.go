package repository

import (
	"fmt"
	"sort"
	"time"

	"github.com/minigit-vcs/minigit/internal/config"
	"github.com/minigit-vcs/minigit/internal/constants"
	"github.com/minigit-vcs/minigit/internal/objects"
)

// MergeResult describes the outcome of a merge: the created commit,
// the files that conflicted (in sorted order), or the fact that there
// was nothing to do.
type MergeResult struct {
	Commit    *objects.Commit
	Conflicts []string
	UpToDate  bool
}

// Merge merges the named branch into the current branch with a
// three-way merge against their lowest common ancestor:
//
//   - files changed only on the target side take the target's version;
//   - files changed identically on both sides take that version;
//   - files changed differently on both sides are conflicts: the
//     conflict-marked content becomes a new blob and the file is
//     reported in the result;
//   - everything else keeps the current branch's version, because the
//     merge commit's file table starts as the current commit's full
//     snapshot.
//
// Conflicts do not abort the merge; the merge commit is created either
// way, with the current commit as first parent and the target as
// second. Identical tips are reported as up to date without creating
// anything, and histories without a common ancestor refuse to merge.
func (r *Repository) Merge(branchName string) (*MergeResult, error) {
	branch, ok := r.branches[branchName]
	if !ok {
		return nil, fmt.Errorf("%q: %w", branchName, ErrBranchNotFound)
	}

	currentHash, err := r.loadHead()
	if err != nil {
		return nil, err
	}
	targetHash := branch.CommitHash()

	if currentHash == targetHash {
		return &MergeResult{UpToDate: true}, nil
	}

	lca, err := r.LowestCommonAncestor(currentHash, targetHash)
	if err != nil {
		return nil, err
	}
	if lca == "" {
		return nil, fmt.Errorf("merging %q into %q: %w", branchName, r.currentBranch, ErrUnrelatedHistories)
	}

	currentChanges, err := r.fileChanges(lca, currentHash)
	if err != nil {
		return nil, err
	}
	targetChanges, err := r.fileChanges(lca, targetHash)
	if err != nil {
		return nil, err
	}

	baseCommit, err := r.store.ReadCommit(lca)
	if err != nil {
		return nil, err
	}
	currentCommit, err := r.store.ReadCommit(currentHash)
	if err != nil {
		return nil, err
	}

	// The merge table starts as the current snapshot, so files the
	// target never touched (and current-only changes) carry over as-is.
	merged := currentCommit.Files()
	var conflicts []string

	targetFiles := make([]string, 0, len(targetChanges))
	for filename := range targetChanges {
		targetFiles = append(targetFiles, filename)
	}
	sort.Strings(targetFiles)

	for _, filename := range targetFiles {
		theirHash := targetChanges[filename]
		ourHash, changedHere := currentChanges[filename]

		switch {
		case !changedHere:
			merged[filename] = theirHash
		case ourHash == theirHash:
			merged[filename] = theirHash
		default:
			conflicts = append(conflicts, filename)

			mergedBlob, err := r.mergeConflictingFile(baseCommit, filename, ourHash, theirHash)
			if err != nil {
				return nil, err
			}
			merged[filename] = mergedBlob.Hash()
		}
	}

	cfg, err := config.Load(r.path)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Merge branch '%s' into %s", branchName, r.currentBranch)
	commit, err := objects.NewCommit(message, cfg.Author(), time.Now(),
		[]string{currentHash, targetHash}, merged)
	if err != nil {
		return nil, fmt.Errorf("failed to create merge commit: %w", err)
	}
	if err := r.store.Store(commit); err != nil {
		return nil, err
	}

	if err := r.advanceTo(commit.Hash()); err != nil {
		return nil, err
	}

	return &MergeResult{Commit: commit, Conflicts: conflicts}, nil
}

// mergeConflictingFile builds and stores the conflict-marked blob for a
// file both sides changed. A file absent from the ancestor's table
// merges against empty base content.
func (r *Repository) mergeConflictingFile(baseCommit *objects.Commit, filename, ourHash, theirHash string) (*objects.Blob, error) {
	baseContent := ""
	if baseHash, ok := baseCommit.FileHash(filename); ok {
		baseBlob, err := r.store.ReadBlob(baseHash)
		if err != nil {
			return nil, fmt.Errorf("failed to load base version of %q: %w", filename, err)
		}
		baseContent = string(baseBlob.Content())
	}

	oursBlob, err := r.store.ReadBlob(ourHash)
	if err != nil {
		return nil, fmt.Errorf("failed to load our version of %q: %w", filename, err)
	}
	theirsBlob, err := r.store.ReadBlob(theirHash)
	if err != nil {
		return nil, fmt.Errorf("failed to load their version of %q: %w", filename, err)
	}

	mergedContent := MergeContent(baseContent, string(oursBlob.Content()), string(theirsBlob.Content()))
	mergedBlob, err := objects.NewBlob([]byte(mergedContent), filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build merged blob for %q: %w", filename, err)
	}
	if err := r.store.Store(mergedBlob); err != nil {
		return nil, err
	}
	return mergedBlob, nil
}

// fileChanges returns the files whose blob hash in to's table is absent
// from or different in from's table: the changes introduced on the path
// from one commit to the other. Files deleted in to do not appear.
func (r *Repository) fileChanges(from, to string) (map[string]string, error) {
	fromCommit, err := r.store.ReadCommit(from)
	if err != nil {
		return nil, err
	}
	toCommit, err := r.store.ReadCommit(to)
	if err != nil {
		return nil, err
	}

	changes := make(map[string]string)
	for filename, blobHash := range toCommit.Files() {
		if fromHash, ok := fromCommit.FileHash(filename); !ok || fromHash != blobHash {
			changes[filename] = blobHash
		}
	}
	return changes, nil
}

// MergeContent applies the three-way merge rule to one file's contents.
// Identical sides win outright; a side that still matches the base is
// superseded by the other; otherwise the result is the base content
// followed by both versions wrapped in conflict markers.
func MergeContent(base, ours, theirs string) string {
	if ours == theirs {
		return ours
	}
	if base == ours {
		return theirs
	}
	if base == theirs {
		return ours
	}

	merged := base
	merged += "\n" + constants.ConflictMarkerOurs + "\n"
	merged += ours
	merged += "\n" + constants.ConflictMarkerSep + "\n"
	merged += theirs
	merged += "\n" + constants.ConflictMarkerTheirs + "\n"
	return merged
}
