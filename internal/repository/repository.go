// Package repository implements the version-control operations on top
// of the object store: staging, committing, branching, checkout,
// history traversal, three-way merge and commit diffs.
package repository

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/minigit-vcs/minigit/internal/config"
	"github.com/minigit-vcs/minigit/internal/constants"
	"github.com/minigit-vcs/minigit/internal/objects"
)

// Repository holds the state of one repository: the object store, the
// loaded branch pointers, the current branch name and the staging area.
// The staging area and the current branch name live only in memory; a
// fresh process always opens on the default branch with nothing staged.
type Repository struct {
	path          string
	store         *objects.ObjectStore
	branches      map[string]*objects.Branch
	currentBranch string
	staging       map[string]*objects.Blob
}

// IsInitialized reports whether path contains a repository.
func IsInitialized(path string) bool {
	info, err := os.Stat(filepath.Join(path, constants.MiniGit))
	return err == nil && info.IsDir()
}

// Init creates the .minigit structure at path and returns the opened
// repository. A half-created structure is removed again if any step
// fails. Init on an already-initialized path just opens it; callers
// that want to warn check IsInitialized first.
func Init(path string) (*Repository, error) {
	if IsInitialized(path) {
		return Open(path)
	}

	minigitPath := filepath.Join(path, constants.MiniGit)

	success := false
	defer func() {
		if !success {
			if err := os.RemoveAll(minigitPath); err != nil {
				slog.Warn("Failed to clean up repository directory", "path", minigitPath, "error", err)
			}
		}
	}()

	directories := []string{
		minigitPath,
		filepath.Join(minigitPath, constants.Objects),
		filepath.Join(minigitPath, constants.Refs),
	}
	for _, dir := range directories {
		if err := os.MkdirAll(dir, constants.DirPerms); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	mainBranch, err := objects.NewBranch(constants.DefaultBranch, "")
	if err != nil {
		return nil, fmt.Errorf("failed to create default branch: %w", err)
	}

	repo := newRepository(path)
	repo.branches[mainBranch.Name()] = mainBranch
	if err := repo.saveBranch(mainBranch); err != nil {
		return nil, err
	}

	success = true
	return repo, nil
}

// Open loads the repository at path: branch records are read from the
// refs directory, the current branch starts as the default branch and
// the staging area starts empty.
func Open(path string) (*Repository, error) {
	if !IsInitialized(path) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotInitialized)
	}

	repo := newRepository(path)
	if err := repo.loadBranches(); err != nil {
		return nil, err
	}
	return repo, nil
}

func newRepository(path string) *Repository {
	return &Repository{
		path:          path,
		store:         objects.NewObjectStore(path),
		branches:      make(map[string]*objects.Branch),
		currentBranch: constants.DefaultBranch,
		staging:       make(map[string]*objects.Blob),
	}
}

// Path returns the repository's working directory.
func (r *Repository) Path() string {
	return r.path
}

// CurrentBranch returns the name of the branch commits will advance.
func (r *Repository) CurrentBranch() string {
	return r.currentBranch
}

// Head returns the current HEAD commit hash, or the empty string when
// no commits exist yet.
func (r *Repository) Head() (string, error) {
	return r.loadHead()
}

// Branches returns all branch names in sorted order.
func (r *Repository) Branches() []string {
	names := make([]string, 0, len(r.branches))
	for name := range r.branches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasBranch reports whether a branch with the given name exists.
func (r *Repository) HasBranch(name string) bool {
	_, ok := r.branches[name]
	return ok
}

// StagedFiles returns the staged filenames in sorted order.
func (r *Repository) StagedFiles() []string {
	names := make([]string, 0, len(r.staging))
	for name := range r.staging {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Add stages a file: the file's current content is hashed into a blob
// held in memory until the next commit. Re-adding a file replaces its
// staged blob. Relative filenames resolve against the repository root.
func (r *Repository) Add(filename string) error {
	filePath := filename
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(r.path, filename)
	}

	info, err := os.Stat(filePath)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%q: %w", filename, ErrFileNotFound)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %q: %v: %w", filename, err, objects.ErrStorageUnavailable)
	}

	blob, err := objects.NewBlob(content, filename)
	if err != nil {
		return fmt.Errorf("failed to stage %q: %w", filename, err)
	}

	r.staging[filename] = blob
	return nil
}

// Commit writes the staged files as a new commit. The commit's file
// table is a full snapshot: the parent commit's table with the staged
// files overlaid, so unchanged files stay reachable from every commit.
// The author is authorOverride if non-empty, otherwise it comes from
// the repository config. HEAD and the current branch advance to the
// new commit and the staging area is cleared.
func (r *Repository) Commit(message, authorOverride string) (*objects.Commit, error) {
	if len(r.staging) == 0 {
		return nil, ErrNoChangesStaged
	}

	author := authorOverride
	if author == "" {
		cfg, err := config.Load(r.path)
		if err != nil {
			return nil, err
		}
		author = cfg.Author()
	}

	head, err := r.loadHead()
	if err != nil {
		return nil, err
	}

	var parents []string
	files := make(map[string]string)
	if head != "" {
		parent, err := r.store.ReadCommit(head)
		if err != nil {
			return nil, fmt.Errorf("failed to load parent commit: %w", err)
		}
		parents = append(parents, head)
		files = parent.Files()
	}

	for filename, blob := range r.staging {
		if err := r.store.Store(blob); err != nil {
			return nil, err
		}
		files[filename] = blob.Hash()
	}

	commit, err := objects.NewCommit(message, author, time.Now(), parents, files)
	if err != nil {
		return nil, fmt.Errorf("failed to create commit: %w", err)
	}
	if err := r.store.Store(commit); err != nil {
		return nil, err
	}

	if err := r.advanceTo(commit.Hash()); err != nil {
		return nil, err
	}

	r.staging = make(map[string]*objects.Blob)
	return commit, nil
}

// Log returns the first-parent history from HEAD, newest first. The
// walk stops at a root commit, at the first hash missing from the
// store, or at the traversal bound.
func (r *Repository) Log() ([]*objects.Commit, error) {
	head, err := r.loadHead()
	if err != nil {
		return nil, err
	}
	if head == "" {
		return nil, nil
	}

	var history []*objects.Commit
	current := head
	for current != "" && len(history) < constants.MaxHistoryDepth {
		commit, err := r.store.ReadCommit(current)
		if errors.Is(err, objects.ErrNotFound) {
			slog.Warn("History walk stopped at missing commit", "hash", current)
			break
		}
		if err != nil {
			return nil, err
		}

		history = append(history, commit)

		parent, ok := commit.FirstParent()
		if !ok {
			break
		}
		current = parent
	}

	return history, nil
}

// CreateBranch creates a branch pointing at the current HEAD commit,
// which may not exist yet; a branch created before the first commit
// starts empty.
func (r *Repository) CreateBranch(name string) error {
	if r.HasBranch(name) {
		return fmt.Errorf("%q: %w", name, ErrBranchExists)
	}

	head, err := r.loadHead()
	if err != nil {
		return err
	}

	branch, err := objects.NewBranch(name, head)
	if err != nil {
		return err
	}

	if err := r.saveBranch(branch); err != nil {
		return err
	}
	r.branches[name] = branch
	return nil
}

// Checkout switches to a branch or a commit. A branch name makes it
// the current branch and moves HEAD to its tip commit if it has one;
// switching to a branch with no commits leaves HEAD where it was. A
// full commit hash moves HEAD there without changing the current
// branch (detached). The working tree is never touched.
func (r *Repository) Checkout(target string) (detached bool, err error) {
	if branch, ok := r.branches[target]; ok {
		r.currentBranch = target
		if !branch.IsEmpty() {
			if err := r.saveHead(branch.CommitHash()); err != nil {
				return false, err
			}
		}
		return false, nil
	}

	if _, err := r.store.ReadCommit(target); err == nil {
		if err := r.saveHead(target); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, fmt.Errorf("%q: %w", target, ErrTargetNotFound)
}

// Status describes the repository state for display.
type Status struct {
	Branch   string
	Head     string   // empty when no commits exist
	Branches []string // sorted, includes Branch
	Staged   []string // sorted staged filenames
}

// Status reports the current branch, HEAD commit, branch list and
// staged files.
func (r *Repository) Status() (*Status, error) {
	head, err := r.loadHead()
	if err != nil {
		return nil, err
	}

	return &Status{
		Branch:   r.currentBranch,
		Head:     head,
		Branches: r.Branches(),
		Staged:   r.StagedFiles(),
	}, nil
}

// advanceTo moves HEAD and the current branch pointer to commitHash.
// The branch pointer moves even when HEAD was detached from it, which
// matches commit semantics: the current branch always receives new
// commits.
func (r *Repository) advanceTo(commitHash string) error {
	if err := r.saveHead(commitHash); err != nil {
		return err
	}

	if branch, ok := r.branches[r.currentBranch]; ok {
		if err := branch.SetCommitHash(commitHash); err != nil {
			return err
		}
		if err := r.saveBranch(branch); err != nil {
			return err
		}
	}
	return nil
}
