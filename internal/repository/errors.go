package repository

import "errors"

// Sentinel errors for repository operations. The CLI layer matches on
// these to choose exit messages; wrapped messages carry the filename,
// branch, or hash involved.
var (
	// ErrNotInitialized indicates the working directory has no
	// .minigit metadata directory.
	ErrNotInitialized = errors.New("not a minigit repository")

	// ErrFileNotFound indicates an add target that does not exist as
	// a regular file.
	ErrFileNotFound = errors.New("file does not exist")

	// ErrNoChangesStaged indicates a commit attempt with an empty
	// staging area.
	ErrNoChangesStaged = errors.New("no changes staged for commit")

	// ErrBranchExists indicates a branch create with a name already
	// taken.
	ErrBranchExists = errors.New("branch already exists")

	// ErrBranchNotFound indicates a merge target branch that does not
	// exist.
	ErrBranchNotFound = errors.New("branch does not exist")

	// ErrTargetNotFound indicates a checkout target that is neither a
	// known branch nor a stored commit hash.
	ErrTargetNotFound = errors.New("checkout target not found")

	// ErrUnrelatedHistories indicates a merge between commits that
	// share no common ancestor.
	ErrUnrelatedHistories = errors.New("no common ancestor found")
)
