package repository

import (
	"testing"
	"time"

	"github.com/minigit-vcs/minigit/internal/objects"
	"github.com/minigit-vcs/minigit/testutils"
)

// initTestRepo initializes a repository in a temp directory.
func initTestRepo(t *testing.T) *Repository {
	t.Helper()

	repo, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return repo
}

// stageFiles writes the given files into the repository directory and
// stages them.
func stageFiles(t *testing.T, repo *Repository, files map[string]string) {
	t.Helper()

	for filename, content := range files {
		testutils.CreateTestFile(t, repo.Path(), filename, []byte(content))
		if err := repo.Add(filename); err != nil {
			t.Fatalf("Add(%q) failed: %v", filename, err)
		}
	}
}

// commitFiles stages the given files and commits them.
func commitFiles(t *testing.T, repo *Repository, files map[string]string, message string) *objects.Commit {
	t.Helper()

	stageFiles(t, repo, files)
	commit, err := repo.Commit(message, "")
	if err != nil {
		t.Fatalf("Commit(%q) failed: %v", message, err)
	}
	return commit
}

// checkoutBranch switches to a branch and fails the test on error.
func checkoutBranch(t *testing.T, repo *Repository, name string) {
	t.Helper()

	detached, err := repo.Checkout(name)
	if err != nil {
		t.Fatalf("Checkout(%q) failed: %v", name, err)
	}
	if detached {
		t.Fatalf("Checkout(%q) unexpectedly detached HEAD", name)
	}
}

// assertHead verifies HEAD points at the expected commit hash.
func assertHead(t *testing.T, repo *Repository, expected string) {
	t.Helper()

	head, err := repo.Head()
	if err != nil {
		t.Fatalf("Head failed: %v", err)
	}
	if head != expected {
		t.Errorf("Expected HEAD [%s], got [%s]", expected, head)
	}
}

// assertBranchTip verifies a branch points at the expected commit hash.
func assertBranchTip(t *testing.T, repo *Repository, name, expected string) {
	t.Helper()

	branch, ok := repo.branches[name]
	if !ok {
		t.Fatalf("Branch %q does not exist", name)
	}
	if branch.CommitHash() != expected {
		t.Errorf("Expected branch %q at [%s], got [%s]", name, expected, branch.CommitHash())
	}
}

// storeRootCommit crafts and stores a parentless commit outside the
// normal commit flow, for building unrelated histories.
func storeRootCommit(t *testing.T, repo *Repository, message string, files map[string]string) *objects.Commit {
	t.Helper()

	commit, err := objects.NewCommit(message, "tester", time.Unix(1735689600, 0), nil, files)
	if err != nil {
		t.Fatalf("Failed to create root commit: %v", err)
	}
	if err := repo.store.Store(commit); err != nil {
		t.Fatalf("Failed to store root commit: %v", err)
	}
	return commit
}

// fileBlobContent reads the content of the blob a commit records for
// filename.
func fileBlobContent(t *testing.T, repo *Repository, commit *objects.Commit, filename string) string {
	t.Helper()

	blobHash, ok := commit.FileHash(filename)
	if !ok {
		t.Fatalf("Commit does not track %q", filename)
	}
	blob, err := repo.store.ReadBlob(blobHash)
	if err != nil {
		t.Fatalf("Failed to read blob for %q: %v", filename, err)
	}
	return string(blob.Content())
}
