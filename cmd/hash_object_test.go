package cmd

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minigit-vcs/minigit/internal/objects"
	"github.com/minigit-vcs/minigit/internal/repository"
	"github.com/minigit-vcs/minigit/testutils"
	"github.com/minigit-vcs/minigit/utils"
)

// TestHashObjectCommand_NoStorage verifies the hash is printed without
// creating an object.
func TestHashObjectCommand_NoStorage(t *testing.T) {
	repoPath := initializedRepoDir(t)
	content := []byte("hello world\n")
	testutils.CreateTestFile(t, repoPath, "test.txt", content)
	changeToRepoDir(t, repoPath)

	testRootCmd := createTestRootCmd(hashObjectCmd)
	stdout := captureStdout(testRootCmd)

	testRootCmd.SetArgs([]string{"hash-object", "test.txt"})
	if err := testRootCmd.Execute(); err != nil {
		t.Fatalf("Hash-object command failed: %v", err)
	}

	printedHash := strings.TrimSpace(stdout.String())
	expectedHash, err := utils.ComputeHash(content, utils.BlobObjectType)
	if err != nil {
		t.Fatalf("Failed to compute hash: %v", err)
	}
	if printedHash != expectedHash {
		t.Errorf("Expected hash [%s], got [%s]", expectedHash, printedHash)
	}

	objectPath := filepath.Join(repoPath, ".minigit", "objects", expectedHash)
	testutils.AssertFileNotExists(t, objectPath)
}

// TestHashObjectCommand_WithStorage verifies -w writes the blob record
// into the object store.
func TestHashObjectCommand_WithStorage(t *testing.T) {
	repoPath := initializedRepoDir(t)
	content := []byte("stored content")
	testutils.CreateTestFile(t, repoPath, "test.txt", content)
	changeToRepoDir(t, repoPath)

	testRootCmd := createTestRootCmd(hashObjectCmd)
	stdout := captureStdout(testRootCmd)

	testRootCmd.SetArgs([]string{"hash-object", "test.txt", "-w"})
	if err := testRootCmd.Execute(); err != nil {
		t.Fatalf("Hash-object command failed: %v", err)
	}

	printedHash := strings.TrimSpace(stdout.String())
	objectPath := filepath.Join(repoPath, ".minigit", "objects", printedHash)
	testutils.AssertFileExists(t, objectPath)

	store := objects.NewObjectStore(repoPath)
	blob, err := store.ReadBlob(printedHash)
	if err != nil {
		t.Fatalf("Failed to read stored blob: %v", err)
	}
	if string(blob.Content()) != string(content) {
		t.Errorf("Expected stored content %q, got %q", content, blob.Content())
	}
}

// TestHashObjectCommand_MissingFile verifies hashing a nonexistent file
// fails.
func TestHashObjectCommand_MissingFile(t *testing.T) {
	changeToRepoDir(t, t.TempDir())

	testRootCmd := createTestRootCmd(hashObjectCmd)
	captureStdout(testRootCmd)
	stderr := captureStderr(testRootCmd)

	testRootCmd.SetArgs([]string{"hash-object", "ghost.txt"})
	err := testRootCmd.Execute()

	if !errors.Is(err, repository.ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got: %v", err)
	}
	if !strings.Contains(stderr.String(), "File 'ghost.txt' does not exist") {
		t.Errorf("Expected missing-file message, got: %s", stderr.String())
	}
}

// TestHashObjectCommand_WriteOutsideRepository verifies -w requires an
// initialized repository while plain hashing does not.
func TestHashObjectCommand_WriteOutsideRepository(t *testing.T) {
	bareDir := t.TempDir()
	testutils.CreateTestFile(t, bareDir, "test.txt", []byte("content"))
	changeToRepoDir(t, bareDir)

	// The flag variable outlives earlier tests that passed -w.
	writeFlag = false
	plainRootCmd := createTestRootCmd(hashObjectCmd)
	captureStdout(plainRootCmd)
	plainRootCmd.SetArgs([]string{"hash-object", "test.txt"})
	if err := plainRootCmd.Execute(); err != nil {
		t.Fatalf("Expected plain hashing to work outside a repository, got: %v", err)
	}

	writeRootCmd := createTestRootCmd(hashObjectCmd)
	captureStdout(writeRootCmd)
	stderr := captureStderr(writeRootCmd)
	writeRootCmd.SetArgs([]string{"hash-object", "test.txt", "-w"})
	err := writeRootCmd.Execute()

	if !errors.Is(err, repository.ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got: %v", err)
	}
	if !strings.Contains(stderr.String(), "Not a MiniGit repository") {
		t.Errorf("Expected repository error message, got: %s", stderr.String())
	}
}
