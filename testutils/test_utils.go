package testutils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/minigit-vcs/minigit/internal/constants"
)

// RandomString generates a random hex string of n bytes
func RandomString(n int) string {
	bytes := make([]byte, n)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// RandomHash generates a random 40-character SHA-1 hash
func RandomHash() string {
	return RandomString(constants.HashByteLength)
}

// SetupTestRepoWithMinigitDir creates a temporary directory with the
// .minigit/objects and .minigit/refs structure. This is useful for tests
// that need the repository layout but not full initialization.
func SetupTestRepoWithMinigitDir(t *testing.T) string {
	t.Helper()

	repoPath := t.TempDir()
	dirs := []string{
		filepath.Join(repoPath, constants.MiniGit, constants.Objects),
		filepath.Join(repoPath, constants.MiniGit, constants.Refs),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, constants.DirPerms); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	return repoPath
}

// CreateTestFile creates a file with given content in the specified directory.
// Returns the full path to the created file.
func CreateTestFile(t *testing.T, dir, filename string, content []byte) string {
	t.Helper()

	filePath := filepath.Join(dir, filename)
	if err := os.WriteFile(filePath, content, constants.FilePerms); err != nil {
		t.Fatalf("Failed to create test file %s: %v", filename, err)
	}

	return filePath
}

// AssertFileExists checks that a file exists at the given path.
// Fails the test if the file doesn't exist.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected file to exist at %s", path)
	}
}

// AssertFileNotExists checks that a file does NOT exist at the given path.
// Fails the test if the file exists.
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to NOT exist at %s", path)
	}
}

// AssertDirExists checks that a directory exists at the given path.
// Fails the test if the directory doesn't exist.
func AssertDirExists(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected directory to exist at %s", path)
		return
	}
	if err != nil {
		t.Errorf("Failed to stat directory %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("Expected %s to be a directory, but it's a file", path)
	}
}

// AssertRepositoryStructure validates the complete .minigit directory
// structure: objects/ and refs/ exist, and refs/ holds the default
// branch record pointing at no commit.
func AssertRepositoryStructure(t *testing.T, repoPath string) {
	t.Helper()

	minigitDir := filepath.Join(repoPath, constants.MiniGit)
	AssertDirExists(t, minigitDir)
	AssertDirExists(t, filepath.Join(minigitDir, constants.Objects))
	AssertDirExists(t, filepath.Join(minigitDir, constants.Refs))

	branchPath := filepath.Join(minigitDir, constants.Refs, constants.DefaultBranch)
	AssertFileExists(t, branchPath)

	content, err := os.ReadFile(branchPath)
	if err != nil {
		t.Fatalf("Failed to read default branch record: %v", err)
	}

	expectedContent := constants.BranchPrefix + constants.DefaultBranch + "\n" + constants.CommitPrefix + "\n"
	if string(content) != expectedContent {
		t.Errorf("Default branch record = %q, want %q", content, expectedContent)
	}
}
