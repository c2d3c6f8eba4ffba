package objects

import (
	"testing"
	"time"

	"github.com/minigit-vcs/minigit/utils"
)

// fixedTimestamp keeps commit hashes deterministic across test runs.
var fixedTimestamp = time.Unix(1735689600, 0)

// assertBlobHash verifies blob hash matches expected value for given content.
func assertBlobHash(t *testing.T, blob *Blob, content []byte) {
	t.Helper()

	expectedHash, err := utils.ComputeHash(content, utils.BlobObjectType)
	if err != nil {
		t.Fatalf("Hash computation failed: %v", err)
	}

	if blob.Hash() != expectedHash {
		t.Fatalf("Expected hash [%s], got [%s]", expectedHash, blob.Hash())
	}
}

// assertBlobContent verifies blob stores exact content and correct size.
func assertBlobContent(t *testing.T, blob *Blob, expectedContent []byte) {
	t.Helper()

	if blob.Size() != len(expectedContent) {
		t.Fatalf("Expected size %d, got %d", len(expectedContent), blob.Size())
	}

	if string(blob.Content()) != string(expectedContent) {
		t.Fatalf("Expected content [%q], got [%q]", expectedContent, blob.Content())
	}
}

// createTestBlob creates a blob and fails the test on error.
func createTestBlob(t *testing.T, content []byte, filename string) *Blob {
	t.Helper()

	blob, err := NewBlob(content, filename)
	if err != nil {
		t.Fatalf("Failed to create blob: %v", err)
	}

	return blob
}

// createTestCommit creates a commit with the fixed timestamp and fails
// the test on error.
func createTestCommit(t *testing.T, message string, parents []string, files map[string]string) *Commit {
	t.Helper()

	commit, err := NewCommit(message, "tester", fixedTimestamp, parents, files)
	if err != nil {
		t.Fatalf("Failed to create commit: %v", err)
	}

	return commit
}

// createAndStoreBlob creates a blob, stores it, and returns it.
func createAndStoreBlob(t *testing.T, store *ObjectStore, content []byte, filename string) *Blob {
	t.Helper()

	blob := createTestBlob(t, content, filename)
	if err := store.Store(blob); err != nil {
		t.Fatalf("Failed to store blob: %v", err)
	}

	return blob
}

// createAndStoreCommit creates a commit, stores it, and returns it.
func createAndStoreCommit(t *testing.T, store *ObjectStore, message string, parents []string, files map[string]string) *Commit {
	t.Helper()

	commit := createTestCommit(t, message, parents, files)
	if err := store.Store(commit); err != nil {
		t.Fatalf("Failed to store commit: %v", err)
	}

	return commit
}

// assertCommitEqual verifies two commits match in all fields.
func assertCommitEqual(t *testing.T, actual, expected *Commit) {
	t.Helper()

	if actual.hash != expected.hash {
		t.Errorf("Hash mismatch: expected [%s], got [%s]", expected.hash, actual.hash)
	}

	if actual.message != expected.message {
		t.Errorf("Message mismatch: expected [%s], got [%s]", expected.message, actual.message)
	}

	if actual.author != expected.author {
		t.Errorf("Author mismatch: expected [%s], got [%s]", expected.author, actual.author)
	}

	if !actual.timestamp.Equal(expected.timestamp) {
		t.Errorf("Timestamp mismatch: expected [%s], got [%s]", expected.timestamp, actual.timestamp)
	}

	if len(actual.parents) != len(expected.parents) {
		t.Fatalf("Parent count mismatch: expected %d, got %d", len(expected.parents), len(actual.parents))
	}
	for i := range expected.parents {
		if actual.parents[i] != expected.parents[i] {
			t.Errorf("Parent %d mismatch: expected [%s], got [%s]", i, expected.parents[i], actual.parents[i])
		}
	}

	if len(actual.files) != len(expected.files) {
		t.Fatalf("File table size mismatch: expected %d, got %d", len(expected.files), len(actual.files))
	}
	for filename, expectedHash := range expected.files {
		if actual.files[filename] != expectedHash {
			t.Errorf("File %q mismatch: expected [%s], got [%s]", filename, expectedHash, actual.files[filename])
		}
	}
}
