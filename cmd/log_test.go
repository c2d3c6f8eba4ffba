package cmd

import (
	"strings"
	"testing"

	"github.com/agiledragon/gomonkey/v2"
	"github.com/minigit-vcs/minigit/internal/repository"
)

// TestLogCommand_NoCommits verifies an empty repository reports no
// history instead of failing.
func TestLogCommand_NoCommits(t *testing.T) {
	repoPath := initializedRepoDir(t)
	changeToRepoDir(t, repoPath)

	testRootCmd := createTestRootCmd(logCmd)
	stdout := captureStdout(testRootCmd)

	testRootCmd.SetArgs([]string{"log"})
	if err := testRootCmd.Execute(); err != nil {
		t.Fatalf("Log command failed: %v", err)
	}

	if !strings.Contains(stdout.String(), "No commits yet") {
		t.Errorf("Expected empty-history message, got: %s", stdout.String())
	}
}

// TestLogCommand_ShowsHistory verifies commits print newest first with
// the full hash, author, date and indented message.
func TestLogCommand_ShowsHistory(t *testing.T) {
	repo := repoWithCommit(t, map[string]string{"a.txt": "first"}, "First commit")
	stageInto(t, repo, map[string]string{"a.txt": "second"})
	if _, err := repo.Commit("Second commit", "tester"); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	patches := gomonkey.ApplyFunc(repository.Open, func(path string) (*repository.Repository, error) {
		return repo, nil
	})
	defer patches.Reset()

	testRootCmd := createTestRootCmd(logCmd)
	stdout := captureStdout(testRootCmd)

	testRootCmd.SetArgs([]string{"log"})
	if err := testRootCmd.Execute(); err != nil {
		t.Fatalf("Log command failed: %v", err)
	}

	history, err := repo.Log()
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Expected 2 commits, got %d", len(history))
	}

	output := stdout.String()
	secondPos := strings.Index(output, "commit "+history[0].Hash())
	firstPos := strings.Index(output, "commit "+history[1].Hash())
	if secondPos == -1 || firstPos == -1 {
		t.Fatalf("Expected both commit hashes in output, got: %s", output)
	}
	if secondPos > firstPos {
		t.Error("Expected newest commit to print first")
	}

	for _, want := range []string{"Author: tester", "Date:   ", "    Second commit", "    First commit"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got: %s", want, output)
		}
	}
}

// TestLogCommand_NotARepository verifies log refuses to run outside a
// repository.
func TestLogCommand_NotARepository(t *testing.T) {
	changeToRepoDir(t, t.TempDir())

	testRootCmd := createTestRootCmd(logCmd)
	captureStdout(testRootCmd)
	stderr := captureStderr(testRootCmd)

	testRootCmd.SetArgs([]string{"log"})
	err := testRootCmd.Execute()

	if err == nil {
		t.Fatal("Expected error outside a repository")
	}
	if !strings.Contains(stderr.String(), "Not a MiniGit repository") {
		t.Errorf("Expected repository error message, got: %s", stderr.String())
	}
}
