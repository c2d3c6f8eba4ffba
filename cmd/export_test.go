package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/minigit-vcs/minigit/internal/repository"
	"github.com/minigit-vcs/minigit/testutils"
	"github.com/spf13/cobra"
)

// createTestRootCmd creates a fresh root command with one registered
// subcommand so each test drives an isolated command tree.
func createTestRootCmd(cmd *cobra.Command) *cobra.Command {
	testRootCmd := &cobra.Command{Use: "minigit"}
	testRootCmd.AddCommand(cmd)
	return testRootCmd
}

// captureStdout returns a buffer receiving the command's stdout.
func captureStdout(cmd *cobra.Command) *bytes.Buffer {
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	return &stdout
}

// captureStderr returns a buffer receiving the command's stderr.
func captureStderr(cmd *cobra.Command) *bytes.Buffer {
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	return &stderr
}

// changeToRepoDir changes the working directory to repoPath and
// registers cleanup restoring the old one. Commands resolve the
// repository at ".", so tests anchor themselves this way.
func changeToRepoDir(t *testing.T, repoPath string) {
	t.Helper()

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	if err := os.Chdir(repoPath); err != nil {
		t.Fatalf("Failed to change to directory %s: %v", repoPath, err)
	}

	t.Cleanup(func() {
		os.Chdir(oldDir)
	})
}

// initializedRepoDir creates a temp directory containing an initialized
// repository and returns its path.
func initializedRepoDir(t *testing.T) string {
	t.Helper()

	repoPath := t.TempDir()
	if _, err := repository.Init(repoPath); err != nil {
		t.Fatalf("Failed to initialize repository: %v", err)
	}
	return repoPath
}

// repoWithCommit builds a repository containing one commit of the given
// files, for tests that inject in-process repository state.
func repoWithCommit(t *testing.T, files map[string]string, message string) *repository.Repository {
	t.Helper()

	repoPath := t.TempDir()
	repo, err := repository.Init(repoPath)
	if err != nil {
		t.Fatalf("Failed to initialize repository: %v", err)
	}
	stageInto(t, repo, files)
	if _, err := repo.Commit(message, "tester"); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	return repo
}

// stageInto writes the given files into the repository directory and
// stages them.
func stageInto(t *testing.T, repo *repository.Repository, files map[string]string) {
	t.Helper()

	for filename, content := range files {
		testutils.CreateTestFile(t, repo.Path(), filename, []byte(content))
		if err := repo.Add(filename); err != nil {
			t.Fatalf("Add(%q) failed: %v", filename, err)
		}
	}
}
