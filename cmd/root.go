package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/minigit-vcs/minigit/internal/repository"
	"github.com/minigit-vcs/minigit/internal/ui"
	"github.com/spf13/cobra"
)

// rootCmd defines the base command for the minigit CLI.
// All subcommands (init, add, commit, etc.) register under this root.
// Uses cobra for command parsing, flag handling, and help generation.
var rootCmd = &cobra.Command{
	Use:   "minigit",
	Short: "A custom version control system",
	Long: `MiniGit is a local version control system that tracks file history as
content-addressed snapshots under a .minigit directory. It supports staging,
commits, branches, checkout, three-way merges and commit diffs.`,
}

func init() {
	// Subcommands silence cobra's own reporting because they print
	// styled diagnostics themselves; flag errors re-enable it so typos
	// still show the error and usage text.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		cmd.SilenceUsage = false
		cmd.SilenceErrors = false
		return err
	})
}

// Execute runs the root command and handles exit codes.
// Called from main.go to start CLI execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openRepository opens the repository in the current directory and
// reports the failure to the user before returning it.
func openRepository(cmd *cobra.Command) (*repository.Repository, error) {
	repo, err := repository.Open(".")
	if err != nil {
		if errors.Is(err, repository.ErrNotInitialized) {
			ui.Errorf(cmd.ErrOrStderr(), "Not a MiniGit repository")
		} else {
			ui.Errorf(cmd.ErrOrStderr(), "Failed to open repository: %v", err)
		}
		return nil, err
	}
	return repo, nil
}

// maximumArgs validates a command receives at most n positional arguments.
// Re-enables cobra's error and usage output when the limit is exceeded.
func maximumArgs(name string, n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			cmd.SilenceUsage = false
			cmd.SilenceErrors = false
			return fmt.Errorf("%s command accepts at most %d arg(s), received %d", name, n, len(args))
		}
		return nil
	}
}

// exactArgs validates a command receives exactly n positional arguments.
// Re-enables cobra's error and usage output when the count is wrong.
func exactArgs(name string, n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			cmd.SilenceUsage = false
			cmd.SilenceErrors = false
			return fmt.Errorf("%s command requires exactly %d argument(s), received %d", name, n, len(args))
		}
		return nil
	}
}
