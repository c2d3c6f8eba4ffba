package cmd

import (
	"errors"
	"fmt"

	"github.com/minigit-vcs/minigit/internal/repository"
	"github.com/minigit-vcs/minigit/internal/ui"
	"github.com/minigit-vcs/minigit/utils"
	"github.com/spf13/cobra"
)

var commitCmd = &cobra.Command{
	Use:   "commit -m <message>",
	Short: "Commit staged changes",
	Long: `The 'commit' command records the staged files as a new commit. The commit
snapshots every tracked file, advances HEAD and the current branch, and clears
the staging area. The author comes from --author, the MINIGIT_AUTHOR
environment variable, or the repository config, in that order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          maximumArgs("commit", 0),
	RunE:          runCommit,
}

var (
	commitMessage string
	commitAuthor  string
)

func init() {
	rootCmd.AddCommand(commitCmd)

	commitCmd.Flags().StringVarP(&commitMessage, "message", "m", "", "Commit message")
	commitCmd.Flags().StringVar(&commitAuthor, "author", "", "Override the configured commit author")
}

// runCommit records the staged files as a new commit.
func runCommit(cmd *cobra.Command, args []string) error {
	if commitMessage == "" {
		cmd.SilenceUsage = false
		cmd.SilenceErrors = false
		return fmt.Errorf("commit command requires a message (-m)")
	}

	repo, err := openRepository(cmd)
	if err != nil {
		return err
	}

	stagedCount := len(repo.StagedFiles())
	commit, err := repo.Commit(commitMessage, commitAuthor)
	if err != nil {
		if errors.Is(err, repository.ErrNoChangesStaged) {
			ui.Errorf(cmd.ErrOrStderr(), "No changes staged for commit")
		} else {
			ui.Errorf(cmd.ErrOrStderr(), "Failed to commit: %v", err)
		}
		return err
	}

	ui.Successf(cmd.OutOrStdout(), "Committed %d files", stagedCount)
	ui.Infof(cmd.OutOrStdout(), "Commit: %s", utils.ShortHash(commit.Hash()))
	return nil
}
