package cmd

import (
	"errors"

	"github.com/minigit-vcs/minigit/internal/repository"
	"github.com/minigit-vcs/minigit/internal/ui"
	"github.com/spf13/cobra"
)

var branchCmd = &cobra.Command{
	Use:   "branch <name>",
	Short: "Create a new branch",
	Long: `The 'branch' command creates a branch pointing at the current HEAD commit.
A branch created before the first commit starts empty and gains a tip with the
first commit made on it. Creating a branch does not switch to it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          exactArgs("branch", 1),
	RunE:          runBranch,
}

func init() {
	rootCmd.AddCommand(branchCmd)
}

// runBranch creates a branch at the current HEAD.
func runBranch(cmd *cobra.Command, args []string) error {
	repo, err := openRepository(cmd)
	if err != nil {
		return err
	}

	name := args[0]
	if err := repo.CreateBranch(name); err != nil {
		if errors.Is(err, repository.ErrBranchExists) {
			ui.Errorf(cmd.ErrOrStderr(), "Branch '%s' already exists", name)
		} else {
			ui.Errorf(cmd.ErrOrStderr(), "Failed to create branch '%s': %v", name, err)
		}
		return err
	}

	ui.Successf(cmd.OutOrStdout(), "Created branch '%s'", name)
	return nil
}
