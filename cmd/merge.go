package cmd

import (
	"errors"

	"github.com/minigit-vcs/minigit/internal/repository"
	"github.com/minigit-vcs/minigit/internal/ui"
	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <branch>",
	Short: "Merge a branch into the current branch",
	Long: `The 'merge' command three-way merges the named branch into the current
branch using their common ancestor as base. Files changed differently on both
sides are committed with conflict markers and reported; conflicts do not abort
the merge. Branches without a common ancestor cannot be merged.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          exactArgs("merge", 1),
	RunE:          runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}

// runMerge merges the named branch into the current branch.
func runMerge(cmd *cobra.Command, args []string) error {
	repo, err := openRepository(cmd)
	if err != nil {
		return err
	}

	branchName := args[0]
	result, err := repo.Merge(branchName)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBranchNotFound):
			ui.Errorf(cmd.ErrOrStderr(), "Branch '%s' does not exist", branchName)
		case errors.Is(err, repository.ErrUnrelatedHistories):
			ui.Errorf(cmd.ErrOrStderr(), "No common ancestor found")
		default:
			ui.Errorf(cmd.ErrOrStderr(), "Failed to merge '%s': %v", branchName, err)
		}
		return err
	}

	if result.UpToDate {
		ui.Infof(cmd.OutOrStdout(), "Already up to date")
		return nil
	}

	for _, filename := range result.Conflicts {
		ui.Warningf(cmd.OutOrStdout(), "CONFLICT: both modified %s", filename)
	}
	if len(result.Conflicts) > 0 {
		ui.Warningf(cmd.OutOrStdout(), "Merge completed with conflicts")
	} else {
		ui.Successf(cmd.OutOrStdout(), "Merge completed successfully")
	}
	return nil
}
