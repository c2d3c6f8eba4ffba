package cmd

import (
	"errors"

	"github.com/minigit-vcs/minigit/internal/repository"
	"github.com/minigit-vcs/minigit/internal/ui"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Add a file to the staging area",
	Long: `The 'add' command hashes a file's current content into a blob and stages
it for the next commit. Re-adding a file replaces its staged content. The
staging area lives in memory only and does not survive the process.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          exactArgs("add", 1),
	RunE:          runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

// runAdd stages one file in the repository at the current directory.
func runAdd(cmd *cobra.Command, args []string) error {
	repo, err := openRepository(cmd)
	if err != nil {
		return err
	}

	filename := args[0]
	if err := repo.Add(filename); err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			ui.Errorf(cmd.ErrOrStderr(), "File '%s' does not exist", filename)
		} else {
			ui.Errorf(cmd.ErrOrStderr(), "Failed to stage '%s': %v", filename, err)
		}
		return err
	}

	ui.Successf(cmd.OutOrStdout(), "Added '%s' to staging area", filename)
	return nil
}
