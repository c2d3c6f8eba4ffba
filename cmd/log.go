package cmd

import (
	"fmt"

	"github.com/minigit-vcs/minigit/internal/ui"
	"github.com/spf13/cobra"
)

// logDateLayout renders commit timestamps in git's date style.
const logDateLayout = "Mon Jan 2 15:04:05 2006 -0700"

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show commit history",
	Long: `The 'log' command walks the first-parent chain from HEAD and prints each
commit, newest first. For merge commits only the current-branch side of
history is shown.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          maximumArgs("log", 0),
	RunE:          runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
}

// runLog prints the first-parent history from HEAD.
func runLog(cmd *cobra.Command, args []string) error {
	repo, err := openRepository(cmd)
	if err != nil {
		return err
	}

	history, err := repo.Log()
	if err != nil {
		ui.Errorf(cmd.ErrOrStderr(), "Failed to read history: %v", err)
		return err
	}
	if len(history) == 0 {
		ui.Infof(cmd.OutOrStdout(), "No commits yet")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, commit := range history {
		fmt.Fprintf(out, "\ncommit %s\n", commit.Hash())
		fmt.Fprintf(out, "Author: %s\n", commit.Author())
		fmt.Fprintf(out, "Date:   %s\n", commit.Timestamp().Format(logDateLayout))
		fmt.Fprintln(out)
		fmt.Fprintf(out, "    %s\n", commit.Message())
	}
	return nil
}
