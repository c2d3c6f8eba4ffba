package cmd

import (
	"fmt"
	"strings"

	"github.com/minigit-vcs/minigit/internal/ui"
	"github.com/minigit-vcs/minigit/utils"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show repository status",
	Long: `The 'status' command shows the current branch, the HEAD commit and the
branch list, with the current branch marked by an asterisk.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          maximumArgs("status", 0),
	RunE:          runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// runStatus prints the repository state summary.
func runStatus(cmd *cobra.Command, args []string) error {
	repo, err := openRepository(cmd)
	if err != nil {
		return err
	}

	status, err := repo.Status()
	if err != nil {
		ui.Errorf(cmd.ErrOrStderr(), "Failed to read status: %v", err)
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "On branch %s\n", status.Branch)

	if status.Head != "" {
		fmt.Fprintf(out, "HEAD: %s\n", utils.ShortHash(status.Head))
	} else {
		fmt.Fprintln(out, "HEAD: (no commits yet)")
	}

	if len(status.Branches) > 0 {
		names := make([]string, len(status.Branches))
		for i, name := range status.Branches {
			if name == status.Branch {
				names[i] = "*" + name
			} else {
				names[i] = name
			}
		}
		fmt.Fprintf(out, "Branches: %s\n", strings.Join(names, ", "))
	}

	if len(status.Staged) > 0 {
		fmt.Fprintf(out, "Staged files: %s\n", strings.Join(status.Staged, ", "))
	}
	return nil
}
