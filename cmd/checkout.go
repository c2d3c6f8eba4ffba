package cmd

import (
	"errors"

	"github.com/minigit-vcs/minigit/internal/repository"
	"github.com/minigit-vcs/minigit/internal/ui"
	"github.com/minigit-vcs/minigit/utils"
	"github.com/spf13/cobra"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout <target>",
	Short: "Switch to a branch or commit",
	Long: `The 'checkout' command switches to a branch by name or detaches HEAD at a
full commit hash. Branch names win when a target matches both. Files on disk
are never touched; checkout only moves the HEAD reference.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          exactArgs("checkout", 1),
	RunE:          runCheckout,
}

func init() {
	rootCmd.AddCommand(checkoutCmd)
}

// runCheckout moves HEAD to the requested branch or commit.
func runCheckout(cmd *cobra.Command, args []string) error {
	repo, err := openRepository(cmd)
	if err != nil {
		return err
	}

	target := args[0]
	detached, err := repo.Checkout(target)
	if err != nil {
		if errors.Is(err, repository.ErrTargetNotFound) {
			ui.Errorf(cmd.ErrOrStderr(), "Target '%s' not found", target)
		} else {
			ui.Errorf(cmd.ErrOrStderr(), "Failed to checkout '%s': %v", target, err)
		}
		return err
	}

	if detached {
		ui.Successf(cmd.OutOrStdout(), "Switched to commit %s", utils.ShortHash(target))
	} else {
		ui.Successf(cmd.OutOrStdout(), "Switched to branch '%s'", target)
	}
	return nil
}
