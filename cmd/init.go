package cmd

import (
	"github.com/minigit-vcs/minigit/internal/repository"
	"github.com/minigit-vcs/minigit/internal/ui"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Initialize a new MiniGit repository",
	Long: `The 'init' command sets up a new MiniGit repository in the current directory.
It creates a .minigit directory with the object store, the refs directory and
the default 'main' branch. Initializing an existing repository is harmless:
nothing is overwritten.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          maximumArgs("init", 1),
	RunE:          runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// runInit initializes a repository at the given or current directory.
func runInit(cmd *cobra.Command, args []string) error {
	dirPath := "."
	if len(args) > 0 {
		dirPath = args[0]
	}

	if repository.IsInitialized(dirPath) {
		ui.Warningf(cmd.OutOrStdout(), "MiniGit repository already initialized")
		return nil
	}

	if _, err := repository.Init(dirPath); err != nil {
		ui.Errorf(cmd.ErrOrStderr(), "Failed to initialize repository: %v", err)
		return err
	}

	ui.Successf(cmd.OutOrStdout(), "Initialized empty MiniGit repository")
	return nil
}
