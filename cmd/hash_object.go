package cmd

import (
	"fmt"
	"os"

	"github.com/minigit-vcs/minigit/internal/objects"
	"github.com/minigit-vcs/minigit/internal/repository"
	"github.com/minigit-vcs/minigit/internal/ui"
	"github.com/spf13/cobra"
)

var hashObjectCmd = &cobra.Command{
	Use:   "hash-object <filepath>",
	Short: "Compute the blob hash for a file",
	Long: `The 'hash-object' command computes the hash a file's current content
would get as a blob, without staging anything. Blob identity is derived from
content alone, so the printed hash matches what 'add' would stage.

With -w the blob is also written into the object store, which requires an
initialized repository.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          exactArgs("hash-object", 1),
	RunE:          runHashObject,
}

var writeFlag bool

func init() {
	rootCmd.AddCommand(hashObjectCmd)

	hashObjectCmd.Flags().BoolVarP(&writeFlag, "write", "w", false, "Write the blob into the object store")
}

// runHashObject hashes a file's content and optionally stores the blob.
func runHashObject(cmd *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		ui.Errorf(cmd.ErrOrStderr(), "File '%s' does not exist", filename)
		return fmt.Errorf("%q: %w", filename, repository.ErrFileNotFound)
	}

	blob, err := objects.NewBlob(content, filename)
	if err != nil {
		ui.Errorf(cmd.ErrOrStderr(), "Failed to hash '%s': %v", filename, err)
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), blob.Hash())

	if writeFlag {
		if !repository.IsInitialized(".") {
			ui.Errorf(cmd.ErrOrStderr(), "Not a MiniGit repository")
			return fmt.Errorf("cannot store blob: %w", repository.ErrNotInitialized)
		}
		store := objects.NewObjectStore(".")
		if err := store.Store(blob); err != nil {
			ui.Errorf(cmd.ErrOrStderr(), "Failed to store blob: %v", err)
			return err
		}
	}
	return nil
}
