package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/minigit-vcs/minigit/internal/objects"
	"github.com/minigit-vcs/minigit/internal/repository"
	"github.com/minigit-vcs/minigit/internal/ui"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <commit1> <commit2>",
	Short: "Show differences between two commits",
	Long: `The 'diff' command compares the file snapshots of two commits and prints
a unified-style listing: whole-file additions and deletions, and line-level
changes for modified files. Lines are compared by position, so an insertion
shifts the comparison of everything after it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          exactArgs("diff", 2),
	RunE:          runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

// runDiff prints the file-level differences between two commits.
func runDiff(cmd *cobra.Command, args []string) error {
	repo, err := openRepository(cmd)
	if err != nil {
		return err
	}

	diffs, err := repo.Diff(args[0], args[1])
	if err != nil {
		if errors.Is(err, objects.ErrNotFound) || errors.Is(err, objects.ErrCorruptObject) {
			ui.Errorf(cmd.ErrOrStderr(), "Invalid commit hash")
		} else {
			ui.Errorf(cmd.ErrOrStderr(), "Failed to diff: %v", err)
		}
		return err
	}

	out := cmd.OutOrStdout()
	for _, fileDiff := range diffs {
		printFileDiff(out, fileDiff)
	}
	return nil
}

// printFileDiff renders one file's diff in git's unified header style.
// Added and removed files list their whole content with bare +/- markers;
// modified files show positionally compared lines.
func printFileDiff(out io.Writer, fileDiff repository.FileDiff) {
	filename := fileDiff.Filename
	fmt.Fprintf(out, "diff --git a/%s b/%s\n", filename, filename)

	switch fileDiff.Status {
	case repository.FileAdded:
		fmt.Fprintln(out, "new file mode 100644")
		fmt.Fprintln(out, "--- /dev/null")
		fmt.Fprintf(out, "+++ b/%s\n", filename)
		for _, line := range fileDiff.Lines {
			fmt.Fprintf(out, "+%s\n", line.Content)
		}
	case repository.FileRemoved:
		fmt.Fprintln(out, "deleted file mode 100644")
		fmt.Fprintf(out, "--- a/%s\n", filename)
		fmt.Fprintln(out, "+++ /dev/null")
		for _, line := range fileDiff.Lines {
			fmt.Fprintf(out, "-%s\n", line.Content)
		}
	case repository.FileModified:
		fmt.Fprintf(out, "--- a/%s\n", filename)
		fmt.Fprintf(out, "+++ b/%s\n", filename)
		for _, line := range fileDiff.Lines {
			fmt.Fprintln(out, line.String())
		}
	}
}
