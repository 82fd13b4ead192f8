package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thatjuan/organize/pkg/organize"
)

var (
	flattenRename  bool
	flattenDelete  bool
	flattenDryRun  bool
	flattenStrict  bool
	flattenJournal string
)

var flattenCmd = &cobra.Command{
	Use:   "flatten <path>",
	Short: "Flatten a directory by moving all nested files to the root level",
	Long: `Moves every file found in the subdirectories of <path> directly into <path>.
Files already at the root are left untouched and never overwritten; when a
name is taken, the moved file gets the lowest free numeric suffix
(file.txt -> file_1.txt).

--rename prepends the immediate parent folder name (photos/vacation/img.jpg
becomes vacation_img.jpg). --delete removes the directories left empty.
Defaults for these flags can be set in organize.yaml; flags given on the
command line always win.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		opts := client.RunOptions()
		applyFlattenFlags(cmd.Flags(), &opts)

		result, err := client.Flatten(commandContext(cmd), args[0], opts)
		if result != nil {
			printFlattenResult(result)
		}
		return err
	},
}

// applyFlattenFlags overrides config defaults with flags set on the command line.
func applyFlattenFlags(flags *pflag.FlagSet, opts *organize.RunOptions) {
	if flags.Changed("rename") {
		opts.Rename = flattenRename
	}
	if flags.Changed("delete") {
		opts.DeleteEmpty = flattenDelete
	}
	if flags.Changed("strict") {
		opts.Strict = flattenStrict
	}
	if flags.Changed("journal") {
		opts.Journal = flattenJournal
	}
	opts.DryRun = flattenDryRun
}

func printFlattenResult(r *organize.Result) {
	detail("root: %s", r.Root)
	detail("directories scanned: %d", r.Dirs)

	if r.DryRun {
		info("Dry run — nothing moved or removed.")
	}

	for _, s := range r.Skipped {
		warnf("skipped %s: %v", relPath(r.Root, s.Path), s.Err)
	}

	for _, m := range r.Moves {
		label := paint(movedStyle, "moved  ")
		if m.Renamed {
			label = paint(renamedStyle, "renamed")
		}
		info("  %s  %s -> %s", label, relPath(r.Root, m.Source), relPath(r.Root, m.Destination))
	}
	for _, d := range r.Removed {
		info("  %s  %s", paint(removedStyle, "removed"), relPath(r.Root, d)+"/")
	}

	if len(r.Moves) == 0 && len(r.Removed) == 0 {
		info("Nothing to flatten.")
		return
	}

	info("")
	info("Flatten complete: %d file(s) moved (%s), %d directory(ies) removed, %d skipped.",
		len(r.Moves), humanSize(r.Bytes), len(r.Removed), len(r.Skipped))
}

func init() {
	flattenCmd.Flags().BoolVar(&flattenRename, "rename", false, "prepend the immediate parent folder name to each moved file")
	flattenCmd.Flags().BoolVar(&flattenDelete, "delete", false, "delete empty folders after flattening")
	flattenCmd.Flags().BoolVar(&flattenDryRun, "dry-run", false, "show what would change without moving anything")
	flattenCmd.Flags().BoolVar(&flattenStrict, "strict", false, "fail on unreadable entries instead of skipping them")
	flattenCmd.Flags().StringVar(&flattenJournal, "journal", "", "write a YAML record of the run to this file")
	rootCmd.AddCommand(flattenCmd)
}
