package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initForce bool

// initTemplate is the default .organize.yaml scaffold.
const initTemplate = `# organize configuration
# Flags given on the command line override these values.
version: 1

# Prepend the immediate parent folder name to moved files
# (photos/vacation/img.jpg -> vacation_img.jpg).
rename: false

# Remove directories left empty after flattening.
delete_empty: false

# Fail on unreadable entries instead of skipping them with a warning.
# strict: true

# Write a YAML record of every run (moves, removed directories).
# journal: organize-journal.yaml
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter .organize.yaml configuration",
	Long: `Creates a .organize.yaml file (or the path given by --config) with the
defaults used by flatten, documented inline.

Use --force to overwrite an existing configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath := configPath
		if !filepath.IsAbs(outPath) {
			abs, err := filepath.Abs(outPath)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			outPath = abs
		}

		if !initForce {
			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
			}
		}

		if err := os.WriteFile(outPath, []byte(initTemplate), 0644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		info("Created %s", outPath)
		info("")
		info("Next steps:")
		info("  1. Edit the defaults to taste")
		info("  2. Run 'organize flatten --dry-run <dir>' to preview")
		info("  3. Run 'organize flatten <dir>' to apply")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
	rootCmd.AddCommand(initCmd)
}
