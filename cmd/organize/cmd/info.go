package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show organize version and effective configuration",
	Long: `Displays the organize version, the config files considered (system, user,
project) with their load status, and the resulting flatten defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		fmt.Fprintf(stdout, "organize %s\n", version)
		fmt.Fprintln(stdout, "  config chain:")
		for _, layer := range client.Layers() {
			status := "not found"
			if layer.Loaded {
				status = "loaded"
			}
			fmt.Fprintf(stdout, "    %-10s %s (%s)\n", layer.Level+":", layer.Path, status)
		}

		opts := client.RunOptions()
		journal := opts.Journal
		if journal == "" {
			journal = "(none)"
		}
		fmt.Fprintln(stdout, "\nFlatten defaults:")
		fmt.Fprintf(stdout, "  %-13s %v\n", "rename:", opts.Rename)
		fmt.Fprintf(stdout, "  %-13s %v\n", "delete_empty:", opts.DeleteEmpty)
		fmt.Fprintf(stdout, "  %-13s %v\n", "strict:", opts.Strict)
		fmt.Fprintf(stdout, "  %-13s %s\n", "journal:", journal)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
