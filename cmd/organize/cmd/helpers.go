package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/thatjuan/organize/pkg/organize"
)

// Output sinks; tests swap these.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var (
	special = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	caution = lipgloss.AdaptiveColor{Light: "#D7A200", Dark: "#F5D061"}
	warning = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F55081"}
	subtle  = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}

	movedStyle   = lipgloss.NewStyle().Foreground(special)
	renamedStyle = lipgloss.NewStyle().Foreground(caution)
	removedStyle = lipgloss.NewStyle().Foreground(subtle)
	errorStyle   = lipgloss.NewStyle().Foreground(warning).Bold(true)
)

// paint renders text with s unless color is disabled.
func paint(s lipgloss.Style, text string) string {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return text
	}
	return s.Render(text)
}

// newClient creates a library client from the layered config.
func newClient() (*organize.Client, error) {
	return organize.New(organize.ClientOptions{ConfigPath: configPath})
}

// commandContext returns the command's context, or Background when the
// command is run without Execute (as in tests).
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// relPath shows path relative to root when it lies below it.
func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(stdout, format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Fprintf(stdout, "  "+format+"\n", args...)
	}
}

// warnf prints a warning to stderr unless quiet mode is active.
func warnf(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(stderr, paint(renamedStyle, "warning:")+" "+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(stderr, paint(errorStyle, "error:")+" "+format+"\n", args...)
}

func humanSize(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}
	units := []string{"B", "KB", "MB", "GB"}
	size := float64(bytes)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d B", bytes)
	}
	return fmt.Sprintf("%.1f %s", size, units[i])
}
