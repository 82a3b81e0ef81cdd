// Package cli implements the lumina CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lumina",
	Short: "Manage the macOS light/dark appearance",
	Long: `Lumina switches the macOS appearance between light and dark mode.

The luminad menu-bar app keeps a tray icon in sync with the system setting;
this CLI reads and changes the same setting from the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", styled(os.Stderr, styleError, "Error:"), err)
		if cmd != nil && isUsageError(err) {
			fmt.Fprintln(os.Stderr, styled(os.Stderr, styleHint, "Run '"+cmd.CommandPath()+" --help' for usage."))
		}
	}
	return err
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(autostartCmd)
	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(darkCmd)
	rootCmd.AddCommand(lightCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(versionCmd)
}
