package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lumina-app/lumina/internal/autostart"
	"github.com/lumina-app/lumina/internal/config"
)

var autostartCmd = &cobra.Command{
	Use:   "autostart",
	Short: "Manage launching the menu-bar app at login",
}

var autostartEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Start luminad at login",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		execPath, err := findDaemonBinary()
		if err != nil {
			return err
		}
		if err := config.EnsureGlobalLogsDir(); err != nil {
			return err
		}
		logsDir, err := config.GlobalLogsDir()
		if err != nil {
			return err
		}
		if err := autostart.Install(execPath, filepath.Join(logsDir, "launchd.log")); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s luminad will start at login (%s)\n", styled(out, styleSuccess, "Enabled:"), execPath)
		return nil
	},
}

var autostartDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Stop starting luminad at login",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := autostart.Uninstall(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Autostart disabled.")
		return nil
	},
}

var autostartStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether autostart is enabled",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if autostart.IsInstalled() {
			fmt.Fprintln(out, "Autostart is enabled.")
		} else {
			fmt.Fprintln(out, "Autostart is disabled.")
		}
		return nil
	},
}

func init() {
	autostartCmd.AddCommand(autostartDisableCmd)
	autostartCmd.AddCommand(autostartEnableCmd)
	autostartCmd.AddCommand(autostartStatusCmd)
}

// findDaemonBinary locates the luminad binary.
func findDaemonBinary() (string, error) {
	// Try next to the current executable first
	if execPath, err := os.Executable(); err == nil {
		daemonPath := filepath.Join(filepath.Dir(execPath), "luminad")
		if _, err := os.Stat(daemonPath); err == nil {
			return daemonPath, nil
		}
	}

	// Then PATH
	if path, err := exec.LookPath("luminad"); err == nil {
		return filepath.Abs(path)
	}

	return "", fmt.Errorf("luminad not found. Install or build it first")
}
