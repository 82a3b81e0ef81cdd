package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/lumina-app/lumina/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the menu-bar app is running",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsInstanceRunning()
	if err != nil {
		return fmt.Errorf("failed to check status: %w", err)
	}

	out := cmd.OutOrStdout()
	if !running {
		fmt.Fprintln(out, styled(out, styleWarning, "Lumina is not running."))
		return nil
	}

	fmt.Fprintln(out, styled(out, styleSuccess, "Lumina is running."))
	if info == nil {
		return nil
	}

	uptime := time.Since(info.StartedAt).Truncate(time.Second)
	fmt.Fprintf(out, "  %s %s\n", styled(out, styleLabel, "PID:    "), styled(out, styleValue, strconv.Itoa(info.PID)))
	fmt.Fprintf(out, "  %s %s\n", styled(out, styleLabel, "Version:"), styled(out, styleValue, info.Version))
	fmt.Fprintf(out, "  %s %s\n", styled(out, styleLabel, "Uptime: "), styled(out, styleValue, uptime.String()))
	return nil
}
