package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lumina-app/lumina/internal/config"
	"github.com/lumina-app/lumina/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Show the menu-bar app settings",
	Long: `Show or change the menu-bar app settings stored in ~/.lumina/settings.yaml.

A running luminad picks up changes without a restart.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting. Keys:
  poll-interval          how often to re-read the system mode (e.g. 10s, min 1s)
  notifications          show switch notifications (on/off)
  reconcile-while-busy   keep polling while a switch is in flight (on/off)`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: settingKeys,
	RunE:      runSettingsSet,
}

var settingKeys = []string{"poll-interval", "notifications", "reconcile-while-busy"}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	path, err := config.GlobalSettingsFile()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Settings (%s)\n", path)
	fmt.Fprintf(out, "  %s %s\n", styled(out, styleLabel, "Poll interval:       "), styled(out, styleValue, settings.PollInterval.String()))
	fmt.Fprintf(out, "  %s %s\n", styled(out, styleLabel, "Notifications:       "), styled(out, styleValue, onOff(settings.Notifications)))
	fmt.Fprintf(out, "  %s %s\n", styled(out, styleLabel, "Reconcile while busy:"), styled(out, styleValue, onOff(settings.ReconcileWhileBusy)))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, value := strings.ToLower(args[0]), args[1]

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if err := applySetting(settings, key, value); err != nil {
		return err
	}
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", styled(out, styleSuccess, "Updated"), key)
	return nil
}

func applySetting(s *models.Settings, key, value string) error {
	switch key {
	case "poll-interval":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		if d < models.MinPollInterval {
			return fmt.Errorf("poll interval must be at least %s", models.MinPollInterval)
		}
		s.PollInterval = d
	case "notifications":
		b, err := parseOnOff(value)
		if err != nil {
			return err
		}
		s.Notifications = b
	case "reconcile-while-busy":
		b, err := parseOnOff(value)
		if err != nil {
			return err
		}
		s.ReconcileWhileBusy = b
	default:
		return fmt.Errorf("unknown setting %q (expected one of: %s)", key, strings.Join(settingKeys, ", "))
	}
	return nil
}

func parseOnOff(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "yes", "y":
		return true, nil
	case "off", "no", "n":
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid value %q: expected on or off", value)
	}
	return b, nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
