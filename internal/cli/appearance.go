package cli

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/lumina-app/lumina/internal/appearance"
	"github.com/lumina-app/lumina/internal/envutil"
	"github.com/lumina-app/lumina/internal/models"
)

// modeClient is the part of appearance.Client the commands use.
type modeClient interface {
	Current(ctx context.Context) (models.Mode, error)
	Set(ctx context.Context, mode models.Mode) error
}

// Replaced in tests.
var (
	newClient = func() modeClient { return appearance.NewClient(nil) }
	hostOS    = runtime.GOOS
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Display the current appearance mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := platformClient()
		if err != nil {
			return err
		}
		mode, err := client.Current(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Current mode: %s\n", styledMode(out, mode))
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:       "set <light|dark>",
	Short:     "Set the appearance mode (light or dark)",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"light", "dark"},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := models.ParseMode(args[0])
		if err != nil {
			return err
		}
		if err := setMode(cmd, mode); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Appearance mode set to: %s\n", styledMode(out, mode))
		return nil
	},
}

var lightCmd = &cobra.Command{
	Use:   "light",
	Short: "Switch to light mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return switchTo(cmd, models.ModeLight)
	},
}

var darkCmd = &cobra.Command{
	Use:   "dark",
	Short: "Switch to dark mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return switchTo(cmd, models.ModeDark)
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip between light and dark mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := platformClient()
		if err != nil {
			return err
		}
		current, err := client.Current(cmd.Context())
		if err != nil {
			return err
		}
		return switchTo(cmd, current.Opposite())
	},
}

func switchTo(cmd *cobra.Command, mode models.Mode) error {
	if err := setMode(cmd, mode); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s mode\n", styled(out, styleSuccess, "Switched to"), styledMode(out, mode))
	return nil
}

func setMode(cmd *cobra.Command, mode models.Mode) error {
	client, err := platformClient()
	if err != nil {
		return err
	}
	return client.Set(cmd.Context(), mode)
}

func platformClient() (modeClient, error) {
	if !envutil.IsSupportedPlatform(hostOS) {
		return nil, fmt.Errorf("lumina only works on macOS 10.14 (Mojave) or later (running on %s)", hostOS)
	}
	return newClient(), nil
}

func styledMode(w io.Writer, mode models.Mode) string {
	if mode.IsDark() {
		return styled(w, styleDark, mode.String())
	}
	return styled(w, styleLight, mode.String())
}
