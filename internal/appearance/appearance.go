// Package appearance reads and changes the macOS light/dark setting by
// shelling out to defaults and osascript.
package appearance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lumina-app/lumina/internal/models"
)

const (
	readCommand  = "defaults"
	writeCommand = "osascript"
)

var readArgs = []string{"read", "-g", "AppleInterfaceStyle"}

// Client talks to the OS appearance subsystem through a Runner.
type Client struct {
	runner Runner
}

// NewClient creates a client. A nil runner uses ExecRunner.
func NewClient(runner Runner) *Client {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Client{runner: runner}
}

// Current returns the OS appearance mode. Only an AppleInterfaceStyle of
// "Dark" (any case) maps to dark. A non-zero exit means the key is absent,
// which is light. A command that could not run also yields light, together
// with the error for diagnostics.
func (c *Client) Current(ctx context.Context) (models.Mode, error) {
	res, err := c.runner.Run(ctx, readCommand, readArgs...)
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) && cmdErr.Exited() {
			return models.ModeLight, nil
		}
		return models.ModeLight, fmt.Errorf("read appearance: %w", err)
	}
	return ParseInterfaceStyle(res.Stdout), nil
}

// Set switches the OS appearance to mode. A non-zero exit is returned as a
// *CommandError carrying the script's stderr.
func (c *Client) Set(ctx context.Context, mode models.Mode) error {
	script, err := SetScript(mode)
	if err != nil {
		return err
	}
	if _, err := c.runner.Run(ctx, writeCommand, "-e", script); err != nil {
		return fmt.Errorf("set appearance to %s: %w", mode, err)
	}
	return nil
}

// ParseInterfaceStyle maps the output of the AppleInterfaceStyle query to
// a mode.
func ParseInterfaceStyle(out string) models.Mode {
	if strings.EqualFold(strings.TrimSpace(out), "dark") {
		return models.ModeDark
	}
	return models.ModeLight
}

// SetScript builds the AppleScript that switches System Events' dark mode.
func SetScript(mode models.Mode) (string, error) {
	var dark bool
	switch mode {
	case models.ModeDark:
		dark = true
	case models.ModeLight:
		dark = false
	default:
		return "", fmt.Errorf("invalid mode %q: must be light or dark", mode)
	}
	return fmt.Sprintf(`tell application "System Events" to tell appearance preferences to set dark mode to %t`, dark), nil
}
