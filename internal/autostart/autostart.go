// Package autostart manages launching the tray app at login.
package autostart

import (
	"errors"
	"os"
	"path/filepath"
)

// Label identifies the LaunchAgent.
const Label = "io.lumina.luminad"

// ErrUnsupported is returned on platforms without login-item support.
var ErrUnsupported = errors.New("autostart is only supported on macOS")

// PlistPath returns ~/Library/LaunchAgents/<Label>.plist.
func PlistPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Library", "LaunchAgents", Label+".plist"), nil
}
