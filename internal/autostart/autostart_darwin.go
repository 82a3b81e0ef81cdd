//go:build darwin

package autostart

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Install writes the LaunchAgent plist for execPath and loads it.
func Install(execPath, logPath string) error {
	plistPath, err := PlistPath()
	if err != nil {
		return fmt.Errorf("could not determine LaunchAgent path: %w", err)
	}

	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return fmt.Errorf("could not resolve executable path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(plistPath), 0755); err != nil {
		return fmt.Errorf("could not create LaunchAgents directory: %w", err)
	}

	// Unload existing agent if present (ignore errors)
	_ = exec.Command("launchctl", "unload", plistPath).Run()

	f, err := os.Create(plistPath)
	if err != nil {
		return fmt.Errorf("could not create plist file: %w", err)
	}
	defer f.Close()

	if err := writePlist(f, execPath, logPath); err != nil {
		return fmt.Errorf("could not write plist file: %w", err)
	}

	if output, err := exec.Command("launchctl", "load", plistPath).CombinedOutput(); err != nil {
		return fmt.Errorf("could not load LaunchAgent: %w (output: %s)", err, string(output))
	}
	return nil
}

// Uninstall unloads and removes the LaunchAgent plist.
func Uninstall() error {
	plistPath, err := PlistPath()
	if err != nil {
		return fmt.Errorf("could not determine LaunchAgent path: %w", err)
	}

	// Unload the agent (ignore errors if not loaded)
	_ = exec.Command("launchctl", "unload", plistPath).Run()

	if err := os.Remove(plistPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not remove plist file: %w", err)
	}
	return nil
}

// IsInstalled returns true if the LaunchAgent plist exists.
func IsInstalled() bool {
	plistPath, err := PlistPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(plistPath)
	return err == nil
}
