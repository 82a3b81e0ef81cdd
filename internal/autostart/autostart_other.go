//go:build !darwin

package autostart

// Install is not supported on this platform.
func Install(execPath, logPath string) error {
	return ErrUnsupported
}

// Uninstall is not supported on this platform.
func Uninstall() error {
	return ErrUnsupported
}

// IsInstalled always returns false on unsupported platforms.
func IsInstalled() bool {
	return false
}
