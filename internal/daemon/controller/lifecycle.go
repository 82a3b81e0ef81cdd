package controller

import (
	"errors"
	"fmt"

	"github.com/lumina-app/lumina/internal/envutil"
)

// Startup errors. Both are terminal for the tray app.
var (
	ErrSecondInstance      = errors.New("another instance is already running")
	ErrPlatformUnsupported = errors.New("platform not supported")
)

// Notification text for an unsupported host.
const (
	UnsupportedTitle   = "Platform Not Supported"
	UnsupportedMessage = "Lumina only works on macOS 10.14 (Mojave) or later."
)

// Locker is the single-instance lock.
type Locker interface {
	TryLock() (bool, error)
}

// Preflight runs the startup checks that must pass before any tray or timer
// exists: take the instance lock, then verify the host platform. A second
// instance fails silently; an unsupported platform is notified once.
func Preflight(goos string, lock Locker, notifier Notifier) error {
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire instance lock: %w", err)
	}
	if !locked {
		return ErrSecondInstance
	}

	if !envutil.IsSupportedPlatform(goos) {
		notifier.Notify(UnsupportedTitle, UnsupportedMessage)
		return fmt.Errorf("%w: %s", ErrPlatformUnsupported, goos)
	}
	return nil
}
