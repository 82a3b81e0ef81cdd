// Package envutil holds small string and environment checks shared by the
// tray app and the CLI.
package envutil

import (
	"os"
	"strings"
)

// EnvName selects the runtime environment ("development" enables debug logs).
const EnvName = "LUMINA_ENV"

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsDev reports whether LUMINA_ENV is set to development.
func IsDev() bool {
	return strings.EqualFold(os.Getenv(EnvName), "development")
}

// IsSupportedPlatform reports whether goos can change the appearance mode.
func IsSupportedPlatform(goos string) bool {
	return goos == "darwin"
}
