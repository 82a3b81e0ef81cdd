package models

import (
	"fmt"
	"strings"
)

// Mode is the OS-wide appearance setting.
type Mode string

// Supported appearance modes.
const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Modes lists the supported modes in menu order.
var Modes = []Mode{ModeLight, ModeDark}

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ModeLight):
		return ModeLight, nil
	case string(ModeDark):
		return ModeDark, nil
	default:
		return "", fmt.Errorf("invalid mode %q: must be light or dark", s)
	}
}

// String returns the lowercase mode name.
func (m Mode) String() string {
	return string(m)
}

// Title returns the capitalized mode name used in labels ("Light", "Dark").
func (m Mode) Title() string {
	if m == "" {
		return ""
	}
	s := string(m)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Opposite returns the other mode. Anything that is not dark flips to dark.
func (m Mode) Opposite() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// IsDark reports whether m is the dark mode.
func (m Mode) IsDark() bool {
	return m == ModeDark
}
