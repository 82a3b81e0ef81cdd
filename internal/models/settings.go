package models

import "time"

// DefaultPollInterval is how often the tray app re-reads the OS appearance.
const DefaultPollInterval = 10 * time.Second

// MinPollInterval is the lower bound applied to a configured poll interval.
const MinPollInterval = time.Second

// Settings represents global application settings.
// This corresponds to ~/.lumina/settings.yaml.
type Settings struct {
	Version      int           `yaml:"version"`
	PollInterval time.Duration `yaml:"poll_interval"`

	// Notifications toggles the switch success/failure notifications.
	// The unsupported-platform notice is always shown.
	Notifications bool `yaml:"notifications"`

	// ReconcileWhileBusy keeps the reconciliation ticker reading the OS
	// while a mode change is in flight. A read that lands mid-switch may
	// briefly overwrite the cached mode with the pre-switch value.
	ReconcileWhileBusy bool `yaml:"reconcile_while_busy"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:            1,
		PollInterval:       DefaultPollInterval,
		Notifications:      true,
		ReconcileWhileBusy: true,
	}
}

// Normalize fills zero values with defaults and clamps the poll interval.
func (s *Settings) Normalize() {
	if s.Version == 0 {
		s.Version = 1
	}
	if s.PollInterval == 0 {
		s.PollInterval = DefaultPollInterval
	}
	if s.PollInterval < MinPollInterval {
		s.PollInterval = MinPollInterval
	}
}
