package models

import "time"

// InstanceInfo describes the running tray app.
// This corresponds to ~/.lumina/instance.yaml.
type InstanceInfo struct {
	Version   string    `yaml:"version"`
	PID       int       `yaml:"pid"`
	StartedAt time.Time `yaml:"started_at"`
}

// NewInstanceInfo creates instance info for the current process.
func NewInstanceInfo(version string, pid int) *InstanceInfo {
	return &InstanceInfo{
		Version:   version,
		PID:       pid,
		StartedAt: time.Now().UTC(),
	}
}
