package config

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"

	"github.com/lumina-app/lumina/internal/models"
)

// InstanceLock is the per-user lock held by the running tray app.
type InstanceLock struct {
	fl *flock.Flock
}

// NewInstanceLock returns the lock on ~/.lumina/luminad.lock. The lock is
// not taken until TryLock.
func NewInstanceLock() (*InstanceLock, error) {
	if err := EnsureGlobalDir(); err != nil {
		return nil, err
	}
	path, err := GlobalLockFile()
	if err != nil {
		return nil, err
	}
	return &InstanceLock{fl: flock.New(path)}, nil
}

// TryLock takes the lock without blocking. It returns false if another
// process holds it.
func (l *InstanceLock) TryLock() (bool, error) {
	return l.fl.TryLock()
}

// Unlock releases the lock.
func (l *InstanceLock) Unlock() error {
	return l.fl.Unlock()
}

// LoadInstanceInfo loads ~/.lumina/instance.yaml.
// Returns nil if the file doesn't exist.
func LoadInstanceInfo() (*models.InstanceInfo, error) {
	path, err := GlobalInstanceFile()
	if err != nil {
		return nil, err
	}

	if !FileExists(path) {
		return nil, nil
	}

	var info models.InstanceInfo
	if err := LoadYAML(path, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SaveInstanceInfo saves the running instance's info to ~/.lumina/instance.yaml.
func SaveInstanceInfo(info *models.InstanceInfo) error {
	if err := EnsureGlobalDir(); err != nil {
		return err
	}

	path, err := GlobalInstanceFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, info)
}

// RemoveInstanceInfo removes the instance.yaml file.
func RemoveInstanceInfo() error {
	path, err := GlobalInstanceFile()
	if err != nil {
		return err
	}

	if !FileExists(path) {
		return nil
	}
	return os.Remove(path)
}

// IsInstanceRunning reports whether a tray app currently holds the instance
// lock. Stale instance info left by a crashed process is cleaned up.
func IsInstanceRunning() (bool, *models.InstanceInfo, error) {
	info, err := LoadInstanceInfo()
	if err != nil {
		return false, nil, err
	}

	lock, err := NewInstanceLock()
	if err != nil {
		return false, info, err
	}
	locked, err := lock.TryLock()
	if err != nil {
		return false, info, fmt.Errorf("failed to probe instance lock: %w", err)
	}
	if !locked {
		return true, info, nil
	}

	_ = lock.Unlock()
	if info != nil {
		_ = RemoveInstanceInfo()
	}
	return false, info, nil
}
