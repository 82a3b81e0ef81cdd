package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-app/lumina/internal/models"
)

func useTempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)
	return dir
}

func TestGlobalDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		dir := useTempHome(t)
		got, err := GlobalDir()
		require.NoError(t, err)
		assert.Equal(t, dir, got)

		settings, err := GlobalSettingsFile()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "settings.yaml"), settings)

		lock, err := GlobalLockFile()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "luminad.lock"), lock)
	})

	t.Run("home default", func(t *testing.T) {
		t.Setenv(HomeEnv, "  ")
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		got, err := GlobalDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".lumina"), got)
	})
}

func TestSettings(t *testing.T) {
	t.Run("defaults when missing", func(t *testing.T) {
		useTempHome(t)
		s, err := LoadSettings()
		require.NoError(t, err)
		assert.Equal(t, models.NewSettings(), s)
	})

	t.Run("round trip", func(t *testing.T) {
		useTempHome(t)
		s := models.NewSettings()
		s.PollInterval = 30 * time.Second
		s.Notifications = false
		s.ReconcileWhileBusy = false
		require.NoError(t, SaveSettings(s))

		loaded, err := LoadSettings()
		require.NoError(t, err)
		assert.Equal(t, s, loaded)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		dir := useTempHome(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte("poll_interval: 5s\n"), 0644))

		s, err := LoadSettings()
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, s.PollInterval)
		assert.True(t, s.Notifications)
		assert.True(t, s.ReconcileWhileBusy)
	})

	t.Run("interval clamped", func(t *testing.T) {
		dir := useTempHome(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte("poll_interval: 10ms\n"), 0644))

		s, err := LoadSettings()
		require.NoError(t, err)
		assert.Equal(t, models.MinPollInterval, s.PollInterval)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir := useTempHome(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte("poll_interval: [\n"), 0644))

		_, err := LoadSettings()
		require.Error(t, err)
	})
}

func TestInstanceLock(t *testing.T) {
	useTempHome(t)

	first, err := NewInstanceLock()
	require.NoError(t, err)
	second, err := NewInstanceLock()
	require.NoError(t, err)

	ok, err := first.TryLock()
	require.NoError(t, err)
	require.True(t, ok)
	defer first.Unlock()

	ok, err = second.TryLock()
	require.NoError(t, err)
	assert.False(t, ok, "second lock must fail while first is held")
}

func TestIsInstanceRunning(t *testing.T) {
	t.Run("nothing running", func(t *testing.T) {
		useTempHome(t)
		running, info, err := IsInstanceRunning()
		require.NoError(t, err)
		assert.False(t, running)
		assert.Nil(t, info)
	})

	t.Run("running", func(t *testing.T) {
		useTempHome(t)
		lock, err := NewInstanceLock()
		require.NoError(t, err)
		ok, err := lock.TryLock()
		require.NoError(t, err)
		require.True(t, ok)
		defer lock.Unlock()

		require.NoError(t, SaveInstanceInfo(models.NewInstanceInfo("1.2.3", 4242)))

		running, info, err := IsInstanceRunning()
		require.NoError(t, err)
		assert.True(t, running)
		require.NotNil(t, info)
		assert.Equal(t, 4242, info.PID)
		assert.Equal(t, "1.2.3", info.Version)
	})

	t.Run("stale info is removed", func(t *testing.T) {
		useTempHome(t)
		require.NoError(t, SaveInstanceInfo(models.NewInstanceInfo("1.2.3", 4242)))

		running, info, err := IsInstanceRunning()
		require.NoError(t, err)
		assert.False(t, running)
		require.NotNil(t, info)

		left, err := LoadInstanceInfo()
		require.NoError(t, err)
		assert.Nil(t, left)
	})
}

func TestSetupLogging(t *testing.T) {
	dir := useTempHome(t)
	closer, err := SetupLogging(true)
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	assert.FileExists(t, filepath.Join(dir, LogsDirName, LogFileName))
}
