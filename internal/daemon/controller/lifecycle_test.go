package controller

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreflight(t *testing.T) {
	t.Run("darwin with lock", func(t *testing.T) {
		n := &fakeNotifier{}
		require.NoError(t, Preflight("darwin", &fakeLock{locked: true}, n))
		assert.Empty(t, n.all())
	})

	t.Run("second instance exits silently", func(t *testing.T) {
		n := &fakeNotifier{}
		err := Preflight("darwin", &fakeLock{locked: false}, n)
		require.ErrorIs(t, err, ErrSecondInstance)
		assert.Empty(t, n.all())
	})

	t.Run("unsupported platform notifies once", func(t *testing.T) {
		n := &fakeNotifier{}
		err := Preflight("linux", &fakeLock{locked: true}, n)
		require.ErrorIs(t, err, ErrPlatformUnsupported)
		assert.Equal(t, []note{{title: "Platform Not Supported", message: UnsupportedMessage}}, n.all())
	})

	t.Run("second instance wins over platform check", func(t *testing.T) {
		n := &fakeNotifier{}
		err := Preflight("windows", &fakeLock{locked: false}, n)
		require.ErrorIs(t, err, ErrSecondInstance)
		assert.Empty(t, n.all())
	})

	t.Run("lock error", func(t *testing.T) {
		n := &fakeNotifier{}
		err := Preflight("darwin", &fakeLock{err: errors.New("permission denied")}, n)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrSecondInstance)
		assert.Contains(t, err.Error(), "permission denied")
	})
}
