package envutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.True(t, IsBlank("\t\n"))
	assert.False(t, IsBlank("hello"))
	assert.False(t, IsBlank("  x "))
}

func TestIsDev(t *testing.T) {
	t.Setenv(EnvName, "development")
	assert.True(t, IsDev())

	t.Setenv(EnvName, "Development")
	assert.True(t, IsDev())

	t.Setenv(EnvName, "production")
	assert.False(t, IsDev())

	t.Setenv(EnvName, "")
	assert.False(t, IsDev())
}

func TestIsSupportedPlatform(t *testing.T) {
	assert.True(t, IsSupportedPlatform("darwin"))
	assert.False(t, IsSupportedPlatform("linux"))
	assert.False(t, IsSupportedPlatform("windows"))
}
