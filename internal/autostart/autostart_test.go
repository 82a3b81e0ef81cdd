package autostart

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePlist(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePlist(&buf, "/Applications/Lumina.app/Contents/MacOS/luminad", "/Users/me/.lumina/logs/launchd.log"))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, "<string>io.lumina.luminad</string>")
	assert.Contains(t, out, "<string>/Applications/Lumina.app/Contents/MacOS/luminad</string>")
	assert.Contains(t, out, "<string>/Users/me/.lumina/logs/launchd.log</string>")
	assert.Contains(t, out, "<key>RunAtLoad</key>\n    <true/>")
}

func TestPlistPath(t *testing.T) {
	t.Setenv("HOME", "/tmp/lumina-home")
	path, err := PlistPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/lumina-home", "Library", "LaunchAgents", "io.lumina.luminad.plist"), path)
}
