package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "light", want: ModeLight},
		{in: "dark", want: ModeDark},
		{in: "DARK", want: ModeDark},
		{in: " Light\n", want: ModeLight},
		{in: "auto", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMode_Title(t *testing.T) {
	assert.Equal(t, "Light", ModeLight.Title())
	assert.Equal(t, "Dark", ModeDark.Title())
	assert.Equal(t, "", Mode("").Title())
}

func TestMode_Opposite(t *testing.T) {
	assert.Equal(t, ModeDark, ModeLight.Opposite())
	assert.Equal(t, ModeLight, ModeDark.Opposite())
	assert.True(t, ModeDark.IsDark())
	assert.False(t, ModeLight.IsDark())
}

func TestSettings_Normalize(t *testing.T) {
	t.Run("zero values get defaults", func(t *testing.T) {
		s := &Settings{}
		s.Normalize()
		assert.Equal(t, 1, s.Version)
		assert.Equal(t, DefaultPollInterval, s.PollInterval)
	})

	t.Run("short interval is clamped", func(t *testing.T) {
		s := &Settings{Version: 1, PollInterval: 10 * time.Millisecond}
		s.Normalize()
		assert.Equal(t, MinPollInterval, s.PollInterval)
	})

	t.Run("valid interval kept", func(t *testing.T) {
		s := &Settings{Version: 1, PollInterval: 30 * time.Second}
		s.Normalize()
		assert.Equal(t, 30*time.Second, s.PollInterval)
	})
}
