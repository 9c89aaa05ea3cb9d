package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 200*time.Millisecond, cfg.KeyRotateDuration())
	assert.Equal(t, time.Second, cfg.ResetDuration())
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wheel.toml")
	doc := `
window_width = 1600
scroll_step = 7.5
reset_ms = 500
anchor = "Happy"
sound = false
chime = "sounds/ding.flac"
log_level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1600, cfg.WindowWidth)
	assert.Equal(t, WindowHeight, cfg.WindowHeight)
	assert.Equal(t, 7.5, cfg.ScrollStep)
	assert.Equal(t, 500*time.Millisecond, cfg.ResetDuration())
	assert.Equal(t, "Happy", cfg.Anchor)
	assert.False(t, cfg.Sound)
	assert.Equal(t, "sounds/ding.flac", cfg.Chime)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, FullCoreRatio, cfg.FullCoreRatio)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"utilization":  `utilization = 1.5`,
		"ratios":       `full_core_ratio = 0.8`,
		"simple ratio": `simple_core_ratio = 1.0`,
		"panel":        `panel_width = 5000`,
		"window":       `window_height = 0`,
		"duration":     `reset_ms = -1`,
		"syntax":       `window_width = `,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			assert.Error(t, Parse([]byte(doc), &cfg))
		})
	}
}

func TestSlogLevel(t *testing.T) {
	cfg := Default()
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	cfg.LogLevel = "WARN"
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
	cfg.LogLevel = "error"
	assert.Equal(t, slog.LevelError, cfg.SlogLevel())
	cfg.LogLevel = "chatty"
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestParseAcceptsZeroDurations(t *testing.T) {
	cfg := Default()
	require.NoError(t, Parse([]byte("reset_ms = 0\nkey_rotate_ms = 0\n"), &cfg))
	assert.Zero(t, cfg.ResetDuration())
	assert.Zero(t, cfg.KeyRotateDuration())
}
