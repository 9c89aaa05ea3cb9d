package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	WindowWidth  = 1200
	WindowHeight = 860

	// Panel on the right of the wheel listing the selection
	PanelWidth = 300

	// Wheel geometry
	Utilization        = 0.99
	FullCoreRatio      = 0.35
	FullSecondaryRatio = 0.70
	SimpleCoreRatio    = 0.50

	// Input
	ScrollStep = 5.0
	KeyStep    = 15.0
	ClickSlop  = 4.0

	// Animation
	KeyRotateDuration = 200 * time.Millisecond
	ResetDuration     = time.Second

	// Shadow
	ShadowOffsetX = 4.0
	ShadowOffsetY = 4.0
	ShadowBlur    = 3.0
	ShadowAlpha   = 0.3
)

// Config holds the tunables of the wheel and its host window.
type Config struct {
	WindowWidth  int `toml:"window_width"`
	WindowHeight int `toml:"window_height"`
	PanelWidth   int `toml:"panel_width"`

	Utilization        float64 `toml:"utilization"`
	FullCoreRatio      float64 `toml:"full_core_ratio"`
	FullSecondaryRatio float64 `toml:"full_secondary_ratio"`
	SimpleCoreRatio    float64 `toml:"simple_core_ratio"`

	// Anchor is the core category centred at 0 degrees
	Anchor string `toml:"anchor"`

	ScrollStep float64 `toml:"scroll_step"`
	KeyStep    float64 `toml:"key_step"`
	ClickSlop  float64 `toml:"click_slop"`

	// Durations in milliseconds; 0 turns the wheel instantly
	KeyRotateMillis int    `toml:"key_rotate_ms"`
	ResetMillis     int    `toml:"reset_ms"`
	Easing          string `toml:"easing"`

	ShadowOffsetX float64 `toml:"shadow_offset_x"`
	ShadowOffsetY float64 `toml:"shadow_offset_y"`
	ShadowBlur    float64 `toml:"shadow_blur"`
	ShadowAlpha   float64 `toml:"shadow_alpha"`

	Sound bool `toml:"sound"`
	// Chime is an optional wav, mp3 or flac file played on selection
	Chime    string `toml:"chime"`
	LogLevel string `toml:"log_level"`
}

func Default() Config {
	return Config{
		WindowWidth:        WindowWidth,
		WindowHeight:       WindowHeight,
		PanelWidth:         PanelWidth,
		Utilization:        Utilization,
		FullCoreRatio:      FullCoreRatio,
		FullSecondaryRatio: FullSecondaryRatio,
		SimpleCoreRatio:    SimpleCoreRatio,
		ScrollStep:         ScrollStep,
		KeyStep:            KeyStep,
		ClickSlop:          ClickSlop,
		KeyRotateMillis:    int(KeyRotateDuration / time.Millisecond),
		ResetMillis:        int(ResetDuration / time.Millisecond),
		Easing:             "easeOut",
		ShadowOffsetX:      ShadowOffsetX,
		ShadowOffsetY:      ShadowOffsetY,
		ShadowBlur:         ShadowBlur,
		ShadowAlpha:        ShadowAlpha,
		Sound:              true,
		LogLevel:           "info",
	}
}

// Load reads a TOML file on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML into cfg, keeping fields the document does not set.
func Parse(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.validate()
}

func (c *Config) validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.WindowWidth, c.WindowHeight)
	}
	if c.PanelWidth < 0 || c.PanelWidth >= c.WindowWidth {
		return fmt.Errorf("panel width %d out of range", c.PanelWidth)
	}
	if c.Utilization <= 0 || c.Utilization > 1 {
		return fmt.Errorf("utilization %v must be in (0, 1]", c.Utilization)
	}
	if !(0 < c.FullCoreRatio && c.FullCoreRatio < c.FullSecondaryRatio && c.FullSecondaryRatio < 1) {
		return fmt.Errorf("full mode ratios %v/%v must increase inside (0, 1)", c.FullCoreRatio, c.FullSecondaryRatio)
	}
	if c.KeyRotateMillis < 0 || c.ResetMillis < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	if c.SimpleCoreRatio <= 0 || c.SimpleCoreRatio >= 1 {
		return fmt.Errorf("simplified core ratio %v must be in (0, 1)", c.SimpleCoreRatio)
	}
	return nil
}

func (c Config) KeyRotateDuration() time.Duration {
	return time.Duration(c.KeyRotateMillis) * time.Millisecond
}

func (c Config) ResetDuration() time.Duration {
	return time.Duration(c.ResetMillis) * time.Millisecond
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
