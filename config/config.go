// Package config loads termpaint settings from defaults, a TOML file and the environment
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/termpaint/constants"
	"github.com/lixenwraith/termpaint/core"
)

// Environment overrides
const (
	EnvAudioEnabled = "TERMPAINT_AUDIO_ENABLED"
	EnvVolume       = "TERMPAINT_VOLUME"
	EnvLogFile      = "TERMPAINT_LOG_FILE"
	EnvLogLevel     = "TERMPAINT_LOG_LEVEL"
)

// ErrInvalidColor is returned for color strings that are not #rrggbb hex
var ErrInvalidColor = errors.New("invalid color")

// Config is the full settings tree
type Config struct {
	Canvas CanvasConfig      `toml:"canvas"`
	Dialog DialogConfig      `toml:"dialog"`
	Audio  AudioConfig       `toml:"audio"`
	Log    LogConfig         `toml:"log"`
	Keys   map[string]string `toml:"keys"`
}

type CanvasConfig struct {
	// Color is the initial drawing color as #rrggbb
	Color string `toml:"color"`
}

type DialogConfig struct {
	Visible    bool `toml:"visible"`
	ASCIIIcons bool `toml:"ascii_icons"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{Color: "#000000"},
		Audio:  AudioConfig{Volume: constants.AudioDefaultVolume},
		Log:    LogConfig{Level: "info"},
		Keys:   map[string]string{},
	}
}

// Load reads path over the defaults; an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load config %s: unknown keys %v", path, undecoded)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values that decoding cannot
func (c *Config) Validate() error {
	if _, err := ParseColor(c.Canvas.Color); err != nil {
		return err
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %v out of range [0, 1]", c.Audio.Volume)
	}
	return nil
}

// ApplyEnv overrides settings from the environment; malformed values are ignored
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := getenv(EnvAudioEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}

	// Volume in the environment is a 0-100 percentage
	if v := getenv(EnvVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.Volume = min(max(float64(n)/100.0, 0), 1)
		}
	}

	if v := getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
}

// InitialColor returns the configured drawing color, black when unparsable
func (c *Config) InitialColor() core.Pixel {
	p, err := ParseColor(c.Canvas.Color)
	if err != nil {
		return core.Black
	}
	return p
}

// Write encodes the settings as TOML
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// ParseColor converts #rrggbb (or #rgb) hex into an opaque pixel
func ParseColor(s string) (core.Pixel, error) {
	s = strings.TrimSpace(s)
	if len(s) == 4 && s[0] == '#' {
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	}

	if len(s) != 7 {
		return core.Pixel{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return core.Pixel{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return core.RGB(r, g, b), nil
}
