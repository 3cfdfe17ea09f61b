// Package config defines the StepSlider demo configuration and helpers for
// loading or saving it to disk as JSON or TOML.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/edward-ap/stepslider/internal/geometry"
	"github.com/edward-ap/stepslider/internal/ui"
)

const (
	// AppID is the stable application identifier used by fyne preferences.
	AppID = "io.github.edward-ap.stepslider"
	// AppConfigSubdir is the OS-specific directory that holds the config file.
	AppConfigSubdir = "StepSlider"
	// AppConfigName is the JSON file stored on disk.
	AppConfigName = "config.json"

	// DefaultWindowWidth leaves a margin around a default-width slider.
	DefaultWindowWidth = 680
	// DefaultWindowHeight fits label, captions, options and track.
	DefaultWindowHeight = 220
	// DefaultMinText and DefaultMaxText caption the demo scale.
	DefaultMinText = "Poor"
	DefaultMaxText = "Excellent"
)

// ErrUnsupportedFormat is returned for config files that are neither .json
// nor .toml.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config holds the slider props and window size persisted between sessions.
type Config struct {
	Options   []string        `json:"options" toml:"options"`
	Value     int             `json:"value" toml:"value"`
	Label     string          `json:"label,omitempty" toml:"label,omitempty"`
	MinText   string          `json:"minText,omitempty" toml:"min_text,omitempty"`
	MaxText   string          `json:"maxText,omitempty" toml:"max_text,omitempty"`
	Anchor    geometry.Anchor `json:"anchor" toml:"anchor"`
	TextColor string          `json:"textColor" toml:"text_color"`
	TailColor string          `json:"tailColor" toml:"tail_color"`
	Width     float64         `json:"width" toml:"width"`
	WindowW   int             `json:"windowW" toml:"window_w"`
	WindowH   int             `json:"windowH" toml:"window_h"`
	// WindowX and WindowY are only meaningful when WindowPosValid is set;
	// they are captured on platforms that expose native window positions.
	WindowX        int  `json:"windowX,omitempty" toml:"window_x,omitempty"`
	WindowY        int  `json:"windowY,omitempty" toml:"window_y,omitempty"`
	WindowPosValid bool `json:"windowPosValid,omitempty" toml:"window_pos_valid,omitempty"`
}

// ConfigDir resolves the writable directory that should contain the config file.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppConfigSubdir), nil
}

// ConfigPath is a helper that returns the full path to config.json.
func ConfigPath() (string, error) {
	d, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, AppConfigName), nil
}

// Load reads the config from the user config directory. A missing file
// yields defaults, which are written back on a best-effort basis.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg = Default()
			_ = cfg.Save()
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a .json or .toml config from path and applies defaults.
func LoadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(b, cfg)
	case ".toml":
		err = toml.Unmarshal(b, cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	cfg.applyRuntimeDefaults()
	return cfg, nil
}

// Save persists the configuration to the user config directory.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes the configuration to path, choosing the encoding from the
// file extension and creating directories as needed.
func (c *Config) SaveFile(path string) error {
	var b []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		out, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return err
		}
		b = out
	case ".toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return err
		}
		b = buf.Bytes()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Clone returns a deep copy that can be saved from another goroutine while
// c keeps changing.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Options = slices.Clone(c.Options)
	return &cp
}

// Props converts the config into widget props reporting to onChange.
func (c *Config) Props(onChange func(int)) ui.Props {
	return ui.Props{
		Options:       c.Options,
		Value:         c.Value,
		Label:         c.Label,
		MinText:       c.MinText,
		MaxText:       c.MaxText,
		Anchor:        c.Anchor.String(),
		TextColor:     c.TextColor,
		TailColor:     c.TailColor,
		Width:         c.Width,
		OnValueChange: onChange,
	}
}

// Default builds an in-memory config populated with safe defaults.
func Default() *Config {
	cfg := &Config{
		Options: []string{"1", "2", "3", "4", "5"},
		MinText: DefaultMinText,
		MaxText: DefaultMaxText,
		Anchor:  geometry.AnchorLeft,
	}
	cfg.applyRuntimeDefaults()
	return cfg
}

// applyRuntimeDefaults fills values a hand-written file may leave out. The
// selected value is kept as written, even when out of range.
func (c *Config) applyRuntimeDefaults() {
	if c.Options == nil {
		c.Options = []string{}
	}
	if strings.TrimSpace(c.TextColor) == "" {
		c.TextColor = ui.DefaultTextColor
	}
	if strings.TrimSpace(c.TailColor) == "" {
		c.TailColor = ui.DefaultTailColor
	}
	if c.Width <= 0 {
		c.Width = geometry.DefaultTotalWidth
	}
	if c.WindowW <= 0 {
		c.WindowW = DefaultWindowWidth
	}
	if c.WindowH <= 0 {
		c.WindowH = DefaultWindowHeight
	}
}
