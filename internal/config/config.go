// Package config loads and saves blanktech settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/blanktech/internal/box"
	"github.com/jask/blanktech/internal/theme"
)

// Config holds application configuration.
type Config struct {
	UnlockCode string      `mapstructure:"unlock_code"`
	Pause      PauseConfig `mapstructure:"pause"`
	UI         UIConfig    `mapstructure:"ui"`
	Log        LogConfig   `mapstructure:"log"`
}

// PauseConfig holds the delays between screen updates.
type PauseConfig struct {
	Step    time.Duration `mapstructure:"step"`
	Warning time.Duration `mapstructure:"warning"`
	Caution time.Duration `mapstructure:"caution"`
	Invalid time.Duration `mapstructure:"invalid"`
	Error   time.Duration `mapstructure:"error"`
	Quit    time.Duration `mapstructure:"quit"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Width       int    `mapstructure:"width"`
	Column      int    `mapstructure:"column"`
	Palette     string `mapstructure:"palette"`
	Color       bool   `mapstructure:"color"`
	ClearScreen bool   `mapstructure:"clear_screen"`
}

// LogConfig holds logging settings. An empty level disables logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("unlock_code", "x100blank")
	v.SetDefault("pause.step", "50ms")
	v.SetDefault("pause.warning", "600ms")
	v.SetDefault("pause.caution", "800ms")
	v.SetDefault("pause.invalid", "700ms")
	v.SetDefault("pause.error", "1s")
	v.SetDefault("pause.quit", "500ms")
	v.SetDefault("ui.width", box.DefaultWidth)
	v.SetDefault("ui.column", box.DefaultColumn)
	v.SetDefault("ui.palette", theme.PaletteClassic)
	v.SetDefault("ui.color", true)
	v.SetDefault("ui.clear_screen", true)
	v.SetDefault("log.level", "")
}

// Default returns the built-in configuration.
func Default() Config {
	c, err := decode(newViper())
	if err != nil {
		// defaults are static; a failure here is a programming error
		panic(err)
	}
	return c
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Load returns the defaults overlaid with the file at path. An empty path
// reads nothing. The format follows the file extension (toml, yaml, json);
// a file without one is read as TOML.
func Load(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(configType(path))
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	c, err := decode(v)
	if err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the screens cannot be drawn with.
func (c Config) Validate() error {
	if c.UI.Width < 10 {
		return fmt.Errorf("ui.width must be at least 10, got %d", c.UI.Width)
	}
	if c.UI.Column < 1 {
		return fmt.Errorf("ui.column must be positive, got %d", c.UI.Column)
	}
	if _, err := theme.PaletteByName(c.UI.Palette); err != nil {
		return fmt.Errorf("ui.palette: %w", err)
	}
	for name, d := range map[string]time.Duration{
		"pause.step": c.Pause.Step, "pause.warning": c.Pause.Warning, "pause.caution": c.Pause.Caution, "pause.invalid": c.Pause.Invalid,
		"pause.error": c.Pause.Error, "pause.quit": c.Pause.Quit,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative, got %s", name, d)
		}
	}
	return nil
}

// configType is the extension of path without the dot, or toml.
func configType(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return "toml"
	}
	return strings.ToLower(ext[1:])
}

// Save writes cfg to path as TOML, creating the directory if needed. The
// path must end in .toml or have no extension.
func Save(cfg Config, path string) error {
	if t := configType(path); t != "toml" {
		return fmt.Errorf("config must be written as toml, not %s: %s", t, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("unlock_code", cfg.UnlockCode)
	v.Set("pause.step", cfg.Pause.Step.String())
	v.Set("pause.warning", cfg.Pause.Warning.String())
	v.Set("pause.caution", cfg.Pause.Caution.String())
	v.Set("pause.invalid", cfg.Pause.Invalid.String())
	v.Set("pause.error", cfg.Pause.Error.String())
	v.Set("pause.quit", cfg.Pause.Quit.String())
	v.Set("ui.width", cfg.UI.Width)
	v.Set("ui.column", cfg.UI.Column)
	v.Set("ui.palette", cfg.UI.Palette)
	v.Set("ui.color", cfg.UI.Color)
	v.Set("ui.clear_screen", cfg.UI.ClearScreen)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
