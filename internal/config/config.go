package config

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Config holds all kite settings.
type Config struct {
	Log    LogConfig    `mapstructure:"log" toml:"log" yaml:"log"`
	Input  InputConfig  `mapstructure:"input" toml:"input" yaml:"input"`
	UI     UIConfig     `mapstructure:"ui" toml:"ui" yaml:"ui"`
	Editor EditorConfig `mapstructure:"editor" toml:"editor" yaml:"editor"`
	Plugin PluginConfig `mapstructure:"plugin" toml:"plugin" yaml:"plugin"`
}

// LogConfig controls the diagnostic log.
type LogConfig struct {
	Level string `mapstructure:"level" toml:"level" yaml:"level"`
	File  string `mapstructure:"file" toml:"file" yaml:"file"` // empty discards
}

// InputConfig controls key decoding.
type InputConfig struct {
	ReadTimeoutMS int `mapstructure:"read_timeout_ms" toml:"read_timeout_ms" yaml:"read_timeout_ms"`
}

// ReadTimeout returns the bounded-wait read timeout.
func (c InputConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutMS) * time.Millisecond
}

// UIConfig controls the screen.
type UIConfig struct {
	AltScreen bool   `mapstructure:"alt_screen" toml:"alt_screen" yaml:"alt_screen"`
	Welcome   bool   `mapstructure:"welcome" toml:"welcome" yaml:"welcome"`
	FillChar  string `mapstructure:"fill_char" toml:"fill_char" yaml:"fill_char"`
	FillColor int    `mapstructure:"fill_color" toml:"fill_color" yaml:"fill_color"` // 0-255
}

// EditorConfig controls editing behavior.
type EditorConfig struct {
	WatchFile bool `mapstructure:"watch_file" toml:"watch_file" yaml:"watch_file"`
}

// PluginConfig controls Lua extensions.
type PluginConfig struct {
	InitScript string `mapstructure:"init_script" toml:"init_script" yaml:"init_script"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Input: InputConfig{
			ReadTimeoutMS: 100,
		},
		UI: UIConfig{
			AltScreen: true,
			Welcome:   true,
			FillChar:  "~",
			FillColor: 4,
		},
		Editor: EditorConfig{
			WatchFile: true,
		},
	}
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return &ValidationError{Key: "log.level", Message: "unknown level " + c.Log.Level}
	}
	if c.Input.ReadTimeoutMS <= 0 {
		return &ValidationError{Key: "input.read_timeout_ms", Message: "must be positive"}
	}
	if len(c.UI.FillChar) != 1 {
		return &ValidationError{Key: "ui.fill_char", Message: "must be a single character"}
	}
	if b := c.UI.FillChar[0]; b < ' ' || b > '~' {
		return &ValidationError{Key: "ui.fill_char", Message: "must be printable ASCII"}
	}
	if c.UI.FillColor < 0 || c.UI.FillColor > 255 {
		return &ValidationError{Key: "ui.fill_color", Message: "must be in 0-255"}
	}
	return nil
}
