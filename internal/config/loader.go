package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "KITE"

// Loader resolves configuration from defaults, a file and the
// environment.
type Loader struct {
	v       *viper.Viper
	fs      afero.Fs
	file    string
	xdgHome string
	home    string
}

// Option configures a Loader.
type Option func(*Loader)

// WithFs sets the file system config files are read from.
func WithFs(fs afero.Fs) Option {
	return func(l *Loader) { l.fs = fs }
}

// WithConfigFile requests a specific config file. It must exist.
func WithConfigFile(path string) Option {
	return func(l *Loader) { l.file = path }
}

// WithDirs overrides $XDG_CONFIG_HOME and the home directory used for
// the default search paths.
func WithDirs(xdgHome, home string) Option {
	return func(l *Loader) {
		l.xdgHome = xdgHome
		l.home = home
	}
}

// NewLoader creates a loader with defaults registered.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{fs: afero.NewOsFs()}
	l.xdgHome = os.Getenv("XDG_CONFIG_HOME")
	l.home, _ = os.UserHomeDir()
	for _, opt := range opts {
		opt(l)
	}

	v := viper.New()
	v.SetFs(l.fs)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, Defaults())
	l.v = v
	return l
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("input.read_timeout_ms", d.Input.ReadTimeoutMS)
	v.SetDefault("ui.alt_screen", d.UI.AltScreen)
	v.SetDefault("ui.welcome", d.UI.Welcome)
	v.SetDefault("ui.fill_char", d.UI.FillChar)
	v.SetDefault("ui.fill_color", d.UI.FillColor)
	v.SetDefault("editor.watch_file", d.Editor.WatchFile)
	v.SetDefault("plugin.init_script", d.Plugin.InitScript)
}

// Viper exposes the underlying Viper instance for flag binding.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// SearchPaths returns the default config file locations in lookup order.
func (l *Loader) SearchPaths() []string {
	var paths []string
	if l.xdgHome != "" {
		paths = append(paths, filepath.Join(l.xdgHome, "kite", "config.toml"))
	}
	if l.home != "" {
		paths = append(paths, filepath.Join(l.home, ".config", "kite", "config.toml"))
	}
	return paths
}

// Load reads the config file, if any, and returns the validated result.
func (l *Loader) Load() (Config, error) {
	path, err := l.locate()
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return Config{}, &ParseError{Path: path, Err: err}
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigFileUsed returns the file Load read, or "" for none.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) locate() (string, error) {
	if l.file != "" {
		ok, err := afero.Exists(l.fs, l.file)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, l.file)
		}
		return l.file, nil
	}
	for _, p := range l.SearchPaths() {
		ok, err := afero.Exists(l.fs, p)
		if err != nil && !errors.Is(err, os.ErrPermission) {
			return "", err
		}
		if ok {
			return p, nil
		}
	}
	return "", nil
}
