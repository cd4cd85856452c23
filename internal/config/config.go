package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig
	Form FormConfig
	Log  LogConfig
	Keys KeysConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
}

// FormConfig tunes the option lists offered by the form.
type FormConfig struct {
	YearSpan  int `mapstructure:"year_span"`
	FirstYear int `mapstructure:"first_year"` // 0 means the current year
}

// LogConfig holds logging settings. An empty path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

// KeysConfig points at the keybinding overrides file.
type KeysConfig struct {
	Path string
}

const envPrefix = "REGFORM"

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}

// Dir is the directory holding config.toml and keybindings.toml.
func Dir() string {
	return filepath.Join(homeDir(), ".config", "regform")
}

// DefaultPath is where Load looks when no explicit path is given.
func DefaultPath() string {
	if p := os.Getenv(envPrefix + "_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("form.year_span", 10)
	v.SetDefault("form.first_year", 0)
	v.SetDefault("log.path", filepath.Join(homeDir(), ".local", "state", "regform", "regform.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("keys.path", filepath.Join(Dir(), "keybindings.toml"))
}

// Load reads configuration from path (or the default location) and env.
// Env var overrides use prefix REGFORM_. A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("stat config %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return normalize(c), nil
}

func normalize(c Config) Config {
	if c.Form.YearSpan <= 0 || c.Form.YearSpan > 50 {
		c.Form.YearSpan = 10
	}
	if c.Form.FirstYear < 0 {
		c.Form.FirstYear = 0
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Path = strings.TrimSpace(c.Log.Path)
	return c
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("form.year_span", cfg.Form.YearSpan)
	v.Set("form.first_year", cfg.Form.FirstYear)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("keys.path", cfg.Keys.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
