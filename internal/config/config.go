// Package config loads the settings of the calculator front ends.
//
// Settings come, in increasing precedence, from built-in defaults, a YAML
// file (calc.yaml in the user config directory or the working directory, or
// an explicit path), CALC_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/fjl/decicalc/internal/logging"
)

// Config holds the front end settings.
type Config struct {
	Locale   string    `mapstructure:"locale" yaml:"locale"`
	LogLevel string    `mapstructure:"log_level" yaml:"log_level"`
	TUI      TUIConfig `mapstructure:"tui" yaml:"tui"`
}

// TUIConfig holds settings of the terminal front end.
type TUIConfig struct {
	ShowHistory bool `mapstructure:"show_history" yaml:"show_history"`
	Width       int  `mapstructure:"width" yaml:"width"`
}

// Defaults returns the built-in settings keyed by their config path.
func Defaults() map[string]any {
	return map[string]any{
		"locale":           "en",
		"log_level":        "warn",
		"tui.show_history": true,
		"tui.width":        30,
	}
}

// flagKeys maps config keys to the names of the flags overriding them.
var flagKeys = map[string]string{
	"locale":    "locale",
	"log_level": "log-level",
}

// Load reads the configuration. If file is empty the standard locations are
// searched and a missing file is not an error. flags may be nil.
func Load(flags *pflag.FlagSet, file string) (Config, error) {
	var c Config
	v := viper.New()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("calc")
		if dir, err := userConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return c, fmt.Errorf("reading config: %w", err)
		}
		logging.Debugf("no config file found, using defaults")
	} else {
		logging.Debugf("using config file %s", v.ConfigFileUsed())
	}

	v.SetEnvPrefix("CALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, err
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	return c, c.validate()
}

func (c Config) validate() error {
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	if c.TUI.Width < 10 {
		return fmt.Errorf("tui.width must be at least 10, got %d", c.TUI.Width)
	}
	return nil
}

// Tag returns the configured locale. Invalid locales yield English.
func (c Config) Tag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// Default returns the configuration made of the built-in defaults only.
func Default() Config {
	d := Defaults()
	return Config{
		Locale:   d["locale"].(string),
		LogLevel: d["log_level"].(string),
		TUI: TUIConfig{
			ShowHistory: d["tui.show_history"].(bool),
			Width:       d["tui.width"].(int),
		},
	}
}

// DefaultPath is the location of the per-user config file.
func DefaultPath() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "calc.yaml"), nil
}

func userConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, "decicalc"), nil
}

// Write stores c as YAML at path, creating parent directories.
func Write(c Config, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
