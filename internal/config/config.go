// Package config loads rowkit settings from an optional YAML file and
// ROWKIT_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Screen  ScreenConfig  `mapstructure:"screen"`
	Journal JournalConfig `mapstructure:"journal"`
	Log     LogConfig     `mapstructure:"log"`
}

// ScreenConfig holds host screen settings.
type ScreenConfig struct {
	Animated        bool    `mapstructure:"animated"`
	AnimationMs     int     `mapstructure:"animation_ms"`
	InsetHorizontal float64 `mapstructure:"inset_horizontal"`
	InsetVertical   float64 `mapstructure:"inset_vertical"`
	Layout          string  `mapstructure:"layout"` // "constrained" or "unconstrained"
}

// AnimationDuration is AnimationMs as a duration.
func (s ScreenConfig) AnimationDuration() time.Duration {
	return time.Duration(s.AnimationMs) * time.Millisecond
}

// JournalConfig holds update journal settings.
type JournalConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Path          string        `mapstructure:"path"`
	BatchSize     int           `mapstructure:"batch_size"`
	FlushInterval time.Duration `mapstructure:"flush_interval"`
}

// LogConfig holds file logging settings.
type LogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
	Level   string `mapstructure:"level"`
}

// Layout names accepted in screen.layout.
const (
	LayoutConstrained   = "constrained"
	LayoutUnconstrained = "unconstrained"
)

func home() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}

// DefaultPath is the config file used when neither a path nor
// ROWKIT_CONFIG is given.
func DefaultPath() string {
	return filepath.Join(home(), ".config", "rowkit", "config.yaml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("screen.animated", true)
	v.SetDefault("screen.animation_ms", 250)
	v.SetDefault("screen.inset_horizontal", 2)
	v.SetDefault("screen.inset_vertical", 1)
	v.SetDefault("screen.layout", LayoutConstrained)

	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.path", filepath.Join(home(), ".rowkit", "journal.db"))
	v.SetDefault("journal.batch_size", 64)
	v.SetDefault("journal.flush_interval", "500ms")

	v.SetDefault("log.enabled", false)
	v.SetDefault("log.dir", "")
	v.SetDefault("log.level", "info")
}

// Load reads configuration. The file is path if non-empty, else
// $ROWKIT_CONFIG, else DefaultPath; a missing default file is not an
// error. Environment variables override the file, e.g.
// ROWKIT_SCREEN_ANIMATED=false or ROWKIT_JOURNAL_PATH=/tmp/j.db.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	explicit := path != ""
	if !explicit {
		path = os.Getenv("ROWKIT_CONFIG")
		explicit = path != ""
	}
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ROWKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values no component can use.
func (c Config) Validate() error {
	switch c.Screen.Layout {
	case LayoutConstrained, LayoutUnconstrained:
	default:
		return fmt.Errorf("config: screen.layout %q is not %q or %q", c.Screen.Layout, LayoutConstrained, LayoutUnconstrained)
	}
	if c.Screen.AnimationMs < 0 {
		return fmt.Errorf("config: screen.animation_ms must not be negative, got %d", c.Screen.AnimationMs)
	}
	if c.Screen.InsetHorizontal < 0 || c.Screen.InsetVertical < 0 {
		return errors.New("config: screen insets must not be negative")
	}
	if c.Journal.BatchSize < 0 {
		return fmt.Errorf("config: journal.batch_size must not be negative, got %d", c.Journal.BatchSize)
	}
	return nil
}
