// Package config provides Viper-based configuration loading.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// MapConfig holds dungeon dimensions and the RNG seed.
type MapConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	// Seed of 0 derives a seed from the clock.
	Seed int64 `mapstructure:"seed"`
}

// SaveConfig holds persistence settings.
type SaveConfig struct {
	// Path is the save file location.
	Path string `mapstructure:"path"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// TelemetryConfig holds tracing settings.
type TelemetryConfig struct {
	// Enabled turns the OTLP exporter on. The OTEL_* environment variables
	// configure the endpoint.
	Enabled bool `mapstructure:"enabled"`
}

// Config is the top-level application configuration.
type Config struct {
	Map       MapConfig       `mapstructure:"map"`
	Save      SaveConfig      `mapstructure:"save"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// Load reads configuration from an optional hollowdeep.yaml in the working
// directory, overridden by HOLLOWDEEP_* environment variables, on top of
// the built-in defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("map.width", 80)
	v.SetDefault("map.height", 43)
	v.SetDefault("map.seed", 0)
	v.SetDefault("save.path", "savegame.json")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("telemetry.enabled", false)

	v.SetConfigName("hollowdeep")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("HOLLOWDEEP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// No config file is fine; defaults plus env carry the day.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks all configuration invariants.
func (c Config) Validate() error {
	var errs []string

	if c.Map.Width < 10 || c.Map.Height < 10 {
		errs = append(errs, fmt.Sprintf("map dimensions %dx%d too small, need at least 10x10", c.Map.Width, c.Map.Height))
	}
	if c.Save.Path == "" {
		errs = append(errs, "save path must not be empty")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("unknown log level %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Sprintf("unknown log format %q", c.Logging.Format))
	}

	if len(errs) > 0 {
		return errors.New("invalid configuration: " + strings.Join(errs, "; "))
	}
	return nil
}
