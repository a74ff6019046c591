// Package config loads tabq settings from defaults, an optional config file
// and TABQ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "TABQ"

// defaultConfigName is looked up in the working directory when no explicit
// config file is given.
const defaultConfigName = "tabq"

// Config holds the resolved settings.
type Config struct {
	Format   string            `mapstructure:"format"`
	Limit    int               `mapstructure:"limit"`
	MaxWidth int               `mapstructure:"max_width"`
	Sources  map[string]string `mapstructure:"sources"`
	Log      LogConfig         `mapstructure:"log"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:   "text",
		MaxWidth: 40,
		Sources:  map[string]string{},
		Log: LogConfig{
			Level:  "WARN",
			Format: "text",
		},
	}
}

// Load resolves the configuration. Values come from, lowest priority first:
// built-in defaults, the config file, then environment variables such as
// TABQ_FORMAT or TABQ_LOG_LEVEL. If path is empty a tabq.{yaml,toml,json}
// in the working directory is used when present.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("format", def.Format)
	v.SetDefault("limit", def.Limit)
	v.SetDefault("max_width", def.MaxWidth)
	v.SetDefault("sources", def.Sources)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(defaultConfigName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			// The default config file is optional
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("limit must be non-negative, got %d", c.Limit)
	}
	if c.MaxWidth < 0 {
		return fmt.Errorf("max_width must be non-negative, got %d", c.MaxWidth)
	}
	return nil
}
