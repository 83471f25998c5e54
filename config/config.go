// Package config loads the small set of knobs that govern parsing
// behavior rather than message content: recursion depth, logging level,
// and output format for cmd/mimedump. Adapted from the teacher's
// config.ReadConfig (this file, originally): that one hydrates a large
// daemon AppConfig (listeners, TLS, backends) from JSON via
// encoding/json. Here the surface is much smaller, so viper (already
// pulled into this dependency pack for layered config-file/env/flag
// resolution) replaces the bespoke ioutil.ReadFile+json.Unmarshal pair,
// while keeping the same idea of a single on-disk config file checked at
// startup.
package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

// Config is the full set of tunables cmd/mimedump (and any embedder) can
// set: everything the parser needs beyond the message bytes themselves.
type Config struct {
	// MaxRecursionDepth bounds nested message/rfc822 and multipart
	// recursion (spec.md §5, §9 open question). 0 falls back to the
	// library default of 100.
	MaxRecursionDepth int `mapstructure:"max_recursion_depth"`

	// LogLevel is one of logrus's level names ("debug", "info", "warn",
	// "error"). Defaults to "warn".
	LogLevel string `mapstructure:"log_level"`

	// OutputFormat selects cmd/mimedump's dump format: "text" or "json".
	OutputFormat string `mapstructure:"output_format"`
}

// Default returns the configuration used when no config file, flags, or
// environment variables override anything.
func Default() Config {
	return Config{
		MaxRecursionDepth: 100,
		LogLevel:          "warn",
		OutputFormat:      "text",
	}
}

// Load resolves Config from (in ascending priority) built-in defaults, an
// optional JSON/YAML/TOML config file at path (skipped entirely if path is
// empty or the file doesn't exist), and GOMIME_-prefixed environment
// variables.
func Load(path string) (Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault("max_recursion_depth", d.MaxRecursionDepth)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("output_format", d.OutputFormat)

	v.SetEnvPrefix("gomime")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.MaxRecursionDepth <= 0 {
		cfg.MaxRecursionDepth = d.MaxRecursionDepth
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = d.LogLevel
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = d.OutputFormat
	}
	return cfg, nil
}
