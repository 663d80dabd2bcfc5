// Package config loads settings for the infix command.
//
// Precedence (highest to lowest): flags > INFIX_* env vars > config file > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

const (
	EnvPrefix = "INFIX_"

	FormatPlain = "plain"
	FormatTable = "table"

	DefaultLogLevel = "warn"
	DefaultPrompt   = "> "
)

var (
	ErrUnknownFormat = errors.New("config: unknown output format")
	ErrNegativeJobs  = errors.New("config: jobs must not be negative")
)

// Config holds all CLI configuration options.
type Config struct {
	LogLevel    string `koanf:"log_level"`
	Prompt      string `koanf:"prompt"`
	HistoryFile string `koanf:"history_file"`
	Format      string `koanf:"format"`
	Jobs        int    `koanf:"jobs"`
	Color       bool   `koanf:"color"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"log_level":    DefaultLogLevel,
		"prompt":       DefaultPrompt,
		"history_file": "",
		"format":       FormatPlain,
		"jobs":         0,
		"color":        true,
	}
}

// findConfigFile returns explicit if set, then ./infix.yaml, then
// <user config dir>/infix/config.yaml, or "" when none exists.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	candidates := []string{"infix.yaml", "infix.yml"}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "infix", "config.yaml"))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// Load reads configuration from cfgFile (or the default locations), the
// environment and the explicitly set flags in flags. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// INFIX_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Format {
	case FormatPlain, FormatTable:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeJobs, c.Jobs)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: invalid log level: %w", err)
	}
	return nil
}

// Level returns the parsed log level, falling back to warn.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}
