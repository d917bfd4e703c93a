// Package config loads process configuration for the weeks CLI.
//
// Values are layered, lowest precedence first: defaults, an optional YAML
// file named by WEEKS_CONFIG, then WEEKS_* environment variables. Command
// line flags are applied on top by the cli package.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment key, e.g. WEEKS_DOB.
	EnvPrefix = "WEEKS_"
	// EnvConfigFile names the optional YAML config file.
	EnvConfigFile = "WEEKS_CONFIG"
)

// Config contains process configuration.
type Config struct {
	// DOB is the birth-date parameter (YYYY-MM-DD). Invalid values are
	// ignored at session start, not rejected here.
	DOB string `koanf:"dob"`

	// LogCalls enables use-case logging to stderr.
	LogCalls bool `koanf:"log_calls"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Color enables ANSI styling. False forces plain output.
	Color bool `koanf:"color"`

	// TUI starts the interactive view when no subcommand is given and stdin
	// is a terminal.
	TUI bool `koanf:"tui"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogCalls: false,
		LogLevel: "info",
		Color:    true,
		TUI:      false,
	}
}

// Load builds a Config from defaults, the optional file and the environment.
func Load() (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("%w: reading %s: %v", ErrLoadConfig, path, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return cfg, fmt.Errorf("%w: reading environment: %v", ErrLoadConfig, err)
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if _, err := cfg.SlogLevel(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SlogLevel maps LogLevel onto a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
}
