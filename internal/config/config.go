// Package config loads elevator settings from defaults, an optional YAML file and
// ELEVATOR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configFileName = "elevator"
	configFileType = "yaml"
	envPrefix      = "ELEVATOR"

	KeyLogLevel    = "log_level"
	KeyAddr        = "addr"
	KeyPersistPath = "persist_path"
	KeyBackend     = "backend"
	KeyTimeout     = "timeout"
	KeyExtras      = "extras"
)

// Storage backends.
const (
	BackendFS     = "fs"
	BackendSQLite = "sqlite"
)

// Config is the resolved settings for the CLI and the HTTP server.
type Config struct {
	LogLevel    string
	Addr        string
	PersistPath string
	Backend     string
	Timeout     time.Duration
	Extras      []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyAddr, ":8080")
	v.SetDefault(KeyPersistPath, "./data")
	v.SetDefault(KeyBackend, BackendFS)
	v.SetDefault(KeyTimeout, time.Minute)
	v.SetDefault(KeyExtras, []string{"LrG", "LrM", "DlG", "DlM"})
}

// Load reads path if given, otherwise elevator.yaml from the working directory.
// A missing default file is not an error; a missing explicit file is.
func Load(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// FromViper resolves a Config and validates it.
func FromViper(v *viper.Viper) (*Config, error) {
	c := &Config{
		LogLevel:    v.GetString(KeyLogLevel),
		Addr:        v.GetString(KeyAddr),
		PersistPath: v.GetString(KeyPersistPath),
		Backend:     strings.ToLower(strings.TrimSpace(v.GetString(KeyBackend))),
		Timeout:     v.GetDuration(KeyTimeout),
		Extras:      v.GetStringSlice(KeyExtras),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects settings the commands cannot run with.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFS, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendFS, BackendSQLite)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// ParseLevel maps debug|info|warn|error to a slog level; anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// NewLogger returns a text logger writing to w at the given level.
func NewLogger(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}
