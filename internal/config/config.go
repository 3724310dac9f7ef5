// Package config loads process configuration. Nothing here is session
// state: the values only describe how the server runs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/cristianadrielbraun/qrgen/internal/qr"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "QRGEN_"

// Config holds all configuration for qrgen.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Logging LoggingConfig `koanf:"logging"`
	QR      QRConfig      `koanf:"qr"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Listen       string `koanf:"listen"`
	DevMode      bool   `koanf:"dev_mode"`
	MaxBodyBytes int64  `koanf:"max_body_bytes"`
	ReadTimeout  string `koanf:"read_timeout"`
	WriteTimeout string `koanf:"write_timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// QRConfig selects the encoder engine.
type QRConfig struct {
	Engine string `koanf:"engine"`
}

// Load reads configuration with priority: flags > env > yaml file > defaults.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults.
	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// 2. Load YAML config file (if given).
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", configPath, err)
		}
	}

	// 3. Load environment variables (QRGEN_ prefix). Only the first
	// underscore separates section from key: QRGEN_SERVER_DEV_MODE is
	// server.dev_mode.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	// 4. Load CLI flags (highest priority).
	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	listen := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		listen = ":" + port
	}

	defaults := map[string]any{
		"server.listen":         listen,
		"server.dev_mode":       false,
		"server.max_body_bytes": int64(1 << 20),
		"server.read_timeout":   "15s",
		"server.write_timeout":  "30s",
		"logging.level":         "info",
		"logging.format":        "json",
		"qr.engine":             qr.DefaultEngine,
	}

	for key, val := range defaults {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}

	return nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none
// are given) into the process environment. Missing files are ignored and
// variables already set are not overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Validate checks values that cannot be expressed as defaults.
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return errors.New("server.listen must not be empty")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	if _, err := c.ReadTimeout(); err != nil {
		return err
	}
	if _, err := c.WriteTimeout(); err != nil {
		return err
	}
	if _, err := qr.EngineByName(c.QR.Engine); err != nil {
		return fmt.Errorf("qr.engine: %w", err)
	}
	return nil
}

// ReadTimeout parses server.read_timeout.
func (c *Config) ReadTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Server.ReadTimeout)
	if err != nil {
		return 0, fmt.Errorf("parse server.read_timeout %q: %w", c.Server.ReadTimeout, err)
	}
	return d, nil
}

// WriteTimeout parses server.write_timeout.
func (c *Config) WriteTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Server.WriteTimeout)
	if err != nil {
		return 0, fmt.Errorf("parse server.write_timeout %q: %w", c.Server.WriteTimeout, err)
	}
	return d, nil
}
