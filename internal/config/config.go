package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"risk-engine/internal/events"
	"risk-engine/internal/riskprofile"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
	Engine  EngineConfig  `toml:"engine"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host               string `toml:"host"`
	Port               int    `toml:"port"`
	AllowedOrigin      string `toml:"allowed_origin"`
	ReadTimeoutSeconds int    `toml:"read_timeout_seconds"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// EngineConfig contains risk engine settings.
type EngineConfig struct {
	OverridePolicy string `toml:"override_policy"`
	Currency       string `toml:"currency"`
}

// NewDefaultConfig returns the configuration used when nothing else is set.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:               "",
			Port:               8080,
			AllowedOrigin:      "*",
			ReadTimeoutSeconds: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Engine: EngineConfig{
			OverridePolicy: string(events.PolicyPin),
			Currency:       "USD",
		},
	}
}

// Load loads configuration with priority: defaults -> .env -> files -> env.
// Later files override earlier files.
func Load(paths ...string) (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies RISK_* environment variable overrides to config.
// PORT is honoured for platforms that inject it.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if port := os.Getenv("RISK_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("RISK_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if origin := os.Getenv("RISK_ALLOWED_ORIGIN"); origin != "" {
		config.Server.AllowedOrigin = origin
	}
	if level := os.Getenv("RISK_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if pretty := os.Getenv("RISK_LOG_PRETTY"); pretty != "" {
		if b, err := strconv.ParseBool(pretty); err == nil {
			config.Logging.Pretty = b
		}
	}
	if policy := os.Getenv("RISK_OVERRIDE_POLICY"); policy != "" {
		config.Engine.OverridePolicy = policy
	}
	if currency := os.Getenv("RISK_CURRENCY"); currency != "" {
		config.Engine.Currency = currency
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Server.ReadTimeoutSeconds < 0 {
		return fmt.Errorf("read timeout must not be negative")
	}
	if _, err := events.ParsePolicy(c.Engine.OverridePolicy); err != nil {
		return err
	}
	if !riskprofile.KnownCurrency(c.Engine.Currency) {
		return fmt.Errorf("unknown currency %q", c.Engine.Currency)
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
