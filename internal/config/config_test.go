package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "*", cfg.Server.AllowedOrigin)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "pin", cfg.Engine.OverridePolicy)
	assert.Equal(t, "USD", cfg.Engine.Currency)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadFilesInOrder(t *testing.T) {
	base := writeFile(t, "base.toml", `
[server]
host = "127.0.0.1"
port = 9000

[engine]
override_policy = "overwrite"
currency = "EUR"
`)
	local := writeFile(t, "local.toml", `
[server]
port = 9100

[logging]
level = "debug"
pretty = true
`)

	cfg, err := Load(base, "", local)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Pretty)
	assert.Equal(t, "overwrite", cfg.Engine.OverridePolicy)
	assert.Equal(t, "EUR", cfg.Engine.Currency)
	assert.Equal(t, "127.0.0.1:9100", cfg.Addr())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	bad := writeFile(t, "bad.toml", "[server\nport = ")
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("RISK_SERVER_HOST", "0.0.0.0")
	t.Setenv("RISK_ALLOWED_ORIGIN", "https://app.example.com")
	t.Setenv("RISK_LOG_LEVEL", "warn")
	t.Setenv("RISK_LOG_PRETTY", "true")
	t.Setenv("RISK_OVERRIDE_POLICY", "overwrite")
	t.Setenv("RISK_CURRENCY", "GBP")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "https://app.example.com", cfg.Server.AllowedOrigin)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Pretty)
	assert.Equal(t, "overwrite", cfg.Engine.OverridePolicy)
	assert.Equal(t, "GBP", cfg.Engine.Currency)

	// RISK_SERVER_PORT wins over PORT.
	t.Setenv("RISK_SERVER_PORT", "7100")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 7100, cfg.Server.Port)
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := NewDefaultConfig()
	ApplyFlagOverrides(cfg, 0, "")
	assert.Equal(t, 8080, cfg.Server.Port)

	ApplyFlagOverrides(cfg, 9999, "localhost")
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"negative timeout", func(c *Config) { c.Server.ReadTimeoutSeconds = -1 }},
		{"unknown policy", func(c *Config) { c.Engine.OverridePolicy = "sticky" }},
		{"unknown currency", func(c *Config) { c.Engine.Currency = "DOGE" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
