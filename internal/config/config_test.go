// filepath: internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[server]
host = "127.0.0.1"
port = 9090

[database]
path = "custom.db"

[logging]
level = "debug"
audit_enabled = true

[relay]
upstream_timeout_sec = 30

[jwt]
access_duration_min = 5
secret = "from-file"
`
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "custom.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.AuditEnabled)
	assert.Equal(t, 30, cfg.Relay.UpstreamTimeoutSec)
	assert.Equal(t, 5, cfg.JWT.AccessDurationMin)
	assert.Equal(t, "from-file", cfg.JWT.Secret)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveAndReloadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := &Config{}
	cfg.Server.Port = 8081
	cfg.JWT.Secret = "persisted-secret"
	cfg.JWTSecret = "runtime-only"

	err := SaveConfig(path, cfg)
	assert.NoError(t, err)

	reloaded, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, 8081, reloaded.Server.Port)
	assert.Equal(t, "persisted-secret", reloaded.JWT.Secret)
	// The runtime secret is never written to disk.
	assert.Empty(t, reloaded.JWTSecret)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "fastfitbeat.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 15, cfg.Relay.UpstreamTimeoutSec)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 6, cfg.Auth.MinPasswordLength)
	assert.Equal(t, 15, cfg.JWT.AccessDurationMin)
	assert.Equal(t, 24, cfg.JWT.RefreshDurationHours)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 9000
	cfg.Logging.Level = "warn"
	cfg.ApplyDefaults()

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
}
