package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "radclient.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1645, cfg.Port)
	assert.Equal(t, 3, cfg.Retries)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 1000, cfg.MaxPacketLength)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server: 192.0.2.1
port: 1812
secret: testing123
retries: 5
timeout: 250ms
log_level: debug
log_file:
  filename: /var/log/radclient.log
  max_size: 50
metrics_addr: ":9100"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "192.0.2.1", cfg.Server)
	assert.Equal(t, 1812, cfg.Port)
	assert.Equal(t, "testing123", cfg.Secret)
	assert.Equal(t, 5, cfg.Retries)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.Equal(t, 1000, cfg.MaxPacketLength)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/var/log/radclient.log", cfg.LogFile.Filename)
	assert.Equal(t, 50, cfg.LogFile.MaxSize)
	assert.Equal(t, 3, cfg.LogFile.MaxBackups)
	assert.Equal(t, ":9100", cfg.MetricsAddr)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "server: 192.0.2.1\nsecret: fromfile\n")

	t.Setenv("RADCLIENT_SECRET", "fromenv")
	t.Setenv("RADCLIENT_PORT", "1645")
	t.Setenv("RADCLIENT_TIMEOUT", "2s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.1", cfg.Server)
	assert.Equal(t, "fromenv", cfg.Secret)
	assert.Equal(t, 1645, cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestLoadEnvOnly(t *testing.T) {
	t.Setenv("RADCLIENT_SERVER", "localhost")
	t.Setenv("RADCLIENT_SECRET", "s3cret")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Server)
	assert.Equal(t, 3, cfg.Retries)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read configuration file")

	_, err = Load(writeConfig(t, "server: [unterminated"))
	assert.ErrorContains(t, err, "failed to parse configuration file")

	t.Setenv("RADCLIENT_RETRIES", "many")
	_, err = Load(writeConfig(t, "server: a\nsecret: b\n"))
	assert.ErrorContains(t, err, "failed to process environment")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing server", func(c *Config) { c.Server = "" }, "server is required"},
		{"missing secret", func(c *Config) { c.Secret = "" }, "secret is required"},
		{"zero port", func(c *Config) { c.Port = 0 }, "port 0 out of range"},
		{"port too large", func(c *Config) { c.Port = 65536 }, "out of range"},
		{"no retries", func(c *Config) { c.Retries = 0 }, "retries must be at least 1"},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, "timeout must be positive"},
		{"packet too small", func(c *Config) { c.MaxPacketLength = 19 }, "max_packet_length"},
		{"packet too large", func(c *Config) { c.MaxPacketLength = 4097 }, "max_packet_length"},
		{"protocol maximum", func(c *Config) { c.MaxPacketLength = 4096 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Server = "192.0.2.1"
			cfg.Secret = "testing123"
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestServerAddr(t *testing.T) {
	cfg := Default()
	cfg.Server = "127.0.0.1"

	addr, err := cfg.ServerAddr()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:1645", addr.String())
}

func TestLogger(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "debug"
	assert.Equal(t, "debug", cfg.Logger().GetLogrus().GetLevel().String())

	cfg.LogFile.Filename = filepath.Join(t.TempDir(), "out.log")
	logger := cfg.Logger()
	logger.Infof("to file")

	data, err := os.ReadFile(cfg.LogFile.Filename)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestReadSkipsValidation(t *testing.T) {
	cfg, err := Read("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Server)

	_, err = Load("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
