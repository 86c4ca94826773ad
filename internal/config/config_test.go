package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load consults so host settings do not leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, names := range envBindings {
		for _, name := range names {
			t.Setenv(name, "")
		}
	}
	for _, name := range []string{
		"WEBAPP_SERVER_HOST",
		"WEBAPP_LOGGING_LEVEL",
		"WEBAPP_LOGGING_FORMAT",
		"WEBAPP_SERVER_DEBUG",
	} {
		t.Setenv(name, "")
	}
}

// TestLoadDefaults tests that default configuration values are loaded correctly.
func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("nonexistent.yaml")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.Server.Debug)

	assert.Equal(t, "Development", cfg.App.Environment)
	assert.Equal(t, "us-east-1", cfg.App.Region)
	assert.Equal(t, "Unknown", cfg.App.InstanceID)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	assert.Equal(t, []string{"*"}, cfg.Security.AllowedOrigins)
}

func TestLoadDeploymentEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "Production")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("INSTANCE_ID", "i-123")
	t.Setenv("PORT", "8080")

	cfg, err := Load("nonexistent.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Production", cfg.App.Environment)
	assert.Equal(t, "eu-west-1", cfg.App.Region)
	assert.Equal(t, "i-123", cfg.App.InstanceID)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
}

func TestLoadRegionFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("AWS_DEFAULT_REGION", "ap-southeast-2")

	cfg, err := Load("nonexistent.yaml")
	require.NoError(t, err)
	assert.Equal(t, "ap-southeast-2", cfg.App.Region)

	t.Setenv("AWS_REGION", "us-west-2")
	cfg, err = Load("nonexistent.yaml")
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.App.Region, "AWS_REGION takes precedence")
}

func TestLoadPrefixedEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEBAPP_LOGGING_LEVEL", "debug")
	t.Setenv("WEBAPP_LOGGING_FORMAT", "text")
	t.Setenv("WEBAPP_SERVER_DEBUG", "true")

	cfg, err := Load("nonexistent.yaml")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.True(t, cfg.Server.Debug)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `server:
  host: 127.0.0.1
  port: 9090
  shutdown_timeout: 3s
app:
  environment: Staging
  region: eu-central-1
logging:
  level: warn
  format: text
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "Staging", cfg.App.Environment)
	assert.Equal(t, "eu-central-1", cfg.App.Region)
	assert.Equal(t, "Unknown", cfg.App.InstanceID)
	assert.Equal(t, "warn", cfg.Logging.Level)

	// environment overrides the file
	t.Setenv("ENVIRONMENT", "Production")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Production", cfg.App.Environment)
}

func TestLoadMalformedConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadInvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "70000")

	_, err := Load("nonexistent.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Port")
}

// TestValidate tests the configuration validation logic.
func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{
				Host:            "0.0.0.0",
				Port:            5000,
				ShutdownTimeout: time.Second,
			},
			App: AppConfig{
				Environment: "Development",
				Region:      "us-east-1",
				InstanceID:  "Unknown",
			},
			Logging: LoggingConfig{Level: "info", Format: "json"},
		}
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		expectErr bool
		errMsg    string
	}{
		{
			name:   "valid configuration",
			mutate: func(*Config) {},
		},
		{
			name:      "invalid port - too low",
			mutate:    func(c *Config) { c.Server.Port = 0 },
			expectErr: true,
			errMsg:    "Config.Server.Port",
		},
		{
			name:      "invalid port - too high",
			mutate:    func(c *Config) { c.Server.Port = 65536 },
			expectErr: true,
			errMsg:    "Config.Server.Port",
		},
		{
			name:      "unknown log level",
			mutate:    func(c *Config) { c.Logging.Level = "verbose" },
			expectErr: true,
			errMsg:    "Config.Logging.Level",
		},
		{
			name:      "unknown log format",
			mutate:    func(c *Config) { c.Logging.Format = "xml" },
			expectErr: true,
			errMsg:    "Config.Logging.Format",
		},
		{
			name:      "empty environment",
			mutate:    func(c *Config) { c.App.Environment = "" },
			expectErr: true,
			errMsg:    "Config.App.Environment",
		},
		{
			name:      "zero shutdown timeout",
			mutate:    func(c *Config) { c.Server.ShutdownTimeout = 0 },
			expectErr: true,
			errMsg:    "Config.Server.ShutdownTimeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := Validate(cfg)
			if !tt.expectErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
