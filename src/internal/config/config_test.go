// FILE: logbridge/src/internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := defaults()
	require.NoError(t, cfg.validate())

	assert.Equal(t, "0.0.0.0", cfg.Syslog.Host)
	assert.EqualValues(t, 514, cfg.Syslog.Port)
	assert.Equal(t, "syslogd", cfg.Syslog.SourceName)
	assert.EqualValues(t, 1024, cfg.Syslog.MaxDatagramSize)

	require.Len(t, cfg.Sinks, 1)
	assert.Equal(t, "eventlog", cfg.Sinks[0].Type)
	assert.Equal(t, "application", cfg.Sinks[0].EventLog.Category)

	assert.False(t, cfg.Status.Enabled)
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "InvalidPort",
			mutate:  func(c *Config) { c.Syslog.Port = 0 },
			wantErr: "invalid port",
		},
		{
			name:    "EmptySourceName",
			mutate:  func(c *Config) { c.Syslog.SourceName = "" },
			wantErr: "source_name",
		},
		{
			name:    "NoSinks",
			mutate:  func(c *Config) { c.Sinks = nil },
			wantErr: "no sinks",
		},
		{
			name:    "UnknownSinkType",
			mutate:  func(c *Config) { c.Sinks[0].Type = "null" },
			wantErr: "unknown sink type",
		},
		{
			name:    "UnknownFormat",
			mutate:  func(c *Config) { c.Sinks[0].Format = "xml" },
			wantErr: "unknown format",
		},
		{
			name: "EventlogMissingOptions",
			mutate: func(c *Config) {
				c.Sinks[0].EventLog = nil
			},
			wantErr: "requires",
		},
		{
			name: "NetLimitZeroRate",
			mutate: func(c *Config) {
				c.Syslog.NetLimit.Enabled = true
				c.Syslog.NetLimit.RequestsPerSecond = 0
			},
			wantErr: "requests_per_second",
		},
		{
			name: "StatusBadAuthType",
			mutate: func(c *Config) {
				c.Status.Enabled = true
				c.Status.Auth = &AuthConfig{Type: "mtls"}
			},
			wantErr: "unknown auth type",
		},
		{
			name: "BearerWithoutCredentials",
			mutate: func(c *Config) {
				c.Status.Enabled = true
				c.Status.Auth = &AuthConfig{Type: "bearer", BearerAuth: &BearerAuthConfig{}}
			},
			wantErr: "bearer auth requires",
		},
		{
			name:    "BadLogLevel",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "invalid log level",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaults()
			tc.mutate(cfg)
			err := cfg.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadWithCLI(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logbridge.toml")
	content := `
[syslog]
port = 6514
source_name = "edge-syslog"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("LOGBRIDGE_CONFIG_FILE", path)

	cfg, err := LoadWithCLI(nil)
	require.NoError(t, err)

	// File values land on top of defaults
	assert.EqualValues(t, 6514, cfg.Syslog.Port)
	assert.Equal(t, "edge-syslog", cfg.Syslog.SourceName)
	assert.Equal(t, "0.0.0.0", cfg.Syslog.Host)
	require.Len(t, cfg.Sinks, 1)
	assert.Equal(t, "eventlog", cfg.Sinks[0].Type)
}

func TestCustomEnvTransform(t *testing.T) {
	assert.Equal(t, "LOGBRIDGE_SYSLOG_PORT", customEnvTransform("syslog.port"))
	assert.Equal(t, "LOGBRIDGE_LOGGING_LEVEL", customEnvTransform("logging.level"))
}
