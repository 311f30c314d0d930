// FILE: logbridge/src/internal/config/config.go
package config

import (
	"logbridge/src/internal/core"
)

type Config struct {
	Syslog  SyslogConfig `toml:"syslog"`
	Sinks   []SinkConfig `toml:"sinks"`
	Status  StatusConfig `toml:"status"`
	Logging *LogConfig   `toml:"logging"`
	Quiet   bool         `toml:"quiet"`
}

// SyslogConfig configures the UDP receiver.
type SyslogConfig struct {
	Host string `toml:"host"`
	Port int64  `toml:"port"`

	// Sink source name records are registered under
	SourceName string `toml:"source_name"`

	// Receive bound; longer datagrams are truncated (RFC 3164 limit)
	MaxDatagramSize int64 `toml:"max_datagram_size"`

	// Subscriber channel capacity
	BufferSize int64 `toml:"buffer_size"`

	NetLimit NetLimitConfig `toml:"net_limit"`
}

// NetLimitConfig configures per-sender datagram rate limiting.
type NetLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	BurstSize         int64   `toml:"burst_size"`
}

// SinkConfig selects and configures one output destination.
type SinkConfig struct {
	// "eventlog", "stdout" or "stderr"
	Type string `toml:"type"`

	// "raw" or "txt"; empty defaults to raw
	Format string `toml:"format"`

	BufferSize int64 `toml:"buffer_size"`

	EventLog *EventLogConfig       `toml:"eventlog"`
	Text     *TextFormatterOptions `toml:"text"`
}

// EventLogConfig configures the file-backed event store.
type EventLogConfig struct {
	Directory string `toml:"directory"`
	Name      string `toml:"name"`

	// Category sources are registered under; a source found under a
	// different category is deleted and re-created
	Category string `toml:"category"`

	MaxSizeMB      int64   `toml:"max_size_mb"`
	MaxTotalSizeMB int64   `toml:"max_total_size_mb"`
	RetentionHours float64 `toml:"retention_hours"`
}

type TextFormatterOptions struct {
	Template        string `toml:"template"`
	TimestampFormat string `toml:"timestamp_format"`
}

// StatusConfig configures the HTTP status endpoint.
type StatusConfig struct {
	Enabled bool        `toml:"enabled"`
	Host    string      `toml:"host"`
	Port    int64       `toml:"port"`
	Auth    *AuthConfig `toml:"auth"`
}

// AuthConfig configures status endpoint authentication.
type AuthConfig struct {
	// "none", "basic" or "bearer"
	Type string `toml:"type"`

	BasicAuth  *BasicAuthConfig  `toml:"basic_auth"`
	BearerAuth *BearerAuthConfig `toml:"bearer_auth"`
}

type BasicAuthConfig struct {
	Users []BasicAuthUser `toml:"users"`
}

type BasicAuthUser struct {
	Username     string `toml:"username"`
	PasswordHash string `toml:"password_hash"`
}

type BearerAuthConfig struct {
	Tokens []string   `toml:"tokens"`
	JWT    *JWTConfig `toml:"jwt"`
}

type JWTConfig struct {
	SigningKey string `toml:"signing_key"`
}

func defaults() *Config {
	return &Config{
		Syslog: SyslogConfig{
			Host:            "0.0.0.0",
			Port:            core.DefaultSyslogPort,
			SourceName:      core.DefaultSourceName,
			MaxDatagramSize: core.MaxDatagramSize,
			BufferSize:      1000,
			NetLimit: NetLimitConfig{
				Enabled:           false,
				RequestsPerSecond: 100,
				BurstSize:         200,
			},
		},
		Sinks: []SinkConfig{
			{
				Type:       "eventlog",
				Format:     "raw",
				BufferSize: 1000,
				EventLog: &EventLogConfig{
					Directory:      "./events",
					Name:           "logbridge",
					Category:       core.DefaultCategory,
					MaxSizeMB:      100,
					MaxTotalSizeMB: 1000,
					RetentionHours: 168,
				},
			},
		},
		Status: StatusConfig{
			Enabled: false,
			Host:    "127.0.0.1",
			Port:    8080,
		},
		Logging: DefaultLogConfig(),
	}
}
