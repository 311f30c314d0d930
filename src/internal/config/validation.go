// FILE: logbridge/src/internal/config/validation.go
package config

import (
	"fmt"
)

func (c *Config) validate() error {
	if c.Syslog.Port < 1 || c.Syslog.Port > 65535 {
		return fmt.Errorf("syslog: invalid port: %d", c.Syslog.Port)
	}
	if c.Syslog.SourceName == "" {
		return fmt.Errorf("syslog: source_name must not be empty")
	}
	if c.Syslog.MaxDatagramSize < 1 {
		return fmt.Errorf("syslog: invalid max_datagram_size: %d", c.Syslog.MaxDatagramSize)
	}
	if c.Syslog.NetLimit.Enabled {
		if c.Syslog.NetLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("syslog: net_limit requests_per_second must be positive")
		}
		if c.Syslog.NetLimit.BurstSize < 1 {
			return fmt.Errorf("syslog: net_limit burst_size must be positive")
		}
	}

	if len(c.Sinks) == 0 {
		return fmt.Errorf("no sinks configured")
	}
	for i, s := range c.Sinks {
		if err := validateSink(i, &s); err != nil {
			return err
		}
	}

	if c.Status.Enabled {
		if c.Status.Port < 1 || c.Status.Port > 65535 {
			return fmt.Errorf("status: invalid port: %d", c.Status.Port)
		}
		if err := validateAuth(c.Status.Auth); err != nil {
			return fmt.Errorf("status: %w", err)
		}
	}

	if c.Logging != nil {
		if err := validateLogConfig(c.Logging); err != nil {
			return fmt.Errorf("logging config: %w", err)
		}
	}

	return nil
}

func validateSink(i int, s *SinkConfig) error {
	switch s.Type {
	case "eventlog":
		if s.EventLog == nil {
			return fmt.Errorf("sink[%d]: eventlog sink requires [sinks.eventlog] options", i)
		}
		if s.EventLog.Directory == "" {
			return fmt.Errorf("sink[%d]: eventlog directory must not be empty", i)
		}
		if s.EventLog.Name == "" {
			return fmt.Errorf("sink[%d]: eventlog name must not be empty", i)
		}
		if s.EventLog.Category == "" {
			return fmt.Errorf("sink[%d]: eventlog category must not be empty", i)
		}
	case "stdout", "stderr":
	default:
		return fmt.Errorf("sink[%d]: unknown sink type: %q", i, s.Type)
	}

	switch s.Format {
	case "", "raw", "txt":
	default:
		return fmt.Errorf("sink[%d]: unknown format: %q", i, s.Format)
	}

	return nil
}

func validateAuth(a *AuthConfig) error {
	if a == nil {
		return nil
	}
	switch a.Type {
	case "", "none":
	case "basic":
		if a.BasicAuth == nil || len(a.BasicAuth.Users) == 0 {
			return fmt.Errorf("basic auth requires at least one user")
		}
	case "bearer":
		if a.BearerAuth == nil {
			return fmt.Errorf("bearer auth requires [auth.bearer_auth] options")
		}
		if len(a.BearerAuth.Tokens) == 0 && (a.BearerAuth.JWT == nil || a.BearerAuth.JWT.SigningKey == "") {
			return fmt.Errorf("bearer auth requires tokens or a JWT signing key")
		}
	default:
		return fmt.Errorf("unknown auth type: %q", a.Type)
	}
	return nil
}
