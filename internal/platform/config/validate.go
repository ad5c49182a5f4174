package config

import (
	"errors"
	"fmt"
	"strings"
)

// Directory sources.
const (
	DirectorySourceConfig   = "config"
	DirectorySourcePostgres = "postgres"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Agent.validate(),
		c.Directory.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout < 0 {
		errs = append(errs, errors.New("server.write_timeout must not be negative"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	if l.File != "" && l.MaxSizeMB < 1 {
		errs = append(errs, fmt.Errorf("log.max_size_mb must be >= 1 when log.file is set, got %d", l.MaxSizeMB))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (a *AgentConfig) validate() error {
	var errs []error

	if strings.TrimSpace(a.Shell) == "" {
		errs = append(errs, errors.New("agent.shell must not be empty"))
	}
	if strings.TrimSpace(a.Prefix) == "" {
		errs = append(errs, errors.New("agent.prefix must not be empty"))
	}
	if !strings.HasPrefix(a.Gateway, "0x") {
		errs = append(errs, fmt.Errorf("agent.gateway must be a 0x node-address, got %q", a.Gateway))
	}
	if !strings.HasPrefix(a.Group, "0x") {
		errs = append(errs, fmt.Errorf("agent.group must be a 0x node-address, got %q", a.Group))
	}
	if a.MaxOutputBytes < 1 {
		errs = append(errs, fmt.Errorf("agent.max_output_bytes must be >= 1, got %d", a.MaxOutputBytes))
	}
	if a.CircuitBreaker.MaxFailures < 0 {
		errs = append(errs, fmt.Errorf("agent.circuit_breaker.max_failures must be >= 0 (0 disables), got %d",
			a.CircuitBreaker.MaxFailures))
	}
	if a.CircuitBreaker.MaxFailures > 0 && a.CircuitBreaker.Timeout <= 0 {
		errs = append(errs, errors.New("agent.circuit_breaker.timeout must be positive when the breaker is enabled"))
	}
	if a.RateLimit.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("agent.rate_limit.per_second must not be negative, got %f", a.RateLimit.PerSecond))
	}
	if a.RateLimit.PerSecond > 0 && a.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("agent.rate_limit.burst must be >= 1 when limiting, got %d", a.RateLimit.Burst))
	}

	return errors.Join(errs...)
}

func (d *DirectoryConfig) validate() error {
	var errs []error

	switch d.Source {
	case DirectorySourceConfig:
		// Records come from the patients/doctors lists.
	case DirectorySourcePostgres:
		if d.DSN == "" {
			errs = append(errs, errors.New("directory.dsn must not be empty when source is postgres"))
		}
		if d.LoadTimeout <= 0 {
			errs = append(errs, errors.New("directory.load_timeout must be positive"))
		}
	default:
		errs = append(errs, fmt.Errorf("directory.source must be one of: config, postgres; got %q", d.Source))
	}

	return errors.Join(errs...)
}
