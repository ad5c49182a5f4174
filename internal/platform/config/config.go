// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Agent     AgentConfig     `koanf:"agent"`
	Directory DirectoryConfig `koanf:"directory"`
}

// ServerConfig holds HTTP server settings.
//
// WriteTimeout of zero leaves broadcast responses unbounded so a caller
// always hears the agent's outcome. RequestTimeout bounds directory reads.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings. When File is set, logs are
// written to a size-rotated file instead of stderr.
type LogConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// AgentConfig describes how the external mesh agent is invoked and how
// broadcast commands are laid out.
type AgentConfig struct {
	// Shell and ShellArgs run the encoded command line, e.g. /bin/sh -c.
	Shell     string   `koanf:"shell"`
	ShellArgs []string `koanf:"shell_args"`
	// WorkDir overrides the agent working directory. Empty means the
	// process working directory at dispatch time.
	WorkDir        string               `koanf:"work_dir"`
	Prefix         string               `koanf:"prefix"`
	Gateway        string               `koanf:"gateway"`
	Group          string               `koanf:"group"`
	MaxOutputBytes int                  `koanf:"max_output_bytes"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// CircuitBreakerConfig holds circuit breaker settings for the mesh agent.
// MaxFailures of zero disables the breaker.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig bounds how fast agent processes are spawned.
// A zero PerSecond disables limiting.
type RateLimitConfig struct {
	PerSecond float64 `koanf:"per_second"`
	Burst     int     `koanf:"burst"`
}

// DirectoryConfig selects where ward records come from. With source
// "config" the Patients and Doctors lists are used; with "postgres" the
// records are read once from DSN at start-up.
type DirectoryConfig struct {
	Source      string          `koanf:"source"`
	DSN         string          `koanf:"dsn"`
	LoadTimeout time.Duration   `koanf:"load_timeout"`
	Patients    []PatientRecord `koanf:"patients"`
	Doctors     []DoctorRecord  `koanf:"doctors"`
}

// PatientRecord is a patient entry declared in configuration.
type PatientRecord struct {
	ID     string `koanf:"id"`
	Name   string `koanf:"name"`
	Sector string `koanf:"sector"`
}

// DoctorRecord is a doctor entry declared in configuration.
type DoctorRecord struct {
	ID   string `koanf:"id"`
	Name string `koanf:"name"`
}
