package config

const (
	defaultServerPort = 8080

	defaultLogMaxSizeMB  = 100
	defaultLogMaxBackups = 5
	defaultLogMaxAgeDays = 14

	defaultAgentMaxOutputBytes = 64 << 10

	defaultCircuitBreakerMaxFailures = 0
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "0s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "10s",

		"log.level":        "info",
		"log.format":       "json",
		"log.file":         "",
		"log.max_size_mb":  defaultLogMaxSizeMB,
		"log.max_backups":  defaultLogMaxBackups,
		"log.max_age_days": defaultLogMaxAgeDays,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "ward-alert-service",

		"agent.shell":                           "/bin/sh",
		"agent.shell_args":                      []string{"-c"},
		"agent.work_dir":                        "",
		"agent.prefix":                          "python3 execute.py model 0 0x0000",
		"agent.gateway":                         "0xfbf105",
		"agent.group":                           "0xc123",
		"agent.max_output_bytes":                defaultAgentMaxOutputBytes,
		"agent.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"agent.circuit_breaker.timeout":         "30s",
		"agent.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"agent.rate_limit.per_second":           0,
		"agent.rate_limit.burst":                1,

		"directory.source":       "config",
		"directory.dsn":          "",
		"directory.load_timeout": "10s",
	}
}
