package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled bool
	// Textfile, when set, receives the Prometheus exposition after the run.
	Textfile     string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Textfile:     envOrDefault(envMetricsFile, ""),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}
