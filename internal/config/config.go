package config

// Config holds runtime configuration for the snapshot job.
type Config struct {
	Provider  string
	NHL       NHLConfig
	Snapshots SnapshotConfig
	Metrics   MetricsConfig
	Logging   LoggingConfig
	// SkipRun makes the entrypoint return before doing any work.
	SkipRun bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Provider:  envOrDefault(envProvider, defaultProvider),
		NHL:       loadNHL(),
		Snapshots: loadSnapshots(),
		Metrics:   loadMetrics(),
		Logging:   loadLogging(),
		SkipRun:   envOrDefault(envSkipSnapshot, "") == "1",
	}
}
