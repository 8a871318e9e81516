package config

import "time"

const (
	envProvider     = "PROVIDER"
	envNHLBaseURL   = "NHL_BASE_URL"
	envNHLDate      = "NHL_STANDINGS_DATE"
	envNHLTimeout   = "NHL_HTTP_TIMEOUT"
	envSnapshotDir  = "SNAPSHOT_DIR"
	envMetricsOn    = "METRICS_ENABLED"
	envMetricsFile  = "METRICS_TEXTFILE"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envSkipSnapshot = "SKIP_SNAPSHOT_RUN"

	defaultProvider   = "nhl"
	defaultNHLBaseURL = "https://api-web.nhle.com/v1"
	// Final day of the 2024-2025 regular season.
	defaultNHLDate     = "2025-04-16"
	defaultNHLTimeout  = 10 * Duration(time.Second)
	defaultSnapshotDir = "data/raw"
	defaultServiceName = "nhl-standings-service"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
)
