package nhl

import "time"

const (
	// ProviderName identifies the NHL web API in logs, metrics and errors.
	ProviderName = "nhl"

	defaultBaseURL     = "https://api-web.nhle.com/v1"
	defaultDate        = "2025-04-16"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 512
)
