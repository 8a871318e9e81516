package config

import "github.com/preston-bernstein/nhl-standings-service/internal/timeutil"

// NHLConfig controls how we talk to the NHL web API.
type NHLConfig struct {
	BaseURL string
	Date    string
	Timeout Duration
}

func loadNHL() NHLConfig {
	return NHLConfig{
		BaseURL: envOrDefault(envNHLBaseURL, defaultNHLBaseURL),
		Date:    timeutil.DateOrDefault(envOrDefault(envNHLDate, defaultNHLDate), defaultNHLDate),
		Timeout: durationEnvOrDefault(envNHLTimeout, defaultNHLTimeout),
	}
}
