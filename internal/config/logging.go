package config

import "strings"

// LoggingConfig controls log level and handler format.
type LoggingConfig struct {
	Level  string
	Format string
}

func loadLogging() LoggingConfig {
	return LoggingConfig{
		Level:  strings.ToLower(envOrDefault(envLogLevel, defaultLogLevel)),
		Format: strings.ToLower(envOrDefault(envLogFormat, defaultLogFormat)),
	}
}
