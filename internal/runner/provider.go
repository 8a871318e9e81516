package runner

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nhl-standings-service/internal/config"
	"github.com/preston-bernstein/nhl-standings-service/internal/logging"
	"github.com/preston-bernstein/nhl-standings-service/internal/metrics"
	"github.com/preston-bernstein/nhl-standings-service/internal/providers"
	"github.com/preston-bernstein/nhl-standings-service/internal/providers/fixture"
	"github.com/preston-bernstein/nhl-standings-service/internal/providers/nhl"
)

// selectProvider returns the configured provider and the name it reports under.
func selectProvider(cfg config.Config, logger *slog.Logger) (providers.StandingsProvider, string) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case nhl.ProviderName, "":
		return nhl.NewClient(nhl.Config{
			BaseURL: cfg.NHL.BaseURL,
			Date:    cfg.NHL.Date,
			Timeout: cfg.NHL.Timeout,
		}), nhl.ProviderName
	case fixture.ProviderName:
		return fixture.New(), fixture.ProviderName
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		}
		return fixture.New(), fixture.ProviderName
	}
}

// NewProvider assembles the configured provider with instrumentation. There is no retry wrapper.
func NewProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.StandingsProvider {
	base, name := selectProvider(cfg, logger)
	return providers.NewInstrumentedProvider(base, name, logger, recorder)
}
