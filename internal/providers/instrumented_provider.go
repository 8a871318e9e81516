package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nhl-standings-service/internal/domain/standings"
	"github.com/preston-bernstein/nhl-standings-service/internal/logging"
	"github.com/preston-bernstein/nhl-standings-service/internal/metrics"
)

// instrumentedProvider wraps a StandingsProvider with timing, metrics and logging.
// It makes exactly one call to the inner provider.
type instrumentedProvider struct {
	inner    StandingsProvider
	name     string
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewInstrumentedProvider records attempts, latency and rate-limit hits for the wrapped provider.
func NewInstrumentedProvider(inner StandingsProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) StandingsProvider {
	return &instrumentedProvider{
		inner:    inner,
		name:     name,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

func (p *instrumentedProvider) FetchStandings(ctx context.Context) (standings.StandingsSnapshot, error) {
	if p.inner == nil {
		return standings.StandingsSnapshot{}, ErrProviderUnavailable
	}

	start := p.now()
	snap, err := p.inner.FetchStandings(ctx)
	elapsed := p.now().Sub(start)

	p.recorder.RecordProviderAttempt(p.name, elapsed, err)
	if err != nil {
		attrs := []any{slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()), "err", err}
		if tErr, ok := AsTransportError(err); ok {
			if tErr.RateLimited() {
				p.recorder.RecordRateLimit(p.name, tErr.RetryAfter)
				attrs = append(attrs, slog.Int64("retry_after_ms", tErr.RetryAfter.Milliseconds()))
			}
			if tErr.StatusCode > 0 {
				attrs = append(attrs, slog.Int(logging.FieldStatusCode, tErr.StatusCode))
			}
		}
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider fetch failed", attrs...)
		return standings.StandingsSnapshot{}, err
	}

	logWithProvider(ctx, p.logger, slog.LevelInfo, p.name, "provider fetch succeeded",
		slog.String(logging.FieldSeason, snap.Season),
		slog.Int(logging.FieldCount, len(snap.Teams)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return snap, nil
}
