package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls and snapshot runs,
// mirroring them into OpenTelemetry instruments when Setup enabled telemetry.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	runs  RunStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordRun tracks one fetch-build-persist run, the stage that failed (if any) and the team count.
func (r *Recorder) RecordRun(duration time.Duration, teams int, stage string, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.runs.Runs++
	r.runs.LastDuration = duration
	if err != nil {
		r.runs.Failures++
		r.runs.LastFailedStage = stage
	} else {
		r.runs.LastTeams = teams
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRun(duration, teams, stage, err)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Provider(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Provider(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Provider(provider).RateLimitHits
}

// ProviderStats is a copy of the current stats for one provider.
type ProviderStats struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// RunStats summarizes recorded snapshot runs.
type RunStats struct {
	Runs            int
	Failures        int
	LastTeams       int
	LastFailedStage string
	LastDuration    time.Duration
}

// Provider returns a copy of the stats recorded for provider.
func (r *Recorder) Provider(provider string) ProviderStats {
	if r == nil {
		return ProviderStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return ProviderStats{}
	}
	return ProviderStats{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// Runs returns a copy of the recorded run stats.
func (r *Recorder) Runs() RunStats {
	if r == nil {
		return RunStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
