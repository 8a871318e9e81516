package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/nhl-standings-service/internal/domain/standings"
	"github.com/preston-bernstein/nhl-standings-service/internal/logging"
	"github.com/preston-bernstein/nhl-standings-service/internal/metrics"
	"github.com/preston-bernstein/nhl-standings-service/internal/providers"
	"github.com/preston-bernstein/nhl-standings-service/internal/snapshots"
)

// Pipeline stages reported in metrics and errors.
const (
	StageFetch   = "fetch"
	StagePersist = "persist"
	StageVerify  = "verify"
)

// SnapshotWriter persists a standings snapshot and returns where it was written.
type SnapshotWriter interface {
	WriteStandingsSnapshot(snap standings.StandingsSnapshot, runID string) (string, error)
}

// Result describes one completed run.
type Result struct {
	RunID    string
	Snapshot standings.StandingsSnapshot
	Path     string
	Duration time.Duration
}

// StageError reports which stage of a run failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Runner fetches one standings snapshot and persists it.
type Runner struct {
	provider providers.StandingsProvider
	writer   SnapshotWriter
	store    snapshots.Store
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
	newID    func() string
}

// New constructs a Runner. logger and recorder may be nil.
func New(provider providers.StandingsProvider, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder) *Runner {
	return &Runner{
		provider: provider,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// WithStore makes Run read the persisted snapshot back and compare it with what was written.
func (r *Runner) WithStore(store snapshots.Store) *Runner {
	r.store = store
	return r
}

// Run performs fetch then persist exactly once. Nothing is written when the fetch fails.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	start := r.now()
	res := Result{RunID: r.newID()}

	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldRunID, res.RunID))
	}
	ctx = logging.WithLogger(ctx, logger)

	if r.provider == nil {
		return r.fail(ctx, res, start, StageFetch, providers.ErrProviderUnavailable)
	}
	if r.writer == nil {
		return r.fail(ctx, res, start, StagePersist, errors.New("snapshot writer not configured"))
	}

	logging.Info(ctx, nil, "snapshot run started")

	snap, err := r.provider.FetchStandings(ctx)
	if err != nil {
		return r.fail(ctx, res, start, StageFetch, err)
	}
	res.Snapshot = snap

	path, err := r.writer.WriteStandingsSnapshot(snap, res.RunID)
	if err != nil {
		return r.fail(ctx, res, start, StagePersist, err)
	}
	res.Path = path

	if err := r.verify(snap); err != nil {
		return r.fail(ctx, res, start, StageVerify, err)
	}
	res.Duration = r.now().Sub(start)

	r.metrics.RecordRun(res.Duration, len(snap.Teams), "", nil)
	logging.Info(ctx, nil, "snapshot run completed",
		slog.String(logging.FieldSeason, snap.Season),
		slog.Int(logging.FieldCount, len(snap.Teams)),
		slog.String(logging.FieldPath, path),
		slog.Int64(logging.FieldDurationMS, res.Duration.Milliseconds()),
	)
	return res, nil
}

func (r *Runner) fail(ctx context.Context, res Result, start time.Time, stage string, err error) (Result, error) {
	res.Duration = r.now().Sub(start)
	r.metrics.RecordRun(res.Duration, 0, stage, err)
	logging.Error(ctx, nil, "snapshot run failed", err,
		slog.String("stage", stage),
		slog.Int64(logging.FieldDurationMS, res.Duration.Milliseconds()),
	)
	return res, &StageError{Stage: stage, Err: err}
}

func (r *Runner) verify(written standings.StandingsSnapshot) error {
	if r.store == nil {
		return nil
	}
	loaded, err := r.store.LoadStandings()
	if err != nil {
		return err
	}
	if loaded.Season != written.Season || len(loaded.Teams) != len(written.Teams) {
		return fmt.Errorf("persisted snapshot mismatch: wrote season %q with %d teams, read season %q with %d teams",
			written.Season, len(written.Teams), loaded.Season, len(loaded.Teams))
	}
	return nil
}
