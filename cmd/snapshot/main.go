package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/preston-bernstein/nhl-standings-service/internal/config"
	"github.com/preston-bernstein/nhl-standings-service/internal/logging"
	"github.com/preston-bernstein/nhl-standings-service/internal/metrics"
	"github.com/preston-bernstein/nhl-standings-service/internal/runner"
	"github.com/preston-bernstein/nhl-standings-service/internal/snapshots"
)

const (
	appVersion      = "dev"
	shutdownTimeout = 5 * time.Second
)

func main() {
	cfg := config.Load()
	if cfg.SkipRun {
		return
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: cfg.Metrics.ServiceName,
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, logger, os.Stdout)
	stop()
	os.Exit(code)
}

// run executes one snapshot job and returns the process exit code.
func run(ctx context.Context, cfg config.Config, logger *slog.Logger, stdout io.Writer) int {
	recorder, gatherer, shutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logger.Warn("telemetry disabled", "err", err)
		recorder, gatherer, shutdown = metrics.NewRecorder(), nil, func(context.Context) error { return nil }
	}

	provider := runner.NewProvider(cfg, logger, recorder)
	writer := snapshots.NewWriter(cfg.Snapshots.Dir)
	store := snapshots.NewFSStore(cfg.Snapshots.Dir)
	res, runErr := runner.New(provider, writer, logger, recorder).WithStore(store).Run(ctx)

	if err := metrics.WriteTextfile(cfg.Metrics.Textfile, gatherer); err != nil {
		logger.Warn("metrics textfile write failed", slog.String(logging.FieldPath, cfg.Metrics.Textfile), "err", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdown(shutdownCtx); err != nil {
		logger.Warn("telemetry shutdown failed", "err", err)
	}

	if runErr != nil {
		fmt.Fprintf(stdout, "Snapshot failed: %v\n", runErr)
		return 1
	}
	if err := runner.WriteSummary(stdout, res); err != nil {
		logger.Error("summary write failed", "err", err)
		return 1
	}
	warnOnSeasonDrift(store, logger, stdout)
	return 0
}

// warnOnSeasonDrift reports when the manifest shows a season other than the one in the file name.
func warnOnSeasonDrift(store *snapshots.FSStore, logger *slog.Logger, stdout io.Writer) {
	m, err := store.LoadManifest()
	if err != nil {
		logger.Warn("manifest read failed", "err", err)
		return
	}
	if m.Standings.Season == snapshots.PinnedSeason {
		return
	}
	logger.Warn("observed season differs from snapshot file name",
		slog.String(logging.FieldSeason, m.Standings.Season),
		slog.String(logging.FieldPath, m.Standings.File),
	)
	fmt.Fprintf(stdout, "Warning: snapshot file %s holds season %q\n", m.Standings.File, m.Standings.Season)
}
