package teststubs

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/preston-bernstein/nhl-standings-service/internal/domain/standings"
)

// StubProvider is a test double for providers.StandingsProvider.
type StubProvider struct {
	Snapshot standings.StandingsSnapshot
	Err      error
	Calls    atomic.Int32
}

// FetchStandings returns the configured snapshot and error while tracking calls.
func (s *StubProvider) FetchStandings(ctx context.Context) (standings.StandingsSnapshot, error) {
	_ = ctx
	s.Calls.Add(1)
	if s.Err != nil {
		return standings.StandingsSnapshot{}, s.Err
	}
	return s.Snapshot, nil
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	Snapshot *standings.StandingsSnapshot
	LoadErr  error
}

// LoadStandings returns the stored snapshot if one is set.
func (s *StubSnapshotStore) LoadStandings() (standings.StandingsSnapshot, error) {
	if s.LoadErr != nil {
		return standings.StandingsSnapshot{}, s.LoadErr
	}
	if s.Snapshot == nil {
		return standings.StandingsSnapshot{}, errors.New("snapshot not found")
	}
	return *s.Snapshot, nil
}

// StubSnapshotWriter is a test double for the runner's snapshot writer.
type StubSnapshotWriter struct {
	Written []standings.StandingsSnapshot
	RunIDs  []string
	Path    string
	Err     error
}

// WriteStandingsSnapshot records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteStandingsSnapshot(snap standings.StandingsSnapshot, runID string) (string, error) {
	if w.Err != nil {
		return "", w.Err
	}
	w.Written = append(w.Written, snap)
	w.RunIDs = append(w.RunIDs, runID)
	if w.Path == "" {
		return "stub/standings.json", nil
	}
	return w.Path, nil
}
