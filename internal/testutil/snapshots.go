package testutil

import (
	"testing"

	"github.com/preston-bernstein/nhl-standings-service/internal/snapshots"
)

// NewTempWriter returns a snapshot writer rooted in a temp dir.
func NewTempWriter(t *testing.T) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir())
}

// SnapshotPath returns the expected standings file path for a writer.
func SnapshotPath(w *snapshots.Writer) string {
	return snapshots.StandingsSnapshotPath(w.BasePath())
}
