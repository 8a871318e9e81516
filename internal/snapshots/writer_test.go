package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nhl-standings-service/internal/domain/standings"
)

func TestWriterWritesSnapshotAndManifest(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "raw")
	now := time.Date(2025, 4, 17, 8, 0, 0, 0, time.UTC)
	w := fixedWriter(dir, now)

	path, err := w.WriteStandingsSnapshot(sampleSnapshot(t), "run-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if path != filepath.Join(dir, StandingsFileName) {
		t.Fatalf("expected pinned path, got %s", path)
	}

	data := requireFile(t, path)
	if !strings.HasPrefix(string(data), "{\n  \"season\": \"20242025\",\n  \"standings\": [") {
		t.Fatalf("expected two-space indented document, got %q", string(data[:40]))
	}
	if !strings.Contains(string(data), "Montréal Canadiens") {
		t.Fatalf("expected non-ASCII written verbatim")
	}

	var m Manifest
	if err := json.Unmarshal(requireFile(t, ManifestPath(dir)), &m); err != nil {
		t.Fatalf("failed to decode manifest: %v", err)
	}
	if m.Standings.File != StandingsFileName || m.Standings.Season != "20242025" || m.Standings.Teams != 2 {
		t.Fatalf("unexpected manifest %+v", m.Standings)
	}
	if m.Standings.RunID != "run-1" || !m.Standings.Changed || !m.Standings.LastRefreshed.Equal(now) {
		t.Fatalf("unexpected manifest run fields %+v", m.Standings)
	}
}

func TestWriterLeavesIdenticalContentUntouched(t *testing.T) {
	dir := t.TempDir()
	w := fixedWriter(dir, time.Date(2025, 4, 17, 8, 0, 0, 0, time.UTC))
	snap := sampleSnapshot(t)

	path, err := w.WriteStandingsSnapshot(snap, "run-1")
	if err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("failed to set mtime: %v", err)
	}

	if _, err := w.WriteStandingsSnapshot(snap, "run-2"); err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if !info.ModTime().Equal(old) {
		t.Fatalf("expected identical snapshot not to be rewritten")
	}

	m, err := NewFSStore(dir).LoadManifest()
	if err != nil {
		t.Fatalf("failed to load manifest: %v", err)
	}
	if m.Standings.RunID != "run-2" || m.Standings.Changed {
		t.Fatalf("expected manifest refreshed as unchanged, got %+v", m.Standings)
	}
}

func TestWriterReplacesChangedContent(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	snap := sampleSnapshot(t)
	if _, err := w.WriteStandingsSnapshot(snap, "a"); err != nil {
		t.Fatalf("first write failed: %v", err)
	}

	snap.Teams = snap.Teams[:1]
	path, err := w.WriteStandingsSnapshot(snap, "b")
	if err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	loaded, err := NewFSStore(dir).LoadStandings()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if len(loaded.Teams) != 1 {
		t.Fatalf("expected replaced content at %s, got %d rows", path, len(loaded.Teams))
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected tmp file to be gone, got %v", err)
	}
}

func TestWriterWritesEmptySnapshot(t *testing.T) {
	dir := t.TempDir()
	path, err := NewWriter(dir).WriteStandingsSnapshot(standings.StandingsSnapshot{}, "")
	if err != nil {
		t.Fatalf("expected empty snapshot to be written, got %v", err)
	}
	if got := strings.TrimSpace(string(requireFile(t, path))); got != "{\n  \"season\": \"\",\n  \"standings\": []\n}" {
		t.Fatalf("unexpected empty document %q", got)
	}
}

func TestWriterRejectsInvalidSnapshot(t *testing.T) {
	dir := t.TempDir()
	snap := standings.StandingsSnapshot{
		Season: "20242025",
		Teams:  []standings.TeamStandings{{Season: "20232024"}},
	}
	if _, err := NewWriter(dir).WriteStandingsSnapshot(snap, "x"); err == nil {
		t.Fatalf("expected mixed-season snapshot to be rejected")
	}
	if _, err := os.Stat(StandingsSnapshotPath(dir)); !os.IsNotExist(err) {
		t.Fatalf("expected no file to be written")
	}
}

func TestWriterHandlesNilAndBadDir(t *testing.T) {
	var w *Writer
	if _, err := w.WriteStandingsSnapshot(standings.StandingsSnapshot{}, ""); err != ErrWriterNotConfigured {
		t.Fatalf("expected ErrWriterNotConfigured, got %v", err)
	}
	if w.BasePath() != "" {
		t.Fatalf("expected empty base path for nil writer")
	}

	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to create blocking file: %v", err)
	}
	if _, err := NewWriter(filepath.Join(file, "nested")).WriteStandingsSnapshot(standings.StandingsSnapshot{}, ""); err == nil {
		t.Fatalf("expected error when base path cannot be created")
	}
}

func TestBasePathExposesRoot(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base)
	if w.BasePath() != base {
		t.Fatalf("expected base path %s, got %s", base, w.BasePath())
	}
}
