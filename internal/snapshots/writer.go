package snapshots

import (
	"bytes"
	"errors"
	"os"
	"time"

	"github.com/preston-bernstein/nhl-standings-service/internal/domain/standings"
)

// ErrWriterNotConfigured is returned when a nil writer is used.
var ErrWriterNotConfigured = errors.New("snapshot writer not configured")

// Writer persists the standings snapshot and its manifest.
type Writer struct {
	basePath string
	now      func() time.Time
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{
		basePath: basePath,
		now:      time.Now,
	}
}

// BasePath exposes the writer root path.
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteStandingsSnapshot writes snap to the pinned file under the base path, creating
// the directory when needed, and returns the file path. The file is replaced atomically;
// identical content is left untouched. The manifest is refreshed either way.
func (w *Writer) WriteStandingsSnapshot(snap standings.StandingsSnapshot, runID string) (string, error) {
	if w == nil {
		return "", ErrWriterNotConfigured
	}
	if err := snap.Validate(); err != nil {
		return "", err
	}
	if snap.Teams == nil {
		snap.Teams = []standings.TeamStandings{}
	}

	if err := os.MkdirAll(w.basePath, 0o755); err != nil {
		return "", err
	}

	target := StandingsSnapshotPath(w.basePath)
	data, err := encodeJSON(snap)
	if err != nil {
		return "", err
	}

	changed := true
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		changed = false
	}
	if changed {
		if err := writeAtomic(target, data); err != nil {
			return "", err
		}
	}

	if err := w.updateManifest(snap, runID, changed); err != nil {
		return "", err
	}
	return target, nil
}

func (w *Writer) updateManifest(snap standings.StandingsSnapshot, runID string, changed bool) error {
	now := w.now().UTC()
	m, _ := readManifest(ManifestPath(w.basePath), now)

	m.Standings = StandingsMeta{
		File:          StandingsFileName,
		Season:        snap.Season,
		Teams:         len(snap.Teams),
		RunID:         runID,
		Changed:       changed,
		LastRefreshed: now,
	}
	return writeManifest(w.basePath, m, now)
}
