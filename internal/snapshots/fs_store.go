package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/preston-bernstein/nhl-standings-service/internal/domain/standings"
)

// Store defines how persisted snapshots are loaded.
type Store interface {
	LoadStandings() (standings.StandingsSnapshot, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadStandings reads the pinned standings file and validates it.
func (s *FSStore) LoadStandings() (standings.StandingsSnapshot, error) {
	if s == nil {
		return standings.StandingsSnapshot{}, errors.New("snapshot store not configured")
	}
	var snap standings.StandingsSnapshot
	if err := s.decodeFile(StandingsSnapshotPath(s.basePath), &snap); err != nil {
		return standings.StandingsSnapshot{}, err
	}
	if err := snap.Validate(); err != nil {
		return standings.StandingsSnapshot{}, fmt.Errorf("stored snapshot: %w", err)
	}
	if snap.Teams == nil {
		snap.Teams = []standings.TeamStandings{}
	}
	return snap, nil
}

// LoadManifest reads the manifest written alongside the snapshot.
func (s *FSStore) LoadManifest() (Manifest, error) {
	if s == nil {
		return Manifest{}, errors.New("snapshot store not configured")
	}
	var m Manifest
	if err := s.decodeFile(ManifestPath(s.basePath), &m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
