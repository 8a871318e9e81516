package snapshots

import (
	"encoding/json"
	"os"
	"time"
)

// Manifest tracks what the pinned snapshot file actually holds.
type Manifest struct {
	Version     int           `json:"version"`
	GeneratedAt time.Time     `json:"generatedAt"`
	Standings   StandingsMeta `json:"standings"`
}

// StandingsMeta describes the last persisted standings snapshot.
type StandingsMeta struct {
	File          string    `json:"file"`
	Season        string    `json:"season"`
	Teams         int       `json:"teams"`
	RunID         string    `json:"runId,omitempty"`
	Changed       bool      `json:"changed"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

func defaultManifest(now time.Time) Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: now,
		Standings:   StandingsMeta{File: StandingsFileName},
	}
}

func readManifest(path string, now time.Time) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(now), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(now), err
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest, now time.Time) error {
	m.GeneratedAt = now
	data, err := encodeJSON(m)
	if err != nil {
		return err
	}
	return writeAtomic(ManifestPath(basePath), data)
}
