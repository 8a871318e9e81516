package snapshots

import "path/filepath"

// PinnedSeason is the season baked into the snapshot file name.
const PinnedSeason = "20242025"

const (
	// StandingsFileName does not follow the observed season; the manifest records that.
	StandingsFileName = "standings_" + PinnedSeason + "_snapshot.json"
	ManifestFileName  = "manifest.json"
)

// StandingsSnapshotPath builds the path to the standings snapshot under basePath.
func StandingsSnapshotPath(basePath string) string {
	return filepath.Join(basePath, StandingsFileName)
}

// ManifestPath builds the path to the manifest under basePath.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, ManifestFileName)
}
