package config

// SnapshotConfig controls where snapshots are written.
type SnapshotConfig struct {
	Dir string
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Dir: envOrDefault(envSnapshotDir, defaultSnapshotDir),
	}
}
