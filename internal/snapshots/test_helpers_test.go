package snapshots

import (
	"os"
	"testing"
	"time"

	"github.com/preston-bernstein/nhl-standings-service/internal/domain/standings"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func sampleSnapshot(t *testing.T) standings.StandingsSnapshot {
	t.Helper()
	snap, err := standings.NewSnapshot("20242025", []standings.TeamStandings{
		{
			Season:           "20242025",
			Team:             standings.Team{ID: 8, Name: "Montréal Canadiens", Abbreviation: "MTL", Division: strPtr("Atlantic"), Conference: strPtr("Eastern")},
			GamesPlayed:      82,
			Points:           91,
			RegulationWins:   intPtr(31),
			LeagueRank:       intPtr(17),
			GoalsFor:         245,
			GoalsAgainst:     260,
			GoalDifferential: -15,
			HomeRecord:       &standings.Record{Wins: 22, Losses: 14, OT: 5},
		},
		{
			Season:           "20242025",
			Team:             standings.Team{ID: 10, Name: "Maple Leafs", Abbreviation: "TOR"},
			GamesPlayed:      82,
			Points:           108,
			GoalsFor:         268,
			GoalsAgainst:     231,
			GoalDifferential: 37,
		},
	})
	if err != nil {
		t.Fatalf("failed to build sample snapshot: %v", err)
	}
	return snap
}

func fixedWriter(base string, now time.Time) *Writer {
	w := NewWriter(base)
	w.now = func() time.Time { return now }
	return w
}

func requireFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected file %s: %v", path, err)
	}
	if len(data) == 0 {
		t.Fatalf("expected content in %s", path)
	}
	return data
}
