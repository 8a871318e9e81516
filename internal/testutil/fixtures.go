package testutil

import (
	"fmt"

	"github.com/preston-bernstein/nhl-standings-service/internal/domain/standings"
)

// SampleTeamStandings returns a minimal valid row for the given team abbreviation.
func SampleTeamStandings(season, abbrev string, points int) standings.TeamStandings {
	return standings.TeamStandings{
		Season:           season,
		Team:             standings.Team{ID: 1, Name: abbrev + " Team", Abbreviation: abbrev},
		GamesPlayed:      82,
		Points:           points,
		GoalsFor:         250,
		GoalsAgainst:     240,
		GoalDifferential: 10,
	}
}

// SampleSnapshot builds a snapshot with n rows for the season, panicking on invalid input.
func SampleSnapshot(season string, n int) standings.StandingsSnapshot {
	rows := make([]standings.TeamStandings, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, SampleTeamStandings(season, fmt.Sprintf("T%02d", i+1), 100-i))
	}
	snap, err := standings.NewSnapshot(season, rows)
	if err != nil {
		panic(err)
	}
	return snap
}

// SamplePayloadJSON is a small upstream standings document in the current schema.
const SamplePayloadJSON = `{
  "standings": [
    {
      "seasonId": 20242025,
      "teamId": 8,
      "teamName": {"default": "Montréal Canadiens"},
      "teamAbbrev": {"default": "MTL"},
      "gamesPlayed": 82,
      "points": 91,
      "goalFor": 245,
      "goalAgainst": 260,
      "homeRecord": {"wins": 22, "losses": 14, "ot": 5}
    },
    {
      "seasonId": 20242025,
      "teamId": 10,
      "teamName": {"default": "Toronto Maple Leafs"},
      "teamAbbrev": {"default": "TOR"},
      "gamesPlayed": 82,
      "points": 108,
      "goalFor": 268,
      "goalAgainst": 231
    }
  ]
}`
