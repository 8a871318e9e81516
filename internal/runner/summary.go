package runner

import (
	"fmt"
	"io"
)

const summaryRows = 3

// WriteSummary prints the season, team count, the first rows and the saved path.
func WriteSummary(w io.Writer, res Result) error {
	snap := res.Snapshot
	if _, err := fmt.Fprintf(w, "Season: %s\nTeams in snapshot: %d\n", snap.Season, len(snap.Teams)); err != nil {
		return err
	}

	rows := snap.Teams
	if len(rows) > summaryRows {
		rows = rows[:summaryRows]
	}
	for _, ts := range rows {
		if _, err := fmt.Fprintf(w, "%s: %d pts, %d GP, GF=%d, GA=%d\n",
			ts.Team.Abbreviation, ts.Points, ts.GamesPlayed, ts.GoalsFor, ts.GoalsAgainst); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Snapshot saved to: %s\n", res.Path)
	return err
}
