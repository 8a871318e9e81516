package normalize

import (
	"fmt"

	"github.com/preston-bernstein/nhl-standings-service/internal/domain/standings"
)

// BuildSnapshot maps a decoded standings payload into a snapshot.
// The season resolves from seasonId, then season, then the first row's seasonId,
// and is empty when none is reported. Rows come from standings, then teamRecords,
// keep their upstream order, and all carry the resolved season.
// Any malformed row aborts the build.
func BuildSnapshot(payload map[string]any) (standings.StandingsSnapshot, error) {
	rows, err := resolveRows(payload)
	if err != nil {
		return standings.StandingsSnapshot{}, err
	}
	season := resolveSeason(payload, rows)

	teams := make([]standings.TeamStandings, 0, len(rows))
	for i, item := range rows {
		raw, ok := item.(map[string]any)
		if !ok {
			return standings.StandingsSnapshot{}, fmt.Errorf("standings row %d: %w", i, &CoercionError{Field: "row", Value: item, Err: errNotObject})
		}
		row, err := BuildTeamStandings(season, raw)
		if err != nil {
			return standings.StandingsSnapshot{}, fmt.Errorf("standings row %d: %w", i, err)
		}
		teams = append(teams, row)
	}

	snap, err := standings.NewSnapshot(season, teams)
	if err != nil {
		return standings.StandingsSnapshot{}, validationFailure("standings", err)
	}
	return snap, nil
}

// BuildTeamStandings maps one raw row. Core counters default to 0 when absent;
// regulation wins, ROW, ranks and split records stay nil when not reported.
func BuildTeamStandings(season string, raw map[string]any) (standings.TeamStandings, error) {
	r := rowReader{raw: raw}

	row := standings.TeamStandings{
		Season:         season,
		Team:           BuildTeam(raw),
		GamesPlayed:    r.number("gamesPlayed"),
		Points:         r.number("points"),
		RegulationWins: r.optionalInt("regulationWins"),
		ROW:            r.optionalInt("row"),
		LeagueRank:     r.rank("leagueSequence"),
		ConferenceRank: r.rank("conferenceSequence"),
		DivisionRank:   r.rank("divisionSequence"),
		GoalsFor:       r.number("goalFor"),
		GoalsAgainst:   r.number("goalAgainst"),

		// Taken as reported; an absent goalDiff stays 0 even when goals are known.
		GoalDifferential: r.number("goalDiff"),
		HomeRecord:       r.record("homeRecord"),
		AwayRecord:       r.record("roadRecord", "awayRecord"),
		DivisionRecord:   r.record("divisionRecord"),
		ConferenceRecord: r.record("conferenceRecord"),
	}

	if r.err != nil {
		return standings.TeamStandings{}, r.err
	}

	validated, err := standings.NewTeamStandings(row)
	if err != nil {
		return standings.TeamStandings{}, validationFailure("row", err)
	}
	return validated, nil
}

// rowReader reads typed fields from a raw row and keeps the first coercion failure.
type rowReader struct {
	raw map[string]any
	err error
}

func (r *rowReader) number(key string) int {
	n, _, err := coerceInt(key, r.raw[key])
	r.keep(err)
	return n
}

func (r *rowReader) optionalInt(key string) *int {
	n, ok, err := coerceInt(key, UnwrapLocalized(r.raw[key]))
	r.keep(err)
	if !ok || err != nil {
		return nil
	}
	return &n
}

// rank treats 0 as unranked; upstream uses it for rows without a sequence.
// Ranks are validated gte=1, so a 0 default could never be stored.
func (r *rowReader) rank(key string) *int {
	n := r.optionalInt(key)
	if n == nil || *n == 0 {
		return nil
	}
	return n
}

func (r *rowReader) record(keys ...string) *standings.Record {
	rec, err := BuildRecord(firstPresent(r.raw, keys...))
	if err != nil {
		r.keep(fmt.Errorf("%s: %w", keys[0], err))
		return nil
	}
	return rec
}

func (r *rowReader) keep(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

func resolveRows(payload map[string]any) ([]any, error) {
	v := firstPresent(payload, "standings", "teamRecords")
	if v == nil {
		return nil, nil
	}
	rows, ok := v.([]any)
	if !ok {
		return nil, &CoercionError{Field: "standings", Value: v, Err: errNotList}
	}
	return rows, nil
}

func resolveSeason(payload map[string]any, rows []any) string {
	v := firstPresent(payload, "seasonId", "season")
	if !present(v) && len(rows) > 0 {
		if first, ok := rows[0].(map[string]any); ok {
			v = first["seasonId"]
		}
	}
	return asString(v)
}
