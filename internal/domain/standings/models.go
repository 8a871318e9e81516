package standings

// UnknownTeamID marks a team whose upstream identifier could not be resolved.
const UnknownTeamID = -1

// Record is a win/loss line for one context (overall, home, away, division, conference).
type Record struct {
	Wins   int `json:"wins" validate:"gte=0"`
	Losses int `json:"losses" validate:"gte=0"`
	// OT counts overtime and shootout losses.
	OT int `json:"ot" validate:"gte=0"`
}

// Team is the identity part of a standings row. ID and Abbreviation are the natural keys.
type Team struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	Division     *string `json:"division"`
	Conference   *string `json:"conference"`
}

// TeamStandings is one team's full standings row for a season.
// Pointer fields are optional: nil means the upstream payload did not report the value.
type TeamStandings struct {
	Season string `json:"season"`
	Team   Team   `json:"team"`

	GamesPlayed int `json:"games_played" validate:"gte=0"`
	Points      int `json:"points" validate:"gte=0"`

	// RegulationWins counts wins in regulation only.
	RegulationWins *int `json:"regulation_wins" validate:"omitempty,gte=0"`
	// ROW counts regulation plus overtime wins.
	ROW *int `json:"row" validate:"omitempty,gte=0"`

	LeagueRank     *int `json:"league_rank" validate:"omitempty,gte=1"`
	ConferenceRank *int `json:"conference_rank" validate:"omitempty,gte=1"`
	DivisionRank   *int `json:"division_rank" validate:"omitempty,gte=1"`

	GoalsFor     int `json:"goals_for" validate:"gte=0"`
	GoalsAgainst int `json:"goals_against" validate:"gte=0"`

	HomeRecord       *Record `json:"home_record"`
	AwayRecord       *Record `json:"away_record"`
	DivisionRecord   *Record `json:"division_record"`
	ConferenceRecord *Record `json:"conference_record"`

	GoalDifferential int `json:"goal_differential"`
}

// StandingsSnapshot is a point-in-time capture of every team's standings for one season.
// Teams keeps upstream order and is serialized under "standings".
type StandingsSnapshot struct {
	Season string          `json:"season"`
	Teams  []TeamStandings `json:"standings" validate:"dive"`
}
