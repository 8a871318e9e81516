package standings

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations with wire names so errors line up with the persisted JSON.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidationError reports value-object constraint violations keyed by field path.
type ValidationError struct {
	Entity string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(parts, "; "))
}

// AsValidationError attempts to unwrap an error into a ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// NewRecord builds a Record, rejecting negative counts.
func NewRecord(wins, losses, ot int) (Record, error) {
	r := Record{Wins: wins, Losses: losses, OT: ot}
	if err := check("record", r); err != nil {
		return Record{}, err
	}
	return r, nil
}

// NewTeamStandings validates a fully populated row, including its records.
func NewTeamStandings(row TeamStandings) (TeamStandings, error) {
	if err := check("team standings", row); err != nil {
		return TeamStandings{}, err
	}
	return row, nil
}

// NewSnapshot builds a snapshot that owns a copy of teams.
// Every row must carry the snapshot season.
func NewSnapshot(season string, teams []TeamStandings) (StandingsSnapshot, error) {
	owned := make([]TeamStandings, len(teams))
	copy(owned, teams)

	snap := StandingsSnapshot{Season: season, Teams: owned}
	if err := snap.Validate(); err != nil {
		return StandingsSnapshot{}, err
	}
	return snap, nil
}

// Validate checks field constraints and the shared-season invariant.
func (s StandingsSnapshot) Validate() error {
	for i, row := range s.Teams {
		if row.Season != s.Season {
			return &ValidationError{
				Entity: "standings snapshot",
				Fields: map[string]string{
					fmt.Sprintf("standings[%d].season", i): fmt.Sprintf("must equal snapshot season %q, got %q", s.Season, row.Season),
				},
			}
		}
	}
	return check("standings snapshot", s)
}

func check(entity string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fieldPath(fe)] = friendlyMessage(fe)
	}
	return &ValidationError{Entity: entity, Fields: fields}
}

// fieldPath drops the root type name from the namespace ("TeamStandings.home_record.wins").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func friendlyMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	default:
		return "is invalid"
	}
}
