// Package normalize turns the NHL standings payload, decoded as an untyped JSON tree,
// into validated standings value objects.
//
// Every accessor is total over the tree: absent values fall back to a documented
// default or to nil, and only type mismatches surface as a CoercionError.
package normalize

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nhl-standings-service/internal/domain/standings"
)

const localeDefault = "default"

// UnwrapLocalized returns the "default" entry of a localized object such as
// {"default": "Canadiens", "fr": "Canadiens"}, otherwise v unchanged.
func UnwrapLocalized(v any) any {
	if m, ok := v.(map[string]any); ok {
		if d, ok := m[localeDefault]; ok {
			return d
		}
	}
	return v
}

// BuildRecord maps a split record object. Falsy input (null, false, 0, "", [])
// means the context is not reported and yields nil; an empty object yields a zeroed record.
func BuildRecord(raw any) (*standings.Record, error) {
	if falsy(raw) {
		return nil, nil
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &CoercionError{Field: "record", Value: raw, Err: errNotObject}
	}

	var vals [3]int
	for i, key := range []string{"wins", "losses", "ot"} {
		n, _, err := coerceInt(key, obj[key])
		if err != nil {
			return nil, err
		}
		vals[i] = n
	}

	rec, err := standings.NewRecord(vals[0], vals[1], vals[2])
	if err != nil {
		return nil, validationFailure("record", err)
	}
	return &rec, nil
}

// BuildTeam maps the identity fields of a row. It never fails: an unresolvable
// teamId becomes standings.UnknownTeamID and missing names become empty strings.
func BuildTeam(raw map[string]any) standings.Team {
	id := standings.UnknownTeamID
	if n, ok, err := coerceInt("teamId", UnwrapLocalized(raw["teamId"])); err == nil && ok {
		id = n
	}

	return standings.Team{
		ID:           id,
		Name:         asString(UnwrapLocalized(firstPresent(raw, "teamName", "teamCommonName"))),
		Abbreviation: asString(UnwrapLocalized(raw["teamAbbrev"])),
		Division:     localizedFallback(raw, "divisionName", "divisionAbbrev"),
		Conference:   localizedFallback(raw, "conferenceName", "conferenceAbbrev"),
	}
}

// localizedFallback unwraps each key in order and returns the first non-empty string.
func localizedFallback(raw map[string]any, keys ...string) *string {
	for _, key := range keys {
		if s := asString(UnwrapLocalized(raw[key])); s != "" {
			return &s
		}
	}
	return nil
}

// firstPresent returns the value of the first key holding a non-empty value.
// When none qualifies it returns the first non-null candidate so that, for example,
// an empty record object still reaches BuildRecord and yields a zeroed record.
// A plain "a or b" lookup would instead drop {} and report the record as absent.
func firstPresent(raw map[string]any, keys ...string) any {
	var fallback any
	for _, key := range keys {
		v := raw[key]
		if present(v) {
			return v
		}
		if fallback == nil && v != nil {
			fallback = v
		}
	}
	return fallback
}

func present(v any) bool {
	if m, ok := v.(map[string]any); ok {
		return len(m) > 0
	}
	return !falsy(v)
}

func falsy(v any) bool {
	switch typed := v.(type) {
	case nil:
		return true
	case bool:
		return !typed
	case string:
		return typed == ""
	case json.Number:
		f, err := typed.Float64()
		return err == nil && f == 0
	case float64:
		return typed == 0
	case []any:
		return len(typed) == 0
	default:
		return false
	}
}

// coerceInt converts a JSON scalar to int. ok is false when v is null.
func coerceInt(field string, v any) (n int, ok bool, err error) {
	switch typed := v.(type) {
	case nil:
		return 0, false, nil
	case json.Number:
		return parseInt(field, v, string(typed))
	case string:
		return parseInt(field, v, strings.TrimSpace(typed))
	case float64:
		return fromFloat(field, v, typed)
	case int:
		return typed, true, nil
	case int64:
		return int(typed), true, nil
	default:
		return 0, false, &CoercionError{Field: field, Value: v, Err: errUnsupported}
	}
}

func parseInt(field string, raw any, s string) (int, bool, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, &CoercionError{Field: field, Value: raw, Err: errNotInteger}
	}
	return fromFloat(field, raw, f)
}

// fromFloat accepts integral values only; 82.0 is 82, 82.5 is rejected.
func fromFloat(field string, raw any, f float64) (int, bool, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, false, &CoercionError{Field: field, Value: raw, Err: errNotInteger}
	}
	return int(f), true, nil
}

func asString(v any) string {
	switch typed := v.(type) {
	case string:
		return typed
	case json.Number:
		return typed.String()
	case float64:
		if typed == math.Trunc(typed) {
			return strconv.FormatInt(int64(typed), 10)
		}
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		return ""
	}
}

// validationFailure reports the first violated field path, in sorted order.
func validationFailure(entity string, err error) error {
	field := entity
	if vErr, ok := standings.AsValidationError(err); ok && len(vErr.Fields) > 0 {
		paths := make([]string, 0, len(vErr.Fields))
		for path := range vErr.Fields {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		field = paths[0]
	}
	return &CoercionError{Field: field, Err: err}
}
