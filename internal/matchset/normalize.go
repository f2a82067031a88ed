package matchset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/clubkit/clubkit/internal/balance"
)

// ErrUnrecognizedShape means a persisted generated-teams blob matches none
// of the known encodings. This is data corruption and is surfaced loudly,
// never coerced.
var ErrUnrecognizedShape = errors.New("unrecognized generated teams shape")

// Normalize detects which persisted encoding a generated-teams blob uses
// and up-converts it to the current MatchSet shape. Three encodings exist:
//
//   - a bare JSON array of teams: one mixed match, from before match sets
//   - an object with "men"/"women" team lists: one split match
//   - an object with a "matches" array: the current shape, passed through
//
// Detection is structural and total over those three; anything else returns
// ErrUnrecognizedShape.
func Normalize(raw json.RawMessage) (MatchSet, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return MatchSet{}, fmt.Errorf("%w: empty value", ErrUnrecognizedShape)
	}

	if trimmed[0] == '[' {
		return normalizeFlat(trimmed)
	}
	if trimmed[0] != '{' {
		return MatchSet{}, fmt.Errorf("%w: not an array or object", ErrUnrecognizedShape)
	}

	var probe struct {
		Matches json.RawMessage `json:"matches"`
		Men     json.RawMessage `json:"men"`
		Women   json.RawMessage `json:"women"`
	}
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return MatchSet{}, fmt.Errorf("%w: %v", ErrUnrecognizedShape, err)
	}

	switch {
	case probe.Matches != nil:
		return normalizeCurrent(trimmed)
	case probe.Men != nil || probe.Women != nil:
		return normalizeSplit(trimmed)
	default:
		return MatchSet{}, fmt.Errorf("%w: object has neither matches nor men/women fields", ErrUnrecognizedShape)
	}
}

// normalizeFlat wraps a legacy bare team list as one mixed match.
func normalizeFlat(raw []byte) (MatchSet, error) {
	var teams []balance.Team
	if err := json.Unmarshal(raw, &teams); err != nil {
		return MatchSet{}, fmt.Errorf("%w: %v", ErrUnrecognizedShape, err)
	}
	return MatchSet{
		Matches: []Match{{
			ID:     uuid.New().String(),
			Teams:  teams,
			Winner: NoWinner,
		}},
		TeamMode: TeamModeMixed,
	}, nil
}

// normalizeSplit converts a legacy {men, women} object into one split
// match, merging the per-index team pairs the same way Generate stores
// split matches.
func normalizeSplit(raw []byte) (MatchSet, error) {
	var legacy balance.SplitTeams
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return MatchSet{}, fmt.Errorf("%w: %v", ErrUnrecognizedShape, err)
	}

	teamCount := len(legacy.Men)
	if len(legacy.Women) > teamCount {
		teamCount = len(legacy.Women)
	}
	return MatchSet{
		Matches: []Match{{
			ID:     uuid.New().String(),
			Teams:  mergeSplit(legacy, teamCount),
			Winner: NoWinner,
		}},
		TeamMode: TeamModeSplit,
	}, nil
}

func normalizeCurrent(raw []byte) (MatchSet, error) {
	var set MatchSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return MatchSet{}, fmt.Errorf("%w: %v", ErrUnrecognizedShape, err)
	}
	if set.TeamMode == "" {
		set.TeamMode = TeamModeMixed
	}
	for i := range set.Matches {
		if set.Matches[i].ID == "" {
			set.Matches[i].ID = uuid.New().String()
		}
	}
	return set, nil
}
