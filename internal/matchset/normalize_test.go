package matchset

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNormalizeLegacyFlatShape(t *testing.T) {
	raw := json.RawMessage(`[
		[{"id":"a","name":"A","gender":"M","skill1":5,"skill2":5}],
		[{"id":"b","name":"B","gender":"F","skill1":6,"skill2":4}]
	]`)

	set, err := Normalize(raw)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if set.TeamMode != TeamModeMixed {
		t.Fatalf("flat shape should normalize as mixed, got %q", set.TeamMode)
	}
	if len(set.Matches) != 1 {
		t.Fatalf("expected a single match, got %d", len(set.Matches))
	}
	match := set.Matches[0]
	if match.Decided() {
		t.Fatalf("legacy match should have no winner")
	}
	if len(match.Teams) != 2 || match.Teams[0][0].ID != "a" || match.Teams[1][0].ID != "b" {
		t.Fatalf("teams not preserved: %+v", match.Teams)
	}
}

func TestNormalizeLegacySplitShape(t *testing.T) {
	raw := json.RawMessage(`{
		"men": [[{"id":"m1","gender":"M"}],[{"id":"m2","gender":"M"}]],
		"women": [[{"id":"f1","gender":"F"}],[{"id":"f2","gender":"F"}]]
	}`)

	set, err := Normalize(raw)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if set.TeamMode != TeamModeSplit {
		t.Fatalf("expected split mode, got %q", set.TeamMode)
	}
	match := set.Matches[0]
	if len(match.Teams) != 2 {
		t.Fatalf("expected 2 merged teams, got %d", len(match.Teams))
	}
	if match.Teams[0][0].ID != "m1" || match.Teams[0][1].ID != "f1" {
		t.Fatalf("team 0 should merge men[0] and women[0], got %+v", match.Teams[0])
	}
	if match.Teams[1][0].ID != "m2" || match.Teams[1][1].ID != "f2" {
		t.Fatalf("team 1 should merge men[1] and women[1], got %+v", match.Teams[1])
	}
}

func TestNormalizeCurrentShapePassesThrough(t *testing.T) {
	raw := json.RawMessage(`{
		"team_mode": "mixed",
		"matches": [
			{"id":"match-1","teams":[[{"id":"a"}],[{"id":"b"}]],"winner":1},
			{"teams":[[{"id":"a"}],[{"id":"b"}]]}
		]
	}`)

	set, err := Normalize(raw)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if len(set.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(set.Matches))
	}
	if set.Matches[0].Winner != 1 {
		t.Fatalf("declared winner lost in normalization: %d", set.Matches[0].Winner)
	}
	if set.Matches[1].Decided() {
		t.Fatalf("match without winner field should normalize to undecided, got %d", set.Matches[1].Winner)
	}
	if set.Matches[1].ID == "" {
		t.Fatalf("match without id should be assigned one")
	}
}

func TestNormalizeEquivalentShapesAgree(t *testing.T) {
	flat := json.RawMessage(`[[{"id":"m1","gender":"M"},{"id":"f1","gender":"F"}],[{"id":"m2","gender":"M"},{"id":"f2","gender":"F"}]]`)
	split := json.RawMessage(`{"men":[[{"id":"m1","gender":"M"}],[{"id":"m2","gender":"M"}]],"women":[[{"id":"f1","gender":"F"}],[{"id":"f2","gender":"F"}]]}`)
	current := json.RawMessage(`{"team_mode":"mixed","matches":[{"id":"x","teams":[[{"id":"m1","gender":"M"},{"id":"f1","gender":"F"}],[{"id":"m2","gender":"M"},{"id":"f2","gender":"F"}]],"winner":-1}]}`)

	for name, raw := range map[string]json.RawMessage{"flat": flat, "split": split, "current": current} {
		set, err := Normalize(raw)
		if err != nil {
			t.Fatalf("%s: normalize failed: %v", name, err)
		}
		teams := set.Matches[0].Teams
		if len(teams) != 2 {
			t.Fatalf("%s: expected 2 teams, got %d", name, len(teams))
		}
		for i, want := range [][]string{{"m1", "f1"}, {"m2", "f2"}} {
			if len(teams[i]) != 2 || teams[i][0].ID != want[0] || teams[i][1].ID != want[1] {
				t.Fatalf("%s: team %d = %+v, want ids %v", name, i, teams[i], want)
			}
		}
	}
}

func TestNormalizeRejectsUnknownShapes(t *testing.T) {
	cases := map[string]string{
		"empty":          ``,
		"scalar":         `42`,
		"string":         `"teams"`,
		"foreign object": `{"rounds": []}`,
		"broken json":    `{"matches": [`,
		"bad flat":       `["not a team"]`,
	}
	for name, raw := range cases {
		_, err := Normalize(json.RawMessage(raw))
		if !errors.Is(err, ErrUnrecognizedShape) {
			t.Fatalf("%s: expected ErrUnrecognizedShape, got %v", name, err)
		}
	}
}
