package matchset

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/clubkit/clubkit/internal/balance"
)

func sessionRoster() []balance.Player {
	return []balance.Player{
		{ID: "m1", Gender: "M", Skill1: 8, Skill2: 7},
		{ID: "m2", Gender: "M", Skill1: 6, Skill2: 6},
		{ID: "m3", Gender: "M", Skill1: 5, Skill2: 4},
		{ID: "m4", Gender: "M", Skill1: 7, Skill2: 8},
		{ID: "f1", Gender: "F", Skill1: 7, Skill2: 6},
		{ID: "f2", Gender: "F", Skill1: 5, Skill2: 5},
		{ID: "f3", Gender: "F", Skill1: 8, Skill2: 6},
		{ID: "f4", Gender: "F", Skill1: 6, Skill2: 5},
	}
}

func matchMembership(m Match) map[string]int {
	seen := map[string]int{}
	for _, team := range m.Teams {
		for _, p := range team {
			seen[p.ID]++
		}
	}
	return seen
}

func TestGenerateMixedMatchSet(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	set, err := Generate(sessionRoster(), 2, 3, balance.BalanceFlexible, TeamModeMixed, balance.RankingManual, 100, rng)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if set.TeamMode != TeamModeMixed {
		t.Fatalf("expected mixed team mode, got %q", set.TeamMode)
	}
	if len(set.Matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(set.Matches))
	}
	for i, match := range set.Matches {
		if match.ID == "" {
			t.Fatalf("match %d has no id", i)
		}
		if match.Decided() {
			t.Fatalf("match %d should start with no winner", i)
		}
		if len(match.Teams) != 2 {
			t.Fatalf("match %d has %d teams, want 2", i, len(match.Teams))
		}
		seen := matchMembership(match)
		if len(seen) != 8 {
			t.Fatalf("match %d covers %d players, want 8", i, len(seen))
		}
	}
}

func TestGenerateSplitStoresMergedTeams(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	set, err := Generate(sessionRoster(), 2, 1, balance.BalanceFlexible, TeamModeSplit, balance.RankingManual, 100, rng)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if set.TeamMode != TeamModeSplit {
		t.Fatalf("expected split team mode, got %q", set.TeamMode)
	}
	match := set.Matches[0]
	if len(match.Teams) != 2 {
		t.Fatalf("split match should store 2 merged teams, got %d", len(match.Teams))
	}
	// 4 men and 4 women round-robin into 2 men and 2 women per merged team.
	for i, team := range match.Teams {
		if len(team) != 4 {
			t.Fatalf("merged team %d has %d players, want 4", i, len(team))
		}
	}
}

func TestGenerateInsufficientPlayers(t *testing.T) {
	_, err := Generate(sessionRoster()[:3], 4, 1, balance.BalanceFlexible, TeamModeMixed, balance.RankingManual, 100, nil)
	if !errors.Is(err, balance.ErrInsufficientPlayers) {
		t.Fatalf("expected ErrInsufficientPlayers, got %v", err)
	}
}

func TestGenerateRejectsZeroMatches(t *testing.T) {
	_, err := Generate(sessionRoster(), 2, 0, balance.BalanceFlexible, TeamModeMixed, balance.RankingManual, 100, nil)
	if !errors.Is(err, ErrInvalidMatchCount) {
		t.Fatalf("expected ErrInvalidMatchCount, got %v", err)
	}
}
