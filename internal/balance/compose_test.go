package balance

import (
	"math/rand"
	"testing"
)

func mixedRoster() []Player {
	return []Player{
		{ID: "m1", Gender: "M", Skill1: 8, Skill2: 7},
		{ID: "m2", Gender: "M", Skill1: 6, Skill2: 6},
		{ID: "m3", Gender: "M", Skill1: 5, Skill2: 4},
		{ID: "m4", Gender: "M", Skill1: 7, Skill2: 8},
		{ID: "m5", Gender: "M", Skill1: 4, Skill2: 5},
		{ID: "m6", Gender: "M", Skill1: 6, Skill2: 7},
		{ID: "f1", Gender: "F", Skill1: 7, Skill2: 6},
		{ID: "f2", Gender: "F", Skill1: 5, Skill2: 5},
		{ID: "f3", Gender: "F", Skill1: 8, Skill2: 6},
		{ID: "f4", Gender: "X", Skill1: 6, Skill2: 5},
	}
}

func TestSplitByGenderPoolsNonMenTogether(t *testing.T) {
	men, women := SplitByGender(mixedRoster())
	if len(men) != 6 {
		t.Fatalf("expected 6 men, got %d", len(men))
	}
	if len(women) != 4 {
		t.Fatalf("expected 4 in the women group (F and X pooled), got %d", len(women))
	}
	for _, p := range women {
		if p.Gender == "M" {
			t.Fatalf("player %s grouped incorrectly", p.ID)
		}
	}
}

func TestComposeMixedDistributesBothGenders(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	teams := ComposeMixed(mixedRoster(), 2, BalanceFlexible, 100, RankingManual, rng)

	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}
	seen := membership(teams)
	if len(seen) != 10 {
		t.Fatalf("expected all 10 players placed, got %d", len(seen))
	}
	// Round-robin over 6 men and 4 women puts 3 men and 2 women on each team.
	for i, team := range teams {
		menCount := 0
		for _, p := range team {
			if p.Gender == "M" {
				menCount++
			}
		}
		if menCount != 3 || len(team)-menCount != 2 {
			t.Fatalf("team %d has %d men and %d women, want 3 and 2", i, menCount, len(team)-menCount)
		}
	}
}

func TestComposeMixedOddGendersFrontLoadTeamZero(t *testing.T) {
	// Each gender group round-robins from team 0, so 3 men and 3 women over
	// two teams both put their extra player on team 0, giving a 4/2 merge.
	rng := rand.New(rand.NewSource(11))
	roster := []Player{
		{ID: "m1", Gender: "M", Skill1: 5, Skill2: 5},
		{ID: "m2", Gender: "M", Skill1: 6, Skill2: 6},
		{ID: "m3", Gender: "M", Skill1: 7, Skill2: 7},
		{ID: "f1", Gender: "F", Skill1: 5, Skill2: 5},
		{ID: "f2", Gender: "F", Skill1: 6, Skill2: 6},
		{ID: "f3", Gender: "F", Skill1: 7, Skill2: 7},
	}

	teams := ComposeMixed(roster, 2, BalanceFlexible, 100, RankingManual, rng)
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}
	if len(teams[0]) != 4 || len(teams[1]) != 2 {
		t.Fatalf("expected team sizes 4 and 2, got %d and %d", len(teams[0]), len(teams[1]))
	}
	if len(membership(teams)) != 6 {
		t.Fatalf("expected all 6 players placed, got %d", len(membership(teams)))
	}
}

func TestComposeMixedWithNoWomenPresent(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	menOnly := []Player{
		{ID: "m1", Gender: "M", Skill1: 5, Skill2: 5},
		{ID: "m2", Gender: "M", Skill1: 6, Skill2: 6},
		{ID: "m3", Gender: "M", Skill1: 7, Skill2: 7},
		{ID: "m4", Gender: "M", Skill1: 4, Skill2: 4},
	}

	teams := ComposeMixed(menOnly, 2, BalanceFlexible, 100, RankingManual, rng)
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}
	if got := len(teams[0]) + len(teams[1]); got != 4 {
		t.Fatalf("expected 4 players placed, got %d", got)
	}
}

func TestComposeMixedUndersizedGroupContributesNothing(t *testing.T) {
	// One woman cannot split across three teams; the men still partition and
	// the compose must not fail.
	rng := rand.New(rand.NewSource(6))
	roster := []Player{
		{ID: "m1", Gender: "M", Skill1: 5, Skill2: 5},
		{ID: "m2", Gender: "M", Skill1: 6, Skill2: 6},
		{ID: "m3", Gender: "M", Skill1: 7, Skill2: 7},
		{ID: "f1", Gender: "F", Skill1: 5, Skill2: 5},
	}

	teams := ComposeMixed(roster, 3, BalanceFlexible, 100, RankingManual, rng)
	if len(teams) != 3 {
		t.Fatalf("expected 3 teams, got %d", len(teams))
	}
	seen := membership(teams)
	if len(seen) != 3 {
		t.Fatalf("expected only the 3 men placed, got %d players", len(seen))
	}
	if _, ok := seen["f1"]; ok {
		t.Fatalf("undersized group should contribute no players")
	}
}

func TestComposeSplitKeepsGroupsSeparate(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	split := ComposeSplit(mixedRoster(), 2, BalanceFlexible, 100, RankingManual, rng)

	if len(split.Men) != 2 || len(split.Women) != 2 {
		t.Fatalf("expected 2 teams per group, got %d men / %d women", len(split.Men), len(split.Women))
	}
	for _, team := range split.Men {
		for _, p := range team {
			if p.Gender != "M" {
				t.Fatalf("player %s leaked into the men's bracket", p.ID)
			}
		}
	}
	for _, team := range split.Women {
		for _, p := range team {
			if p.Gender == "M" {
				t.Fatalf("player %s leaked into the women's bracket", p.ID)
			}
		}
	}
}

func TestEndToEndMixedFlexibleTerminates(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	teams := ComposeMixed(mixedRoster(), 2, BalanceFlexible, 100, RankingManual, rng)

	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}
	seen := membership(teams)
	if len(seen) != 10 {
		t.Fatalf("expected 10 players covered, got %d", len(seen))
	}
	for id, count := range seen {
		if count != 1 {
			t.Fatalf("player %s placed %d times", id, count)
		}
	}
}
