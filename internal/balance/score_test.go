package balance

import "testing"

func TestPowerScoreDefaultsUnsetSkills(t *testing.T) {
	p := Player{ID: "1"}
	if got := PowerScore(p); got != 2*DefaultSkillLevel {
		t.Fatalf("expected %d for unset skills, got %d", 2*DefaultSkillLevel, got)
	}

	p = Player{ID: "2", Skill1: 7}
	if got := PowerScore(p); got != 7+DefaultSkillLevel {
		t.Fatalf("expected %d, got %d", 7+DefaultSkillLevel, got)
	}

	p = Player{ID: "3", Skill1: 3, Skill2: 9}
	if got := PowerScore(p); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
}

func TestPlayerScoreEloMode(t *testing.T) {
	p := Player{ID: "1", Skill1: 10, Skill2: 10, EloRating: 1200}
	if got := PlayerScore(p, RankingElo); got != 1200 {
		t.Fatalf("expected elo 1200, got %d", got)
	}
	if got := PlayerScore(p, RankingManual); got != 20 {
		t.Fatalf("expected manual 20, got %d", got)
	}

	unrated := Player{ID: "2"}
	if got := PlayerScore(unrated, RankingElo); got != DefaultEloRating {
		t.Fatalf("expected default elo %d, got %d", DefaultEloRating, got)
	}
}

func TestTeamPowerSums(t *testing.T) {
	team := Team{
		{ID: "1", Skill1: 4, Skill2: 6},
		{ID: "2", Skill1: 2, Skill2: 3},
	}
	if got := TeamPower(team, RankingManual); got != 15 {
		t.Fatalf("expected 15, got %d", got)
	}
}
