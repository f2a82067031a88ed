package balance

// RankingMode selects how player strength is computed when checking
// team balance.
type RankingMode string

const (
	// RankingManual scores players by their two manually entered skill
	// attributes.
	RankingManual RankingMode = "manual"
	// RankingElo scores players by their Elo rating.
	RankingElo RankingMode = "elo"
)

const (
	// DefaultSkillLevel substitutes for an unset skill attribute.
	DefaultSkillLevel = 5
	// DefaultEloRating substitutes for an unset Elo rating.
	DefaultEloRating = 1000
)

// Player is one roster entry as supplied by the caller. The balancer holds
// no state: a fresh, already-filtered list of present players is passed on
// every call.
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	Skill1    int    `json:"skill1"`
	Skill2    int    `json:"skill2"`
	EloRating int    `json:"elo_rating"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
}

// Team is one generated group of players. Order within a team carries no
// meaning.
type Team []Player

// PowerScore returns skill1 + skill2 for manual-mode balancing.
//
// A zero skill value is treated as "not set" and scores as
// DefaultSkillLevel. This conflates an explicit 0 with an absent value; the
// behavior is inherited from historical data and must not change without a
// product decision, since fixing it would shift balancing outcomes.
func PowerScore(p Player) int {
	s1 := p.Skill1
	if s1 == 0 {
		s1 = DefaultSkillLevel
	}
	s2 := p.Skill2
	if s2 == 0 {
		s2 = DefaultSkillLevel
	}
	return s1 + s2
}

// PlayerScore returns the player's strength under the given ranking mode.
func PlayerScore(p Player, mode RankingMode) int {
	if mode == RankingElo {
		if p.EloRating == 0 {
			return DefaultEloRating
		}
		return p.EloRating
	}
	return PowerScore(p)
}

// TeamPower sums player scores for one team.
func TeamPower(team Team, mode RankingMode) int {
	total := 0
	for _, p := range team {
		total += PlayerScore(p, mode)
	}
	return total
}
