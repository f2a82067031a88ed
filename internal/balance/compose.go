package balance

import "math/rand"

// SplitTeams holds the two independent team sets of a split compose. Each
// group plays its own parallel games.
type SplitTeams struct {
	Men   []Team `json:"men"`
	Women []Team `json:"women"`
}

// SplitByGender groups players into men ("M") and women (every other
// value). Pooling all non-"M" designations together is a documented
// simplification of the balancing algorithm, not a general gender model.
func SplitByGender(players []Player) (men, women []Player) {
	for _, p := range players {
		if p.Gender == "M" {
			men = append(men, p)
		} else {
			women = append(women, p)
		}
	}
	return men, women
}

// ComposeMixed partitions men and women independently, then merges group
// i's team into team i by concatenation, so both genders are distributed
// evenly across the same teams.
//
// A gender group smaller than teamCount simply contributes no players; a
// mixed match with zero women present is still a valid match.
func ComposeMixed(players []Player, teamCount int, balanceMode BalanceMode, maxAttempts int, rankingMode RankingMode, rng *rand.Rand) []Team {
	men, women := SplitByGender(players)

	menTeams := partitionOrEmpty(men, teamCount, balanceMode, maxAttempts, rankingMode, rng)
	womenTeams := partitionOrEmpty(women, teamCount, balanceMode, maxAttempts, rankingMode, rng)

	teams := make([]Team, teamCount)
	for i := 0; i < teamCount; i++ {
		team := Team{}
		if i < len(menTeams) {
			team = append(team, menTeams[i]...)
		}
		if i < len(womenTeams) {
			team = append(team, womenTeams[i]...)
		}
		teams[i] = team
	}
	return teams
}

// ComposeSplit partitions men and women independently and returns the two
// team sets unmerged.
func ComposeSplit(players []Player, teamCount int, balanceMode BalanceMode, maxAttempts int, rankingMode RankingMode, rng *rand.Rand) SplitTeams {
	men, women := SplitByGender(players)
	return SplitTeams{
		Men:   partitionOrEmpty(men, teamCount, balanceMode, maxAttempts, rankingMode, rng),
		Women: partitionOrEmpty(women, teamCount, balanceMode, maxAttempts, rankingMode, rng),
	}
}

// partitionOrEmpty treats an undersized gender group as contributing no
// teams rather than failing the whole compose.
func partitionOrEmpty(players []Player, teamCount int, balanceMode BalanceMode, maxAttempts int, rankingMode RankingMode, rng *rand.Rand) []Team {
	teams, err := Partition(players, teamCount, balanceMode, maxAttempts, rankingMode, rng)
	if err != nil {
		return nil
	}
	return teams
}
