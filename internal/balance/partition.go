package balance

import (
	"errors"
	"math"
	"math/rand"
	"time"
)

// BalanceMode names a balance tolerance preset.
type BalanceMode string

const (
	// BalanceStrict keeps every team within 5% of the mean team power.
	BalanceStrict BalanceMode = "strict"
	// BalanceFlexible keeps every team within 15% of the mean team power.
	BalanceFlexible BalanceMode = "flexible"
	// BalanceRandom skips balance checking entirely.
	BalanceRandom BalanceMode = "random"
)

const (
	ToleranceStrict   = 0.05
	ToleranceFlexible = 0.15
	ToleranceRandom   = 1.0

	// DefaultMaxAttempts bounds the shuffle-and-check retry loop.
	DefaultMaxAttempts = 100
)

var (
	// ErrInsufficientPlayers means the pool is smaller than the requested
	// team count. The partitioner never silently returns fewer teams.
	ErrInsufficientPlayers = errors.New("not enough players for the requested team count")
	// ErrInvalidTeamCount means a team count below one was requested.
	ErrInvalidTeamCount = errors.New("team count must be at least one")
)

// Tolerance returns the fractional deviation allowed by the mode. Unknown
// modes fall back to the flexible preset.
func (m BalanceMode) Tolerance() float64 {
	switch m {
	case BalanceStrict:
		return ToleranceStrict
	case BalanceRandom:
		return ToleranceRandom
	default:
		return ToleranceFlexible
	}
}

// Label returns a short human-readable description of the mode.
func (m BalanceMode) Label() string {
	switch m {
	case BalanceStrict:
		return "Strict (5%)"
	case BalanceRandom:
		return "Random"
	default:
		return "Flexible (15%)"
	}
}

// Partition splits players into teamCount teams by round-robin assignment
// over a shuffled order. In strict and flexible modes it reshuffles up to
// maxAttempts times looking for an assignment where every team's total
// power is within the mode's tolerance of the mean, then falls back to the
// last attempt unconditionally; balance is advisory, not guaranteed, for
// small or skewed pools. In random mode a single shuffle-and-assign pass is
// performed with no balance check.
//
// rng may be nil, in which case a time-seeded source is used. Tests inject
// a seeded source to pin the shuffle.
func Partition(players []Player, teamCount int, balanceMode BalanceMode, maxAttempts int, rankingMode RankingMode, rng *rand.Rand) ([]Team, error) {
	if teamCount < 1 {
		return nil, ErrInvalidTeamCount
	}
	if len(players) < teamCount {
		return nil, ErrInsufficientPlayers
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}

	if balanceMode == BalanceRandom {
		return assignRoundRobin(shuffled(players, rng), teamCount), nil
	}

	tolerance := balanceMode.Tolerance()
	var teams []Team
	for attempt := 0; attempt < maxAttempts; attempt++ {
		teams = assignRoundRobin(shuffled(players, rng), teamCount)
		if balanced(teams, tolerance, rankingMode) {
			return teams, nil
		}
	}
	return teams, nil
}

// shuffled returns a Fisher-Yates shuffled copy, leaving the input alone.
func shuffled(players []Player, rng *rand.Rand) []Player {
	out := make([]Player, len(players))
	copy(out, players)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func assignRoundRobin(players []Player, teamCount int) []Team {
	teams := make([]Team, teamCount)
	for i := range teams {
		teams[i] = Team{}
	}
	for i, p := range players {
		idx := i % teamCount
		teams[idx] = append(teams[idx], p)
	}
	return teams
}

// balanced reports whether every team's total power is within tolerance of
// the mean of all team totals in this assignment. A zero mean (all scores
// zero) trivially satisfies any tolerance.
func balanced(teams []Team, tolerance float64, mode RankingMode) bool {
	if len(teams) == 0 {
		return true
	}
	sum := 0
	powers := make([]int, len(teams))
	for i, team := range teams {
		powers[i] = TeamPower(team, mode)
		sum += powers[i]
	}
	mean := float64(sum) / float64(len(teams))
	for _, power := range powers {
		if math.Abs(float64(power)-mean) > mean*tolerance {
			return false
		}
	}
	return true
}
