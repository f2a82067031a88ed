// Package elo computes rating updates after a declared match result. It is
// pure computation: the caller persists whatever it returns.
package elo

import "math"

const (
	// KFactor controls how aggressively ratings move after one result.
	KFactor = 32
	// DefaultRating is the starting rating for players without one.
	DefaultRating = 1000
)

// Rated is the minimal player view the rating engine needs.
type Rated struct {
	ID     string `json:"id"`
	Rating int    `json:"elo_rating"`
}

// Update records one player's rating change. It is never applied in place;
// persistence belongs to the caller.
type Update struct {
	MemberID  string `json:"member_id"`
	OldRating int    `json:"old_rating"`
	NewRating int    `json:"new_rating"`
}

// ExpectedScore returns the win probability of a rating against an
// opponent rating using the standard logistic Elo curve.
func ExpectedScore(rating, opponentRating float64) float64 {
	return 1 / (1 + math.Pow(10, (opponentRating-rating)/400))
}

// NewRating applies one result to a rating, rounded to the nearest integer.
func NewRating(current int, expected, actual float64) int {
	return int(math.Round(float64(current) + KFactor*(actual-expected)))
}

// TeamAverage returns the arithmetic mean rating of a team. An empty team
// averages to DefaultRating, as does any player with no rating set.
func TeamAverage(team []Rated) float64 {
	if len(team) == 0 {
		return DefaultRating
	}
	sum := 0
	for _, p := range team {
		sum += ratingOrDefault(p)
	}
	return float64(sum) / float64(len(team))
}

// ComputeUpdates returns rating updates for every player after a match.
// The winning team's players score 1.0, everyone else 0.0; draws are not
// supported.
//
// Each team's expected score is computed against the mean of all other
// teams' average ratings. For more than two teams this is a deliberate
// approximation, not a rigorous multi-player rating system: the whole team
// shares one expected score, so teammates move by the same delta magnitude
// apart from rounding of differing starting ratings.
//
// Fewer than two teams or an out-of-range winner index yields nil, not an
// error; callers may probe before validating their own state.
func ComputeUpdates(teams [][]Rated, winningTeamIndex int) []Update {
	if len(teams) < 2 || winningTeamIndex < 0 || winningTeamIndex >= len(teams) {
		return nil
	}

	averages := make([]float64, len(teams))
	for i, team := range teams {
		averages[i] = TeamAverage(team)
	}

	var updates []Update
	for teamIdx, team := range teams {
		actual := 0.0
		if teamIdx == winningTeamIndex {
			actual = 1.0
		}

		opponentSum := 0.0
		for i, avg := range averages {
			if i != teamIdx {
				opponentSum += avg
			}
		}
		opponentAverage := opponentSum / float64(len(teams)-1)
		expected := ExpectedScore(averages[teamIdx], opponentAverage)

		for _, p := range team {
			current := ratingOrDefault(p)
			updates = append(updates, Update{
				MemberID:  p.ID,
				OldRating: current,
				NewRating: NewRating(current, expected, actual),
			})
		}
	}
	return updates
}

func ratingOrDefault(p Rated) int {
	if p.Rating == 0 {
		return DefaultRating
	}
	return p.Rating
}
