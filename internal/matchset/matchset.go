// Package matchset generates and edits the team assignments stored for one
// club session: a set of independent matches plus the team-composition mode
// that produced them.
package matchset

import (
	"encoding/json"
	"errors"
	"math/rand"

	"github.com/google/uuid"

	"github.com/clubkit/clubkit/internal/balance"
)

// TeamMode selects how genders are composed into teams.
type TeamMode string

const (
	// TeamModeMixed interleaves men and women into shared teams.
	TeamModeMixed TeamMode = "mixed"
	// TeamModeSplit generates men's and women's teams independently.
	TeamModeSplit TeamMode = "split"
)

// NoWinner marks a match whose result has not been declared.
const NoWinner = -1

// ErrInvalidMatchCount means fewer than one match was requested.
var ErrInvalidMatchCount = errors.New("match count must be at least one")

// Match is one set of teams plus an optional declared winner. Once a winner
// is declared the match is final; there is no un-declaring.
type Match struct {
	ID     string         `json:"id"`
	Teams  []balance.Team `json:"teams"`
	Winner int            `json:"winner"`
}

// MatchSet is the generated-teams artifact persisted for a session.
type MatchSet struct {
	Matches  []Match  `json:"matches"`
	TeamMode TeamMode `json:"team_mode"`
}

// UnmarshalJSON defaults Winner to NoWinner so a stored match without a
// declared result does not decode as "team 0 won".
func (m *Match) UnmarshalJSON(data []byte) error {
	type alias Match
	aux := alias{Winner: NoWinner}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*m = Match(aux)
	return nil
}

// Decided reports whether the match has a declared winner.
func (m Match) Decided() bool {
	return m.Winner != NoWinner
}

// PlayerCount returns the total number of players across all teams.
func (m Match) PlayerCount() int {
	n := 0
	for _, team := range m.Teams {
		n += len(team)
	}
	return n
}

// Generate composes matchCount independent matches from the present
// players. Every match reshuffles from scratch; nothing prevents two
// matches from coming out identical beyond the odds of the shuffle itself.
//
// In split mode the per-index men's and women's teams are merged into one
// combined team entry so every match stores a uniform flat team list;
// separating them again for display is the caller's concern.
func Generate(players []balance.Player, teamCount, matchCount int, balanceMode balance.BalanceMode, teamMode TeamMode, rankingMode balance.RankingMode, maxAttempts int, rng *rand.Rand) (MatchSet, error) {
	if matchCount < 1 {
		return MatchSet{}, ErrInvalidMatchCount
	}
	if teamCount < 1 {
		return MatchSet{}, balance.ErrInvalidTeamCount
	}
	if len(players) < teamCount {
		return MatchSet{}, balance.ErrInsufficientPlayers
	}

	set := MatchSet{
		Matches:  make([]Match, 0, matchCount),
		TeamMode: teamMode,
	}
	for i := 0; i < matchCount; i++ {
		var teams []balance.Team
		if teamMode == TeamModeSplit {
			split := balance.ComposeSplit(players, teamCount, balanceMode, maxAttempts, rankingMode, rng)
			teams = mergeSplit(split, teamCount)
		} else {
			teams = balance.ComposeMixed(players, teamCount, balanceMode, maxAttempts, rankingMode, rng)
		}
		set.Matches = append(set.Matches, Match{
			ID:     uuid.New().String(),
			Teams:  teams,
			Winner: NoWinner,
		})
	}
	return set, nil
}

// mergeSplit concatenates the per-index men's and women's teams into the
// shared storage shape.
func mergeSplit(split balance.SplitTeams, teamCount int) []balance.Team {
	teams := make([]balance.Team, teamCount)
	for i := 0; i < teamCount; i++ {
		team := balance.Team{}
		if i < len(split.Men) {
			team = append(team, split.Men[i]...)
		}
		if i < len(split.Women) {
			team = append(team, split.Women[i]...)
		}
		teams[i] = team
	}
	return teams
}
