package matchset

import (
	"errors"

	"github.com/clubkit/clubkit/internal/balance"
)

// ErrInvalidMatchReference means a swap or move referenced a team or player
// index outside the match. The operation halts without touching the match.
var ErrInvalidMatchReference = errors.New("team or player index out of range")

// SlotRef locates one player within a match.
type SlotRef struct {
	Team   int `json:"team"`
	Player int `json:"player"`
}

// Swap exchanges the players at two slots, possibly across teams, and
// returns a new Match. The input match is never mutated; teams are copied
// before editing so callers can keep the old value. Swapping a slot with
// itself is a no-op and returns an unchanged copy.
func Swap(m Match, a, b SlotRef) (Match, error) {
	if !validSlot(m, a) || !validSlot(m, b) {
		return Match{}, ErrInvalidMatchReference
	}
	out := cloneMatch(m)
	if a == b {
		return out, nil
	}
	out.Teams[a.Team][a.Player], out.Teams[b.Team][b.Player] = out.Teams[b.Team][b.Player], out.Teams[a.Team][a.Player]
	return out, nil
}

// Move removes the player at playerIndex from the source team and appends
// them to the target team, returning a new Match. Moving within the same
// team degrades to removing and re-appending; team order carries no
// meaning, so that is a harmless no-op.
func Move(m Match, fromTeam, playerIndex, toTeam int) (Match, error) {
	if !validSlot(m, SlotRef{Team: fromTeam, Player: playerIndex}) {
		return Match{}, ErrInvalidMatchReference
	}
	if toTeam < 0 || toTeam >= len(m.Teams) {
		return Match{}, ErrInvalidMatchReference
	}
	out := cloneMatch(m)
	player := out.Teams[fromTeam][playerIndex]
	out.Teams[fromTeam] = append(out.Teams[fromTeam][:playerIndex], out.Teams[fromTeam][playerIndex+1:]...)
	out.Teams[toTeam] = append(out.Teams[toTeam], player)
	return out, nil
}

func validSlot(m Match, ref SlotRef) bool {
	if ref.Team < 0 || ref.Team >= len(m.Teams) {
		return false
	}
	return ref.Player >= 0 && ref.Player < len(m.Teams[ref.Team])
}

func cloneMatch(m Match) Match {
	out := m
	out.Teams = make([]balance.Team, 0, len(m.Teams))
	for _, team := range m.Teams {
		copied := make(balance.Team, len(team))
		copy(copied, team)
		out.Teams = append(out.Teams, copied)
	}
	return out
}
