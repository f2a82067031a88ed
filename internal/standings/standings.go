// Package standings ranks a club's members from their accumulated match
// records.
package standings

import (
	"context"
	"errors"
	"sort"

	dbgen "github.com/clubkit/clubkit/internal/db/generated"
	"github.com/clubkit/clubkit/internal/elo"
)

type MemberStanding struct {
	MemberID      string  `json:"memberId"`
	Name          string  `json:"name"`
	MatchesPlayed int     `json:"matchesPlayed"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinPercentage float64 `json:"winPercentage"`
	EloRating     int     `json:"eloRating"`
}

// CalculateStandings ranks every member of the club. When the club uses
// Elo ranking the order is rating first; otherwise wins lead and the win
// percentage breaks ties, so a 5-1 record outranks 5-4. Name order makes
// the result deterministic.
func CalculateStandings(ctx context.Context, q *dbgen.Queries, clubID string, useElo bool) ([]MemberStanding, error) {
	if q == nil {
		return nil, errors.New("queries are required")
	}
	if clubID == "" {
		return nil, errors.New("club ID is required")
	}

	members, err := q.ListMembersByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	standings := make([]MemberStanding, 0, len(members))
	for _, member := range members {
		standings = append(standings, standingForMember(member))
	}
	sortStandings(standings, useElo)
	return standings, nil
}

func standingForMember(member dbgen.Member) MemberStanding {
	wins := int(member.Wins)
	losses := int(member.Losses)
	played := wins + losses

	pct := 0.0
	if played > 0 {
		pct = float64(wins) / float64(played)
	}

	rating := int(member.EloRating)
	if rating == 0 {
		rating = elo.DefaultRating
	}

	return MemberStanding{
		MemberID:      member.ID,
		Name:          member.FullName,
		MatchesPlayed: played,
		Wins:          wins,
		Losses:        losses,
		WinPercentage: pct,
		EloRating:     rating,
	}
}

func sortStandings(standings []MemberStanding, useElo bool) {
	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if useElo {
			if a.EloRating != b.EloRating {
				return a.EloRating > b.EloRating
			}
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.WinPercentage != b.WinPercentage {
			return a.WinPercentage > b.WinPercentage
		}
		return a.Name < b.Name
	})
}
