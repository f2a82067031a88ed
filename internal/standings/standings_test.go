package standings

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"

	dbgen "github.com/clubkit/clubkit/internal/db/generated"
	"github.com/clubkit/clubkit/internal/testutil"
)

func seedClub(t *testing.T, q *dbgen.Queries, useElo bool) string {
	t.Helper()
	club, err := q.CreateClub(context.Background(), dbgen.CreateClubParams{
		ID:            uuid.New().String(),
		Name:          "Riverside Ultimate",
		Sport:         "ultimate_frisbee",
		UseEloRanking: useElo,
	})
	if err != nil {
		t.Fatalf("create club: %v", err)
	}
	return club.ID
}

func seedMember(t *testing.T, q *dbgen.Queries, clubID, name string, wins, losses, elo int64) string {
	t.Helper()
	member, err := q.CreateMember(context.Background(), dbgen.CreateMemberParams{
		ID:        uuid.New().String(),
		ClubID:    clubID,
		FullName:  name,
		Email:     sql.NullString{},
		Gender:    "M",
		Skill1:    5,
		Skill2:    5,
		EloRating: elo,
	})
	if err != nil {
		t.Fatalf("create member %s: %v", name, err)
	}
	if err := q.UpdateMemberRecord(context.Background(), dbgen.UpdateMemberRecordParams{
		Wins:      wins,
		Losses:    losses,
		EloRating: elo,
		ID:        member.ID,
	}); err != nil {
		t.Fatalf("set record for %s: %v", name, err)
	}
	return member.ID
}

func TestCalculateStandingsByWins(t *testing.T) {
	database := testutil.NewTestDB(t)
	q := database.Queries
	clubID := seedClub(t, q, false)

	seedMember(t, q, clubID, "Casey", 5, 4, 1100)
	seedMember(t, q, clubID, "Alex", 5, 1, 1000)
	seedMember(t, q, clubID, "Robin", 7, 2, 950)

	standings, err := CalculateStandings(context.Background(), q, clubID, false)
	if err != nil {
		t.Fatalf("calculate standings: %v", err)
	}
	if len(standings) != 3 {
		t.Fatalf("expected 3 standings, got %d", len(standings))
	}

	// Robin leads on wins; Alex beats Casey on win percentage at equal wins.
	want := []string{"Robin", "Alex", "Casey"}
	for i, name := range want {
		if standings[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, standings[i].Name)
		}
	}
	if standings[1].WinPercentage <= standings[2].WinPercentage {
		t.Errorf("expected Alex's win percentage above Casey's, got %.3f vs %.3f",
			standings[1].WinPercentage, standings[2].WinPercentage)
	}
}

func TestCalculateStandingsByElo(t *testing.T) {
	database := testutil.NewTestDB(t)
	q := database.Queries
	clubID := seedClub(t, q, true)

	seedMember(t, q, clubID, "Casey", 9, 0, 1050)
	seedMember(t, q, clubID, "Alex", 2, 5, 1200)

	standings, err := CalculateStandings(context.Background(), q, clubID, true)
	if err != nil {
		t.Fatalf("calculate standings: %v", err)
	}
	if standings[0].Name != "Alex" {
		t.Errorf("expected Elo leader Alex first, got %s", standings[0].Name)
	}
}

func TestCalculateStandingsUnratedDefaults(t *testing.T) {
	database := testutil.NewTestDB(t)
	q := database.Queries
	clubID := seedClub(t, q, true)

	seedMember(t, q, clubID, "Alex", 0, 0, 0)

	standings, err := CalculateStandings(context.Background(), q, clubID, true)
	if err != nil {
		t.Fatalf("calculate standings: %v", err)
	}
	if standings[0].EloRating != 1000 {
		t.Errorf("expected default rating 1000, got %d", standings[0].EloRating)
	}
	if standings[0].MatchesPlayed != 0 || standings[0].WinPercentage != 0 {
		t.Errorf("expected empty record, got %+v", standings[0])
	}
}

func TestCalculateStandingsRequiresClub(t *testing.T) {
	database := testutil.NewTestDB(t)

	if _, err := CalculateStandings(context.Background(), database.Queries, "", false); err == nil {
		t.Fatal("expected error for missing club ID")
	}
	if _, err := CalculateStandings(context.Background(), nil, "club", false); err == nil {
		t.Fatal("expected error for nil queries")
	}
}
