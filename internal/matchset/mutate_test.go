package matchset

import (
	"errors"
	"testing"

	"github.com/clubkit/clubkit/internal/balance"
)

func twoTeamMatch() Match {
	return Match{
		ID: "match-1",
		Teams: []balance.Team{
			{{ID: "a"}, {ID: "b"}},
			{{ID: "c"}, {ID: "d"}},
		},
		Winner: NoWinner,
	}
}

func TestSwapAcrossTeams(t *testing.T) {
	original := twoTeamMatch()

	swapped, err := Swap(original, SlotRef{Team: 0, Player: 1}, SlotRef{Team: 1, Player: 0})
	if err != nil {
		t.Fatalf("swap failed: %v", err)
	}
	if swapped.Teams[0][1].ID != "c" || swapped.Teams[1][0].ID != "b" {
		t.Fatalf("players not exchanged: %+v", swapped.Teams)
	}
	if swapped.PlayerCount() != 4 {
		t.Fatalf("swap changed player count to %d", swapped.PlayerCount())
	}
	seen := matchMembership(swapped)
	for id, count := range seen {
		if count != 1 {
			t.Fatalf("player %s appears %d times after swap", id, count)
		}
	}
	// Input must stay untouched.
	if original.Teams[0][1].ID != "b" || original.Teams[1][0].ID != "c" {
		t.Fatalf("swap mutated its input: %+v", original.Teams)
	}
}

func TestSwapSameSlotIsNoOp(t *testing.T) {
	original := twoTeamMatch()
	out, err := Swap(original, SlotRef{Team: 1, Player: 1}, SlotRef{Team: 1, Player: 1})
	if err != nil {
		t.Fatalf("self-swap should be a no-op, got %v", err)
	}
	for i := range original.Teams {
		for j := range original.Teams[i] {
			if out.Teams[i][j].ID != original.Teams[i][j].ID {
				t.Fatalf("self-swap changed slot %d/%d", i, j)
			}
		}
	}
}

func TestSwapOutOfRange(t *testing.T) {
	cases := []struct{ a, b SlotRef }{
		{SlotRef{Team: 2, Player: 0}, SlotRef{Team: 0, Player: 0}},
		{SlotRef{Team: 0, Player: 5}, SlotRef{Team: 1, Player: 0}},
		{SlotRef{Team: 0, Player: 0}, SlotRef{Team: -1, Player: 0}},
		{SlotRef{Team: 0, Player: 0}, SlotRef{Team: 1, Player: -2}},
	}
	for _, tc := range cases {
		if _, err := Swap(twoTeamMatch(), tc.a, tc.b); !errors.Is(err, ErrInvalidMatchReference) {
			t.Fatalf("swap(%+v, %+v): expected ErrInvalidMatchReference, got %v", tc.a, tc.b, err)
		}
	}
}

func TestMoveAppendsToTargetTeam(t *testing.T) {
	original := twoTeamMatch()

	moved, err := Move(original, 0, 0, 1)
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if len(moved.Teams[0]) != 1 || len(moved.Teams[1]) != 3 {
		t.Fatalf("unexpected team sizes after move: %d and %d", len(moved.Teams[0]), len(moved.Teams[1]))
	}
	if moved.Teams[1][2].ID != "a" {
		t.Fatalf("moved player should append to target team, got %+v", moved.Teams[1])
	}
	if len(original.Teams[0]) != 2 {
		t.Fatalf("move mutated its input")
	}
}

func TestMoveWithinSameTeam(t *testing.T) {
	moved, err := Move(twoTeamMatch(), 0, 0, 0)
	if err != nil {
		t.Fatalf("same-team move failed: %v", err)
	}
	if len(moved.Teams[0]) != 2 {
		t.Fatalf("same-team move changed team size to %d", len(moved.Teams[0]))
	}
	// Removal then append reorders: a goes to the back.
	if moved.Teams[0][0].ID != "b" || moved.Teams[0][1].ID != "a" {
		t.Fatalf("unexpected order after same-team move: %+v", moved.Teams[0])
	}
}

func TestMoveOutOfRange(t *testing.T) {
	if _, err := Move(twoTeamMatch(), 0, 0, 7); !errors.Is(err, ErrInvalidMatchReference) {
		t.Fatalf("expected ErrInvalidMatchReference for bad target, got %v", err)
	}
	if _, err := Move(twoTeamMatch(), 3, 0, 0); !errors.Is(err, ErrInvalidMatchReference) {
		t.Fatalf("expected ErrInvalidMatchReference for bad source, got %v", err)
	}
	if _, err := Move(twoTeamMatch(), 0, 9, 1); !errors.Is(err, ErrInvalidMatchReference) {
		t.Fatalf("expected ErrInvalidMatchReference for bad player index, got %v", err)
	}
}
