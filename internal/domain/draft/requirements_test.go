package draft

import (
	"errors"
	"testing"

	"github.com/riskibarqy/mockmaster/internal/domain/player"
)

func TestRequirementsFor_Table(t *testing.T) {
	t.Parallel()

	cases := []struct {
		rosterSize int
		min        int
		max        int
	}{
		{rosterSize: 8, min: 1, max: 3},
		{rosterSize: 10, min: 1, max: 4},
		{rosterSize: 12, min: 2, max: 4},
		{rosterSize: 2, min: 0, max: 2},
	}

	for _, tc := range cases {
		reqs, err := RequirementsFor("d1", tc.rosterSize)
		if err != nil {
			t.Fatalf("roster %d: %v", tc.rosterSize, err)
		}
		if len(reqs) != len(player.OrderedPositions) {
			t.Fatalf("roster %d: expected %d requirements, got %d", tc.rosterSize, len(player.OrderedPositions), len(reqs))
		}
		for i, r := range reqs {
			if r.Position != player.OrderedPositions[i] {
				t.Fatalf("roster %d: unexpected position order %s", tc.rosterSize, r.Position)
			}
			if r.DraftID != "d1" || r.Min != tc.min || r.Max != tc.max {
				t.Fatalf("roster %d: unexpected requirement %+v", tc.rosterSize, r)
			}
		}
	}
}

func TestRequirementsFor_RejectsOutOfRange(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -1, MaxRosterSize + 1} {
		if _, err := RequirementsFor("d1", size); !errors.Is(err, ErrInvalidRosterSize) {
			t.Fatalf("size %d: expected ErrInvalidRosterSize, got %v", size, err)
		}
	}
}

func TestCheckFillable(t *testing.T) {
	t.Parallel()

	mk := func(min, max int) []PositionRequirement {
		out := make([]PositionRequirement, 0, len(player.OrderedPositions))
		for _, pos := range player.OrderedPositions {
			out = append(out, PositionRequirement{Position: pos, Min: min, Max: max})
		}
		return out
	}

	if err := CheckFillable(mk(1, 3), 8); err != nil {
		t.Fatalf("expected fillable, got %v", err)
	}
	if err := CheckFillable(mk(3, 4), 8); !errors.Is(err, ErrInvalidRosterSize) {
		t.Fatalf("expected minimums to exceed roster, got %v", err)
	}
	if err := CheckFillable(mk(0, 2), 12); !errors.Is(err, ErrInvalidRosterSize) {
		t.Fatalf("expected maximums unable to fill roster, got %v", err)
	}
	if err := CheckFillable(mk(3, 2), 8); !errors.Is(err, ErrInvalidRosterSize) {
		t.Fatalf("expected bad bounds, got %v", err)
	}
}
