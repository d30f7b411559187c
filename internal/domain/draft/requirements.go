package draft

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/mockmaster/internal/domain/player"
)

type bounds struct {
	min int
	max int
}

// requirementTable maps roster size to the per-position bounds applied to every
// skill position.
var requirementTable = map[int]bounds{
	8:  {min: 1, max: 3},
	10: {min: 1, max: 4},
	12: {min: 2, max: 4},
}

const (
	MinRosterSize = 1
	MaxRosterSize = 20
)

// TabledRosterSizes returns the roster sizes with fixed position bounds.
func TabledRosterSizes() []int {
	out := make([]int, 0, len(requirementTable))
	for size := range requirementTable {
		out = append(out, size)
	}
	sort.Ints(out)
	return out
}

// boundsFor returns the table entry for rosterSize. Sizes without an entry get an
// open roster: no minimums and any position may fill every slot.
func boundsFor(rosterSize int) (bounds, error) {
	if rosterSize < MinRosterSize || rosterSize > MaxRosterSize {
		return bounds{}, fmt.Errorf("%w: %d (must be %d..%d)", ErrInvalidRosterSize, rosterSize, MinRosterSize, MaxRosterSize)
	}
	if b, ok := requirementTable[rosterSize]; ok {
		return b, nil
	}
	return bounds{min: 0, max: rosterSize}, nil
}

// RequirementsFor derives the position requirements for a new draft.
func RequirementsFor(draftID string, rosterSize int) ([]PositionRequirement, error) {
	b, err := boundsFor(rosterSize)
	if err != nil {
		return nil, err
	}

	out := make([]PositionRequirement, 0, len(player.OrderedPositions))
	for _, pos := range player.OrderedPositions {
		out = append(out, PositionRequirement{
			DraftID:  draftID,
			Position: pos,
			Min:      b.min,
			Max:      b.max,
		})
	}

	if err := CheckFillable(out, rosterSize); err != nil {
		return nil, err
	}

	return out, nil
}

// CheckFillable rejects requirement sets that no roster of rosterSize can satisfy.
func CheckFillable(reqs []PositionRequirement, rosterSize int) error {
	var sumMin, sumMax int
	for _, r := range reqs {
		if r.Min < 0 || r.Max < r.Min {
			return fmt.Errorf("%w: bad bounds for %s [%d,%d]", ErrInvalidRosterSize, r.Position, r.Min, r.Max)
		}
		sumMin += r.Min
		sumMax += r.Max
	}
	if sumMin > rosterSize {
		return fmt.Errorf("%w: minimums %d exceed roster size %d", ErrInvalidRosterSize, sumMin, rosterSize)
	}
	if sumMax < rosterSize {
		return fmt.Errorf("%w: maximums %d cannot fill roster size %d", ErrInvalidRosterSize, sumMax, rosterSize)
	}

	return nil
}

// RequirementIndex keys requirements by position.
func RequirementIndex(reqs []PositionRequirement) map[player.Position]PositionRequirement {
	out := make(map[player.Position]PositionRequirement, len(reqs))
	for _, r := range reqs {
		out[r.Position] = r
	}
	return out
}
