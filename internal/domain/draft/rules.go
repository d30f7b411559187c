package draft

import (
	"fmt"

	"github.com/riskibarqy/mockmaster/internal/domain/player"
)

// PickContext is everything the validator needs, read inside the commit scope.
type PickContext struct {
	Status         Status
	TeamSeat       int
	CurrentSeat    int
	PlayerPosition player.Position
	PlayerTaken    bool
	TeamCounts     map[player.Position]int
	Requirements   []PositionRequirement
	RosterSize     int
}

// ValidatePick runs the pick checks in order and returns the first failure.
//
// The roster check is greedy: it only blocks a pick once the team's remaining
// slots are all spoken for by unmet minimums.
func ValidatePick(pc PickContext) error {
	if pc.Status != StatusActive {
		return fmt.Errorf("%w: status=%s", ErrDraftNotActive, pc.Status)
	}
	if pc.PlayerTaken {
		return ErrPlayerUnavailable
	}
	if pc.TeamSeat != pc.CurrentSeat {
		return fmt.Errorf("%w: seat=%d current=%d", ErrNotYourTurn, pc.TeamSeat, pc.CurrentSeat)
	}

	needed := NeededByPosition(pc.Requirements, pc.TeamCounts)
	totalNeeded := 0
	for _, n := range needed {
		totalNeeded += n
	}
	held := 0
	for _, c := range pc.TeamCounts {
		held += c
	}
	remaining := pc.RosterSize - held
	if totalNeeded >= remaining && needed[pc.PlayerPosition] < 1 {
		return fmt.Errorf("%w: pos=%s needed=%d remaining=%d",
			ErrRosterRequirementViolation, pc.PlayerPosition, totalNeeded, remaining)
	}

	maxAllowed := 0
	if req, ok := RequirementIndex(pc.Requirements)[pc.PlayerPosition]; ok {
		maxAllowed = req.Max
	}
	if pc.TeamCounts[pc.PlayerPosition] >= maxAllowed {
		return fmt.Errorf("%w: pos=%s max=%d", ErrPositionLimitReached, pc.PlayerPosition, maxAllowed)
	}

	return nil
}

// NeededByPosition returns how many more players each position needs to reach its
// minimum.
func NeededByPosition(reqs []PositionRequirement, counts map[player.Position]int) map[player.Position]int {
	out := make(map[player.Position]int, len(reqs))
	for _, r := range reqs {
		n := r.Min - counts[r.Position]
		if n < 0 {
			n = 0
		}
		out[r.Position] = n
	}
	return out
}

// CountByPosition tallies a team's selections.
func CountByPosition(selections []Selection) map[player.Position]int {
	out := make(map[player.Position]int)
	for _, s := range selections {
		out[s.Position]++
	}
	return out
}
