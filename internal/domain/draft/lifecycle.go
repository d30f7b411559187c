package draft

import (
	"fmt"
	"math/rand/v2"
)

// CheckJoin reports whether a team may join a draft with joined teams already in it.
func CheckJoin(d Draft, joined int) error {
	if d.Status != StatusPending {
		return fmt.Errorf("%w: status=%s", ErrDraftNotJoinable, d.Status)
	}
	if joined >= d.TeamCount {
		return fmt.Errorf("%w: %d/%d teams", ErrDraftFull, joined, d.TeamCount)
	}
	return nil
}

// CheckStart guards pending -> active.
func CheckStart(current Status, joined int) error {
	switch current {
	case StatusEnded:
		return ErrDraftAlreadyEnded
	case StatusPending:
	default:
		return fmt.Errorf("%w: status=%s", ErrDraftNotPending, current)
	}
	if joined < 1 {
		return ErrNoTeamsToStart
	}
	return nil
}

// CheckPause guards active -> paused.
func CheckPause(current Status) error {
	return requireActive(current)
}

// CheckResume guards paused -> active.
func CheckResume(current Status) error {
	switch current {
	case StatusEnded:
		return ErrDraftAlreadyEnded
	case StatusPaused:
		return nil
	default:
		return fmt.Errorf("%w: status=%s", ErrDraftNotPaused, current)
	}
}

// CheckEnd guards active -> ended.
func CheckEnd(current Status) error {
	return requireActive(current)
}

func requireActive(current Status) error {
	switch current {
	case StatusEnded:
		return ErrDraftAlreadyEnded
	case StatusActive:
		return nil
	default:
		return fmt.Errorf("%w: status=%s", ErrDraftNotActive, current)
	}
}

// Shuffler returns a permutation of [0, n).
type Shuffler func(n int) []int

// RandomShuffler draws uniformly random permutations.
func RandomShuffler() Shuffler {
	return rand.Perm
}

// AssignSeats gives every team a distinct seat in 1..len(teamIDs), independent of
// the order teams joined in.
func AssignSeats(teamIDs []string, shuffle Shuffler) (map[string]int, error) {
	if len(teamIDs) == 0 {
		return nil, ErrNoTeamsToStart
	}
	if shuffle == nil {
		shuffle = RandomShuffler()
	}

	perm := shuffle(len(teamIDs))
	if len(perm) != len(teamIDs) {
		return nil, fmt.Errorf("shuffler returned %d seats for %d teams", len(perm), len(teamIDs))
	}

	seats := make(map[string]int, len(teamIDs))
	used := make([]bool, len(teamIDs))
	for i, teamID := range teamIDs {
		p := perm[i]
		if p < 0 || p >= len(teamIDs) || used[p] {
			return nil, fmt.Errorf("shuffler returned invalid permutation %v", perm)
		}
		used[p] = true
		seats[teamID] = p + 1
	}

	return seats, nil
}
