package draft

import "fmt"

// CurrentPick returns the 1-based seat holding the pick after previousPicks picks
// have been made among teamCount teams. Even rounds run 1..N, odd rounds N..1.
func CurrentPick(previousPicks, teamCount int) (int, error) {
	if teamCount < 1 {
		return 0, ErrNoTeams
	}
	if previousPicks < 0 {
		return 0, fmt.Errorf("previous picks must be >= 0, got %d", previousPicks)
	}

	round := previousPicks / teamCount
	offset := previousPicks % teamCount
	if round%2 == 1 {
		return teamCount - offset, nil
	}
	return offset + 1, nil
}

// Round returns the 1-based round the next pick belongs to.
func Round(previousPicks, teamCount int) int {
	if teamCount < 1 || previousPicks < 0 {
		return 0
	}
	return previousPicks/teamCount + 1
}

// TotalPicks is the number of picks that completes a draft.
func TotalPicks(teamCount, rosterSize int) int {
	return teamCount * rosterSize
}
