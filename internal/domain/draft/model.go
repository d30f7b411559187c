package draft

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/mockmaster/internal/domain/player"
)

// Status is the lifecycle state of a draft room.
type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
	StatusPaused  Status = "paused"
	StatusEnded   Status = "ended"
)

// ScoringType only affects how player points are displayed.
type ScoringType string

const (
	ScoringStandard ScoringType = "Standard"
	ScoringPPR      ScoringType = "PPR"
)

func ParseScoringType(raw string) (ScoringType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "standard":
		return ScoringStandard, nil
	case "ppr":
		return ScoringPPR, nil
	default:
		return "", fmt.Errorf("unknown scoring type %q", raw)
	}
}

// Draft is one snake draft room.
type Draft struct {
	ID          string
	Name        string
	ScoringType ScoringType
	TeamCount   int
	RosterSize  int
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (d Draft) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("draft id is required")
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("draft name is required")
	}
	if d.ScoringType != ScoringStandard && d.ScoringType != ScoringPPR {
		return fmt.Errorf("invalid scoring type: %s", d.ScoringType)
	}
	if d.TeamCount < 1 {
		return fmt.Errorf("team count must be at least 1")
	}
	if d.RosterSize < 1 {
		return fmt.Errorf("roster size must be at least 1")
	}

	return nil
}

// PositionRequirement bounds how many players of one position a roster may hold.
type PositionRequirement struct {
	DraftID  string
	Position player.Position
	Min      int
	Max      int
}

// Team is one participant in a draft. DraftPosition stays nil until the draft starts.
type Team struct {
	ID            string
	DraftID       string
	Name          string
	UserName      string
	DraftPosition *int
	CreatedAt     time.Time
}

func (t Team) Seat() (int, bool) {
	if t.DraftPosition == nil {
		return 0, false
	}
	return *t.DraftPosition, true
}

// Selection is one committed pick. WhenSelected is the draft-wide 1-based sequence.
type Selection struct {
	DraftID      string
	TeamID       string
	PlayerID     string
	Position     player.Position
	WhenSelected int
	CreatedAt    time.Time
}

// PickView is a selection joined with its team for listing.
type PickView struct {
	WhenSelected int
	PlayerID     string
	Position     player.Position
	TeamID       string
	TeamName     string
}

// Seat is one row of the seating order.
type Seat struct {
	Seat     int
	TeamID   string
	TeamName string
}
