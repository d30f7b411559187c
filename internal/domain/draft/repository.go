package draft

import (
	"context"
	"time"
)

// Store opens transactional scopes. Every scope runs at serializable isolation:
// either fn's writes all commit or none do. A scope the store aborts because of a
// concurrent conflict returns an error wrapping ErrSerializationConflict.
type Store interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error
}

// Repository is the draft persistence surface visible inside one scope.
type Repository interface {
	CreateDraft(ctx context.Context, d Draft) error
	GetDraft(ctx context.Context, draftID string) (Draft, bool, error)
	UpdateDraftStatus(ctx context.Context, draftID string, status Status, updatedAt time.Time) error

	InsertRequirements(ctx context.Context, reqs []PositionRequirement) error
	ListRequirements(ctx context.Context, draftID string) ([]PositionRequirement, error)

	InsertTeam(ctx context.Context, team Team) error
	GetTeam(ctx context.Context, teamID string) (Team, bool, error)
	// ListTeams orders by seat when seated, then by join time.
	ListTeams(ctx context.Context, draftID string) ([]Team, error)
	UpdateTeamName(ctx context.Context, teamID, name string) error
	AssignSeats(ctx context.Context, draftID string, seats map[string]int) error

	CountSelections(ctx context.Context, draftID string) (int, error)
	IsPlayerSelected(ctx context.Context, draftID, playerID string) (bool, error)
	ListTeamSelections(ctx context.Context, teamID string) ([]Selection, error)
	ListPicks(ctx context.Context, draftID string) ([]PickView, error)
	InsertSelection(ctx context.Context, sel Selection) error
}
