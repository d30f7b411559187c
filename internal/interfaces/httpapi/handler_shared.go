package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/mockmaster/internal/domain/draft"
	"github.com/riskibarqy/mockmaster/internal/domain/player"
	"github.com/riskibarqy/mockmaster/internal/usecase"
)

type createDraftRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	ScoringType string `json:"scoring_type" validate:"required,oneof=Standard PPR standard ppr"`
	TeamCount   int    `json:"team_count" validate:"required,min=1,max=32"`
	RosterSize  int    `json:"roster_size" validate:"required,min=1,max=20"`
	TeamName    string `json:"team_name" validate:"required_with=UserName,omitempty,min=3,max=14"`
	UserName    string `json:"user_name" validate:"required_with=TeamName,omitempty,max=64"`
}

type joinDraftRequest struct {
	TeamName string `json:"team_name" validate:"required,min=3,max=14"`
	UserName string `json:"user_name" validate:"required,max=64"`
}

type attemptPickRequest struct {
	TeamID string `json:"team_id" validate:"required,uuid"`
}

type renameTeamRequest struct {
	Name string `json:"name" validate:"required,min=3,max=14"`
}

type requirementDTO struct {
	Position string `json:"position"`
	Min      int    `json:"min"`
	Max      int    `json:"max"`
}

type draftDTO struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	ScoringType  string           `json:"scoringType"`
	TeamCount    int              `json:"teamCount"`
	RosterSize   int              `json:"rosterSize"`
	Status       string           `json:"status"`
	Requirements []requirementDTO `json:"requirements"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

type draftDetailsDTO struct {
	draftDTO
	JoinedTeams int `json:"joinedTeams"`
	PicksMade   int `json:"picksMade"`
	TotalPicks  int `json:"totalPicks"`
}

type createdDraftDTO struct {
	Draft       draftDTO `json:"draft"`
	CreatorTeam *teamDTO `json:"creatorTeam,omitempty"`
}

type draftStatusDTO struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type teamDTO struct {
	ID            string    `json:"id"`
	DraftID       string    `json:"draftId"`
	Name          string    `json:"name"`
	UserName      string    `json:"userName"`
	DraftPosition *int      `json:"draftPosition,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type selectionDTO struct {
	DraftID      string    `json:"draftId"`
	TeamID       string    `json:"teamId"`
	PlayerID     string    `json:"playerId"`
	Position     string    `json:"position"`
	WhenSelected int       `json:"whenSelected"`
	CreatedAt    time.Time `json:"createdAt"`
}

type teamRosterDTO struct {
	Team       teamDTO        `json:"team"`
	Selections []selectionDTO `json:"selections"`
}

type pickDTO struct {
	WhenSelected int    `json:"whenSelected"`
	PlayerID     string `json:"playerId"`
	Position     string `json:"position"`
	TeamID       string `json:"teamId"`
	TeamName     string `json:"teamName"`
}

type seatDTO struct {
	Seat     int    `json:"seat"`
	TeamID   string `json:"teamId"`
	TeamName string `json:"teamName"`
}

type turnDTO struct {
	DraftID     string `json:"draftId"`
	TeamID      string `json:"teamId"`
	TeamName    string `json:"teamName"`
	Seat        int    `json:"seat"`
	Round       int    `json:"round"`
	OverallPick int    `json:"overallPick"`
}

type playerDTO struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Position       string  `json:"position"`
	Club           string  `json:"club"`
	Age            int     `json:"age"`
	StandardPoints float64 `json:"standardPoints"`
	PPRPoints      float64 `json:"pprPoints"`
}

func draftToDTO(ctx context.Context, d draft.Draft, reqs []draft.PositionRequirement) draftDTO {
	_, span := startSpan(ctx, "httpapi.draftToDTO")
	defer span.End()

	items := make([]requirementDTO, 0, len(reqs))
	for _, req := range reqs {
		items = append(items, requirementDTO{
			Position: string(req.Position),
			Min:      req.Min,
			Max:      req.Max,
		})
	}

	return draftDTO{
		ID:           d.ID,
		Name:         d.Name,
		ScoringType:  string(d.ScoringType),
		TeamCount:    d.TeamCount,
		RosterSize:   d.RosterSize,
		Status:       string(d.Status),
		Requirements: items,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func draftDetailsToDTO(ctx context.Context, details usecase.DraftDetails) draftDetailsDTO {
	return draftDetailsDTO{
		draftDTO:    draftToDTO(ctx, details.Draft, details.Requirements),
		JoinedTeams: details.JoinedTeams,
		PicksMade:   details.PicksMade,
		TotalPicks:  details.JoinedTeams * details.Draft.RosterSize,
	}
}

func draftStatusToDTO(d draft.Draft) draftStatusDTO {
	return draftStatusDTO{ID: d.ID, Status: string(d.Status), UpdatedAt: d.UpdatedAt}
}

func teamToDTO(t draft.Team) teamDTO {
	out := teamDTO{
		ID:        t.ID,
		DraftID:   t.DraftID,
		Name:      t.Name,
		UserName:  t.UserName,
		CreatedAt: t.CreatedAt,
	}
	if seat, ok := t.Seat(); ok {
		out.DraftPosition = &seat
	}
	return out
}

func selectionToDTO(s draft.Selection) selectionDTO {
	return selectionDTO{
		DraftID:      s.DraftID,
		TeamID:       s.TeamID,
		PlayerID:     s.PlayerID,
		Position:     string(s.Position),
		WhenSelected: s.WhenSelected,
		CreatedAt:    s.CreatedAt,
	}
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:             p.ID,
		Name:           p.Name,
		Position:       string(p.Position),
		Club:           p.Club,
		Age:            p.Age,
		StandardPoints: p.StandardPoints,
		PPRPoints:      p.PPRPoints,
	}
}
