package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/mockmaster/internal/domain/draft"
	"github.com/riskibarqy/mockmaster/internal/domain/player"
	"github.com/riskibarqy/mockmaster/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type PickService struct {
	store   draft.Store
	players player.Repository
	logger  *logging.Logger
	now     func() time.Time
}

func NewPickService(store draft.Store, players player.Repository, logger *logging.Logger) *PickService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PickService{
		store:   store,
		players: players,
		logger:  logger.Named("pick"),
		now:     time.Now,
	}
}

// AttemptPick validates and commits one pick. The read, the checks, the insert and
// the automatic end of the draft after its last pick all happen in one serializable
// scope, so concurrent callers either see each other's picks or abort with
// draft.ErrSerializationConflict.
func (s *PickService) AttemptPick(ctx context.Context, teamID, playerID string) (draft.Selection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PickService.AttemptPick",
		attribute.String("team.id", teamID),
		attribute.String("player.id", playerID),
	)
	var err error
	defer func() { endSpan(span, err) }()

	teamID = strings.TrimSpace(teamID)
	playerID = strings.TrimSpace(playerID)
	if teamID == "" || playerID == "" {
		err = fmt.Errorf("%w: team id and player id are required", ErrInvalidInput)
		return draft.Selection{}, err
	}

	// Player eligibility is immutable reference data, so it is resolved outside the scope.
	p, exists, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		err = fmt.Errorf("%w: get player: %v", ErrDependencyUnavailable, err)
		return draft.Selection{}, err
	}
	if !exists {
		err = fmt.Errorf("%w: player=%s", draft.ErrPlayerNotFound, playerID)
		return draft.Selection{}, err
	}

	var (
		sel   draft.Selection
		ended bool
	)
	err = s.store.RunInTx(ctx, func(ctx context.Context, repo draft.Repository) error {
		team, exists, err := repo.GetTeam(ctx, teamID)
		if err != nil {
			return fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: team=%s", draft.ErrTeamNotFound, teamID)
		}
		d, err := loadDraft(ctx, repo, team.DraftID)
		if err != nil {
			return err
		}
		// Status is checked before anything that needs seats so a pending draft
		// reports DraftNotActive instead of a seating error.
		if d.Status != draft.StatusActive {
			return fmt.Errorf("%w: status=%s", draft.ErrDraftNotActive, d.Status)
		}

		reqs, err := repo.ListRequirements(ctx, d.ID)
		if err != nil {
			return fmt.Errorf("list requirements: %w", err)
		}
		teams, err := repo.ListTeams(ctx, d.ID)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		previous, err := repo.CountSelections(ctx, d.ID)
		if err != nil {
			return fmt.Errorf("count selections: %w", err)
		}
		taken, err := repo.IsPlayerSelected(ctx, d.ID, p.ID)
		if err != nil {
			return fmt.Errorf("check player selected: %w", err)
		}
		owned, err := repo.ListTeamSelections(ctx, team.ID)
		if err != nil {
			return fmt.Errorf("list team selections: %w", err)
		}
		currentSeat, err := draft.CurrentPick(previous, len(teams))
		if err != nil {
			return err
		}
		teamSeat, _ := team.Seat()

		if err := draft.ValidatePick(draft.PickContext{
			Status:         d.Status,
			TeamSeat:       teamSeat,
			CurrentSeat:    currentSeat,
			PlayerPosition: p.Position,
			PlayerTaken:    taken,
			TeamCounts:     draft.CountByPosition(owned),
			Requirements:   reqs,
			RosterSize:     d.RosterSize,
		}); err != nil {
			return err
		}

		now := s.now().UTC()
		sel = draft.Selection{
			DraftID:      d.ID,
			TeamID:       team.ID,
			PlayerID:     p.ID,
			Position:     p.Position,
			WhenSelected: previous + 1,
			CreatedAt:    now,
		}
		if err := repo.InsertSelection(ctx, sel); err != nil {
			return fmt.Errorf("insert selection: %w", err)
		}

		if sel.WhenSelected == draft.TotalPicks(len(teams), d.RosterSize) {
			if err := repo.UpdateDraftStatus(ctx, d.ID, draft.StatusEnded, now); err != nil {
				return fmt.Errorf("end draft: %w", err)
			}
			ended = true
		}
		return nil
	})
	if err != nil {
		s.logger.DebugContext(ctx, "pick rejected",
			"team_id", teamID,
			"player_id", playerID,
			"kind", string(draft.KindOf(err)),
			"error", err,
		)
		err = fmt.Errorf("attempt pick: %w", err)
		return draft.Selection{}, err
	}

	s.logger.InfoContext(ctx, "pick committed",
		"draft_id", sel.DraftID,
		"team_id", sel.TeamID,
		"player_id", sel.PlayerID,
		"position", sel.Position,
		"when_selected", sel.WhenSelected,
	)
	if ended {
		s.logger.InfoContext(ctx, "draft ended after final pick", "draft_id", sel.DraftID, "picks", sel.WhenSelected)
	}

	return sel, nil
}

// ListPicks returns the draft's committed picks in selection order.
func (s *PickService) ListPicks(ctx context.Context, draftID string) ([]draft.PickView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PickService.ListPicks", attribute.String("draft.id", draftID))
	var err error
	defer func() { endSpan(span, err) }()

	var out []draft.PickView
	err = s.store.RunInTx(ctx, func(ctx context.Context, repo draft.Repository) error {
		d, err := loadDraft(ctx, repo, draftID)
		if err != nil {
			return err
		}
		out, err = repo.ListPicks(ctx, d.ID)
		if err != nil {
			return fmt.Errorf("list picks: %w", err)
		}
		return nil
	})
	if err != nil {
		err = fmt.Errorf("list picks: %w", err)
		return nil, err
	}

	return out, nil
}
