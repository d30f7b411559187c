package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/mockmaster/internal/domain/draft"
	"github.com/riskibarqy/mockmaster/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// TeamRoster is a team together with the players it has drafted so far.
type TeamRoster struct {
	Team       draft.Team
	Selections []draft.Selection
}

type TeamService struct {
	store  draft.Store
	logger *logging.Logger
}

func NewTeamService(store draft.Store, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		store:  store,
		logger: logger.Named("team"),
	}
}

func (s *TeamService) RenameTeam(ctx context.Context, teamID, name string) (draft.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.RenameTeam", attribute.String("team.id", teamID))
	var err error
	defer func() { endSpan(span, err) }()

	name = strings.TrimSpace(name)
	if n := len([]rune(name)); n < minTeamNameLen || n > maxTeamNameLen {
		err = fmt.Errorf("%w: team name must be %d..%d characters", ErrInvalidInput, minTeamNameLen, maxTeamNameLen)
		return draft.Team{}, err
	}

	var team draft.Team
	err = s.store.RunInTx(ctx, func(ctx context.Context, repo draft.Repository) error {
		t, err := loadTeam(ctx, repo, teamID)
		if err != nil {
			return err
		}
		if err := repo.UpdateTeamName(ctx, t.ID, name); err != nil {
			return fmt.Errorf("update team name: %w", err)
		}
		t.Name = name
		team = t
		return nil
	})
	if err != nil {
		err = fmt.Errorf("rename team: %w", err)
		return draft.Team{}, err
	}

	s.logger.InfoContext(ctx, "team renamed", "team_id", team.ID, "draft_id", team.DraftID)
	return team, nil
}

// ListTeamSelections returns a team and its picks ordered by when they were made.
func (s *TeamService) ListTeamSelections(ctx context.Context, teamID string) (TeamRoster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeamSelections", attribute.String("team.id", teamID))
	var err error
	defer func() { endSpan(span, err) }()

	var out TeamRoster
	err = s.store.RunInTx(ctx, func(ctx context.Context, repo draft.Repository) error {
		t, err := loadTeam(ctx, repo, teamID)
		if err != nil {
			return err
		}
		selections, err := repo.ListTeamSelections(ctx, t.ID)
		if err != nil {
			return fmt.Errorf("list team selections: %w", err)
		}
		out = TeamRoster{Team: t, Selections: selections}
		return nil
	})
	if err != nil {
		err = fmt.Errorf("list team selections: %w", err)
		return TeamRoster{}, err
	}

	return out, nil
}

func loadTeam(ctx context.Context, repo draft.Repository, teamID string) (draft.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return draft.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	t, exists, err := repo.GetTeam(ctx, teamID)
	if err != nil {
		return draft.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return draft.Team{}, fmt.Errorf("%w: team=%s", draft.ErrTeamNotFound, teamID)
	}
	return t, nil
}
