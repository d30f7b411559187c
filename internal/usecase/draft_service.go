package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/mockmaster/internal/domain/draft"
	idgen "github.com/riskibarqy/mockmaster/internal/platform/id"
	"github.com/riskibarqy/mockmaster/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	maxTeamCount    = 32
	maxDraftNameLen = 100
	minTeamNameLen  = 3
	maxTeamNameLen  = 14
	maxUserNameLen  = 64
)

// CreateDraftInput is the payload for opening a draft room. TeamName and UserName
// are optional; when both are set the creator's team joins in the same scope.
type CreateDraftInput struct {
	Name        string
	ScoringType string
	TeamCount   int
	RosterSize  int
	TeamName    string
	UserName    string
}

// CreatedDraft is a new draft plus the creator's team, when one was requested.
type CreatedDraft struct {
	Draft        draft.Draft
	Requirements []draft.PositionRequirement
	CreatorTeam  *draft.Team
}

// DraftDetails is a read view of one draft.
type DraftDetails struct {
	Draft        draft.Draft
	Requirements []draft.PositionRequirement
	JoinedTeams  int
	PicksMade    int
}

// TurnInfo identifies who holds the pick right now.
type TurnInfo struct {
	DraftID     string
	TeamID      string
	TeamName    string
	Seat        int
	Round       int
	OverallPick int
}

type DraftService struct {
	store   draft.Store
	idGen   idgen.Generator
	shuffle draft.Shuffler
	logger  *logging.Logger
	now     func() time.Time
}

func NewDraftService(store draft.Store, idGen idgen.Generator, shuffle draft.Shuffler, logger *logging.Logger) *DraftService {
	if logger == nil {
		logger = logging.Default()
	}
	if shuffle == nil {
		shuffle = draft.RandomShuffler()
	}

	return &DraftService{
		store:   store,
		idGen:   idGen,
		shuffle: shuffle,
		logger:  logger.Named("draft"),
		now:     time.Now,
	}
}

func (s *DraftService) CreateDraft(ctx context.Context, input CreateDraftInput) (CreatedDraft, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.CreateDraft")
	var err error
	defer func() { endSpan(span, err) }()

	input.Name = strings.TrimSpace(input.Name)
	input.TeamName = strings.TrimSpace(input.TeamName)
	input.UserName = strings.TrimSpace(input.UserName)

	if input.Name == "" || len(input.Name) > maxDraftNameLen {
		err = fmt.Errorf("%w: draft name must be 1..%d characters", ErrInvalidInput, maxDraftNameLen)
		return CreatedDraft{}, err
	}
	scoring, parseErr := draft.ParseScoringType(input.ScoringType)
	if parseErr != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidInput, parseErr)
		return CreatedDraft{}, err
	}
	if input.TeamCount < 1 || input.TeamCount > maxTeamCount {
		err = fmt.Errorf("%w: team count must be 1..%d", ErrInvalidInput, maxTeamCount)
		return CreatedDraft{}, err
	}
	withCreator := input.TeamName != "" || input.UserName != ""
	if withCreator {
		if err = validateTeamNames(input.TeamName, input.UserName); err != nil {
			return CreatedDraft{}, err
		}
	}

	draftID, err := s.idGen.NewID()
	if err != nil {
		err = fmt.Errorf("generate draft id: %w", err)
		return CreatedDraft{}, err
	}
	reqs, reqErr := draft.RequirementsFor(draftID, input.RosterSize)
	if reqErr != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidInput, reqErr)
		return CreatedDraft{}, err
	}

	now := s.now().UTC()
	d := draft.Draft{
		ID:          draftID,
		Name:        input.Name,
		ScoringType: scoring,
		TeamCount:   input.TeamCount,
		RosterSize:  input.RosterSize,
		Status:      draft.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = d.Validate(); err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidInput, err)
		return CreatedDraft{}, err
	}

	var creator *draft.Team
	if withCreator {
		teamID, idErr := s.idGen.NewID()
		if idErr != nil {
			err = fmt.Errorf("generate team id: %w", idErr)
			return CreatedDraft{}, err
		}
		creator = &draft.Team{
			ID:        teamID,
			DraftID:   draftID,
			Name:      input.TeamName,
			UserName:  input.UserName,
			CreatedAt: now,
		}
	}

	err = s.store.RunInTx(ctx, func(ctx context.Context, repo draft.Repository) error {
		if err := repo.CreateDraft(ctx, d); err != nil {
			return fmt.Errorf("insert draft: %w", err)
		}
		if err := repo.InsertRequirements(ctx, reqs); err != nil {
			return fmt.Errorf("insert position requirements: %w", err)
		}
		if creator != nil {
			if err := repo.InsertTeam(ctx, *creator); err != nil {
				return fmt.Errorf("insert creator team: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		err = fmt.Errorf("create draft: %w", err)
		return CreatedDraft{}, err
	}

	s.logger.InfoContext(ctx, "draft created",
		"draft_id", d.ID,
		"scoring_type", d.ScoringType,
		"team_count", d.TeamCount,
		"roster_size", d.RosterSize,
		"with_creator_team", creator != nil,
	)

	return CreatedDraft{Draft: d, Requirements: reqs, CreatorTeam: creator}, nil
}

func (s *DraftService) GetDraft(ctx context.Context, draftID string) (DraftDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.GetDraft", attribute.String("draft.id", draftID))
	var err error
	defer func() { endSpan(span, err) }()

	var out DraftDetails
	err = s.store.RunInTx(ctx, func(ctx context.Context, repo draft.Repository) error {
		d, err := loadDraft(ctx, repo, draftID)
		if err != nil {
			return err
		}
		reqs, err := repo.ListRequirements(ctx, d.ID)
		if err != nil {
			return fmt.Errorf("list requirements: %w", err)
		}
		teams, err := repo.ListTeams(ctx, d.ID)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		picks, err := repo.CountSelections(ctx, d.ID)
		if err != nil {
			return fmt.Errorf("count selections: %w", err)
		}
		out = DraftDetails{Draft: d, Requirements: reqs, JoinedTeams: len(teams), PicksMade: picks}
		return nil
	})
	if err != nil {
		err = fmt.Errorf("get draft: %w", err)
		return DraftDetails{}, err
	}

	return out, nil
}

func (s *DraftService) JoinDraft(ctx context.Context, draftID, teamName, userName string) (draft.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.JoinDraft", attribute.String("draft.id", draftID))
	var err error
	defer func() { endSpan(span, err) }()

	teamName = strings.TrimSpace(teamName)
	userName = strings.TrimSpace(userName)
	if err = validateTeamNames(teamName, userName); err != nil {
		return draft.Team{}, err
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		err = fmt.Errorf("generate team id: %w", err)
		return draft.Team{}, err
	}

	var team draft.Team
	err = s.store.RunInTx(ctx, func(ctx context.Context, repo draft.Repository) error {
		d, err := loadDraft(ctx, repo, draftID)
		if err != nil {
			return err
		}
		teams, err := repo.ListTeams(ctx, d.ID)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		if err := draft.CheckJoin(d, len(teams)); err != nil {
			return err
		}

		team = draft.Team{
			ID:        teamID,
			DraftID:   d.ID,
			Name:      teamName,
			UserName:  userName,
			CreatedAt: s.now().UTC(),
		}
		if err := repo.InsertTeam(ctx, team); err != nil {
			return fmt.Errorf("insert team: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.DebugContext(ctx, "join draft rejected", "draft_id", draftID, "error", err)
		err = fmt.Errorf("join draft: %w", err)
		return draft.Team{}, err
	}

	s.logger.InfoContext(ctx, "team joined draft", "draft_id", draftID, "team_id", team.ID)
	return team, nil
}

// StartDraft seats every joined team in a random order and opens the draft.
func (s *DraftService) StartDraft(ctx context.Context, draftID string) (draft.Draft, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.StartDraft", attribute.String("draft.id", draftID))
	var err error
	defer func() { endSpan(span, err) }()

	var out draft.Draft
	err = s.store.RunInTx(ctx, func(ctx context.Context, repo draft.Repository) error {
		d, err := loadDraft(ctx, repo, draftID)
		if err != nil {
			return err
		}
		teams, err := repo.ListTeams(ctx, d.ID)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		if err := draft.CheckStart(d.Status, len(teams)); err != nil {
			return err
		}

		teamIDs := make([]string, 0, len(teams))
		for _, t := range teams {
			teamIDs = append(teamIDs, t.ID)
		}
		seats, err := draft.AssignSeats(teamIDs, s.shuffle)
		if err != nil {
			return err
		}
		if err := repo.AssignSeats(ctx, d.ID, seats); err != nil {
			return fmt.Errorf("assign seats: %w", err)
		}

		out, err = s.transition(ctx, repo, d, draft.StatusActive)
		return err
	})
	if err != nil {
		err = fmt.Errorf("start draft: %w", err)
		return draft.Draft{}, err
	}

	s.logger.InfoContext(ctx, "draft started", "draft_id", out.ID)
	return out, nil
}

func (s *DraftService) PauseDraft(ctx context.Context, draftID string) (draft.Draft, error) {
	return s.changeStatus(ctx, "PauseDraft", draftID, draft.StatusPaused, draft.CheckPause)
}

func (s *DraftService) ResumeDraft(ctx context.Context, draftID string) (draft.Draft, error) {
	return s.changeStatus(ctx, "ResumeDraft", draftID, draft.StatusActive, draft.CheckResume)
}

func (s *DraftService) EndDraft(ctx context.Context, draftID string) (draft.Draft, error) {
	return s.changeStatus(ctx, "EndDraft", draftID, draft.StatusEnded, draft.CheckEnd)
}

func (s *DraftService) changeStatus(
	ctx context.Context,
	op string,
	draftID string,
	target draft.Status,
	check func(draft.Status) error,
) (draft.Draft, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService."+op, attribute.String("draft.id", draftID))
	var err error
	defer func() { endSpan(span, err) }()

	var out draft.Draft
	err = s.store.RunInTx(ctx, func(ctx context.Context, repo draft.Repository) error {
		d, err := loadDraft(ctx, repo, draftID)
		if err != nil {
			return err
		}
		if err := check(d.Status); err != nil {
			return err
		}
		out, err = s.transition(ctx, repo, d, target)
		return err
	})
	if err != nil {
		err = fmt.Errorf("%s: %w", strings.ToLower(op), err)
		return draft.Draft{}, err
	}

	s.logger.InfoContext(ctx, "draft status changed", "draft_id", out.ID, "status", out.Status)
	return out, nil
}

func (s *DraftService) transition(ctx context.Context, repo draft.Repository, d draft.Draft, target draft.Status) (draft.Draft, error) {
	now := s.now().UTC()
	if err := repo.UpdateDraftStatus(ctx, d.ID, target, now); err != nil {
		return draft.Draft{}, fmt.Errorf("update draft status: %w", err)
	}
	d.Status = target
	d.UpdatedAt = now
	return d, nil
}

// CurrentTurnTeam reports which team holds the pick in an active draft.
func (s *DraftService) CurrentTurnTeam(ctx context.Context, draftID string) (TurnInfo, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.CurrentTurnTeam", attribute.String("draft.id", draftID))
	var err error
	defer func() { endSpan(span, err) }()

	var out TurnInfo
	err = s.store.RunInTx(ctx, func(ctx context.Context, repo draft.Repository) error {
		d, err := loadDraft(ctx, repo, draftID)
		if err != nil {
			return err
		}
		if d.Status != draft.StatusActive {
			return fmt.Errorf("%w: status=%s", draft.ErrDraftNotActive, d.Status)
		}
		teams, err := repo.ListTeams(ctx, d.ID)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		previous, err := repo.CountSelections(ctx, d.ID)
		if err != nil {
			return fmt.Errorf("count selections: %w", err)
		}
		seat, err := draft.CurrentPick(previous, len(teams))
		if err != nil {
			return err
		}
		team, ok := teamAtSeat(teams, seat)
		if !ok {
			return fmt.Errorf("no team seated at %d in draft %s", seat, d.ID)
		}

		out = TurnInfo{
			DraftID:     d.ID,
			TeamID:      team.ID,
			TeamName:    team.Name,
			Seat:        seat,
			Round:       draft.Round(previous, len(teams)),
			OverallPick: previous + 1,
		}
		return nil
	})
	if err != nil {
		err = fmt.Errorf("current turn: %w", err)
		return TurnInfo{}, err
	}

	return out, nil
}

// ListSeatOrder returns seated teams by seat. Before the draft starts it is empty.
func (s *DraftService) ListSeatOrder(ctx context.Context, draftID string) ([]draft.Seat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.ListSeatOrder", attribute.String("draft.id", draftID))
	var err error
	defer func() { endSpan(span, err) }()

	var out []draft.Seat
	err = s.store.RunInTx(ctx, func(ctx context.Context, repo draft.Repository) error {
		d, err := loadDraft(ctx, repo, draftID)
		if err != nil {
			return err
		}
		teams, err := repo.ListTeams(ctx, d.ID)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		out = make([]draft.Seat, 0, len(teams))
		for _, t := range teams {
			seat, ok := t.Seat()
			if !ok {
				continue
			}
			out = append(out, draft.Seat{Seat: seat, TeamID: t.ID, TeamName: t.Name})
		}
		return nil
	})
	if err != nil {
		err = fmt.Errorf("list seat order: %w", err)
		return nil, err
	}

	return out, nil
}

func loadDraft(ctx context.Context, repo draft.Repository, draftID string) (draft.Draft, error) {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return draft.Draft{}, fmt.Errorf("%w: draft id is required", ErrInvalidInput)
	}
	d, exists, err := repo.GetDraft(ctx, draftID)
	if err != nil {
		return draft.Draft{}, fmt.Errorf("get draft: %w", err)
	}
	if !exists {
		return draft.Draft{}, fmt.Errorf("%w: draft=%s", draft.ErrDraftNotFound, draftID)
	}
	return d, nil
}

func teamAtSeat(teams []draft.Team, seat int) (draft.Team, bool) {
	for _, t := range teams {
		if s, ok := t.Seat(); ok && s == seat {
			return t, true
		}
	}
	return draft.Team{}, false
}

func validateTeamNames(teamName, userName string) error {
	if n := len([]rune(teamName)); n < minTeamNameLen || n > maxTeamNameLen {
		return fmt.Errorf("%w: team name must be %d..%d characters", ErrInvalidInput, minTeamNameLen, maxTeamNameLen)
	}
	if userName == "" || len([]rune(userName)) > maxUserNameLen {
		return fmt.Errorf("%w: user name must be 1..%d characters", ErrInvalidInput, maxUserNameLen)
	}
	return nil
}
