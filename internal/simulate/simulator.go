// Package simulate drives mock drafts end to end through the draft engine:
// teams join, the draft starts and one bot per team races to pick until every
// roster is full.
package simulate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/mockmaster/internal/config"
	"github.com/riskibarqy/mockmaster/internal/domain/draft"
	"github.com/riskibarqy/mockmaster/internal/domain/player"
	"github.com/riskibarqy/mockmaster/internal/platform/logging"
	"github.com/riskibarqy/mockmaster/internal/usecase"
	concpool "github.com/sourcegraph/conc/pool"
)

const (
	defaultPollInterval = 2 * time.Millisecond
	maxPickAttempts     = 5
)

// errRosterFull tells a bot its team has nothing left to draft.
var errRosterFull = errors.New("roster full")

type DraftEngine interface {
	CreateDraft(ctx context.Context, input usecase.CreateDraftInput) (usecase.CreatedDraft, error)
	JoinDraft(ctx context.Context, draftID, teamName, userName string) (draft.Team, error)
	StartDraft(ctx context.Context, draftID string) (draft.Draft, error)
	GetDraft(ctx context.Context, draftID string) (usecase.DraftDetails, error)
	CurrentTurnTeam(ctx context.Context, draftID string) (usecase.TurnInfo, error)
}

type Picker interface {
	AttemptPick(ctx context.Context, teamID, playerID string) (draft.Selection, error)
	ListPicks(ctx context.Context, draftID string) ([]draft.PickView, error)
}

type PlayerBoard interface {
	ListPlayersByPosition(ctx context.Context, rawPosition string) ([]player.Player, error)
}

// Report summarises one simulation run.
type Report struct {
	DraftsCompleted int
	DraftsFailed    int
	Picks           int
	Conflicts       int
	Rejections      int
	Duration        time.Duration
}

type counters struct {
	completed  atomic.Int64
	failed     atomic.Int64
	picks      atomic.Int64
	conflicts  atomic.Int64
	rejections atomic.Int64
}

type Simulator struct {
	drafts       DraftEngine
	picks        Picker
	players      PlayerBoard
	cfg          config.SimulateConfig
	logger       *logging.Logger
	pollInterval time.Duration
}

func New(drafts DraftEngine, picks Picker, players PlayerBoard, cfg config.SimulateConfig, logger *logging.Logger) *Simulator {
	if logger == nil {
		logger = logging.Default()
	}

	return &Simulator{
		drafts:       drafts,
		picks:        picks,
		players:      players,
		cfg:          cfg,
		logger:       logger.Named("simulate"),
		pollInterval: defaultPollInterval,
	}
}

// Run plays cfg.Drafts drafts on a pool of cfg.Workers. A failed draft is
// counted and logged; it does not stop the others.
func (s *Simulator) Run(ctx context.Context) (Report, error) {
	if s.cfg.Drafts < 1 || s.cfg.TeamCount < 1 || s.cfg.Workers < 1 {
		return Report{}, fmt.Errorf("simulate: drafts, team count and workers must be >= 1")
	}

	start := time.Now()
	var c counters

	pool, err := ants.NewPool(s.cfg.Workers)
	if err != nil {
		return Report{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i := 1; i <= s.cfg.Drafts; i++ {
		seq := i
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			draftStart := time.Now()
			draftID, err := s.runDraft(ctx, seq, &c)
			if err != nil {
				c.failed.Add(1)
				s.logger.WarnContext(ctx, "simulated draft failed", "seq", seq, "draft_id", draftID, "error", err)
				return
			}
			c.completed.Add(1)
			s.logger.InfoContext(ctx, "simulated draft completed",
				"seq", seq,
				"draft_id", draftID,
				"duration_ms", time.Since(draftStart).Milliseconds(),
			)
		}); err != nil {
			workers.Done()
			return Report{}, fmt.Errorf("submit draft to worker pool: %w", err)
		}
	}
	workers.Wait()

	return Report{
		DraftsCompleted: int(c.completed.Load()),
		DraftsFailed:    int(c.failed.Load()),
		Picks:           int(c.picks.Load()),
		Conflicts:       int(c.conflicts.Load()),
		Rejections:      int(c.rejections.Load()),
		Duration:        time.Since(start),
	}, nil
}

type draftRun struct {
	id           string
	scoring      draft.ScoringType
	rosterSize   int
	requirements []draft.PositionRequirement
}

func (s *Simulator) runDraft(ctx context.Context, seq int, c *counters) (string, error) {
	created, err := s.drafts.CreateDraft(ctx, usecase.CreateDraftInput{
		Name:        fmt.Sprintf("Mock Draft %03d", seq),
		ScoringType: s.cfg.ScoringType,
		TeamCount:   s.cfg.TeamCount,
		RosterSize:  s.cfg.RosterSize,
		TeamName:    "Team 1",
		UserName:    "bot-1",
	})
	if err != nil {
		return "", fmt.Errorf("create draft: %w", err)
	}
	d := created.Draft

	teams := make([]draft.Team, 0, d.TeamCount)
	if created.CreatorTeam != nil {
		teams = append(teams, *created.CreatorTeam)
	}
	for n := len(teams) + 1; n <= d.TeamCount; n++ {
		team, err := s.drafts.JoinDraft(ctx, d.ID, fmt.Sprintf("Team %d", n), fmt.Sprintf("bot-%d", n))
		if err != nil {
			return d.ID, fmt.Errorf("join team %d: %w", n, err)
		}
		teams = append(teams, team)
	}

	if _, err := s.drafts.StartDraft(ctx, d.ID); err != nil {
		return d.ID, fmt.Errorf("start draft: %w", err)
	}

	run := draftRun{
		id:           d.ID,
		scoring:      d.ScoringType,
		rosterSize:   d.RosterSize,
		requirements: created.Requirements,
	}

	bots := concpool.New().WithContext(ctx).WithCancelOnError()
	for _, team := range teams {
		teamID := team.ID
		bots.Go(func(ctx context.Context) error {
			return s.runBot(ctx, run, teamID, c)
		})
	}
	if err := bots.Wait(); err != nil {
		return d.ID, err
	}

	details, err := s.drafts.GetDraft(ctx, d.ID)
	if err != nil {
		return d.ID, fmt.Errorf("read final draft: %w", err)
	}
	if details.Draft.Status != draft.StatusEnded {
		return d.ID, fmt.Errorf("draft finished in status %s", details.Draft.Status)
	}
	if want := draft.TotalPicks(details.JoinedTeams, d.RosterSize); details.PicksMade != want {
		return d.ID, fmt.Errorf("draft ended with %d picks, want %d", details.PicksMade, want)
	}

	return d.ID, nil
}

// runBot picks for one team until the draft is no longer active.
func (s *Simulator) runBot(ctx context.Context, run draftRun, teamID string, c *counters) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		turn, err := s.drafts.CurrentTurnTeam(ctx, run.id)
		switch {
		case errors.Is(err, draft.ErrDraftNotActive):
			return nil
		case draft.IsRetryable(err):
			c.conflicts.Add(1)
			continue
		case err != nil:
			return fmt.Errorf("team %s: current turn: %w", teamID, err)
		}

		if turn.TeamID != teamID && !s.cfg.Eager {
			if err := s.wait(ctx); err != nil {
				return err
			}
			continue
		}

		picked, err := s.pickBest(ctx, run, teamID, c)
		if errors.Is(err, errRosterFull) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("team %s: %w", teamID, err)
		}
		if !picked {
			if err := s.wait(ctx); err != nil {
				return err
			}
		}
	}
}

// pickBest attempts the highest scoring player the roster can still take. It
// reports false when the engine turned the attempt down for turn or availability.
func (s *Simulator) pickBest(ctx context.Context, run draftRun, teamID string, c *counters) (bool, error) {
	made, err := s.picks.ListPicks(ctx, run.id)
	if err != nil {
		if draft.IsRetryable(err) {
			c.conflicts.Add(1)
			return false, nil
		}
		return false, fmt.Errorf("list picks: %w", err)
	}

	taken := make(map[string]struct{}, len(made))
	own := make(map[player.Position]int)
	filled := 0
	for _, p := range made {
		taken[p.PlayerID] = struct{}{}
		if p.TeamID == teamID {
			own[p.Position]++
			filled++
		}
	}
	if filled >= run.rosterSize {
		return false, errRosterFull
	}

	board := make(map[player.Position][]player.Player)
	for _, pos := range eligiblePositions(run.requirements, run.rosterSize, own) {
		items, err := s.players.ListPlayersByPosition(ctx, string(pos))
		if err != nil {
			return false, fmt.Errorf("list %s players: %w", pos, err)
		}
		board[pos] = items
	}

	choice, ok := bestAvailable(board, taken, run.scoring)
	if !ok {
		return false, fmt.Errorf("no eligible player left (own=%v)", own)
	}

	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = 5 * time.Millisecond
	retry.MaxInterval = 100 * time.Millisecond

	_, err = backoff.Retry(ctx, func() (draft.Selection, error) {
		sel, err := s.picks.AttemptPick(ctx, teamID, choice.ID)
		if draft.IsRetryable(err) {
			c.conflicts.Add(1)
			return sel, err
		}
		if err != nil {
			return sel, backoff.Permanent(err)
		}
		return sel, nil
	}, backoff.WithBackOff(retry), backoff.WithMaxTries(maxPickAttempts))

	switch draft.KindOf(err) {
	case draft.KindNone:
		if err != nil {
			return false, fmt.Errorf("attempt pick %s: %w", choice.ID, err)
		}
		c.picks.Add(1)
		return true, nil
	case draft.KindNotYourTurn, draft.KindPlayerUnavailable, draft.KindDraftNotActive:
		c.rejections.Add(1)
		return false, nil
	case draft.KindSerializationConflict:
		return false, nil
	default:
		return false, fmt.Errorf("attempt pick %s: %w", choice.ID, err)
	}
}

func (s *Simulator) wait(ctx context.Context) error {
	timer := time.NewTimer(s.pollInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// eligiblePositions lists the positions a roster may draft next without breaking
// a maximum or leaving a minimum unreachable.
func eligiblePositions(reqs []draft.PositionRequirement, rosterSize int, own map[player.Position]int) []player.Position {
	needed := draft.NeededByPosition(reqs, own)
	totalNeeded := 0
	for _, n := range needed {
		totalNeeded += n
	}
	filled := 0
	for _, n := range own {
		filled += n
	}
	slotsLeft := rosterSize - filled

	index := draft.RequirementIndex(reqs)
	out := make([]player.Position, 0, len(player.OrderedPositions))
	for _, pos := range player.OrderedPositions {
		req, ok := index[pos]
		if !ok || own[pos] >= req.Max {
			continue
		}
		if slotsLeft <= totalNeeded && needed[pos] == 0 {
			continue
		}
		out = append(out, pos)
	}
	return out
}

func bestAvailable(board map[player.Position][]player.Player, taken map[string]struct{}, scoring draft.ScoringType) (player.Player, bool) {
	var (
		best  player.Player
		score float64
		found bool
	)
	for _, pos := range player.OrderedPositions {
		for _, p := range board[pos] {
			if _, gone := taken[p.ID]; gone {
				continue
			}
			points := p.StandardPoints
			if scoring == draft.ScoringPPR {
				points = p.PPRPoints
			}
			if !found || points > score {
				best, score, found = p, points, true
			}
		}
	}
	return best, found
}
