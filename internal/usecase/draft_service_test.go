package usecase

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/mockmaster/internal/domain/draft"
	"github.com/riskibarqy/mockmaster/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/mockmaster/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

type sequenceIDGenerator struct {
	prefix string
	n      atomic.Int64
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	return fmt.Sprintf("%s-%03d", g.prefix, g.n.Add(1)), nil
}

// identityShuffle seats teams in the order they joined.
func identityShuffle(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

type draftFixture struct {
	store   *memory.DraftStore
	players *memory.PlayerRepository
	drafts  *DraftService
	picks   *PickService
	teams   *TeamService
}

func newDraftFixture(t *testing.T) *draftFixture {
	t.Helper()

	store := memory.NewDraftStore()
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	logger := logging.NewNop()
	now := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)

	drafts := NewDraftService(store, &sequenceIDGenerator{prefix: "id"}, identityShuffle, logger)
	drafts.now = func() time.Time { return now }
	picks := NewPickService(store, players, logger)
	picks.now = func() time.Time { return now }

	return &draftFixture{
		store:   store,
		players: players,
		drafts:  drafts,
		picks:   picks,
		teams:   NewTeamService(store, logger),
	}
}

func (f *draftFixture) pendingDraft(t *testing.T, teamCount, rosterSize, joined int) (draft.Draft, []draft.Team) {
	t.Helper()

	created, err := f.drafts.CreateDraft(t.Context(), CreateDraftInput{
		Name:        "Sunday Mock",
		ScoringType: "PPR",
		TeamCount:   teamCount,
		RosterSize:  rosterSize,
	})
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}

	teams := make([]draft.Team, 0, joined)
	for i := 1; i <= joined; i++ {
		team, err := f.drafts.JoinDraft(t.Context(), created.Draft.ID, fmt.Sprintf("Team %02d", i), fmt.Sprintf("user%d", i))
		if err != nil {
			t.Fatalf("join team %d: %v", i, err)
		}
		teams = append(teams, team)
	}
	return created.Draft, teams
}

// startedDraft returns an active draft whose teams are indexed by seat-1.
func (f *draftFixture) startedDraft(t *testing.T, teamCount, rosterSize int) (draft.Draft, []draft.Team) {
	t.Helper()

	d, teams := f.pendingDraft(t, teamCount, rosterSize, teamCount)
	started, err := f.drafts.StartDraft(t.Context(), d.ID)
	if err != nil {
		t.Fatalf("start draft: %v", err)
	}
	return started, teams
}

func TestDraftService_CreateDraft_WithCreatorTeam(t *testing.T) {
	t.Parallel()

	f := newDraftFixture(t)
	created, err := f.drafts.CreateDraft(t.Context(), CreateDraftInput{
		Name:        "Office League",
		ScoringType: "standard",
		TeamCount:   10,
		RosterSize:  10,
		TeamName:    "Blitz Bros",
		UserName:    "dana",
	})
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if created.Draft.Status != draft.StatusPending {
		t.Fatalf("expected pending draft, got %s", created.Draft.Status)
	}
	if created.Draft.ScoringType != draft.ScoringStandard {
		t.Fatalf("unexpected scoring type: %s", created.Draft.ScoringType)
	}
	if len(created.Requirements) != 4 {
		t.Fatalf("expected 4 requirements, got %d", len(created.Requirements))
	}
	if created.CreatorTeam == nil || created.CreatorTeam.Name != "Blitz Bros" {
		t.Fatalf("expected creator team, got %+v", created.CreatorTeam)
	}

	details, err := f.drafts.GetDraft(t.Context(), created.Draft.ID)
	if err != nil {
		t.Fatalf("get draft: %v", err)
	}
	if details.JoinedTeams != 1 || details.PicksMade != 0 {
		t.Fatalf("unexpected details: joined=%d picks=%d", details.JoinedTeams, details.PicksMade)
	}
	for _, r := range details.Requirements {
		if r.Min != 1 || r.Max != 4 {
			t.Fatalf("unexpected requirement for roster 10: %+v", r)
		}
	}
}

func TestDraftService_CreateDraft_InvalidInput(t *testing.T) {
	t.Parallel()

	valid := CreateDraftInput{Name: "Mock", ScoringType: "PPR", TeamCount: 4, RosterSize: 8}
	cases := []struct {
		name   string
		mutate func(in *CreateDraftInput)
	}{
		{name: "empty name", mutate: func(in *CreateDraftInput) { in.Name = "  " }},
		{name: "unknown scoring", mutate: func(in *CreateDraftInput) { in.ScoringType = "half" }},
		{name: "zero teams", mutate: func(in *CreateDraftInput) { in.TeamCount = 0 }},
		{name: "too many teams", mutate: func(in *CreateDraftInput) { in.TeamCount = maxTeamCount + 1 }},
		{name: "zero roster", mutate: func(in *CreateDraftInput) { in.RosterSize = 0 }},
		{name: "huge roster", mutate: func(in *CreateDraftInput) { in.RosterSize = 40 }},
		{name: "short creator team name", mutate: func(in *CreateDraftInput) {
			in.TeamName = "ab"
			in.UserName = "dana"
		}},
		{name: "creator team without user", mutate: func(in *CreateDraftInput) { in.TeamName = "Blitz Bros" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newDraftFixture(t)
			in := valid
			tc.mutate(&in)
			_, err := f.drafts.CreateDraft(t.Context(), in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestDraftService_JoinDraft(t *testing.T) {
	t.Parallel()

	f := newDraftFixture(t)
	d, _ := f.pendingDraft(t, 2, 8, 2)

	if _, err := f.drafts.JoinDraft(t.Context(), d.ID, "Latecomers", "eve"); !errors.Is(err, draft.ErrDraftFull) {
		t.Fatalf("expected ErrDraftFull, got %v", err)
	}
	if _, err := f.drafts.JoinDraft(t.Context(), "missing", "Latecomers", "eve"); !errors.Is(err, draft.ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
	if _, err := f.drafts.JoinDraft(t.Context(), d.ID, "No", "eve"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short name, got %v", err)
	}

	open, _ := f.pendingDraft(t, 4, 8, 1)
	if _, err := f.drafts.StartDraft(t.Context(), open.ID); err != nil {
		t.Fatalf("start draft: %v", err)
	}
	if _, err := f.drafts.JoinDraft(t.Context(), open.ID, "Latecomers", "eve"); !errors.Is(err, draft.ErrDraftNotJoinable) {
		t.Fatalf("expected ErrDraftNotJoinable, got %v", err)
	}
}

func TestDraftService_JoinDraft_ConcurrentJoinsFillExactly(t *testing.T) {
	t.Parallel()

	f := newDraftFixture(t)
	d, _ := f.pendingDraft(t, 4, 8, 0)

	var (
		joined atomic.Int64
		full   atomic.Int64
		mu     sync.Mutex
		other  []error
	)
	var wg conc.WaitGroup
	for i := 1; i <= 12; i++ {
		wg.Go(func() {
			_, err := f.drafts.JoinDraft(t.Context(), d.ID, fmt.Sprintf("Racer %02d", i), fmt.Sprintf("user%d", i))
			switch {
			case err == nil:
				joined.Add(1)
			case errors.Is(err, draft.ErrDraftFull):
				full.Add(1)
			default:
				mu.Lock()
				other = append(other, err)
				mu.Unlock()
			}
		})
	}
	wg.Wait()

	if len(other) != 0 {
		t.Fatalf("unexpected join errors: %v", other)
	}
	if joined.Load() != int64(d.TeamCount) || full.Load() != 12-int64(d.TeamCount) {
		t.Fatalf("expected %d joins and %d full rejections, got %d and %d", d.TeamCount, 12-d.TeamCount, joined.Load(), full.Load())
	}

	details, err := f.drafts.GetDraft(t.Context(), d.ID)
	if err != nil {
		t.Fatalf("get draft: %v", err)
	}
	if details.JoinedTeams != d.TeamCount {
		t.Fatalf("expected %d joined teams, got %d", d.TeamCount, details.JoinedTeams)
	}
}

func TestDraftService_StartDraft_RacesJoins(t *testing.T) {
	t.Parallel()

	for round := 0; round < 20; round++ {
		f := newDraftFixture(t)
		d, _ := f.pendingDraft(t, 6, 8, 1)

		var (
			mu       sync.Mutex
			joinErrs []error
			startErr error
		)
		var wg conc.WaitGroup
		wg.Go(func() {
			_, err := f.drafts.StartDraft(t.Context(), d.ID)
			mu.Lock()
			startErr = err
			mu.Unlock()
		})
		for i := 2; i <= 5; i++ {
			wg.Go(func() {
				_, err := f.drafts.JoinDraft(t.Context(), d.ID, fmt.Sprintf("Racer %02d", i), fmt.Sprintf("user%d", i))
				mu.Lock()
				joinErrs = append(joinErrs, err)
				mu.Unlock()
			})
		}
		wg.Wait()

		if startErr != nil {
			t.Fatalf("round %d: start draft: %v", round, startErr)
		}
		for _, err := range joinErrs {
			if err != nil && !errors.Is(err, draft.ErrDraftNotJoinable) {
				t.Fatalf("round %d: expected join to succeed or see a started draft, got %v", round, err)
			}
		}

		details, err := f.drafts.GetDraft(t.Context(), d.ID)
		if err != nil {
			t.Fatalf("round %d: get draft: %v", round, err)
		}
		if details.Draft.Status != draft.StatusActive {
			t.Fatalf("round %d: expected active, got %s", round, details.Draft.Status)
		}
		seats, err := f.drafts.ListSeatOrder(t.Context(), d.ID)
		if err != nil {
			t.Fatalf("round %d: list seats: %v", round, err)
		}
		if len(seats) != details.JoinedTeams {
			t.Fatalf("round %d: %d teams joined but %d seated", round, details.JoinedTeams, len(seats))
		}
	}
}

func TestDraftService_StartDraft_SeatsEveryTeam(t *testing.T) {
	t.Parallel()

	f := newDraftFixture(t)
	f.drafts.shuffle = draft.RandomShuffler()
	d, teams := f.pendingDraft(t, 6, 8, 5)

	seats, err := f.drafts.ListSeatOrder(t.Context(), d.ID)
	if err != nil {
		t.Fatalf("list seats before start: %v", err)
	}
	if len(seats) != 0 {
		t.Fatalf("expected no seats before start, got %d", len(seats))
	}

	started, err := f.drafts.StartDraft(t.Context(), d.ID)
	if err != nil {
		t.Fatalf("start draft: %v", err)
	}
	if started.Status != draft.StatusActive {
		t.Fatalf("expected active, got %s", started.Status)
	}

	seats, err = f.drafts.ListSeatOrder(t.Context(), d.ID)
	if err != nil {
		t.Fatalf("list seats: %v", err)
	}
	if len(seats) != len(teams) {
		t.Fatalf("expected %d seats, got %d", len(teams), len(seats))
	}
	for i, s := range seats {
		if s.Seat != i+1 {
			t.Fatalf("seat order broken at %d: %+v", i, seats)
		}
	}

	if _, err := f.drafts.StartDraft(t.Context(), d.ID); !errors.Is(err, draft.ErrDraftNotPending) {
		t.Fatalf("expected ErrDraftNotPending on second start, got %v", err)
	}
}

func TestDraftService_StartDraft_NoTeams(t *testing.T) {
	t.Parallel()

	f := newDraftFixture(t)
	d, _ := f.pendingDraft(t, 4, 8, 0)
	if _, err := f.drafts.StartDraft(t.Context(), d.ID); !errors.Is(err, draft.ErrNoTeamsToStart) {
		t.Fatalf("expected ErrNoTeamsToStart, got %v", err)
	}
}

func TestDraftService_LifecycleTransitions(t *testing.T) {
	t.Parallel()

	f := newDraftFixture(t)
	d, _ := f.pendingDraft(t, 2, 8, 2)
	ctx := t.Context()

	if _, err := f.drafts.PauseDraft(ctx, d.ID); !errors.Is(err, draft.ErrDraftNotActive) {
		t.Fatalf("pause pending: expected ErrDraftNotActive, got %v", err)
	}
	if _, err := f.drafts.StartDraft(ctx, d.ID); err != nil {
		t.Fatalf("start: %v", err)
	}
	paused, err := f.drafts.PauseDraft(ctx, d.ID)
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	if paused.Status != draft.StatusPaused {
		t.Fatalf("expected paused, got %s", paused.Status)
	}
	if _, err := f.drafts.PauseDraft(ctx, d.ID); !errors.Is(err, draft.ErrDraftNotActive) {
		t.Fatalf("pause paused: expected ErrDraftNotActive, got %v", err)
	}
	if _, err := f.drafts.EndDraft(ctx, d.ID); !errors.Is(err, draft.ErrDraftNotActive) {
		t.Fatalf("end paused: expected ErrDraftNotActive, got %v", err)
	}
	if _, err := f.drafts.ResumeDraft(ctx, d.ID); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if _, err := f.drafts.ResumeDraft(ctx, d.ID); !errors.Is(err, draft.ErrDraftNotPaused) {
		t.Fatalf("resume active: expected ErrDraftNotPaused, got %v", err)
	}
	ended, err := f.drafts.EndDraft(ctx, d.ID)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if ended.Status != draft.StatusEnded {
		t.Fatalf("expected ended, got %s", ended.Status)
	}

	for name, op := range map[string]func() error{
		"start":  func() error { _, err := f.drafts.StartDraft(ctx, d.ID); return err },
		"pause":  func() error { _, err := f.drafts.PauseDraft(ctx, d.ID); return err },
		"resume": func() error { _, err := f.drafts.ResumeDraft(ctx, d.ID); return err },
		"end":    func() error { _, err := f.drafts.EndDraft(ctx, d.ID); return err },
	} {
		if err := op(); !errors.Is(err, draft.ErrDraftAlreadyEnded) {
			t.Fatalf("%s after end: expected ErrDraftAlreadyEnded, got %v", name, err)
		}
	}
}

func TestDraftService_CurrentTurnTeam_Snake(t *testing.T) {
	t.Parallel()

	f := newDraftFixture(t)
	d, teams := f.startedDraft(t, 3, 8)

	wantSeats := []int{1, 2, 3, 3, 2, 1}
	positions := []string{"nfl-qb-01", "nfl-rb-01", "nfl-wr-01", "nfl-te-01", "nfl-qb-02", "nfl-rb-02"}
	for i, seat := range wantSeats {
		turn, err := f.drafts.CurrentTurnTeam(t.Context(), d.ID)
		if err != nil {
			t.Fatalf("current turn %d: %v", i, err)
		}
		if turn.Seat != seat || turn.TeamID != teams[seat-1].ID {
			t.Fatalf("pick %d: got seat %d team %s, want seat %d", i+1, turn.Seat, turn.TeamID, seat)
		}
		if turn.OverallPick != i+1 || turn.Round != i/3+1 {
			t.Fatalf("pick %d: unexpected overall=%d round=%d", i+1, turn.OverallPick, turn.Round)
		}
		if _, err := f.picks.AttemptPick(t.Context(), turn.TeamID, positions[i]); err != nil {
			t.Fatalf("pick %d: %v", i+1, err)
		}
	}
}

func TestDraftService_CurrentTurnTeam_RequiresActive(t *testing.T) {
	t.Parallel()

	f := newDraftFixture(t)
	d, _ := f.pendingDraft(t, 2, 8, 2)
	if _, err := f.drafts.CurrentTurnTeam(t.Context(), d.ID); !errors.Is(err, draft.ErrDraftNotActive) {
		t.Fatalf("expected ErrDraftNotActive, got %v", err)
	}
	if _, err := f.drafts.GetDraft(t.Context(), "missing"); !errors.Is(err, draft.ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
}
