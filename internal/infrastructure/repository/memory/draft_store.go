package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/mockmaster/internal/domain/draft"
)

type state struct {
	drafts       map[string]draft.Draft
	requirements map[string][]draft.PositionRequirement
	teams        map[string]draft.Team
	teamsByDraft map[string][]string
	selections   map[string][]draft.Selection
}

func newState() *state {
	return &state{
		drafts:       make(map[string]draft.Draft),
		requirements: make(map[string][]draft.PositionRequirement),
		teams:        make(map[string]draft.Team),
		teamsByDraft: make(map[string][]string),
		selections:   make(map[string][]draft.Selection),
	}
}

func (s *state) clone() *state {
	out := newState()
	for k, v := range s.drafts {
		out.drafts[k] = v
	}
	for k, v := range s.requirements {
		out.requirements[k] = append([]draft.PositionRequirement(nil), v...)
	}
	for k, v := range s.teams {
		out.teams[k] = cloneTeam(v)
	}
	for k, v := range s.teamsByDraft {
		out.teamsByDraft[k] = append([]string(nil), v...)
	}
	for k, v := range s.selections {
		out.selections[k] = append([]draft.Selection(nil), v...)
	}
	return out
}

// DraftStore keeps drafts in process memory. Scopes run one at a time; each one
// works on a private copy of the state that replaces the committed state only
// when the scope returns nil.
type DraftStore struct {
	mu    sync.Mutex
	state *state
}

var (
	_ draft.Store      = (*DraftStore)(nil)
	_ draft.Repository = (*txRepository)(nil)
)

func NewDraftStore() *DraftStore {
	return &DraftStore{state: newState()}
}

func (s *DraftStore) RunInTx(ctx context.Context, fn func(ctx context.Context, repo draft.Repository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &txRepository{base: s.state}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if tx.work != nil {
		s.state = tx.work
	}
	return nil
}

type txRepository struct {
	base *state
	work *state
}

func (r *txRepository) read() *state {
	if r.work != nil {
		return r.work
	}
	return r.base
}

func (r *txRepository) write() *state {
	if r.work == nil {
		r.work = r.base.clone()
	}
	return r.work
}

func (r *txRepository) CreateDraft(_ context.Context, d draft.Draft) error {
	if _, exists := r.read().drafts[d.ID]; exists {
		return fmt.Errorf("draft %s already exists", d.ID)
	}
	r.write().drafts[d.ID] = d
	return nil
}

func (r *txRepository) GetDraft(_ context.Context, draftID string) (draft.Draft, bool, error) {
	d, ok := r.read().drafts[draftID]
	return d, ok, nil
}

func (r *txRepository) UpdateDraftStatus(_ context.Context, draftID string, status draft.Status, updatedAt time.Time) error {
	d, ok := r.read().drafts[draftID]
	if !ok {
		return fmt.Errorf("%w: draft=%s", draft.ErrDraftNotFound, draftID)
	}
	d.Status = status
	d.UpdatedAt = updatedAt
	r.write().drafts[draftID] = d
	return nil
}

func (r *txRepository) InsertRequirements(_ context.Context, reqs []draft.PositionRequirement) error {
	st := r.write()
	for _, req := range reqs {
		for _, existing := range st.requirements[req.DraftID] {
			if existing.Position == req.Position {
				return fmt.Errorf("requirement %s already set for draft %s", req.Position, req.DraftID)
			}
		}
		st.requirements[req.DraftID] = append(st.requirements[req.DraftID], req)
	}
	return nil
}

func (r *txRepository) ListRequirements(_ context.Context, draftID string) ([]draft.PositionRequirement, error) {
	return append([]draft.PositionRequirement(nil), r.read().requirements[draftID]...), nil
}

func (r *txRepository) InsertTeam(_ context.Context, team draft.Team) error {
	if _, exists := r.read().teams[team.ID]; exists {
		return fmt.Errorf("team %s already exists", team.ID)
	}
	st := r.write()
	st.teams[team.ID] = cloneTeam(team)
	st.teamsByDraft[team.DraftID] = append(st.teamsByDraft[team.DraftID], team.ID)
	return nil
}

func (r *txRepository) GetTeam(_ context.Context, teamID string) (draft.Team, bool, error) {
	t, ok := r.read().teams[teamID]
	if !ok {
		return draft.Team{}, false, nil
	}
	return cloneTeam(t), true, nil
}

func (r *txRepository) ListTeams(_ context.Context, draftID string) ([]draft.Team, error) {
	st := r.read()
	ids := st.teamsByDraft[draftID]
	out := make([]draft.Team, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneTeam(st.teams[id]))
	}

	// ids are in join order, so a stable sort on seat keeps unseated teams in join order.
	sort.SliceStable(out, func(i, j int) bool {
		si, iSeated := out[i].Seat()
		sj, jSeated := out[j].Seat()
		switch {
		case iSeated && jSeated:
			return si < sj
		default:
			return iSeated && !jSeated
		}
	})
	return out, nil
}

func (r *txRepository) UpdateTeamName(_ context.Context, teamID, name string) error {
	t, ok := r.read().teams[teamID]
	if !ok {
		return fmt.Errorf("%w: team=%s", draft.ErrTeamNotFound, teamID)
	}
	t.Name = name
	r.write().teams[teamID] = t
	return nil
}

func (r *txRepository) AssignSeats(_ context.Context, draftID string, seats map[string]int) error {
	st := r.write()
	for teamID, seat := range seats {
		t, ok := st.teams[teamID]
		if !ok || t.DraftID != draftID {
			return fmt.Errorf("%w: team=%s draft=%s", draft.ErrTeamNotFound, teamID, draftID)
		}
		seat := seat
		t.DraftPosition = &seat
		st.teams[teamID] = t
	}
	return nil
}

func (r *txRepository) CountSelections(_ context.Context, draftID string) (int, error) {
	return len(r.read().selections[draftID]), nil
}

func (r *txRepository) IsPlayerSelected(_ context.Context, draftID, playerID string) (bool, error) {
	for _, sel := range r.read().selections[draftID] {
		if sel.PlayerID == playerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *txRepository) ListTeamSelections(_ context.Context, teamID string) ([]draft.Selection, error) {
	st := r.read()
	t, ok := st.teams[teamID]
	if !ok {
		return nil, nil
	}
	out := make([]draft.Selection, 0)
	for _, sel := range st.selections[t.DraftID] {
		if sel.TeamID == teamID {
			out = append(out, sel)
		}
	}
	return out, nil
}

func (r *txRepository) ListPicks(_ context.Context, draftID string) ([]draft.PickView, error) {
	st := r.read()
	selections := st.selections[draftID]
	out := make([]draft.PickView, 0, len(selections))
	for _, sel := range selections {
		out = append(out, draft.PickView{
			WhenSelected: sel.WhenSelected,
			PlayerID:     sel.PlayerID,
			Position:     sel.Position,
			TeamID:       sel.TeamID,
			TeamName:     st.teams[sel.TeamID].Name,
		})
	}
	return out, nil
}

// InsertSelection enforces the same uniqueness the selections table does. Picks
// are appended in sequence order, so the slice stays sorted by WhenSelected.
func (r *txRepository) InsertSelection(_ context.Context, sel draft.Selection) error {
	existing := r.read().selections[sel.DraftID]
	for _, s := range existing {
		if s.PlayerID == sel.PlayerID || s.WhenSelected == sel.WhenSelected {
			return fmt.Errorf("%w: duplicate selection player=%s seq=%d",
				draft.ErrSerializationConflict, sel.PlayerID, sel.WhenSelected)
		}
	}
	if sel.WhenSelected != len(existing)+1 {
		return fmt.Errorf("%w: selection seq=%d after %d picks",
			draft.ErrSerializationConflict, sel.WhenSelected, len(existing))
	}
	st := r.write()
	st.selections[sel.DraftID] = append(st.selections[sel.DraftID], sel)
	return nil
}

func cloneTeam(t draft.Team) draft.Team {
	copied := t
	if t.DraftPosition != nil {
		seat := *t.DraftPosition
		copied.DraftPosition = &seat
	}
	return copied
}
