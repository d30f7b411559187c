package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/mockmaster/internal/domain/draft"
	"github.com/riskibarqy/mockmaster/internal/domain/player"
)

type DraftStore struct {
	db *sqlx.DB
}

var (
	_ draft.Store      = (*DraftStore)(nil)
	_ draft.Repository = (*txRepository)(nil)
)

func NewDraftStore(db *sqlx.DB) *DraftStore {
	return &DraftStore{db: db}
}

// RunInTx runs fn in a SERIALIZABLE transaction. Any error from fn rolls back.
func (s *DraftStore) RunInTx(ctx context.Context, fn func(ctx context.Context, repo draft.Repository) error) error {
	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return wrapDBError(err, "begin serializable tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(ctx, &txRepository{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return wrapDBError(err, "commit tx")
	}

	return nil
}

type txRepository struct {
	tx *sqlx.Tx
}

func (r *txRepository) namedExec(ctx context.Context, query string, args map[string]any, op string) (sql.Result, error) {
	bound, boundArgs, err := sqlx.Named(query, args)
	if err != nil {
		return nil, errors.Wrapf(err, "bind %s query", op)
	}
	res, err := r.tx.ExecContext(ctx, r.tx.Rebind(bound), boundArgs...)
	if err != nil {
		return nil, wrapDBError(err, op)
	}
	return res, nil
}

func (r *txRepository) CreateDraft(ctx context.Context, d draft.Draft) error {
	const query = `
INSERT INTO drafts (id, name, scoring_type, team_count, roster_size, status, created_at, updated_at)
VALUES (:id, :name, :scoring_type, :team_count, :roster_size, :status, :created_at, :updated_at)`

	_, err := r.namedExec(ctx, query, map[string]any{
		"id":           d.ID,
		"name":         d.Name,
		"scoring_type": string(d.ScoringType),
		"team_count":   d.TeamCount,
		"roster_size":  d.RosterSize,
		"status":       string(d.Status),
		"created_at":   d.CreatedAt,
		"updated_at":   d.UpdatedAt,
	}, "insert draft")
	return err
}

func (r *txRepository) GetDraft(ctx context.Context, draftID string) (draft.Draft, bool, error) {
	const query = `
SELECT id, name, scoring_type, team_count, roster_size, status, created_at, updated_at
FROM drafts
WHERE id = $1`

	var row draftTableModel
	if err := r.tx.GetContext(ctx, &row, query, draftID); err != nil {
		if isNotFound(err) {
			return draft.Draft{}, false, nil
		}
		return draft.Draft{}, false, wrapDBError(err, "get draft")
	}

	return draft.Draft{
		ID:          row.ID,
		Name:        row.Name,
		ScoringType: draft.ScoringType(row.ScoringType),
		TeamCount:   row.TeamCount,
		RosterSize:  row.RosterSize,
		Status:      draft.Status(row.Status),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, true, nil
}

func (r *txRepository) UpdateDraftStatus(ctx context.Context, draftID string, status draft.Status, updatedAt time.Time) error {
	const query = `
UPDATE drafts
SET status = :status, updated_at = :updated_at
WHERE id = :id`

	res, err := r.namedExec(ctx, query, map[string]any{
		"id":         draftID,
		"status":     string(status),
		"updated_at": updatedAt,
	}, "update draft status")
	if err != nil {
		return err
	}
	return expectAffected(res, 1, draft.ErrDraftNotFound, draftID)
}

func (r *txRepository) InsertRequirements(ctx context.Context, reqs []draft.PositionRequirement) error {
	const query = `
INSERT INTO position_requirements (draft_id, position, min_count, max_count)
VALUES (:draft_id, :position, :min_count, :max_count)`

	for _, req := range reqs {
		if _, err := r.namedExec(ctx, query, map[string]any{
			"draft_id":  req.DraftID,
			"position":  string(req.Position),
			"min_count": req.Min,
			"max_count": req.Max,
		}, "insert position requirement "+string(req.Position)); err != nil {
			return err
		}
	}
	return nil
}

func (r *txRepository) ListRequirements(ctx context.Context, draftID string) ([]draft.PositionRequirement, error) {
	const query = `
SELECT draft_id, position, min_count, max_count
FROM position_requirements
WHERE draft_id = $1
ORDER BY position`

	var rows []requirementTableModel
	if err := r.tx.SelectContext(ctx, &rows, query, draftID); err != nil {
		return nil, wrapDBError(err, "list position requirements")
	}

	out := make([]draft.PositionRequirement, 0, len(rows))
	for _, row := range rows {
		out = append(out, draft.PositionRequirement{
			DraftID:  row.DraftID,
			Position: player.Position(row.Position),
			Min:      row.MinCount,
			Max:      row.MaxCount,
		})
	}
	return out, nil
}

func (r *txRepository) InsertTeam(ctx context.Context, team draft.Team) error {
	const query = `
INSERT INTO teams (id, draft_id, name, user_name, created_at)
VALUES (:id, :draft_id, :name, :user_name, :created_at)`

	_, err := r.namedExec(ctx, query, map[string]any{
		"id":         team.ID,
		"draft_id":   team.DraftID,
		"name":       team.Name,
		"user_name":  team.UserName,
		"created_at": team.CreatedAt,
	}, "insert team")
	return err
}

func (r *txRepository) GetTeam(ctx context.Context, teamID string) (draft.Team, bool, error) {
	const query = `
SELECT id, draft_id, name, user_name, draft_position, created_at
FROM teams
WHERE id = $1`

	var row teamTableModel
	if err := r.tx.GetContext(ctx, &row, query, teamID); err != nil {
		if isNotFound(err) {
			return draft.Team{}, false, nil
		}
		return draft.Team{}, false, wrapDBError(err, "get team")
	}
	return teamFromRow(row), true, nil
}

func (r *txRepository) ListTeams(ctx context.Context, draftID string) ([]draft.Team, error) {
	const query = `
SELECT id, draft_id, name, user_name, draft_position, created_at
FROM teams
WHERE draft_id = $1
ORDER BY draft_position NULLS LAST, created_at, id`

	var rows []teamTableModel
	if err := r.tx.SelectContext(ctx, &rows, query, draftID); err != nil {
		return nil, wrapDBError(err, "list teams")
	}

	out := make([]draft.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *txRepository) UpdateTeamName(ctx context.Context, teamID, name string) error {
	const query = `
UPDATE teams
SET name = :name
WHERE id = :id`

	res, err := r.namedExec(ctx, query, map[string]any{
		"id":   teamID,
		"name": name,
	}, "update team name")
	if err != nil {
		return err
	}
	return expectAffected(res, 1, draft.ErrTeamNotFound, teamID)
}

func (r *txRepository) AssignSeats(ctx context.Context, draftID string, seats map[string]int) error {
	const query = `
UPDATE teams
SET draft_position = :draft_position
WHERE id = :id
  AND draft_id = :draft_id`

	for teamID, seat := range seats {
		res, err := r.namedExec(ctx, query, map[string]any{
			"id":             teamID,
			"draft_id":       draftID,
			"draft_position": seat,
		}, "assign seat")
		if err != nil {
			return err
		}
		if err := expectAffected(res, 1, draft.ErrTeamNotFound, teamID); err != nil {
			return err
		}
	}
	return nil
}

func (r *txRepository) CountSelections(ctx context.Context, draftID string) (int, error) {
	var count int
	if err := r.tx.GetContext(ctx, &count, `SELECT COUNT(1) FROM selections WHERE draft_id = $1`, draftID); err != nil {
		return 0, wrapDBError(err, "count selections")
	}
	return count, nil
}

func (r *txRepository) IsPlayerSelected(ctx context.Context, draftID, playerID string) (bool, error) {
	const query = `
SELECT EXISTS (
    SELECT 1 FROM selections WHERE draft_id = $1 AND player_id = $2
)`

	var exists bool
	if err := r.tx.GetContext(ctx, &exists, query, draftID, playerID); err != nil {
		return false, wrapDBError(err, "check player selected")
	}
	return exists, nil
}

func (r *txRepository) ListTeamSelections(ctx context.Context, teamID string) ([]draft.Selection, error) {
	const query = `
SELECT draft_id, team_id, player_id, position, when_selected, created_at
FROM selections
WHERE team_id = $1
ORDER BY when_selected`

	var rows []selectionTableModel
	if err := r.tx.SelectContext(ctx, &rows, query, teamID); err != nil {
		return nil, wrapDBError(err, "list team selections")
	}

	out := make([]draft.Selection, 0, len(rows))
	for _, row := range rows {
		out = append(out, draft.Selection{
			DraftID:      row.DraftID,
			TeamID:       row.TeamID,
			PlayerID:     row.PlayerID,
			Position:     player.Position(row.Position),
			WhenSelected: row.WhenSelected,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, nil
}

func (r *txRepository) ListPicks(ctx context.Context, draftID string) ([]draft.PickView, error) {
	const query = `
SELECT s.when_selected, s.player_id, s.position, s.team_id, t.name AS team_name
FROM selections s
JOIN teams t ON t.id = s.team_id
WHERE s.draft_id = $1
ORDER BY s.when_selected`

	var rows []pickViewModel
	if err := r.tx.SelectContext(ctx, &rows, query, draftID); err != nil {
		return nil, wrapDBError(err, "list picks")
	}

	out := make([]draft.PickView, 0, len(rows))
	for _, row := range rows {
		out = append(out, draft.PickView{
			WhenSelected: row.WhenSelected,
			PlayerID:     row.PlayerID,
			Position:     player.Position(row.Position),
			TeamID:       row.TeamID,
			TeamName:     row.TeamName,
		})
	}
	return out, nil
}

func (r *txRepository) InsertSelection(ctx context.Context, sel draft.Selection) error {
	const query = `
INSERT INTO selections (draft_id, team_id, player_id, position, when_selected, created_at)
VALUES (:draft_id, :team_id, :player_id, :position, :when_selected, :created_at)`

	_, err := r.namedExec(ctx, query, map[string]any{
		"draft_id":      sel.DraftID,
		"team_id":       sel.TeamID,
		"player_id":     sel.PlayerID,
		"position":      string(sel.Position),
		"when_selected": sel.WhenSelected,
		"created_at":    sel.CreatedAt,
	}, "insert selection")
	return err
}

func teamFromRow(row teamTableModel) draft.Team {
	t := draft.Team{
		ID:        row.ID,
		DraftID:   row.DraftID,
		Name:      row.Name,
		UserName:  row.UserName,
		CreatedAt: row.CreatedAt,
	}
	if row.DraftPosition.Valid {
		seat := int(row.DraftPosition.Int64)
		t.DraftPosition = &seat
	}
	return t
}

func expectAffected(res sql.Result, want int64, notFound error, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if n != want {
		return fmt.Errorf("%w: id=%s", notFound, id)
	}
	return nil
}
