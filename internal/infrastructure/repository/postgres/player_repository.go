package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/mockmaster/internal/domain/player"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var _ player.Repository = (*PlayerRepository)(nil)

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

const playerColumns = `id, name, position, club, age, standard_points, ppr_points`

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, `SELECT `+playerColumns+` FROM players WHERE id = $1`, playerID); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, wrapDBError(err, "get player")
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) ListByPosition(ctx context.Context, pos player.Position) ([]player.Player, error) {
	const query = `SELECT ` + playerColumns + `
FROM players
WHERE position = $1
ORDER BY standard_points DESC, id`

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, string(pos)); err != nil {
		return nil, wrapDBError(err, "list players by position")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:             row.ID,
		Name:           row.Name,
		Position:       player.Position(row.Position),
		Club:           row.Club,
		Age:            row.Age,
		StandardPoints: row.StandardPoints,
		PPRPoints:      row.PPRPoints,
	}
}
