package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/mockmaster/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the development player pool into an empty players table.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM players`); err != nil {
		return errors.Wrap(err, "count players for bootstrap seed")
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin seed tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, p := range memory.SeedPlayers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (id, name, position, club, age, standard_points, ppr_points)
VALUES (:id, :name, :position, :club, :age, :standard_points, :ppr_points)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":              p.ID,
			"name":            p.Name,
			"position":        string(p.Position),
			"club":            p.Club,
			"age":             p.Age,
			"standard_points": p.StandardPoints,
			"ppr_points":      p.PPRPoints,
		})
		if err != nil {
			return errors.Wrapf(err, "bind seed player %s query", p.ID)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return errors.Wrapf(err, "seed player %s", p.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit seed tx")
	}
	return nil
}
