package postgres

import (
	"database/sql"
	"time"
)

type draftTableModel struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	ScoringType string    `db:"scoring_type"`
	TeamCount   int       `db:"team_count"`
	RosterSize  int       `db:"roster_size"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type requirementTableModel struct {
	DraftID  string `db:"draft_id"`
	Position string `db:"position"`
	MinCount int    `db:"min_count"`
	MaxCount int    `db:"max_count"`
}

type teamTableModel struct {
	ID            string        `db:"id"`
	DraftID       string        `db:"draft_id"`
	Name          string        `db:"name"`
	UserName      string        `db:"user_name"`
	DraftPosition sql.NullInt64 `db:"draft_position"`
	CreatedAt     time.Time     `db:"created_at"`
}

type selectionTableModel struct {
	DraftID      string    `db:"draft_id"`
	TeamID       string    `db:"team_id"`
	PlayerID     string    `db:"player_id"`
	Position     string    `db:"position"`
	WhenSelected int       `db:"when_selected"`
	CreatedAt    time.Time `db:"created_at"`
}

type pickViewModel struct {
	WhenSelected int    `db:"when_selected"`
	PlayerID     string `db:"player_id"`
	Position     string `db:"position"`
	TeamID       string `db:"team_id"`
	TeamName     string `db:"team_name"`
}
