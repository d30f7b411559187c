package player

import "context"

// Repository is the read-only player pool.
type Repository interface {
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	// ListByPosition orders by standard points, best first.
	ListByPosition(ctx context.Context, pos Position) ([]Player, error)
}
