package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/mockmaster/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	index map[string]player.Player
}

var _ player.Repository = (*PlayerRepository)(nil)

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	index := make(map[string]player.Player, len(players))
	for _, p := range players {
		index[p.ID] = p
	}

	return &PlayerRepository{index: index}
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.index[playerID]
	return p, ok, nil
}

// ListByPosition returns every player at pos, best standard season first.
func (r *PlayerRepository) ListByPosition(_ context.Context, pos player.Position) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, p := range r.index {
		if p.Position == pos {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StandardPoints != out[j].StandardPoints {
			return out[i].StandardPoints > out[j].StandardPoints
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
