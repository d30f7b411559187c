package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/mockmaster/internal/domain/player"
	basecache "github.com/riskibarqy/mockmaster/internal/platform/cache"
)

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

// PlayerRepository caches the player pool, which never changes while a draft runs.
// Misses are cached as well.
type PlayerRepository struct {
	next       player.Repository
	byID       *basecache.Store[cachedPlayerByID]
	byPosition *basecache.Store[[]player.Player]
}

var _ player.Repository = (*PlayerRepository)(nil)

func NewPlayerRepository(next player.Repository, ttl time.Duration) *PlayerRepository {
	return &PlayerRepository{
		next:       next,
		byID:       basecache.NewStore[cachedPlayerByID](ttl),
		byPosition: basecache.NewStore[[]player.Player](ttl),
	}
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	cached, err := r.byID.GetOrLoad(ctx, "player:id:"+playerID, func(ctx context.Context) (cachedPlayerByID, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return cachedPlayerByID{}, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) ListByPosition(ctx context.Context, pos player.Position) ([]player.Player, error) {
	items, err := r.byPosition.GetOrLoad(ctx, "player:position:"+string(pos), func(ctx context.Context) ([]player.Player, error) {
		items, err := r.next.ListByPosition(ctx, pos)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]player.Player(nil), items...), nil
}
