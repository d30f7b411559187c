package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/mockmaster/internal/domain/draft"
	"github.com/riskibarqy/mockmaster/internal/domain/player"
	"go.opentelemetry.io/otel/attribute"
)

type PlayerService struct {
	players player.Repository
}

func NewPlayerService(players player.Repository) *PlayerService {
	return &PlayerService{players: players}
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer", attribute.String("player.id", playerID))
	var err error
	defer func() { endSpan(span, err) }()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		err = fmt.Errorf("%w: player id is required", ErrInvalidInput)
		return player.Player{}, err
	}

	p, exists, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		err = fmt.Errorf("%w: get player: %v", ErrDependencyUnavailable, err)
		return player.Player{}, err
	}
	if !exists {
		err = fmt.Errorf("%w: player=%s", draft.ErrPlayerNotFound, playerID)
		return player.Player{}, err
	}

	return p, nil
}

// ListPlayersByPosition returns the pool for one position, best scorers first.
func (s *PlayerService) ListPlayersByPosition(ctx context.Context, rawPosition string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayersByPosition", attribute.String("player.position", rawPosition))
	var err error
	defer func() { endSpan(span, err) }()

	pos, parseErr := player.ParsePosition(rawPosition)
	if parseErr != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidInput, parseErr)
		return nil, err
	}

	items, err := s.players.ListByPosition(ctx, pos)
	if err != nil {
		err = fmt.Errorf("%w: list players by position: %v", ErrDependencyUnavailable, err)
		return nil, err
	}

	return items, nil
}
