package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/mockmaster/internal/config"
	"github.com/riskibarqy/mockmaster/internal/domain/draft"
	"github.com/riskibarqy/mockmaster/internal/domain/player"
	"github.com/riskibarqy/mockmaster/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/mockmaster/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/mockmaster/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/mockmaster/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/mockmaster/internal/platform/id"
	"github.com/riskibarqy/mockmaster/internal/platform/logging"
	"github.com/riskibarqy/mockmaster/internal/usecase"
)

// Services is the draft engine as seen by its entry points.
type Services struct {
	Drafts  *usecase.DraftService
	Picks   *usecase.PickService
	Teams   *usecase.TeamService
	Players *usecase.PlayerService
}

// NewServices wires the configured store behind the use cases. The returned
// closer releases the database pool and is safe to call on the memory store.
func NewServices(ctx context.Context, cfg config.Config, logger *logging.Logger) (Services, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	store, players, closer, err := newStore(ctx, cfg, logger)
	if err != nil {
		return Services{}, nil, err
	}
	if cfg.CacheEnabled {
		players = cache.NewPlayerRepository(players, cfg.CacheTTL)
	}

	return Services{
		Drafts:  usecase.NewDraftService(store, idgen.NewUUIDGenerator(), draft.RandomShuffler(), logger),
		Picks:   usecase.NewPickService(store, players, logger),
		Teams:   usecase.NewTeamService(store, logger),
		Players: usecase.NewPlayerService(players),
	}, closer, nil
}

func newStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (draft.Store, player.Repository, func() error, error) {
	if cfg.StoreDriver != config.StorePostgres {
		logger.Info("using in-memory draft store")
		return memory.NewDraftStore(), memory.NewPlayerRepository(memory.SeedPlayers()), func() error { return nil }, nil
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	if cfg.DBSeedPlayers {
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, nil, fmt.Errorf("seed players: %w", err)
		}
	}

	logger.Info("using postgres draft store",
		"db_name", dbNameFromURL(cfg.DBURL),
		"max_open_conns", cfg.DBMaxOpenConns,
		"seed_players", cfg.DBSeedPlayers,
	)
	return postgres.NewDraftStore(db), postgres.NewPlayerRepository(db), db.Close, nil
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	services, closer, err := NewServices(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	handler := httpapi.NewHandler(services.Drafts, services.Picks, services.Teams, services.Players, logger)
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		ServiceName:        cfg.ServiceName,
		APIKey:             cfg.APIKey,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}, logger)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, closer, nil
}
