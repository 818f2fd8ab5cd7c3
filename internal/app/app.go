package app

import (
	"fmt"
	"net/http"

	"github.com/aflsquad/statpatch/internal/config"
	"github.com/aflsquad/statpatch/internal/domain/player"
	"github.com/aflsquad/statpatch/internal/domain/reconcile"
	"github.com/aflsquad/statpatch/internal/infrastructure/repository/jsonstore"
	"github.com/aflsquad/statpatch/internal/infrastructure/repository/postgres"
	"github.com/aflsquad/statpatch/internal/interfaces/httpapi"
	"github.com/aflsquad/statpatch/internal/platform/cache"
	"github.com/aflsquad/statpatch/internal/platform/logging"
	"github.com/aflsquad/statpatch/internal/usecase"
)

// NewHTTPServer wires repositories, services and the router into one
// server. The returned cleanup releases backend resources and must be
// called after shutdown.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	cleanup := func() error { return nil }

	var playerRepo player.Repository
	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		db, err := openDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		playerRepo = postgres.NewPlayerRepository(db)
		cleanup = db.Close
	default:
		playerRepo = jsonstore.NewPlayerStore(cfg.PlayerStorePath, logger)
	}

	// The roster is a single user-owned document, so it stays on the
	// JSON file store regardless of the player backend.
	rosterRepo := jsonstore.NewRosterStore(cfg.RosterStorePath, logger)

	aliases, err := jsonstore.LoadAliasTable(cfg.AliasTablePath)
	if err != nil {
		return nil, nil, fmt.Errorf("load alias table: %w", err)
	}

	var cacheStore *cache.Store
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
	}

	playerSvc := usecase.NewPlayerService(playerRepo, cacheStore)
	rosterSvc := usecase.NewRosterService(rosterRepo, logger)
	cashCowSvc := usecase.NewCashCowService(playerSvc, cfg.CashCowMaxPrice)
	reconcileSvc := usecase.NewReconcileService(playerRepo, rosterRepo, reconcile.NewMatcher(aliases), cacheStore, logger)

	handler := httpapi.NewHandler(playerSvc, rosterSvc, cashCowSvc, reconcileSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}
