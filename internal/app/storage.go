package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sports-analytics/internal/config"
	"github.com/riskibarqy/sports-analytics/internal/domain/match"
	"github.com/riskibarqy/sports-analytics/internal/domain/player"
	"github.com/riskibarqy/sports-analytics/internal/domain/playerstats"
	"github.com/riskibarqy/sports-analytics/internal/domain/team"
	cachedrepo "github.com/riskibarqy/sports-analytics/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/sports-analytics/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/sports-analytics/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/sports-analytics/internal/platform/cache"
	"github.com/riskibarqy/sports-analytics/internal/platform/logging"
	"github.com/riskibarqy/sports-analytics/internal/platform/resilience"
)

// Storage bundles the repositories of one backend.
type Storage struct {
	Teams   team.Repository
	Matches match.Repository
	Players player.Repository
	Stats   playerstats.Repository

	closeFn func() error
}

func (s *Storage) Close() error {
	if s == nil || s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// OpenStorage builds the repositories selected by cfg.StorageDriver. With the
// memory driver and SEED_WATCH enabled, the seed file is reloaded until ctx is
// cancelled.
func OpenStorage(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Storage, error) {
	if logger == nil {
		logger = logging.Default()
	}

	snapshot, err := loadSnapshot(cfg.SeedFile)
	if err != nil {
		return nil, err
	}

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		return openPostgresStorage(ctx, cfg, snapshot, logger)
	case config.StorageMemory, "":
		return openMemoryStorage(ctx, cfg, snapshot, logger)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func loadSnapshot(seedFile string) (memory.Snapshot, error) {
	if strings.TrimSpace(seedFile) == "" {
		return memory.DefaultSnapshot(), nil
	}
	snapshot, err := memory.LoadSeedFile(seedFile)
	if err != nil {
		return memory.Snapshot{}, fmt.Errorf("load seed file: %w", err)
	}
	return snapshot, nil
}

func openMemoryStorage(ctx context.Context, cfg config.Config, snapshot memory.Snapshot, logger *logging.Logger) (*Storage, error) {
	store, err := memory.NewStore(snapshot)
	if err != nil {
		return nil, fmt.Errorf("build memory store: %w", err)
	}

	if cfg.SeedWatch && cfg.SeedFile != "" {
		watchLogger := logger.Named("seed")
		go func() {
			if err := memory.WatchSeed(ctx, cfg.SeedFile, store, watchLogger); err != nil {
				watchLogger.Error("seed watcher stopped", "path", cfg.SeedFile, "error", err)
			}
		}()
	}

	logger.Info("storage ready",
		"driver", config.StorageMemory,
		"teams", len(snapshot.Teams),
		"matches", len(snapshot.Matches),
		"seed_file", cfg.SeedFile,
		"seed_watch", cfg.SeedWatch,
	)

	return &Storage{
		Teams:   memory.NewTeamRepository(store),
		Matches: memory.NewMatchRepository(store),
		Players: memory.NewPlayerRepository(store),
		Stats:   memory.NewPlayerStatsRepository(store),
	}, nil
}

func openPostgresStorage(ctx context.Context, cfg config.Config, snapshot memory.Snapshot, logger *logging.Logger) (*Storage, error) {
	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := postgres.BootstrapSeed(ctx, db, snapshot); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap seed: %w", err)
	}

	storage := &Storage{
		Teams:   postgres.NewTeamRepository(db),
		Matches: postgres.NewMatchRepository(db),
		Players: postgres.NewPlayerRepository(db),
		Stats:   postgres.NewPlayerStatsRepository(db),
		closeFn: db.Close,
	}

	breaker := resilience.NewCircuitBreakerFromConfig(cfg.DBCircuitBreaker)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("db circuit breaker state changed", "from", string(from), "to", string(to))
	})
	var store *basecache.Store
	if cfg.CacheEnabled {
		store = basecache.NewStore(cfg.CacheTTL)
	}
	if store != nil || breaker != nil {
		storage.Teams = cachedrepo.NewTeamRepository(storage.Teams, store, breaker)
		storage.Matches = cachedrepo.NewMatchRepository(storage.Matches, store, breaker)
		storage.Players = cachedrepo.NewPlayerRepository(storage.Players, store, breaker)
		storage.Stats = cachedrepo.NewPlayerStatsRepository(storage.Stats, store, breaker)
	}

	logger.Info("storage ready",
		"driver", config.StoragePostgres,
		"db", parseDSN(cfg.DBURL).redacted(),
		"cache_enabled", cfg.CacheEnabled,
		"cache_ttl", cfg.CacheTTL.String(),
		"breaker", cfg.DBCircuitBreaker.String(),
	)

	return storage, nil
}
