// Package app wires configuration, storage and services into a runnable concierge.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-concierge-api/internal/repository"
	"github.com/noah-isme/campus-concierge-api/internal/resolver"
	"github.com/noah-isme/campus-concierge-api/internal/seed"
	"github.com/noah-isme/campus-concierge-api/internal/service"
	"github.com/noah-isme/campus-concierge-api/internal/tools"
	"github.com/noah-isme/campus-concierge-api/pkg/cache"
	"github.com/noah-isme/campus-concierge-api/pkg/config"
	"github.com/noah-isme/campus-concierge-api/pkg/database"
	"github.com/noah-isme/campus-concierge-api/pkg/export"
)

// App holds every long-lived component of the concierge.
type App struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Clock  service.Clock

	Metrics    *service.MetricsService
	Cache      *service.CacheService
	Query      *service.QueryService
	Registry   *tools.Registry
	Resolver   *resolver.Provider
	Chat       *service.ChatService
	Auth       *service.AuthService
	Events     *service.EventService
	Exams      *service.ExamService
	Placements *service.PlacementService
	Export     *service.ExportService
	Seeder     *seed.Seeder

	redis *redis.Client
}

// New opens storage and builds the service graph. The resolver itself is built lazily.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	clock, err := service.NewClock(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	a := &App{Config: cfg, Logger: logger, DB: db, Clock: clock}

	if cfg.Metrics.Enabled {
		a.Metrics = service.NewMetricsService()
	}

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, caching disabled", zap.Error(err))
		} else {
			a.redis = client
			cacheRepo = repository.NewCacheRepository(client, logger)
		}
	}
	a.Cache = service.NewCacheService(cacheRepo, a.Metrics, cfg.Cache.TTL, logger, cacheRepo != nil)

	eventRepo := repository.NewEventRepository(db)
	examRepo := repository.NewExamRepository(db)
	placementRepo := repository.NewPlacementRepository(db)

	a.Query = service.NewQueryService(eventRepo, examRepo, placementRepo, a.Cache, a.Metrics, logger, service.QueryOptions{
		Clock:               clock,
		EventsDaysAhead:     cfg.Query.EventsDaysAhead,
		ExamsDaysAhead:      cfg.Query.ExamsDaysAhead,
		PlacementsDaysAhead: cfg.Query.PlacementsDaysAhead,
		MaxDaysAhead:        cfg.Query.MaxDaysAhead,
		CacheTTL:            cfg.Cache.TTL,
	})

	a.Registry = tools.NewCampusRegistry(a.Query)
	a.Registry.SetObserver(a.Metrics.ObserveToolCall)

	resolverCfg := cfg.Resolver
	a.Resolver = resolver.NewProvider(func(ctx context.Context) (resolver.Resolver, error) {
		return resolver.New(ctx, resolverCfg, a.Registry, resolver.Options{
			Now:           clock,
			MaxToolRounds: resolverCfg.MaxToolRounds,
			Logger:        logger.Named("resolver"),
		})
	})
	a.Chat = service.NewChatService(a.Resolver, a.Registry, a.Metrics, logger, cfg.Resolver.Timeout)

	validate := service.NewValidator()
	a.Auth, err = service.NewAuthService(validate, logger, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
		AdminEmail:        cfg.Admin.Email,
		AdminPassword:     cfg.Admin.Password,
		AdminPasswordHash: cfg.Admin.PasswordHash,
	})
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.Events = service.NewEventService(eventRepo, validate, a.Cache, logger)
	a.Exams = service.NewExamService(examRepo, validate, a.Cache, logger)
	a.Placements = service.NewPlacementService(placementRepo, validate, a.Cache, logger)
	a.Export = service.NewExportService(eventRepo, examRepo, placementRepo, logger, export.NewCSVExporter(), export.NewPDFExporter())

	a.Seeder = seed.NewSeeder(func(ctx context.Context, fn func(seed.Store) error) error {
		err := database.WithTx(ctx, db, func(tx *sqlx.Tx) error {
			return fn(repository.NewCampusWriter(tx, eventRepo, examRepo, placementRepo))
		})
		if err != nil {
			return err
		}
		return a.Cache.Invalidate(ctx, "campus:*")
	}, clock, logger.Named("seed"))

	return a, nil
}

// WarmResolver builds the resolver up front. Failure is logged; chat requests retry.
func (a *App) WarmResolver(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if _, err := a.Resolver.Get(ctx); err != nil {
		a.Logger.Warn("resolver initialisation failed", zap.Error(err))
		return
	}
	a.Logger.Info("resolver ready", zap.String("provider", a.Config.Resolver.Provider))
}

// Ping checks database connectivity.
func (a *App) Ping(ctx context.Context) error {
	return database.Ping(ctx, a.DB)
}

// Close releases the database and cache connections.
func (a *App) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}
