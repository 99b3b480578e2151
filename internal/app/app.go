package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/scouting-dashboard/internal/config"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/scouting"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/user"
	"github.com/riskibarqy/scouting-dashboard/internal/infrastructure/account/jwtauth"
	cacherepo "github.com/riskibarqy/scouting-dashboard/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/scouting-dashboard/internal/infrastructure/repository/guarded"
	"github.com/riskibarqy/scouting-dashboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/scouting-dashboard/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/scouting-dashboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/scouting-dashboard/internal/platform/cache"
	"github.com/riskibarqy/scouting-dashboard/internal/platform/logging"
	"github.com/riskibarqy/scouting-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/scouting-dashboard/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// Repositories is the storage set the services read from.
type Repositories struct {
	Players player.Repository
	Reports scouting.Repository
	Users   user.Repository
	// Writer is nil for the in-memory store.
	Writer player.Writer

	db *sqlx.DB
}

func (r Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// OpenDB opens an instrumented postgres handle and checks connectivity.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.ServiceName),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(compactQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// NewRepositories selects postgres when DB_URL is set and the seeded memory
// store otherwise.
func NewRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (Repositories, error) {
	if cfg.DBURL == "" {
		logger.Warn("DB_URL empty, serving seeded in-memory data")
		return Repositories{
			Players: memory.NewPlayerRepository(memory.SeedPlayers()),
			Reports: memory.NewScoutingReportRepository(memory.SeedScoutingReports()),
			Users:   memory.NewUserRepository(memory.SeedUsers()),
		}, nil
	}

	db, err := OpenDB(ctx, cfg)
	if err != nil {
		return Repositories{}, err
	}
	if cfg.DBBootstrapSeed {
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return Repositories{}, err
		}
	}

	playerRepo := postgres.NewPlayerRepository(db)
	repos := Repositories{
		Players: playerRepo,
		Reports: postgres.NewScoutingReportRepository(db),
		Users:   postgres.NewUserRepository(db),
		Writer:  playerRepo,
		db:      db,
	}

	if cfg.DBCircuitEnabled {
		breaker := resilience.NewBreaker("postgres", resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: cfg.DBCircuitFailureCount,
			OpenTimeout:      cfg.DBCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
		}, logger)
		repos.Players = guarded.NewPlayerRepository(repos.Players, breaker)
		repos.Reports = guarded.NewScoutingReportRepository(repos.Reports, breaker)
		repos.Users = guarded.NewUserRepository(repos.Users, breaker)
	}
	if cfg.CacheEnabled {
		repos.Players = cacherepo.NewPlayerRepository(repos.Players, cache.NewStore(cfg.CacheTTL))
	}

	logger.Info("postgres repositories ready",
		"db_name", dbNameFromURL(cfg.DBURL),
		"circuit_enabled", cfg.DBCircuitEnabled,
		"cache_enabled", cfg.CacheEnabled,
	)
	return repos, nil
}

func NewHTTPServer(cfg config.Config, repos Repositories, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, errors.New("http server addr cannot be empty")
	}

	dashboardSvc := usecase.NewDashboardService(
		repos.Players,
		repos.Reports,
		repos.Users,
		usecase.DashboardConfig{
			HorizonMonths:     cfg.Dashboard.ExpiryHorizonMonths,
			ExpiringLimit:     cfg.Dashboard.ExpiringLimit,
			TopN:              cfg.Dashboard.TopN,
			DistributionLimit: cfg.Dashboard.DistributionLimit,
		},
		usecase.WithDashboardLogger(logger),
	)
	playerSvc := usecase.NewPlayerService(repos.Players)
	reportSvc := usecase.NewScoutingReportService(repos.Players, repos.Reports)

	var verifier httpapi.TokenVerifier
	if cfg.AuthEnabled {
		v, err := jwtauth.NewVerifier(cfg.AuthJWTSecret, cfg.AuthJWTIssuer)
		if err != nil {
			return nil, fmt.Errorf("build token verifier: %w", err)
		}
		verifier = v
	} else {
		logger.Warn("authentication disabled", "app_env", cfg.AppEnv)
	}

	handler := httpapi.NewHandler(dashboardSvc, playerSvc, reportSvc, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
