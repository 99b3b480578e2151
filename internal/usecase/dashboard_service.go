package usecase

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/analytics"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/scouting"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/user"
	"github.com/riskibarqy/scouting-dashboard/internal/platform/logging"
	"github.com/sourcegraph/conc/panics"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

type DashboardConfig struct {
	HorizonMonths     int
	ExpiringLimit     int
	TopN              int
	DistributionLimit int
}

func DefaultDashboardConfig() DashboardConfig {
	return DashboardConfig{
		HorizonMonths:     analytics.DefaultHorizonMonths,
		ExpiringLimit:     analytics.DefaultExpiringLimit,
		TopN:              analytics.DefaultTopN,
		DistributionLimit: analytics.DefaultDistributionLimit,
	}
}

type DashboardService struct {
	playerRepo player.Repository
	reportRepo scouting.Repository
	userRepo   user.Repository
	cfg        DashboardConfig
	logger     *logging.Logger
	now        func() time.Time
}

type DashboardOption func(*DashboardService)

func WithDashboardClock(now func() time.Time) DashboardOption {
	return func(s *DashboardService) {
		if now != nil {
			s.now = now
		}
	}
}

func WithDashboardLogger(logger *logging.Logger) DashboardOption {
	return func(s *DashboardService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewDashboardService(
	playerRepo player.Repository,
	reportRepo scouting.Repository,
	userRepo user.Repository,
	cfg DashboardConfig,
	opts ...DashboardOption,
) *DashboardService {
	s := &DashboardService{
		playerRepo: playerRepo,
		reportRepo: reportRepo,
		userRepo:   userRepo,
		cfg:        cfg,
		logger:     logging.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type dashboardSnapshot struct {
	players     []player.Player
	reportCount int
	userCount   int
}

// BuildReport fetches a fresh snapshot and summarizes it. Any fetch error is
// reported as ErrDataUnavailable, any aggregation error or panic as
// ErrAggregationFailure. No partial report is returned.
func (s *DashboardService) BuildReport(ctx context.Context) (analytics.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.BuildReport")
	defer span.End()

	snapshot, err := s.fetchSnapshot(ctx)
	if err != nil {
		recordSpanError(span, err)
		return analytics.Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return analytics.Report{}, err
	}

	span.SetAttributes(
		attribute.Int("dashboard.players", len(snapshot.players)),
		attribute.Int("dashboard.reports", snapshot.reportCount),
		attribute.Int("dashboard.users", snapshot.userCount),
	)

	report, err := s.aggregate(ctx, snapshot, s.now().UTC())
	if err != nil {
		recordSpanError(span, err)
		s.logger.ErrorContext(ctx, "build dashboard report failed", "players", len(snapshot.players), "error", err)
		return analytics.Report{}, err
	}

	s.logger.DebugContext(ctx, "dashboard report built",
		"players", len(snapshot.players),
		"expiring_contracts", report.MarketAnalysis.ExpiringCount,
	)
	return report, nil
}

func (s *DashboardService) fetchSnapshot(ctx context.Context) (dashboardSnapshot, error) {
	var snapshot dashboardSnapshot

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		items, err := s.playerRepo.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		snapshot.players = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		count, err := s.reportRepo.Count(ctx)
		if err != nil {
			return fmt.Errorf("count scouting reports: %w", err)
		}
		snapshot.reportCount = count
		return nil
	})
	p.Go(func(ctx context.Context) error {
		count, err := s.userRepo.Count(ctx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		snapshot.userCount = count
		return nil
	})

	if err := p.Wait(); err != nil {
		return dashboardSnapshot{}, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	return snapshot, nil
}

func (s *DashboardService) aggregate(ctx context.Context, snapshot dashboardSnapshot, generatedAt time.Time) (analytics.Report, error) {
	records := snapshot.players
	today := civil.DateOf(generatedAt)
	report := analytics.Report{
		GeneratedAt:   generatedAt,
		SchemaVersion: analytics.SchemaVersion,
	}

	// Each task owns exactly one field of report.
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	run := func(name string, task func() error) {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return guardTask(name, task)
		})
	}

	run("overview", func() error {
		report.Overview = analytics.SummarizeOverview(records, snapshot.reportCount, snapshot.userCount)
		return nil
	})
	run("position distribution", func() (err error) {
		report.PositionDistribution, err = analytics.Aggregate(records, analytics.ByPosition, analytics.PositionFields, analytics.AggregateOptions{})
		return err
	})
	run("team distribution", func() (err error) {
		report.TeamDistribution, err = analytics.Aggregate(records, analytics.ByTeam, analytics.TeamFields, analytics.AggregateOptions{Limit: s.cfg.DistributionLimit})
		return err
	})
	run("nationality distribution", func() (err error) {
		report.NationalityDistribution, err = analytics.Aggregate(records, analytics.ByNationality, analytics.NationalityFields, analytics.AggregateOptions{Limit: s.cfg.DistributionLimit})
		return err
	})
	run("attributes by position", func() error {
		report.AttributesByPosition = analytics.AverageAttributes(records)
		return nil
	})
	run("top scorers", func() (err error) {
		report.TopPlayers.TopScorers, err = analytics.TopN(records, analytics.FieldGoals, s.cfg.TopN)
		return err
	})
	run("top assisters", func() (err error) {
		report.TopPlayers.TopAssisters, err = analytics.TopN(records, analytics.FieldAssists, s.cfg.TopN)
		return err
	})
	run("most valuable", func() (err error) {
		report.TopPlayers.MostValuable, err = analytics.TopN(records, analytics.FieldMarketValue, s.cfg.TopN)
		return err
	})
	run("age distribution", func() error {
		report.AgeDistribution = analytics.ClassifyAges(records)
		return nil
	})
	run("market analysis", func() (err error) {
		report.MarketAnalysis, err = analytics.SummarizeMarket(records, today, analytics.MarketOptions{
			HorizonMonths: s.cfg.HorizonMonths,
			Limit:         s.cfg.ExpiringLimit,
		})
		return err
	})

	if err := p.Wait(); err != nil {
		return analytics.Report{}, fmt.Errorf("%w: %w", ErrAggregationFailure, err)
	}

	return report, nil
}

// guardTask runs task and turns a panic into an error.
func guardTask(name string, task func() error) error {
	var taskErr error
	if recovered := panics.Try(func() { taskErr = task() }); recovered != nil {
		return fmt.Errorf("%s: %w", name, recovered.AsError())
	}
	if taskErr != nil {
		return fmt.Errorf("%s: %w", name, taskErr)
	}
	return nil
}
