// Package guarded wraps repositories with a circuit breaker so a failing
// database is shed quickly instead of tying up request goroutines.
package guarded

import (
	"context"

	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/scouting"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/user"
	"github.com/riskibarqy/scouting-dashboard/internal/platform/resilience"
)

type PlayerRepository struct {
	next    player.Repository
	breaker *resilience.Breaker
}

func NewPlayerRepository(next player.Repository, breaker *resilience.Breaker) *PlayerRepository {
	return &PlayerRepository{next: next, breaker: breaker}
}

func (r *PlayerRepository) ListAll(ctx context.Context) ([]player.Player, error) {
	return resilience.Execute(r.breaker, func() ([]player.Player, error) {
		return r.next.ListAll(ctx)
	})
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) (player.Page, error) {
	return resilience.Execute(r.breaker, func() (player.Page, error) {
		return r.next.List(ctx, filter)
	})
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	type lookup struct {
		item   player.Player
		exists bool
	}
	got, err := resilience.Execute(r.breaker, func() (lookup, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		return lookup{item: item, exists: exists}, err
	})
	return got.item, got.exists, err
}

type ScoutingReportRepository struct {
	next    scouting.Repository
	breaker *resilience.Breaker
}

func NewScoutingReportRepository(next scouting.Repository, breaker *resilience.Breaker) *ScoutingReportRepository {
	return &ScoutingReportRepository{next: next, breaker: breaker}
}

func (r *ScoutingReportRepository) Count(ctx context.Context) (int, error) {
	return resilience.Execute(r.breaker, func() (int, error) {
		return r.next.Count(ctx)
	})
}

func (r *ScoutingReportRepository) ListByPlayer(ctx context.Context, playerID string) ([]scouting.Report, error) {
	return resilience.Execute(r.breaker, func() ([]scouting.Report, error) {
		return r.next.ListByPlayer(ctx, playerID)
	})
}

type UserRepository struct {
	next    user.Repository
	breaker *resilience.Breaker
}

func NewUserRepository(next user.Repository, breaker *resilience.Breaker) *UserRepository {
	return &UserRepository{next: next, breaker: breaker}
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	return resilience.Execute(r.breaker, func() (int, error) {
		return r.next.Count(ctx)
	})
}
