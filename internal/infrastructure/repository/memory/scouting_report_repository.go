package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/scouting-dashboard/internal/domain/scouting"
)

type ScoutingReportRepository struct {
	mu       sync.RWMutex
	total    int
	byPlayer map[string][]scouting.Report
}

func NewScoutingReportRepository(reports []scouting.Report) *ScoutingReportRepository {
	byPlayer := make(map[string][]scouting.Report)
	for _, item := range reports {
		byPlayer[item.PlayerID] = append(byPlayer[item.PlayerID], item)
	}

	return &ScoutingReportRepository{
		total:    len(reports),
		byPlayer: byPlayer,
	}
}

func (r *ScoutingReportRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.total, nil
}

func (r *ScoutingReportRepository) ListByPlayer(_ context.Context, playerID string) ([]scouting.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byPlayer[playerID]
	out := make([]scouting.Report, 0, len(items))
	out = append(out, items...)

	return out, nil
}
