package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/scouting"
)

type ScoutingReportService struct {
	playerRepo player.Repository
	reportRepo scouting.Repository
}

func NewScoutingReportService(playerRepo player.Repository, reportRepo scouting.Repository) *ScoutingReportService {
	return &ScoutingReportService{
		playerRepo: playerRepo,
		reportRepo: reportRepo,
	}
}

// ListByPlayer returns the player's reports, newest first.
func (s *ScoutingReportService) ListByPlayer(ctx context.Context, playerID string) ([]scouting.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoutingReportService.ListByPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	reports, err := s.reportRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("list scouting reports: %w", err)
	}

	slices.SortStableFunc(reports, func(a, b scouting.Report) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return reports, nil
}
