package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/scouting"
	playermock "github.com/riskibarqy/scouting-dashboard/internal/mocks/domain/player"
	scoutingmock "github.com/riskibarqy/scouting-dashboard/internal/mocks/domain/scouting"
	"github.com/stretchr/testify/mock"
)

func TestScoutingReportService_ListByPlayer_NewestFirstUsingMockery(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	reportRepo := scoutingmock.NewRepository(t)
	service := NewScoutingReportService(playerRepo, reportRepo)

	base := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	playerRepo.
		On("GetByID", mock.Anything, "fwd-05").
		Return(player.Player{ID: "fwd-05"}, true, nil).
		Once()
	reportRepo.
		On("ListByPlayer", mock.Anything, "fwd-05").
		Return([]scouting.Report{
			{ID: "old", CreatedAt: base},
			{ID: "new", CreatedAt: base.AddDate(0, 1, 0)},
			{ID: "mid", CreatedAt: base.AddDate(0, 0, 10)},
		}, nil).
		Once()

	got, err := service.ListByPlayer(context.Background(), "fwd-05")
	if err != nil {
		t.Fatalf("list reports: %v", err)
	}
	want := []string{"new", "mid", "old"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("unexpected report order at %d: got=%s want=%s", i, got[i].ID, id)
		}
	}
}

func TestScoutingReportService_ListByPlayer_UnknownPlayerUsingMockery(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	reportRepo := scoutingmock.NewRepository(t)
	service := NewScoutingReportService(playerRepo, reportRepo)

	playerRepo.
		On("GetByID", mock.Anything, "ghost").
		Return(player.Player{}, false, nil).
		Once()

	_, err := service.ListByPlayer(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
