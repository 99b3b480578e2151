package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
	playermock "github.com/riskibarqy/scouting-dashboard/internal/mocks/domain/player"
	"github.com/stretchr/testify/mock"
)

func TestPlayerService_ListPlayers_BuildsFilterUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo)

	wantFilter := player.Filter{
		Position: player.PositionForward,
		Team:     "Persija Jakarta",
		MinAge:   20,
		MaxAge:   30,
		Limit:    10,
		Offset:   20,
	}
	playerRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), wantFilter).
		Return(player.Page{Items: []player.Player{{ID: "fwd-01"}}, Total: 21}, nil).
		Once()

	got, err := service.ListPlayers(ctx, ListPlayersInput{
		Position: " fwd ",
		Team:     " Persija Jakarta ",
		MinAge:   20,
		MaxAge:   30,
		Page:     3,
		PageSize: 10,
	})
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if got.Total != 21 || got.Page != 3 || got.PageSize != 10 || len(got.Items) != 1 {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestPlayerService_ListPlayers_Defaults(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo)

	playerRepo.
		On("List", mock.Anything, player.Filter{Limit: DefaultPageSize}).
		Return(player.Page{}, nil).
		Once()

	got, err := service.ListPlayers(context.Background(), ListPlayersInput{})
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if got.Page != 1 || got.PageSize != DefaultPageSize {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}

func TestPlayerService_ListPlayers_InvalidInput(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(playermock.NewRepository(t))
	tests := []struct {
		name  string
		input ListPlayersInput
	}{
		{name: "negative page", input: ListPlayersInput{Page: -1}},
		{name: "page size too large", input: ListPlayersInput{PageSize: MaxPageSize + 1}},
		{name: "negative age", input: ListPlayersInput{MinAge: -3}},
		{name: "inverted age range", input: ListPlayersInput{MinAge: 30, MaxAge: 20}},
		{name: "unknown position", input: ListPlayersInput{Position: "sweeper"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.ListPlayers(context.Background(), tc.input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestPlayerService_GetPlayer_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo)

	playerRepo.
		On("GetByID", mock.Anything, "missing").
		Return(player.Player{}, false, nil).
		Once()

	_, err := service.GetPlayer(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := service.GetPlayer(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank id, got %v", err)
	}
}

func TestPlayerService_GetPlayer_RepositoryError(t *testing.T) {
	t.Parallel()

	playerRepo := playermock.NewRepository(t)
	service := NewPlayerService(playerRepo)

	repoErr := errors.New("timeout")
	playerRepo.
		On("GetByID", mock.Anything, "fwd-01").
		Return(player.Player{}, false, repoErr).
		Once()

	_, err := service.GetPlayer(context.Background(), "fwd-01")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
