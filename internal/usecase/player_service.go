package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type ListPlayersInput struct {
	Position    string
	Team        string
	Nationality string
	Search      string
	MinAge      int
	MaxAge      int
	Page        int
	PageSize    int
}

type PlayerPage struct {
	Items    []player.Player
	Total    int
	Page     int
	PageSize int
}

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context, input ListPlayersInput) (PlayerPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	filter, page, pageSize, err := buildPlayerFilter(input)
	if err != nil {
		return PlayerPage{}, err
	}

	result, err := s.playerRepo.List(ctx, filter)
	if err != nil {
		recordSpanError(span, err)
		return PlayerPage{}, fmt.Errorf("list players: %w", err)
	}

	return PlayerPage{
		Items:    result.Items,
		Total:    result.Total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		recordSpanError(span, err)
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

func buildPlayerFilter(input ListPlayersInput) (player.Filter, int, int, error) {
	page := input.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return player.Filter{}, 0, 0, fmt.Errorf("%w: page must be >= 1", ErrInvalidInput)
	}

	pageSize := input.PageSize
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return player.Filter{}, 0, 0, fmt.Errorf("%w: page size must be within [1,%d]", ErrInvalidInput, MaxPageSize)
	}

	if input.MinAge < 0 || input.MaxAge < 0 {
		return player.Filter{}, 0, 0, fmt.Errorf("%w: age bounds must not be negative", ErrInvalidInput)
	}
	if input.MaxAge > 0 && input.MinAge > input.MaxAge {
		return player.Filter{}, 0, 0, fmt.Errorf("%w: min age %d exceeds max age %d", ErrInvalidInput, input.MinAge, input.MaxAge)
	}

	filter := player.Filter{
		Team:        strings.TrimSpace(input.Team),
		Nationality: strings.TrimSpace(input.Nationality),
		Search:      strings.TrimSpace(input.Search),
		MinAge:      input.MinAge,
		MaxAge:      input.MaxAge,
		Limit:       pageSize,
		Offset:      (page - 1) * pageSize,
	}
	if strings.TrimSpace(input.Position) != "" {
		position, err := player.ParsePosition(input.Position)
		if err != nil {
			return player.Filter{}, 0, 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		filter.Position = position
	}

	return filter, page, pageSize, nil
}
