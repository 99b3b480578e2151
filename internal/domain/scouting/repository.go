package scouting

import "context"

// Repository describes scouting report persistence needs from use cases.
type Repository interface {
	Count(ctx context.Context) (int, error)
	ListByPlayer(ctx context.Context, playerID string) ([]Report, error)
}
