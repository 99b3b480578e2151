package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	ListAll(ctx context.Context) ([]Player, error)
	List(ctx context.Context, filter Filter) (Page, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
}

// Writer is used by the bulk import tooling only.
type Writer interface {
	Upsert(ctx context.Context, item Player) error
}
