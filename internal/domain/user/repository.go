package user

import "context"

type Repository interface {
	Count(ctx context.Context) (int, error)
}
