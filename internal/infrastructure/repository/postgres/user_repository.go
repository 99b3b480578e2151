package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	qb "github.com/riskibarqy/scouting-dashboard/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("users").Where(qb.IsNull("deleted_at")).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count users query: %w", err)
	}

	var total int
	if err := getContext(ctx, r.db, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}
