package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/scouting-dashboard/internal/domain/user"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]user.Principal
}

func NewUserRepository(users []user.Principal) *UserRepository {
	index := make(map[string]user.Principal, len(users))
	for _, u := range users {
		index[u.UserID] = u
	}

	return &UserRepository{users: index}
}

func (r *UserRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users), nil
}
