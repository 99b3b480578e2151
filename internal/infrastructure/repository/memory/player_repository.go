package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
	index   map[string]int
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{
		players: make([]player.Player, 0, len(players)),
		index:   make(map[string]int, len(players)),
	}
	for _, p := range players {
		r.put(p)
	}

	return r
}

func (r *PlayerRepository) ListAll(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.players), nil
}

func (r *PlayerRepository) List(_ context.Context, filter player.Filter) (player.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]player.Player, 0)
	for _, p := range r.players {
		if filter.Matches(p) {
			matched = append(matched, p)
		}
	}
	slices.SortStableFunc(matched, func(a, b player.Player) int {
		return strings.Compare(a.Name, b.Name)
	})

	page := player.Page{Total: len(matched), Items: []player.Player{}}
	if filter.Offset >= len(matched) {
		return page, nil
	}
	end := len(matched)
	if filter.Limit > 0 && filter.Offset+filter.Limit < end {
		end = filter.Offset + filter.Limit
	}
	page.Items = matched[filter.Offset:end]

	return page, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.index[playerID]
	if !ok {
		return player.Player{}, false, nil
	}

	return r.players[idx], true, nil
}

func (r *PlayerRepository) Upsert(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.put(item)
	return nil
}

func (r *PlayerRepository) put(item player.Player) {
	if idx, ok := r.index[item.ID]; ok {
		r.players[idx] = item
		return
	}
	r.index[item.ID] = len(r.players)
	r.players = append(r.players, item)
}
