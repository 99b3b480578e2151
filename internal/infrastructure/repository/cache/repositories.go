package cache

import (
	"context"
	"fmt"
	"slices"

	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
	basecache "github.com/riskibarqy/scouting-dashboard/internal/platform/cache"
)

const (
	playerListPrefix = "player:list:"
	playerIDPrefix   = "player:id:"
)

// PlayerRepository caches catalogue reads. ListAll always reaches the next
// repository so dashboard snapshots are never stale.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) ListAll(ctx context.Context) ([]player.Player, error) {
	return r.next.ListAll(ctx)
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) (player.Page, error) {
	v, err := r.cache.GetOrLoad(ctx, playerListKey(filter), func(ctx context.Context) (any, error) {
		page, err := r.next.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		return player.Page{Items: slices.Clone(page.Items), Total: page.Total}, nil
	})
	if err != nil {
		return player.Page{}, err
	}

	page, _ := v.(player.Page)
	return player.Page{Items: slices.Clone(page.Items), Total: page.Total}, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, playerIDPrefix+playerID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByID)
	return cached.value, cached.exists, nil
}

// Invalidate drops cached catalogue entries after players were written.
func (r *PlayerRepository) Invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, playerListPrefix)
	r.cache.DeletePrefix(ctx, playerIDPrefix)
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

func playerListKey(f player.Filter) string {
	return fmt.Sprintf("%s%s|%s|%s|%d|%d|%s|%d|%d",
		playerListPrefix, f.Position, f.Team, f.Nationality, f.MinAge, f.MaxAge, f.Search, f.Limit, f.Offset)
}
