package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
	playermock "github.com/riskibarqy/scouting-dashboard/internal/mocks/domain/player"
	basecache "github.com/riskibarqy/scouting-dashboard/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

func TestPlayerRepository_CachesCatalogueReadsUsingMockery(t *testing.T) {
	t.Parallel()

	next := playermock.NewRepository(t)
	repo := NewPlayerRepository(next, basecache.NewStore(time.Minute))
	ctx := context.Background()
	filter := player.Filter{Position: player.PositionForward, Limit: 20}

	next.
		On("List", mock.Anything, filter).
		Return(player.Page{Items: []player.Player{{ID: "fwd-01"}}, Total: 1}, nil).
		Once()
	next.
		On("GetByID", mock.Anything, "missing").
		Return(player.Player{}, false, nil).
		Once()

	for range 3 {
		page, err := repo.List(ctx, filter)
		if err != nil {
			t.Fatalf("list players: %v", err)
		}
		if page.Total != 1 || page.Items[0].ID != "fwd-01" {
			t.Fatalf("unexpected page: %+v", page)
		}
		page.Items[0].ID = "mutated"
	}

	for range 2 {
		_, exists, err := repo.GetByID(ctx, "missing")
		if err != nil || exists {
			t.Fatalf("expected cached miss, exists=%v err=%v", exists, err)
		}
	}
}

func TestPlayerRepository_ListAllBypassesCache(t *testing.T) {
	t.Parallel()

	next := playermock.NewRepository(t)
	repo := NewPlayerRepository(next, basecache.NewStore(time.Minute))

	next.
		On("ListAll", mock.Anything).
		Return([]player.Player{{ID: "p1"}}, nil).
		Twice()

	for range 2 {
		if _, err := repo.ListAll(context.Background()); err != nil {
			t.Fatalf("list all: %v", err)
		}
	}
}

func TestPlayerRepository_Invalidate(t *testing.T) {
	t.Parallel()

	next := playermock.NewRepository(t)
	store := basecache.NewStore(time.Minute)
	repo := NewPlayerRepository(next, store)

	next.
		On("GetByID", mock.Anything, "p1").
		Return(player.Player{ID: "p1"}, true, nil).
		Twice()

	if _, _, err := repo.GetByID(context.Background(), "p1"); err != nil {
		t.Fatalf("get player: %v", err)
	}
	repo.Invalidate(context.Background())
	if _, _, err := repo.GetByID(context.Background(), "p1"); err != nil {
		t.Fatalf("get player: %v", err)
	}
}
