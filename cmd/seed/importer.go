package main

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"cloud.google.com/go/civil"
	"github.com/bytedance/sonic"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
	"github.com/riskibarqy/scouting-dashboard/internal/platform/id"
	"github.com/riskibarqy/scouting-dashboard/internal/platform/logging"
)

type playerRecord struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Position    string            `json:"position"`
	Age         *int              `json:"age"`
	Team        string            `json:"team"`
	Nationality string            `json:"nationality"`
	MarketValue *float64          `json:"marketValue"`
	ContractEnd string            `json:"contractEnd"`
	Goals       *int              `json:"goals"`
	Assists     *int              `json:"assists"`
	Attributes  *attributesRecord `json:"attributes"`
}

type attributesRecord struct {
	Pace        int  `json:"pace"`
	Shooting    int  `json:"shooting"`
	Passing     int  `json:"passing"`
	Dribbling   int  `json:"dribbling"`
	Defending   int  `json:"defending"`
	Physical    int  `json:"physical"`
	Finishing   *int `json:"finishing"`
	Crossing    *int `json:"crossing"`
	LongShots   *int `json:"longShots"`
	Positioning *int `json:"positioning"`
	Diving      *int `json:"diving"`
	Handling    *int `json:"handling"`
	Kicking     *int `json:"kicking"`
	Reflexes    *int `json:"reflexes"`
}

type importResult struct {
	Imported int32
	Failed   int32
}

type importer struct {
	writer  player.Writer
	workers int
	logger  *logging.Logger
}

// decodePlayers parses a JSON array of player records. Records without an id
// get one from ids.
func decodePlayers(raw []byte, ids id.Generator) ([]player.Player, error) {
	var records []playerRecord
	if err := sonic.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode players: %w", err)
	}

	out := make([]player.Player, 0, len(records))
	for i, record := range records {
		item, err := record.toDomain()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if strings.TrimSpace(item.ID) == "" {
			item.ID, err = ids.NewID()
			if err != nil {
				return nil, fmt.Errorf("record %d: generate id: %w", i, err)
			}
		}
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, item)
	}

	return out, nil
}

func (r playerRecord) toDomain() (player.Player, error) {
	item := player.Player{
		ID:          strings.TrimSpace(r.ID),
		Name:        strings.TrimSpace(r.Name),
		Age:         r.Age,
		Team:        strings.TrimSpace(r.Team),
		Nationality: strings.TrimSpace(r.Nationality),
		MarketValue: r.MarketValue,
		Goals:       r.Goals,
		Assists:     r.Assists,
	}

	if strings.TrimSpace(r.Position) != "" {
		position, err := player.ParsePosition(r.Position)
		if err != nil {
			return player.Player{}, err
		}
		item.Position = position
	}
	if strings.TrimSpace(r.ContractEnd) != "" {
		end, err := civil.ParseDate(strings.TrimSpace(r.ContractEnd))
		if err != nil {
			return player.Player{}, fmt.Errorf("parse contract end %q: %w", r.ContractEnd, err)
		}
		item.ContractEnd = &end
	}
	if a := r.Attributes; a != nil {
		item.Attributes = &player.AttributeSet{
			Pace:        a.Pace,
			Shooting:    a.Shooting,
			Passing:     a.Passing,
			Dribbling:   a.Dribbling,
			Defending:   a.Defending,
			Physical:    a.Physical,
			Finishing:   a.Finishing,
			Crossing:    a.Crossing,
			LongShots:   a.LongShots,
			Positioning: a.Positioning,
			Diving:      a.Diving,
			Handling:    a.Handling,
			Kicking:     a.Kicking,
			Reflexes:    a.Reflexes,
		}
	}

	return item, nil
}

// run upserts every player on a bounded worker pool. A failed upsert is logged
// and counted; it does not stop the remaining work.
func (imp importer) run(ctx context.Context, items []player.Player) (importResult, error) {
	workers := imp.workers
	if workers <= 0 {
		workers = 1
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return importResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var imported, failed atomic.Int32
	var wg sync.WaitGroup
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return importResult{Imported: imported.Load(), Failed: failed.Load()}, err
		}

		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if err := imp.writer.Upsert(ctx, item); err != nil {
				failed.Add(1)
				imp.logger.WarnContext(ctx, "upsert player failed", "player_id", item.ID, "error", err)
				return
			}
			imported.Add(1)
			imp.logger.DebugContext(ctx, "player upserted", "player_id", item.ID)
		}); err != nil {
			wg.Done()
			failed.Add(1)
			imp.logger.WarnContext(ctx, "submit upsert failed", "player_id", item.ID, "error", err)
		}
	}
	wg.Wait()

	return importResult{Imported: imported.Load(), Failed: failed.Load()}, nil
}
