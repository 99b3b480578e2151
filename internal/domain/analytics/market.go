package analytics

import (
	"slices"

	"cloud.google.com/go/civil"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
)

const (
	DefaultExpiringLimit = 20
	DefaultHorizonMonths = 12
)

type MarketOptions struct {
	HorizonMonths int
	// Limit caps ExpiringList. Zero means DefaultExpiringLimit.
	Limit int
}

type ExpiringContract struct {
	ID          string
	Name        string
	Team        string
	Position    player.Position
	ContractEnd civil.Date
	MarketValue *float64
}

type MarketSummary struct {
	Total         float64
	Min           float64
	Max           float64
	ExpiringCount int
	ExpiringList  []ExpiringContract
}

// SummarizeMarket totals the defined market values and lists contracts ending
// within [today, today+HorizonMonths], earliest first. ExpiringCount counts
// every contract in the window, ExpiringList holds at most Limit of them.
func SummarizeMarket(records []player.Player, today civil.Date, opts MarketOptions) (MarketSummary, error) {
	if !today.IsValid() {
		return MarketSummary{}, crerr.AssertionFailedf("invalid reference date %s", today)
	}
	if opts.HorizonMonths < 0 {
		return MarketSummary{}, crerr.Newf("horizon months must be >= 0, got %d", opts.HorizonMonths)
	}
	if opts.Limit < 0 {
		return MarketSummary{}, crerr.Newf("expiring limit must be >= 0, got %d", opts.Limit)
	}
	limit := opts.Limit
	if limit == 0 {
		limit = DefaultExpiringLimit
	}

	var summary MarketSummary

	values := make([]float64, 0, len(records))
	total := decimal.Zero
	for _, record := range records {
		if record.MarketValue == nil {
			continue
		}
		values = append(values, *record.MarketValue)
		total = total.Add(decimal.NewFromFloat(*record.MarketValue))
	}
	if len(values) > 0 {
		summary.Total = total.InexactFloat64()
		summary.Min = floats.Min(values)
		summary.Max = floats.Max(values)
	}

	horizon := today.AddMonths(opts.HorizonMonths)
	expiring := make([]ExpiringContract, 0)
	for _, record := range records {
		if record.ContractEnd == nil {
			continue
		}
		end := *record.ContractEnd
		if end.Before(today) || end.After(horizon) {
			continue
		}
		expiring = append(expiring, ExpiringContract{
			ID:          record.ID,
			Name:        record.Name,
			Team:        record.Team,
			Position:    record.Position,
			ContractEnd: end,
			MarketValue: record.MarketValue,
		})
	}

	slices.SortStableFunc(expiring, func(a, b ExpiringContract) int {
		return a.ContractEnd.Compare(b.ContractEnd)
	})

	summary.ExpiringCount = len(expiring)
	if len(expiring) > limit {
		expiring = slices.Clip(expiring[:limit])
	}
	summary.ExpiringList = expiring

	return summary, nil
}
