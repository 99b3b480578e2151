package analytics

import (
	"cmp"
	"slices"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
)

const DefaultTopN = 10

// RankedPlayer is the lightweight projection returned by TopN.
type RankedPlayer struct {
	ID       string
	Name     string
	Team     string
	Position player.Position
	Field    string
	Value    float64
}

// TopN returns at most n records with field defined, highest value first.
// Equal values keep their relative input order.
func TopN(records []player.Player, field NumericField, n int) ([]RankedPlayer, error) {
	if field.Value == nil {
		return nil, crerr.AssertionFailedf("numeric field %q has no value selector", field.Name)
	}
	if n < 0 {
		return nil, crerr.Newf("top n must be >= 0, got %d", n)
	}

	ranked := make([]RankedPlayer, 0, len(records))
	for _, record := range records {
		v, ok := field.Value(record)
		if !ok {
			continue
		}
		ranked = append(ranked, RankedPlayer{
			ID:       record.ID,
			Name:     record.Name,
			Team:     record.Team,
			Position: record.Position,
			Field:    field.Name,
			Value:    v,
		})
	}

	slices.SortStableFunc(ranked, func(a, b RankedPlayer) int {
		return cmp.Compare(b.Value, a.Value)
	})
	if len(ranked) > n {
		ranked = slices.Clip(ranked[:n])
	}

	return ranked, nil
}
