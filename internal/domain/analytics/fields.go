package analytics

import (
	"math"
	"strings"

	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
	"gonum.org/v1/gonum/stat"
)

// CategorySelector extracts the grouping key of a record. ok=false marks the
// value as undefined and excludes the record from that distribution.
type CategorySelector func(p player.Player) (category string, ok bool)

// NumericField names a numeric attribute of a record and extracts it.
// ok=false marks the value as undefined for that record.
type NumericField struct {
	Name  string
	Value func(p player.Player) (value float64, ok bool)
}

var (
	FieldAge = NumericField{
		Name: "age",
		Value: func(p player.Player) (float64, bool) {
			return intValue(p.Age)
		},
	}
	FieldGoals = NumericField{
		Name: "goals",
		Value: func(p player.Player) (float64, bool) {
			return intValue(p.Goals)
		},
	}
	FieldAssists = NumericField{
		Name: "assists",
		Value: func(p player.Player) (float64, bool) {
			return intValue(p.Assists)
		},
	}
	FieldMarketValue = NumericField{
		Name: "marketValue",
		Value: func(p player.Player) (float64, bool) {
			if p.MarketValue == nil {
				return 0, false
			}
			return *p.MarketValue, true
		},
	}
)

func ByPosition(p player.Player) (string, bool) {
	if p.Position == "" {
		return "", false
	}
	return string(p.Position), true
}

func ByTeam(p player.Player) (string, bool) {
	return nonBlank(p.Team)
}

func ByNationality(p player.Player) (string, bool) {
	return nonBlank(p.Nationality)
}

func intValue(v *int) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return float64(*v), true
}

func nonBlank(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}

// roundedMean returns the arithmetic mean rounded half away from zero, or 0
// when there is nothing to average.
func roundedMean(values []float64) int64 {
	if len(values) == 0 {
		return 0
	}
	return int64(math.Round(stat.Mean(values, nil)))
}
