package analytics

import (
	"time"

	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
)

const (
	SchemaVersion            = "1.0"
	DefaultDistributionLimit = 10
)

// Report is the dashboard snapshot summary. It is built once per request and
// not mutated after it is returned.
type Report struct {
	Overview                Overview
	PositionDistribution    []Bucket
	TeamDistribution        []Bucket
	NationalityDistribution []Bucket
	AgeDistribution         AgeBuckets
	TopPlayers              TopPlayers
	MarketAnalysis          MarketSummary
	AttributesByPosition    map[player.Position]AttributeAverages
	GeneratedAt             time.Time
	SchemaVersion           string
}

type Overview struct {
	TotalPlayers       int
	TotalReports       int
	TotalUsers         int
	AverageAge         int
	AverageMarketValue int64
}

type TopPlayers struct {
	TopScorers   []RankedPlayer
	TopAssisters []RankedPlayer
	MostValuable []RankedPlayer
}

var (
	PositionFields    = []NumericField{FieldAge, FieldMarketValue, FieldGoals, FieldAssists}
	TeamFields        = []NumericField{FieldAge, FieldMarketValue}
	NationalityFields = []NumericField{FieldAge, FieldMarketValue}
)

// SummarizeOverview counts the population and averages age and market value
// over the records that define them. Averages are 0 when nothing is defined.
func SummarizeOverview(records []player.Player, reportCount, userCount int) Overview {
	ages := make([]float64, 0, len(records))
	values := make([]float64, 0, len(records))
	for _, record := range records {
		if v, ok := FieldAge.Value(record); ok {
			ages = append(ages, v)
		}
		if v, ok := FieldMarketValue.Value(record); ok {
			values = append(values, v)
		}
	}

	return Overview{
		TotalPlayers:       len(records),
		TotalReports:       reportCount,
		TotalUsers:         userCount,
		AverageAge:         int(roundedMean(ages)),
		AverageMarketValue: roundedMean(values),
	}
}
