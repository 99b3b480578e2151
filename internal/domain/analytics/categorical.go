package analytics

import (
	"cmp"
	"slices"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
)

// Bucket is one category's entry in a distribution.
type Bucket struct {
	Category string
	Count    int
	Averages []FieldAverage
}

// FieldAverage is the rounded mean of one numeric field within a bucket.
type FieldAverage struct {
	Field string
	Value int64
}

// Average looks up the rounded mean reported for field.
func (b Bucket) Average(field string) (int64, bool) {
	for _, avg := range b.Averages {
		if avg.Field == field {
			return avg.Value, true
		}
	}
	return 0, false
}

type AggregateOptions struct {
	// Limit keeps only the first Limit buckets after sorting. Zero keeps all.
	Limit int
}

type categoryGroup struct {
	category string
	count    int
	values   [][]float64
}

// Aggregate groups records by category, counting members and averaging the
// requested fields per group. Buckets are ordered by count descending, ties
// keeping the order in which categories first appear in records.
func Aggregate(records []player.Player, category CategorySelector, fields []NumericField, opts AggregateOptions) ([]Bucket, error) {
	if category == nil {
		return nil, crerr.AssertionFailedf("category selector is required")
	}
	if opts.Limit < 0 {
		return nil, crerr.Newf("distribution limit must be >= 0, got %d", opts.Limit)
	}
	for _, f := range fields {
		if f.Value == nil {
			return nil, crerr.AssertionFailedf("numeric field %q has no value selector", f.Name)
		}
	}

	indexByCategory := make(map[string]int)
	groups := make([]*categoryGroup, 0)
	for _, record := range records {
		key, ok := category(record)
		if !ok {
			continue
		}

		idx, seen := indexByCategory[key]
		if !seen {
			idx = len(groups)
			indexByCategory[key] = idx
			groups = append(groups, &categoryGroup{
				category: key,
				values:   make([][]float64, len(fields)),
			})
		}

		g := groups[idx]
		g.count++
		for i, f := range fields {
			if v, ok := f.Value(record); ok {
				g.values[i] = append(g.values[i], v)
			}
		}
	}

	slices.SortStableFunc(groups, func(a, b *categoryGroup) int {
		return cmp.Compare(b.count, a.count)
	})
	if opts.Limit > 0 && len(groups) > opts.Limit {
		groups = groups[:opts.Limit]
	}

	out := make([]Bucket, 0, len(groups))
	for _, g := range groups {
		averages := make([]FieldAverage, 0, len(fields))
		for i, f := range fields {
			averages = append(averages, FieldAverage{
				Field: f.Name,
				Value: roundedMean(g.values[i]),
			})
		}
		out = append(out, Bucket{
			Category: g.category,
			Count:    g.count,
			Averages: averages,
		})
	}

	return out, nil
}
