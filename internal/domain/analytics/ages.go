package analytics

import "github.com/riskibarqy/scouting-dashboard/internal/domain/player"

// AgeBuckets is the fixed five-range age histogram. Ages at or below 20 land in
// the first bucket, anything above 35 in the last.
type AgeBuckets struct {
	Age16To20 int
	Age21To25 int
	Age26To30 int
	Age31To35 int
	Age36Plus int
}

const (
	AgeBucket16To20 = "16-20"
	AgeBucket21To25 = "21-25"
	AgeBucket26To30 = "26-30"
	AgeBucket31To35 = "31-35"
	AgeBucket36Plus = "36+"
)

func (b AgeBuckets) Total() int {
	return b.Age16To20 + b.Age21To25 + b.Age26To30 + b.Age31To35 + b.Age36Plus
}

// Labeled returns the buckets keyed by their display label.
func (b AgeBuckets) Labeled() map[string]int {
	return map[string]int{
		AgeBucket16To20: b.Age16To20,
		AgeBucket21To25: b.Age21To25,
		AgeBucket26To30: b.Age26To30,
		AgeBucket31To35: b.Age31To35,
		AgeBucket36Plus: b.Age36Plus,
	}
}

func ClassifyAges(records []player.Player) AgeBuckets {
	var out AgeBuckets
	for _, record := range records {
		if record.Age == nil {
			continue
		}

		switch age := *record.Age; {
		case age <= 20:
			out.Age16To20++
		case age <= 25:
			out.Age21To25++
		case age <= 30:
			out.Age26To30++
		case age <= 35:
			out.Age31To35++
		default:
			out.Age36Plus++
		}
	}

	return out
}
