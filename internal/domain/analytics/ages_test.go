package analytics

import (
	"testing"

	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
)

func TestClassifyAges(t *testing.T) {
	records := []player.Player{
		{ID: "p1", Age: intPtr(19)},
		{ID: "p2", Age: intPtr(27)},
		{ID: "p3", Age: intPtr(41)},
	}

	got := ClassifyAges(records)
	want := AgeBuckets{Age16To20: 1, Age26To30: 1, Age36Plus: 1}
	if got != want {
		t.Fatalf("unexpected buckets: got=%+v want=%+v", got, want)
	}
}

func TestClassifyAges_Boundaries(t *testing.T) {
	tests := []struct {
		age   int
		label string
	}{
		{age: 15, label: AgeBucket16To20},
		{age: 20, label: AgeBucket16To20},
		{age: 21, label: AgeBucket21To25},
		{age: 25, label: AgeBucket21To25},
		{age: 26, label: AgeBucket26To30},
		{age: 30, label: AgeBucket26To30},
		{age: 31, label: AgeBucket31To35},
		{age: 35, label: AgeBucket31To35},
		{age: 36, label: AgeBucket36Plus},
	}

	for _, tc := range tests {
		buckets := ClassifyAges([]player.Player{{ID: "p", Age: intPtr(tc.age)}}).Labeled()
		if buckets[tc.label] != 1 {
			t.Fatalf("age %d: expected bucket %s, got %+v", tc.age, tc.label, buckets)
		}
	}
}

func TestClassifyAges_PartitionsDefinedAges(t *testing.T) {
	records := []player.Player{{ID: "none"}}
	for age := 14; age <= 42; age++ {
		records = append(records, player.Player{ID: "p", Age: intPtr(age)})
	}

	buckets := ClassifyAges(records)
	if buckets.Total() != len(records)-1 {
		t.Fatalf("expected %d classified ages, got %d", len(records)-1, buckets.Total())
	}
}
