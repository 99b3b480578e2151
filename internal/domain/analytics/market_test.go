package analytics

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
)

func TestSummarizeMarket_Totals(t *testing.T) {
	today := civil.Date{Year: 2026, Month: 3, Day: 1}
	records := []player.Player{
		{ID: "p1"},
		{ID: "p2", MarketValue: floatPtr(5_000_000)},
		{ID: "p3", MarketValue: floatPtr(12_000_000)},
	}

	got, err := SummarizeMarket(records, today, MarketOptions{HorizonMonths: 12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Total != 17_000_000 || got.Min != 5_000_000 || got.Max != 12_000_000 {
		t.Fatalf("unexpected totals: %+v", got)
	}
}

func TestSummarizeMarket_ExactDecimalTotal(t *testing.T) {
	records := []player.Player{
		{ID: "p1", MarketValue: floatPtr(0.1)},
		{ID: "p2", MarketValue: floatPtr(0.2)},
	}

	got, err := SummarizeMarket(records, civil.Date{Year: 2026, Month: 1, Day: 1}, MarketOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Total != 0.3 {
		t.Fatalf("expected total 0.3, got %v", got.Total)
	}
}

func TestSummarizeMarket_NoValues(t *testing.T) {
	got, err := SummarizeMarket([]player.Player{{ID: "p1"}}, civil.Date{Year: 2026, Month: 1, Day: 1}, MarketOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Total != 0 || got.Min != 0 || got.Max != 0 || got.ExpiringCount != 0 {
		t.Fatalf("expected zero summary, got %+v", got)
	}
	if got.ExpiringList == nil {
		t.Fatalf("expected empty non-nil expiring list")
	}
}

func TestSummarizeMarket_ExpiringWindow(t *testing.T) {
	today := civil.Date{Year: 2026, Month: 3, Day: 15}
	records := []player.Player{
		{ID: "thirteen-months", ContractEnd: datePtr(today.AddMonths(13))},
		{ID: "eleven-months", ContractEnd: datePtr(today.AddMonths(11))},
		{ID: "yesterday", ContractEnd: datePtr(today.AddDays(-1))},
		{ID: "today", ContractEnd: datePtr(today)},
		{ID: "horizon", ContractEnd: datePtr(today.AddMonths(12))},
		{ID: "open-ended"},
	}

	got, err := SummarizeMarket(records, today, MarketOptions{HorizonMonths: 12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantIDs := []string{"today", "eleven-months", "horizon"}
	if got.ExpiringCount != len(wantIDs) || len(got.ExpiringList) != len(wantIDs) {
		t.Fatalf("unexpected expiring list: %+v", got.ExpiringList)
	}
	for i, id := range wantIDs {
		if got.ExpiringList[i].ID != id {
			t.Fatalf("expiring[%d]: got %s want %s", i, got.ExpiringList[i].ID, id)
		}
	}
}

func TestSummarizeMarket_LimitKeepsFullCount(t *testing.T) {
	today := civil.Date{Year: 2026, Month: 1, Day: 1}
	records := make([]player.Player, 0, 30)
	for i := range 30 {
		records = append(records, player.Player{ID: string(rune('a' + i)), ContractEnd: datePtr(today.AddDays(30 - i))})
	}

	got, err := SummarizeMarket(records, today, MarketOptions{HorizonMonths: 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ExpiringCount != 30 {
		t.Fatalf("expected full expiring count 30, got %d", got.ExpiringCount)
	}
	if len(got.ExpiringList) != DefaultExpiringLimit {
		t.Fatalf("expected list capped at %d, got %d", DefaultExpiringLimit, len(got.ExpiringList))
	}
	for i := 1; i < len(got.ExpiringList); i++ {
		if got.ExpiringList[i].ContractEnd.Before(got.ExpiringList[i-1].ContractEnd) {
			t.Fatalf("expiring list not ascending at %d", i)
		}
	}

	capped, err := SummarizeMarket(records, today, MarketOptions{HorizonMonths: 6, Limit: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(capped.ExpiringList) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(capped.ExpiringList))
	}
}

func TestSummarizeMarket_InvalidOptions(t *testing.T) {
	today := civil.Date{Year: 2026, Month: 1, Day: 1}
	if _, err := SummarizeMarket(nil, today, MarketOptions{HorizonMonths: -1}); err == nil {
		t.Fatalf("expected error for negative horizon")
	}
	if _, err := SummarizeMarket(nil, today, MarketOptions{Limit: -1}); err == nil {
		t.Fatalf("expected error for negative limit")
	}
	if _, err := SummarizeMarket(nil, civil.Date{Year: 2026, Month: 2, Day: 30}, MarketOptions{}); err == nil {
		t.Fatalf("expected error for invalid reference date")
	}
}
