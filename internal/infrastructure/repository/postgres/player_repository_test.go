package postgres

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
	"github.com/shopspring/decimal"
)

func TestBuildPlayerListQuery(t *testing.T) {
	query, args, err := buildPlayerListQuery(player.Filter{
		Position: player.PositionMidfielder,
		Team:     "Persib Bandung",
		MinAge:   20,
		Search:   "klok",
	}).Count().ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	wantQuery := "SELECT COUNT(*) FROM players p LEFT JOIN player_attributes a ON a.player_public_id = p.public_id " +
		"WHERE p.deleted_at IS NULL AND p.position = $1 AND LOWER(p.team) = LOWER($2) AND p.age >= $3 AND p.name ILIKE $4"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[0] != "MID" || args[3] != "%klok%" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestPlayerRowToDomain(t *testing.T) {
	end := civil.Date{Year: 2027, Month: 6, Day: 30}
	row := playerRow{
		PublicID:    "mid-02",
		Name:        "Marc Klok",
		MarketValue: decimal.NewNullDecimal(decimal.RequireFromString("900000.50")),
		ContractEnd: &end,
	}
	row.Goals.Int64, row.Goals.Valid = 5, true

	got := row.toDomain()
	if got.Position != "" || got.Age != nil || got.Attributes != nil {
		t.Fatalf("expected undefined optional fields, got %+v", got)
	}
	if got.MarketValue == nil || *got.MarketValue != 900000.5 {
		t.Fatalf("unexpected market value: %v", got.MarketValue)
	}
	if got.Goals == nil || *got.Goals != 5 {
		t.Fatalf("unexpected goals: %v", got.Goals)
	}

	row.HasAttributes = true
	row.Pace.Int64, row.Pace.Valid = 80, true
	if got := row.toDomain(); got.Attributes == nil || got.Attributes.Pace != 80 || got.Attributes.Reflexes != nil {
		t.Fatalf("unexpected attributes: %+v", got.Attributes)
	}
}

func TestPlayerWriteModelFromDomain(t *testing.T) {
	value := 1_000_000.0
	got := playerWriteModelFromDomain(player.Player{ID: "p1", Name: "N", Team: "  ", MarketValue: &value})
	if got.Team.Valid {
		t.Fatalf("expected blank team to be null")
	}
	if !got.MarketValue.Valid || !got.MarketValue.Decimal.Equal(decimal.NewFromInt(1_000_000)) {
		t.Fatalf("unexpected market value: %+v", got.MarketValue)
	}
	if got.Age.Valid {
		t.Fatalf("expected undefined age to be null")
	}
}
