package postgres

import (
	"database/sql"

	"cloud.google.com/go/civil"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
	"github.com/shopspring/decimal"
)

// playerRow is one players row LEFT JOINed with its optional attribute row.
type playerRow struct {
	PublicID    string              `db:"public_id"`
	Name        string              `db:"name"`
	Position    sql.NullString      `db:"position"`
	Age         sql.NullInt64       `db:"age"`
	Team        sql.NullString      `db:"team"`
	Nationality sql.NullString      `db:"nationality"`
	MarketValue decimal.NullDecimal `db:"market_value"`
	ContractEnd *civil.Date         `db:"contract_end"`
	Goals       sql.NullInt64       `db:"goals"`
	Assists     sql.NullInt64       `db:"assists"`

	HasAttributes bool          `db:"has_attributes"`
	Pace          sql.NullInt64 `db:"pace"`
	Shooting      sql.NullInt64 `db:"shooting"`
	Passing       sql.NullInt64 `db:"passing"`
	Dribbling     sql.NullInt64 `db:"dribbling"`
	Defending     sql.NullInt64 `db:"defending"`
	Physical      sql.NullInt64 `db:"physical"`
	Finishing     sql.NullInt64 `db:"finishing"`
	Crossing      sql.NullInt64 `db:"crossing"`
	LongShots     sql.NullInt64 `db:"long_shots"`
	Positioning   sql.NullInt64 `db:"positioning"`
	Diving        sql.NullInt64 `db:"diving"`
	Handling      sql.NullInt64 `db:"handling"`
	Kicking       sql.NullInt64 `db:"kicking"`
	Reflexes      sql.NullInt64 `db:"reflexes"`
}

type playerWriteModel struct {
	PublicID    string              `db:"public_id"`
	Name        string              `db:"name"`
	Position    sql.NullString      `db:"position"`
	Age         sql.NullInt64       `db:"age"`
	Team        sql.NullString      `db:"team"`
	Nationality sql.NullString      `db:"nationality"`
	MarketValue decimal.NullDecimal `db:"market_value"`
	ContractEnd *civil.Date         `db:"contract_end"`
	Goals       sql.NullInt64       `db:"goals"`
	Assists     sql.NullInt64       `db:"assists"`
}

type playerAttributesWriteModel struct {
	PlayerID    string        `db:"player_public_id"`
	Pace        int           `db:"pace"`
	Shooting    int           `db:"shooting"`
	Passing     int           `db:"passing"`
	Dribbling   int           `db:"dribbling"`
	Defending   int           `db:"defending"`
	Physical    int           `db:"physical"`
	Finishing   sql.NullInt64 `db:"finishing"`
	Crossing    sql.NullInt64 `db:"crossing"`
	LongShots   sql.NullInt64 `db:"long_shots"`
	Positioning sql.NullInt64 `db:"positioning"`
	Diving      sql.NullInt64 `db:"diving"`
	Handling    sql.NullInt64 `db:"handling"`
	Kicking     sql.NullInt64 `db:"kicking"`
	Reflexes    sql.NullInt64 `db:"reflexes"`
}

func (row playerRow) toDomain() player.Player {
	out := player.Player{
		ID:          row.PublicID,
		Name:        row.Name,
		Position:    player.Position(row.Position.String),
		Age:         intFromNull(row.Age),
		Team:        row.Team.String,
		Nationality: row.Nationality.String,
		ContractEnd: row.ContractEnd,
		Goals:       intFromNull(row.Goals),
		Assists:     intFromNull(row.Assists),
	}
	if row.MarketValue.Valid {
		v := row.MarketValue.Decimal.InexactFloat64()
		out.MarketValue = &v
	}
	if row.HasAttributes {
		out.Attributes = &player.AttributeSet{
			Pace:        int(row.Pace.Int64),
			Shooting:    int(row.Shooting.Int64),
			Passing:     int(row.Passing.Int64),
			Dribbling:   int(row.Dribbling.Int64),
			Defending:   int(row.Defending.Int64),
			Physical:    int(row.Physical.Int64),
			Finishing:   intFromNull(row.Finishing),
			Crossing:    intFromNull(row.Crossing),
			LongShots:   intFromNull(row.LongShots),
			Positioning: intFromNull(row.Positioning),
			Diving:      intFromNull(row.Diving),
			Handling:    intFromNull(row.Handling),
			Kicking:     intFromNull(row.Kicking),
			Reflexes:    intFromNull(row.Reflexes),
		}
	}

	return out
}

func playerWriteModelFromDomain(p player.Player) playerWriteModel {
	out := playerWriteModel{
		PublicID:    p.ID,
		Name:        p.Name,
		Position:    nullString(string(p.Position)),
		Age:         nullInt(p.Age),
		Team:        nullString(p.Team),
		Nationality: nullString(p.Nationality),
		ContractEnd: p.ContractEnd,
		Goals:       nullInt(p.Goals),
		Assists:     nullInt(p.Assists),
	}
	if p.MarketValue != nil {
		out.MarketValue = decimal.NewNullDecimal(decimal.NewFromFloat(*p.MarketValue))
	}
	return out
}

func attributesWriteModelFromDomain(playerID string, a player.AttributeSet) playerAttributesWriteModel {
	return playerAttributesWriteModel{
		PlayerID:    playerID,
		Pace:        a.Pace,
		Shooting:    a.Shooting,
		Passing:     a.Passing,
		Dribbling:   a.Dribbling,
		Defending:   a.Defending,
		Physical:    a.Physical,
		Finishing:   nullInt(a.Finishing),
		Crossing:    nullInt(a.Crossing),
		LongShots:   nullInt(a.LongShots),
		Positioning: nullInt(a.Positioning),
		Diving:      nullInt(a.Diving),
		Handling:    nullInt(a.Handling),
		Kicking:     nullInt(a.Kicking),
		Reflexes:    nullInt(a.Reflexes),
	}
}
