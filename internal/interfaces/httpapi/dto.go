package httpapi

import (
	"time"

	"github.com/riskibarqy/scouting-dashboard/internal/domain/analytics"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/scouting"
)

type dashboardReportDTO struct {
	Overview                overviewDTO                     `json:"overview"`
	PositionDistribution    []bucketDTO                     `json:"positionDistribution"`
	TeamDistribution        []bucketDTO                     `json:"teamDistribution"`
	NationalityDistribution []bucketDTO                     `json:"nationalityDistribution"`
	AgeDistribution         map[string]int                  `json:"ageDistribution"`
	TopPlayers              topPlayersDTO                   `json:"topPlayers"`
	MarketAnalysis          marketAnalysisDTO               `json:"marketAnalysis"`
	AttributesByPosition    map[string]attributeAveragesDTO `json:"attributesByPosition"`
	GeneratedAt             string                          `json:"generatedAt"`
	SchemaVersion           string                          `json:"schemaVersion"`
}

type overviewDTO struct {
	TotalPlayers       int   `json:"totalPlayers"`
	TotalReports       int   `json:"totalReports"`
	TotalUsers         int   `json:"totalUsers"`
	AverageAge         int   `json:"averageAge"`
	AverageMarketValue int64 `json:"averageMarketValue"`
}

type bucketDTO struct {
	Category string           `json:"category"`
	Count    int              `json:"count"`
	Averages map[string]int64 `json:"averages"`
}

type rankedPlayerDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Team     string  `json:"team,omitempty"`
	Position string  `json:"position,omitempty"`
	Field    string  `json:"field"`
	Value    float64 `json:"value"`
}

type topPlayersDTO struct {
	TopScorers   []rankedPlayerDTO `json:"topScorers"`
	TopAssisters []rankedPlayerDTO `json:"topAssisters"`
	MostValuable []rankedPlayerDTO `json:"mostValuable"`
}

type expiringContractDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Team        string   `json:"team,omitempty"`
	Position    string   `json:"position,omitempty"`
	ContractEnd string   `json:"contractEnd"`
	MarketValue *float64 `json:"marketValue,omitempty"`
}

type marketAnalysisDTO struct {
	Total         float64               `json:"total"`
	Min           float64               `json:"min"`
	Max           float64               `json:"max"`
	ExpiringCount int                   `json:"expiringCount"`
	ExpiringList  []expiringContractDTO `json:"expiringList"`
}

type attributeAveragesDTO struct {
	Pace      int `json:"pace"`
	Shooting  int `json:"shooting"`
	Passing   int `json:"passing"`
	Dribbling int `json:"dribbling"`
	Defending int `json:"defending"`
	Physical  int `json:"physical"`
}

type playerDTO struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Position    string               `json:"position,omitempty"`
	Age         *int                 `json:"age,omitempty"`
	Team        string               `json:"team,omitempty"`
	Nationality string               `json:"nationality,omitempty"`
	MarketValue *float64             `json:"marketValue,omitempty"`
	ContractEnd string               `json:"contractEnd,omitempty"`
	Goals       *int                 `json:"goals,omitempty"`
	Assists     *int                 `json:"assists,omitempty"`
	Attributes  *playerAttributesDTO `json:"attributes,omitempty"`
}

type playerAttributesDTO struct {
	attributeAveragesDTO
	Finishing   *int `json:"finishing,omitempty"`
	Crossing    *int `json:"crossing,omitempty"`
	LongShots   *int `json:"longShots,omitempty"`
	Positioning *int `json:"positioning,omitempty"`
	Diving      *int `json:"diving,omitempty"`
	Handling    *int `json:"handling,omitempty"`
	Kicking     *int `json:"kicking,omitempty"`
	Reflexes    *int `json:"reflexes,omitempty"`
}

type playerPageDTO struct {
	Items    []playerDTO `json:"items"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}

type scoutingReportDTO struct {
	ID        string `json:"id"`
	PlayerID  string `json:"playerId"`
	ScoutID   string `json:"scoutId"`
	Rating    int    `json:"rating"`
	Potential int    `json:"potential"`
	Summary   string `json:"summary"`
	CreatedAt string `json:"createdAt"`
}

func dashboardReportToDTO(r analytics.Report) dashboardReportDTO {
	attributes := make(map[string]attributeAveragesDTO, len(r.AttributesByPosition))
	for position, avg := range r.AttributesByPosition {
		attributes[string(position)] = attributeAveragesToDTO(avg)
	}

	expiring := make([]expiringContractDTO, 0, len(r.MarketAnalysis.ExpiringList))
	for _, item := range r.MarketAnalysis.ExpiringList {
		expiring = append(expiring, expiringContractDTO{
			ID:          item.ID,
			Name:        item.Name,
			Team:        item.Team,
			Position:    string(item.Position),
			ContractEnd: item.ContractEnd.String(),
			MarketValue: item.MarketValue,
		})
	}

	return dashboardReportDTO{
		Overview: overviewDTO{
			TotalPlayers:       r.Overview.TotalPlayers,
			TotalReports:       r.Overview.TotalReports,
			TotalUsers:         r.Overview.TotalUsers,
			AverageAge:         r.Overview.AverageAge,
			AverageMarketValue: r.Overview.AverageMarketValue,
		},
		PositionDistribution:    bucketsToDTO(r.PositionDistribution),
		TeamDistribution:        bucketsToDTO(r.TeamDistribution),
		NationalityDistribution: bucketsToDTO(r.NationalityDistribution),
		AgeDistribution:         r.AgeDistribution.Labeled(),
		TopPlayers: topPlayersDTO{
			TopScorers:   rankedToDTO(r.TopPlayers.TopScorers),
			TopAssisters: rankedToDTO(r.TopPlayers.TopAssisters),
			MostValuable: rankedToDTO(r.TopPlayers.MostValuable),
		},
		MarketAnalysis: marketAnalysisDTO{
			Total:         r.MarketAnalysis.Total,
			Min:           r.MarketAnalysis.Min,
			Max:           r.MarketAnalysis.Max,
			ExpiringCount: r.MarketAnalysis.ExpiringCount,
			ExpiringList:  expiring,
		},
		AttributesByPosition: attributes,
		GeneratedAt:          r.GeneratedAt.UTC().Format(time.RFC3339),
		SchemaVersion:        r.SchemaVersion,
	}
}

func bucketsToDTO(buckets []analytics.Bucket) []bucketDTO {
	out := make([]bucketDTO, 0, len(buckets))
	for _, b := range buckets {
		averages := make(map[string]int64, len(b.Averages))
		for _, avg := range b.Averages {
			averages[avg.Field] = avg.Value
		}
		out = append(out, bucketDTO{Category: b.Category, Count: b.Count, Averages: averages})
	}
	return out
}

func rankedToDTO(items []analytics.RankedPlayer) []rankedPlayerDTO {
	out := make([]rankedPlayerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, rankedPlayerDTO{
			ID:       item.ID,
			Name:     item.Name,
			Team:     item.Team,
			Position: string(item.Position),
			Field:    item.Field,
			Value:    item.Value,
		})
	}
	return out
}

func attributeAveragesToDTO(v analytics.AttributeAverages) attributeAveragesDTO {
	return attributeAveragesDTO{
		Pace:      v.Pace,
		Shooting:  v.Shooting,
		Passing:   v.Passing,
		Dribbling: v.Dribbling,
		Defending: v.Defending,
		Physical:  v.Physical,
	}
}

func playerToDTO(p player.Player) playerDTO {
	out := playerDTO{
		ID:          p.ID,
		Name:        p.Name,
		Position:    string(p.Position),
		Age:         p.Age,
		Team:        p.Team,
		Nationality: p.Nationality,
		MarketValue: p.MarketValue,
		Goals:       p.Goals,
		Assists:     p.Assists,
	}
	if p.ContractEnd != nil {
		out.ContractEnd = p.ContractEnd.String()
	}
	if a := p.Attributes; a != nil {
		out.Attributes = &playerAttributesDTO{
			attributeAveragesDTO: attributeAveragesDTO{
				Pace:      a.Pace,
				Shooting:  a.Shooting,
				Passing:   a.Passing,
				Dribbling: a.Dribbling,
				Defending: a.Defending,
				Physical:  a.Physical,
			},
			Finishing:   a.Finishing,
			Crossing:    a.Crossing,
			LongShots:   a.LongShots,
			Positioning: a.Positioning,
			Diving:      a.Diving,
			Handling:    a.Handling,
			Kicking:     a.Kicking,
			Reflexes:    a.Reflexes,
		}
	}
	return out
}

func scoutingReportToDTO(r scouting.Report) scoutingReportDTO {
	return scoutingReportDTO{
		ID:        r.ID,
		PlayerID:  r.PlayerID,
		ScoutID:   r.ScoutID,
		Rating:    r.Rating,
		Potential: r.Potential,
		Summary:   r.Summary,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
