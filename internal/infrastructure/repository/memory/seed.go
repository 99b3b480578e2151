package memory

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/scouting"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/user"
)

const (
	UserIDHeadScout = "user-head-scout"
	UserIDAnalyst   = "user-analyst"
)

func SeedUsers() []user.Principal {
	return []user.Principal{
		{UserID: UserIDHeadScout, Email: "head.scout@example.com", Role: "scout"},
		{UserID: UserIDAnalyst, Email: "analyst@example.com", Role: "analyst"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		seedPlayer("gk-01", "Andritany Ardhiyasa", player.PositionGoalkeeper, 33, "Persija Jakarta", "Indonesia", 450_000, date(2027, 6, 30), 0, 0,
			&player.AttributeSet{Pace: 45, Shooting: 20, Passing: 55, Dribbling: 30, Defending: 40, Physical: 70, Diving: intPtr(78), Handling: intPtr(75), Kicking: intPtr(68), Reflexes: intPtr(80)}),
		seedPlayer("gk-02", "Teja Paku Alam", player.PositionGoalkeeper, 31, "Persib Bandung", "Indonesia", 400_000, date(2026, 12, 31), 0, 0, nil),
		seedPlayer("def-01", "Hansamu Yama", player.PositionDefender, 30, "Persija Jakarta", "Indonesia", 550_000, date(2027, 5, 31), 2, 1,
			&player.AttributeSet{Pace: 62, Shooting: 40, Passing: 58, Dribbling: 50, Defending: 78, Physical: 80}),
		seedPlayer("def-02", "Nick Kuipers", player.PositionDefender, 33, "Persib Bandung", "Netherlands", 700_000, date(2026, 11, 30), 3, 0,
			&player.AttributeSet{Pace: 55, Shooting: 45, Passing: 64, Dribbling: 48, Defending: 81, Physical: 84}),
		seedPlayer("def-03", "Dusan Stevanovic", player.PositionDefender, 29, "Persebaya Surabaya", "Serbia", 650_000, date(2028, 6, 30), 1, 2, nil),
		seedPlayer("def-04", "Ricky Fajrin", player.PositionDefender, 29, "Bali United", "Indonesia", 500_000, date(2027, 1, 31), 0, 4,
			&player.AttributeSet{Pace: 74, Shooting: 42, Passing: 66, Dribbling: 63, Defending: 72, Physical: 70, Crossing: intPtr(71)}),
		seedPlayer("mid-01", "Maciej Gajos", player.PositionMidfielder, 34, "Persija Jakarta", "Poland", 800_000, date(2026, 12, 31), 6, 9,
			&player.AttributeSet{Pace: 60, Shooting: 72, Passing: 82, Dribbling: 76, Defending: 55, Physical: 66, LongShots: intPtr(78)}),
		seedPlayer("mid-02", "Marc Klok", player.PositionMidfielder, 32, "Persib Bandung", "Indonesia", 900_000, date(2027, 6, 30), 5, 11,
			&player.AttributeSet{Pace: 64, Shooting: 70, Passing: 84, Dribbling: 74, Defending: 68, Physical: 75}),
		seedPlayer("mid-03", "Bruno Moreira", player.PositionMidfielder, 33, "Persebaya Surabaya", "Brazil", 750_000, date(2027, 3, 31), 8, 6, nil),
		seedPlayer("mid-04", "Eber Bessa", player.PositionMidfielder, 32, "Bali United", "Brazil", 700_000, date(2026, 10, 31), 4, 7,
			&player.AttributeSet{Pace: 66, Shooting: 68, Passing: 80, Dribbling: 79, Defending: 50, Physical: 62}),
		seedPlayer("mid-05", "Arkhan Fikri", player.PositionMidfielder, 20, "Arema FC", "Indonesia", 350_000, date(2029, 6, 30), 2, 3,
			&player.AttributeSet{Pace: 72, Shooting: 58, Passing: 70, Dribbling: 71, Defending: 52, Physical: 60}),
		seedPlayer("fwd-01", "Gustavo Almeida", player.PositionForward, 28, "Persija Jakarta", "Brazil", 1_100_000, date(2027, 6, 30), 17, 4,
			&player.AttributeSet{Pace: 78, Shooting: 84, Passing: 62, Dribbling: 76, Defending: 30, Physical: 79, Finishing: intPtr(86), Positioning: intPtr(82)}),
		seedPlayer("fwd-02", "David da Silva", player.PositionForward, 36, "Persib Bandung", "Brazil", 600_000, date(2026, 12, 31), 19, 3,
			&player.AttributeSet{Pace: 60, Shooting: 85, Passing: 58, Dribbling: 68, Defending: 28, Physical: 82, Finishing: intPtr(88)}),
		seedPlayer("fwd-03", "Flavio Silva", player.PositionForward, 29, "Persebaya Surabaya", "Brazil", 850_000, date(2028, 1, 31), 12, 5, nil),
		seedPlayer("fwd-04", "Ilija Spasojevic", player.PositionForward, 38, "Bali United", "Indonesia", 250_000, date(2026, 11, 30), 9, 2,
			&player.AttributeSet{Pace: 48, Shooting: 79, Passing: 60, Dribbling: 58, Defending: 30, Physical: 74}),
		seedPlayer("fwd-05", "Marselino Ferdinan", player.PositionForward, 21, "Arema FC", "Indonesia", 1_000_000, date(2029, 6, 30), 7, 8,
			&player.AttributeSet{Pace: 82, Shooting: 71, Passing: 69, Dribbling: 83, Defending: 35, Physical: 61}),
		{ID: "trial-01", Name: "Unregistered Trialist", Nationality: "Japan", Age: intPtr(18)},
	}
}

func SeedScoutingReports() []scouting.Report {
	base := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
	return []scouting.Report{
		{ID: "rep-001", PlayerID: "fwd-05", ScoutID: UserIDHeadScout, Rating: 8, Potential: 9, Summary: "Explosive ball carrier, decision making still raw.", CreatedAt: base},
		{ID: "rep-002", PlayerID: "fwd-05", ScoutID: UserIDAnalyst, Rating: 7, Potential: 9, Summary: "Press resistance improved over the last month.", CreatedAt: base.AddDate(0, 1, 0)},
		{ID: "rep-003", PlayerID: "mid-05", ScoutID: UserIDHeadScout, Rating: 7, Potential: 8, Summary: "Reliable distributor under pressure.", CreatedAt: base.AddDate(0, 0, 14)},
		{ID: "rep-004", PlayerID: "fwd-01", ScoutID: UserIDAnalyst, Rating: 8, Potential: 8, Summary: "Elite penalty box movement.", CreatedAt: base.AddDate(0, 2, 0)},
		{ID: "rep-005", PlayerID: "def-04", ScoutID: UserIDHeadScout, Rating: 6, Potential: 6, Summary: "Solid recovery pace, crossing inconsistent.", CreatedAt: base.AddDate(0, 0, 3)},
	}
}

func seedPlayer(
	id, name string,
	position player.Position,
	age int,
	team, nationality string,
	marketValue float64,
	contractEnd civil.Date,
	goals, assists int,
	attributes *player.AttributeSet,
) player.Player {
	return player.Player{
		ID:          id,
		Name:        name,
		Position:    position,
		Age:         intPtr(age),
		Team:        team,
		Nationality: nationality,
		MarketValue: &marketValue,
		ContractEnd: &contractEnd,
		Goals:       intPtr(goals),
		Assists:     intPtr(assists),
		Attributes:  attributes,
	}
}

func date(year int, month time.Month, day int) civil.Date {
	return civil.Date{Year: year, Month: month, Day: day}
}

func intPtr(v int) *int {
	return &v
}
