package player

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
)

// Position represents the football position vocabulary used across scouting records.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

func ParsePosition(v string) (Position, error) {
	p := Position(strings.ToUpper(strings.TrimSpace(v)))
	if _, ok := AllPositions[p]; !ok {
		return "", fmt.Errorf("invalid player position: %q", v)
	}
	return p, nil
}

// Player is one scouted athlete profile. Optional values are nil (or empty for
// categorical strings) when the source record does not carry them.
type Player struct {
	ID          string
	Name        string
	Position    Position
	Age         *int
	Team        string
	Nationality string
	MarketValue *float64
	ContractEnd *civil.Date
	Goals       *int
	Assists     *int
	Attributes  *AttributeSet
}

// AttributeSet holds technical scores on a 1..100 scale. The six core scores are
// always present; extended scores are position specific.
type AttributeSet struct {
	Pace      int
	Shooting  int
	Passing   int
	Dribbling int
	Defending int
	Physical  int

	Finishing   *int
	Crossing    *int
	LongShots   *int
	Positioning *int
	Diving      *int
	Handling    *int
	Kicking     *int
	Reflexes    *int
}

const (
	MinAttributeScore = 1
	MaxAttributeScore = 100
)

func (p Player) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Position != "" {
		if _, ok := AllPositions[p.Position]; !ok {
			return fmt.Errorf("invalid player position: %s", p.Position)
		}
	}
	if p.Age != nil && *p.Age < 0 {
		return fmt.Errorf("player age must not be negative")
	}
	if p.MarketValue != nil && *p.MarketValue < 0 {
		return fmt.Errorf("player market value must not be negative")
	}
	if p.Goals != nil && *p.Goals < 0 {
		return fmt.Errorf("player goals must not be negative")
	}
	if p.Assists != nil && *p.Assists < 0 {
		return fmt.Errorf("player assists must not be negative")
	}
	if p.ContractEnd != nil && !p.ContractEnd.IsValid() {
		return fmt.Errorf("invalid contract end date: %s", p.ContractEnd)
	}
	if p.Attributes != nil {
		if err := p.Attributes.Validate(); err != nil {
			return fmt.Errorf("player %s attributes: %w", p.ID, err)
		}
	}

	return nil
}

func (a AttributeSet) Validate() error {
	core := map[string]int{
		"pace":      a.Pace,
		"shooting":  a.Shooting,
		"passing":   a.Passing,
		"dribbling": a.Dribbling,
		"defending": a.Defending,
		"physical":  a.Physical,
	}
	for name, score := range core {
		if score < MinAttributeScore || score > MaxAttributeScore {
			return fmt.Errorf("%s score %d out of range [%d,%d]", name, score, MinAttributeScore, MaxAttributeScore)
		}
	}

	extended := map[string]*int{
		"finishing":   a.Finishing,
		"crossing":    a.Crossing,
		"longShots":   a.LongShots,
		"positioning": a.Positioning,
		"diving":      a.Diving,
		"handling":    a.Handling,
		"kicking":     a.Kicking,
		"reflexes":    a.Reflexes,
	}
	for name, score := range extended {
		if score == nil {
			continue
		}
		if *score < MinAttributeScore || *score > MaxAttributeScore {
			return fmt.Errorf("%s score %d out of range [%d,%d]", name, *score, MinAttributeScore, MaxAttributeScore)
		}
	}

	return nil
}

// Filter narrows catalogue listings. Zero values mean "no constraint".
type Filter struct {
	Position    Position
	Team        string
	Nationality string
	MinAge      int
	MaxAge      int
	Search      string
	Limit       int
	Offset      int
}

// Page is one slice of a filtered listing along with the unpaginated total.
type Page struct {
	Items []Player
	Total int
}

// Matches reports whether p satisfies every non-zero constraint of f.
// Limit and Offset are ignored.
func (f Filter) Matches(p Player) bool {
	if f.Position != "" && p.Position != f.Position {
		return false
	}
	if f.Team != "" && !strings.EqualFold(strings.TrimSpace(p.Team), f.Team) {
		return false
	}
	if f.Nationality != "" && !strings.EqualFold(strings.TrimSpace(p.Nationality), f.Nationality) {
		return false
	}
	if f.MinAge > 0 && (p.Age == nil || *p.Age < f.MinAge) {
		return false
	}
	if f.MaxAge > 0 && (p.Age == nil || *p.Age > f.MaxAge) {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}
