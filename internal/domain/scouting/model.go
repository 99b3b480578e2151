package scouting

import (
	"fmt"
	"strings"
	"time"
)

const (
	MinRating = 1
	MaxRating = 10
)

// Report is one scout's written assessment of a player.
type Report struct {
	ID        string
	PlayerID  string
	ScoutID   string
	Rating    int
	Potential int
	Summary   string
	CreatedAt time.Time
}

func (r Report) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("report id is required")
	}
	if strings.TrimSpace(r.PlayerID) == "" {
		return fmt.Errorf("report player id is required")
	}
	if strings.TrimSpace(r.ScoutID) == "" {
		return fmt.Errorf("report scout id is required")
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		return fmt.Errorf("report rating must be within [%d,%d]", MinRating, MaxRating)
	}
	if r.Potential < MinRating || r.Potential > MaxRating {
		return fmt.Errorf("report potential must be within [%d,%d]", MinRating, MaxRating)
	}

	return nil
}
