package analytics

import (
	"cloud.google.com/go/civil"
	"github.com/riskibarqy/scouting-dashboard/internal/domain/player"
)

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func datePtr(v civil.Date) *civil.Date {
	return &v
}

func coreAttributes(score int) *player.AttributeSet {
	return &player.AttributeSet{
		Pace:      score,
		Shooting:  score,
		Passing:   score,
		Dribbling: score,
		Defending: score,
		Physical:  score,
	}
}
