package analytics

import "github.com/riskibarqy/scouting-dashboard/internal/domain/player"

// AttributeAverages holds the rounded mean of each core technical score.
type AttributeAverages struct {
	Pace      int
	Shooting  int
	Passing   int
	Dribbling int
	Defending int
	Physical  int
}

const coreAttributeCount = 6

type attributeSamples [coreAttributeCount][]float64

// AverageAttributes averages the core scores per position over records that
// carry an attribute set. Positions with no such record are absent.
func AverageAttributes(records []player.Player) map[player.Position]AttributeAverages {
	samplesByPosition := make(map[player.Position]*attributeSamples)
	for _, record := range records {
		if record.Attributes == nil || record.Position == "" {
			continue
		}

		samples, ok := samplesByPosition[record.Position]
		if !ok {
			samples = &attributeSamples{}
			samplesByPosition[record.Position] = samples
		}

		a := record.Attributes
		for i, score := range [coreAttributeCount]int{a.Pace, a.Shooting, a.Passing, a.Dribbling, a.Defending, a.Physical} {
			samples[i] = append(samples[i], float64(score))
		}
	}

	out := make(map[player.Position]AttributeAverages, len(samplesByPosition))
	for position, samples := range samplesByPosition {
		out[position] = AttributeAverages{
			Pace:      int(roundedMean(samples[0])),
			Shooting:  int(roundedMean(samples[1])),
			Passing:   int(roundedMean(samples[2])),
			Dribbling: int(roundedMean(samples[3])),
			Defending: int(roundedMean(samples[4])),
			Physical:  int(roundedMean(samples[5])),
		}
	}

	return out
}
