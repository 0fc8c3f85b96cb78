package planner

import "fmt"

// DefaultEffectiveness maps each hour of the day (0..23) to a modeled
// learning-effectiveness score in [0, 1]. The curve peaks mid-morning,
// dips after lunch, recovers through the afternoon, and has a smaller
// evening peak.
var DefaultEffectiveness = [24]float64{
	0.15, 0.10, 0.05, 0.05, 0.10, 0.20, // 00..05 night
	0.40, 0.55, 0.70, 0.90, 0.95, 0.75, // 06..11 morning ramp, peak 9-10
	0.60, 0.50, 0.65, 0.85, 0.85, 0.70, // 12..17 post-lunch dip, afternoon peak 15-16
	0.60, 0.80, 0.65, 0.50, 0.35, 0.25, // 18..23 evening peak 19, wind-down
}

// DefaultOptimalThreshold is the score above which an hour counts as optimal.
// With DefaultEffectiveness it selects hours 9, 10, 15, 16, and 19.
const DefaultOptimalThreshold = 0.75

// ValidateEffectiveness checks that all 24 hourly scores are within [0, 1].
func ValidateEffectiveness(scores [24]float64) error {
	for h := 0; h < 24; h++ {
		if scores[h] < 0 || scores[h] > 1 {
			return fmt.Errorf("%w: hour %d = %f", ErrInvalidEffectiveness, h, scores[h])
		}
	}
	return nil
}

// EffectivenessOf returns the learning-effectiveness score for the given
// hour of day. Hours outside 0..23 score 0.
func (p *Planner) EffectivenessOf(hour int) float64 {
	if hour < 0 || hour > 23 {
		return 0
	}
	return p.effectiveness[hour]
}

// IsOptimalHour reports whether the hour's score exceeds the optimal
// threshold.
func (p *Planner) IsOptimalHour(hour int) bool {
	return p.EffectivenessOf(hour) > p.optimalThreshold
}

// OptimalHours returns the hours of the day, ascending, whose scores exceed
// the optimal threshold.
func (p *Planner) OptimalHours() []int {
	var hours []int
	for h := 0; h < 24; h++ {
		if p.IsOptimalHour(h) {
			hours = append(hours, h)
		}
	}
	return hours
}
