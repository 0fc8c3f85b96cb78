package planner

import (
	"fmt"
	"time"
)

// Clock supplies the current instant. Injectable for deterministic tests;
// the engine reads it once per query and keeps no notion of time between
// calls.
type Clock func() time.Time

// PlannerConfig configures a Planner.
// Zero values produce sensible defaults; see field comments.
type PlannerConfig struct {
	Effectiveness    [24]float64   `json:"effectiveness"`     // zero → DefaultEffectiveness
	OptimalThreshold float64       `json:"optimal_threshold"` // zero → 0.75
	Now              Clock         `json:"-"`                 // nil → time.Now
	Types            *TypeRegistry `json:"-"`                 // nil → empty registry
}

// Planner answers planner queries: free-slot search, agenda grouping, and
// effectiveness lookups. It is stateless between calls and never mutates
// the sessions it is given.
type Planner struct {
	effectiveness    [24]float64
	optimalThreshold float64
	now              Clock
	types            *TypeRegistry
}

// NewPlanner creates a Planner from the given config.
// Zero-value fields are filled with defaults; invalid values return an error.
func NewPlanner(cfg PlannerConfig) (*Planner, error) {
	// Effectiveness: zero array → defaults.
	scores := cfg.Effectiveness
	if scores == [24]float64{} {
		scores = DefaultEffectiveness
	}
	if err := ValidateEffectiveness(scores); err != nil {
		return nil, err
	}

	// OptimalThreshold: zero → 0.75.
	threshold := cfg.OptimalThreshold
	if threshold == 0 {
		threshold = DefaultOptimalThreshold
	}
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("planner: optimal threshold %f out of range [0, 1]", threshold)
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	types := cfg.Types
	if types == nil {
		types = NewTypeRegistry()
	}

	return &Planner{
		effectiveness:    scores,
		optimalThreshold: threshold,
		now:              now,
		types:            types,
	}, nil
}

// Classify assigns the session to its relative-time bucket as of the
// planner's current instant.
func (p *Planner) Classify(s Session) TimeBucket {
	return ClassifyAt(p.now(), s)
}

// Agenda groups the sessions into non-empty relative-time buckets in
// display order, as of the planner's current instant.
func (p *Planner) Agenda(sessions []Session) []BucketGroup {
	return GroupByBucket(p.now(), sessions)
}
