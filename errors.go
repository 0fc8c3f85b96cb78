package planner

import "errors"

// Sentinel errors for the planner package.
// Use errors.Is to check: errors.Is(err, planner.ErrInvalidWindow)
var (
	ErrInvalidInterval      = errors.New("planner: session end not after start")
	ErrInvalidDuration      = errors.New("planner: duration must be positive")
	ErrInvalidWindow        = errors.New("planner: window hours out of range")
	ErrInvalidEffectiveness = errors.New("planner: effectiveness scores out of bounds")
	ErrDuplicateType        = errors.New("planner: session type already registered")
	ErrSessionNotFound      = errors.New("planner: session not found")
)
