package layout

import (
	"fmt"

	"github.com/nova-study/planner"
)

// DefaultMinimumLength is the smallest rendered block length, in the same
// unit as PixelsPerHour. Short sessions stay clickable.
const DefaultMinimumLength = 15.0

// Config fixes the visible day window and the scale of the grid axis.
// Zero values produce sensible defaults; see field comments.
type Config struct {
	DayStartHour  int     `json:"day_start_hour"`  // zero is midnight, a valid window start
	DayEndHour    int     `json:"day_end_hour"`    // zero → 24
	PixelsPerHour float64 `json:"pixels_per_hour"` // zero → 60
	MinimumLength float64 `json:"minimum_length"`  // zero → DefaultMinimumLength
}

// Grid projects sessions onto the axis described by its Config.
type Grid struct {
	startHour int
	endHour   int
	perHour   float64
	minLength float64
}

// New creates a Grid from the given config.
// Zero-value fields are filled with defaults; invalid values return an error.
func New(cfg Config) (*Grid, error) {
	endHour := cfg.DayEndHour
	if endHour == 0 {
		endHour = 24
	}
	if cfg.DayStartHour < 0 || endHour > 24 || cfg.DayStartHour >= endHour {
		return nil, fmt.Errorf("%w: [%d, %d)", planner.ErrInvalidWindow, cfg.DayStartHour, endHour)
	}

	perHour := cfg.PixelsPerHour
	if perHour == 0 {
		perHour = 60
	}
	if perHour < 0 {
		return nil, fmt.Errorf("layout: pixels per hour %f must be positive", perHour)
	}

	minLength := cfg.MinimumLength
	if minLength == 0 {
		minLength = DefaultMinimumLength
	}
	if minLength < 0 {
		return nil, fmt.Errorf("layout: minimum length %f must be positive", minLength)
	}

	return &Grid{
		startHour: cfg.DayStartHour,
		endHour:   endHour,
		perHour:   perHour,
		minLength: minLength,
	}, nil
}

// Projection places one session on the grid axis: Offset from the window's
// top edge and Length, both in the Config's pixel unit.
type Projection struct {
	Offset float64 `json:"offset"`
	Length float64 `json:"length"`
}

// Total returns the full axis length of the visible window.
func (g *Grid) Total() float64 {
	return float64(g.endHour-g.startHour) * g.perHour
}

// Project converts the session's time interval into a Projection.
//
// A session starting before the window is clamped to offset 0; a session
// running past the window is clipped so the block ends at the window edge.
// Clipping is visual only — the session itself is untouched. A session with
// no overlap with the window projects to the zero Projection; the caller
// decides whether to omit or scroll-reveal it.
func (g *Grid) Project(s planner.Session) Projection {
	startFrac := hourFrac(s.StartTime.Hour(), s.StartTime.Minute())
	endFrac := startFrac + float64(s.Minutes())/60

	if endFrac <= float64(g.startHour) || startFrac >= float64(g.endHour) {
		return Projection{}
	}

	offset := (startFrac - float64(g.startHour)) * g.perHour
	if offset < 0 {
		offset = 0
	}

	length := float64(s.Minutes()) / 60 * g.perHour
	if length < g.minLength {
		length = g.minLength
	}

	// Clip to the window's far edge, keeping the minimum visible size by
	// sliding the block back when necessary.
	total := g.Total()
	if offset+length > total {
		length = total - offset
		if length < g.minLength {
			length = g.minLength
			offset = total - length
			if offset < 0 {
				offset = 0
			}
		}
	}

	return Projection{Offset: offset, Length: length}
}

// ProjectAll projects every session, index-aligned with the input.
// Overlapping sessions each get their own block; none are dropped.
func (g *Grid) ProjectAll(sessions []planner.Session) []Projection {
	out := make([]Projection, len(sessions))
	for i, s := range sessions {
		out[i] = g.Project(s)
	}
	return out
}

func hourFrac(hour, minute int) float64 {
	return float64(hour) + float64(minute)/60
}
