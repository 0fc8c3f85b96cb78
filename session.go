package planner

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents a scheduled learning activity on the timeline.
type Session struct {
	ID               string    `json:"id"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	TypeID           string    `json:"type_id"`
	Completed        bool      `json:"completed"`
	LessonID         *string   `json:"lesson_id,omitempty"` // nil when not linked to lesson content.
}

// NewSession creates a session with a generated ID covering [start, end).
// EstimatedMinutes is derived from the interval.
func NewSession(title, typeID string, start, end time.Time) Session {
	return Session{
		ID:               uuid.NewString(),
		StartTime:        start,
		EndTime:          end,
		EstimatedMinutes: int(end.Sub(start) / time.Minute),
		Title:            title,
		TypeID:           typeID,
	}
}

// Validate checks the session's temporal shape: the end must be strictly
// after the start, and EstimatedMinutes must match the interval.
func (s Session) Validate() error {
	if !s.EndTime.After(s.StartTime) {
		return fmt.Errorf("%w: start %s, end %s", ErrInvalidInterval,
			s.StartTime.Format(time.DateTime), s.EndTime.Format(time.DateTime))
	}
	if s.EstimatedMinutes != s.Minutes() {
		return fmt.Errorf("%w: estimated %d min, interval %d min",
			ErrInvalidDuration, s.EstimatedMinutes, s.Minutes())
	}
	return nil
}

// Minutes returns the length of the session interval in whole minutes.
func (s Session) Minutes() int {
	return int(s.EndTime.Sub(s.StartTime) / time.Minute)
}

// Overlaps reports whether the [StartTime, EndTime) intervals of two
// sessions intersect.
func (s Session) Overlaps(other Session) bool {
	return s.StartTime.Before(other.EndTime) && other.StartTime.Before(s.EndTime)
}

// sameDay reports whether a and b fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// dayStart returns midnight of t's calendar day in t's location.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
