package planner

import (
	"fmt"
	"sort"
	"time"
)

// FreeSlot is a maximal free interval found by slot search. Score is the
// effectiveness of the slot's starting hour, for callers that rank or badge
// candidates.
type FreeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Score float64   `json:"score"`
}

// Minutes returns the slot length in whole minutes.
func (f FreeSlot) Minutes() int {
	return int(f.End.Sub(f.Start) / time.Minute)
}

// FindSlots enumerates the free intervals on day that can hold a session of
// durationMinutes, searching inside [startHour:00, endHour:00).
//
// Returned slots are maximal gaps between existing same-day sessions,
// ordered chronologically, each at least durationMinutes long. Gaps that
// begin before the current instant are clipped to it, so no slot starts in
// the past. A degenerate window (startHour ≥ endHour) or a duration longer
// than the window yields an empty result, not an error.
func (p *Planner) FindSlots(day time.Time, durationMinutes int, sessions []Session, startHour, endHour int) ([]FreeSlot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidDuration, durationMinutes)
	}
	if startHour < 0 || startHour > 24 || endHour < 0 || endHour > 24 {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidWindow, startHour, endHour)
	}
	if startHour >= endHour {
		return nil, nil
	}

	base := dayStart(day)
	windowStart := base.Add(time.Duration(startHour) * time.Hour)
	windowEnd := base.Add(time.Duration(endHour) * time.Hour)

	// No scheduling into the past.
	cursor := windowStart
	if now := p.now(); now.After(cursor) {
		cursor = now
	}

	obstacles := sessionsOn(day, sessions)
	need := time.Duration(durationMinutes) * time.Minute

	var slots []FreeSlot
	emit := func(start, end time.Time) {
		if end.Sub(start) >= need {
			slots = append(slots, FreeSlot{
				Start: start,
				End:   end,
				Score: p.EffectivenessOf(start.Hour()),
			})
		}
	}

	for _, s := range obstacles {
		if !s.EndTime.After(cursor) {
			continue
		}
		if !s.StartTime.Before(windowEnd) {
			break
		}
		emit(cursor, minTime(s.StartTime, windowEnd))
		if s.EndTime.After(cursor) {
			cursor = s.EndTime
		}
	}
	if cursor.Before(windowEnd) {
		emit(cursor, windowEnd)
	}
	return slots, nil
}

// SuggestSlot returns the greedy earliest-fit placement for a session of
// durationMinutes on day: the first free gap's beginning, extended by
// exactly the requested duration. The second result is false when the day
// has no capacity.
func (p *Planner) SuggestSlot(day time.Time, durationMinutes int, sessions []Session, startHour, endHour int) (FreeSlot, bool, error) {
	slots, err := p.FindSlots(day, durationMinutes, sessions, startHour, endHour)
	if err != nil || len(slots) == 0 {
		return FreeSlot{}, false, err
	}
	first := slots[0]
	first.End = first.Start.Add(time.Duration(durationMinutes) * time.Minute)
	return first, true, nil
}

// SuggestSlotForType is SuggestSlot with the duration taken from the type
// registry's default for typeID.
func (p *Planner) SuggestSlotForType(day time.Time, typeID string, sessions []Session, startHour, endHour int) (FreeSlot, bool, error) {
	return p.SuggestSlot(day, p.types.DefaultMinutes(typeID), sessions, startHour, endHour)
}

// SuggestAcrossDays runs the single-day search on each of days consecutive
// days starting at from, short-circuiting at the first day with capacity
// and returning that day's earliest-fit placement. The first day with room
// wins even when a later day holds a higher-scoring hour.
func (p *Planner) SuggestAcrossDays(from time.Time, days int, durationMinutes int, sessions []Session, startHour, endHour int) (FreeSlot, bool, error) {
	for i := 0; i < days; i++ {
		day := dayStart(from).AddDate(0, 0, i)
		slot, ok, err := p.SuggestSlot(day, durationMinutes, sessions, startHour, endHour)
		if err != nil {
			return FreeSlot{}, false, err
		}
		if ok {
			return slot, true, nil
		}
	}
	return FreeSlot{}, false, nil
}

// RankByEffectiveness returns a copy of slots ordered by starting-hour
// score, highest first, earlier start breaking ties. The chronological
// order of the input is untouched; this is the stricter ranking offered on
// top of the greedy earliest-fit default.
func (p *Planner) RankByEffectiveness(slots []FreeSlot) []FreeSlot {
	ranked := make([]FreeSlot, len(slots))
	copy(ranked, slots)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Start.Before(ranked[j].Start)
	})
	return ranked
}

// sessionsOn returns the sessions starting on day's calendar day, sorted by
// start time. The input slice is not mutated.
func sessionsOn(day time.Time, sessions []Session) []Session {
	var onDay []Session
	for _, s := range sessions {
		if sameDay(s.StartTime, day) {
			onDay = append(onDay, s)
		}
	}
	sort.SliceStable(onDay, func(i, j int) bool {
		return onDay[i].StartTime.Before(onDay[j].StartTime)
	})
	return onDay
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
