package planner

import (
	"errors"
	"testing"
	"time"
)

// earlyClock puts "now" before the search windows used below so past
// clipping stays out of the way unless a test wants it.
func earlyClock() Clock {
	return clockAt(at(0, 30))
}

func findSlots(t *testing.T, p *Planner, day time.Time, duration int, sessions []Session, startHour, endHour int) []FreeSlot {
	t.Helper()
	slots, err := p.FindSlots(day, duration, sessions, startHour, endHour)
	if err != nil {
		t.Fatalf("FindSlots: %v", err)
	}
	return slots
}

func TestFindSlotsEmptyDay(t *testing.T) {
	p := mustPlanner(t, PlannerConfig{Now: earlyClock()})
	slots := findSlots(t, p, t0, 30, nil, 6, 22)
	if len(slots) != 1 {
		t.Fatalf("len(slots) = %d, want 1", len(slots))
	}
	if !slots[0].Start.Equal(at(6, 0)) || !slots[0].End.Equal(at(22, 0)) {
		t.Errorf("slot = [%v, %v), want [06:00, 22:00)", slots[0].Start, slots[0].End)
	}
}

func TestFindSlotsAroundObstacle(t *testing.T) {
	// Window 06:00-24:00 with a 09:00-10:00 session: two maximal gaps.
	p := mustPlanner(t, PlannerConfig{Now: earlyClock()})
	existing := []Session{session("busy", at(9, 0), at(10, 0))}
	slots := findSlots(t, p, t0, 30, existing, 6, 24)
	if len(slots) != 2 {
		t.Fatalf("len(slots) = %d, want 2", len(slots))
	}
	if !slots[0].Start.Equal(at(6, 0)) || !slots[0].End.Equal(at(9, 0)) {
		t.Errorf("slots[0] = [%v, %v), want [06:00, 09:00)", slots[0].Start, slots[0].End)
	}
	if !slots[1].Start.Equal(at(10, 0)) || !slots[1].End.Equal(at(24, 0)) {
		t.Errorf("slots[1] = [%v, %v), want [10:00, 24:00)", slots[1].Start, slots[1].End)
	}
}

func TestSuggestSlotGreedyEarliestFit(t *testing.T) {
	// Earliest fit wins: the 30-minute proposal lands at the window start,
	// ignoring the later obstacle entirely.
	p := mustPlanner(t, PlannerConfig{Now: earlyClock()})
	existing := []Session{session("busy", at(9, 0), at(10, 0))}
	slot, ok, err := p.SuggestSlot(t0, 30, existing, 6, 24)
	if err != nil || !ok {
		t.Fatalf("SuggestSlot: ok=%v err=%v", ok, err)
	}
	if !slot.Start.Equal(at(6, 0)) || !slot.End.Equal(at(6, 30)) {
		t.Errorf("slot = [%v, %v), want [06:00, 06:30)", slot.Start, slot.End)
	}
}

func TestFindSlotsBackToBackObstacles(t *testing.T) {
	// 06:00-07:00 and 07:00-08:00 leave no gap between them; the first free
	// slot starts at 08:00.
	p := mustPlanner(t, PlannerConfig{Now: earlyClock()})
	existing := []Session{
		session("first", at(6, 0), at(7, 0)),
		session("second", at(7, 0), at(8, 0)),
	}
	slots := findSlots(t, p, t0, 30, existing, 6, 22)
	if len(slots) != 1 {
		t.Fatalf("len(slots) = %d, want 1", len(slots))
	}
	if !slots[0].Start.Equal(at(8, 0)) {
		t.Errorf("slots[0].Start = %v, want 08:00", slots[0].Start)
	}
}

func TestFindSlotsLongRequest(t *testing.T) {
	// 600 minutes against a 06:00-23:00 window with one 60-minute obstacle
	// at the start: one 960-minute slot remains.
	p := mustPlanner(t, PlannerConfig{Now: earlyClock()})
	existing := []Session{session("busy", at(6, 0), at(7, 0))}
	slots := findSlots(t, p, t0, 600, existing, 6, 23)
	if len(slots) != 1 {
		t.Fatalf("len(slots) = %d, want 1", len(slots))
	}
	if got := slots[0].Minutes(); got != 960 {
		t.Errorf("slot length = %d min, want 960", got)
	}
	if !slots[0].Start.Equal(at(7, 0)) {
		t.Errorf("slot start = %v, want 07:00", slots[0].Start)
	}
}

func TestFindSlotsPastExclusion(t *testing.T) {
	// Now is mid-window: nothing before it may be proposed.
	now := at(10, 30)
	p := mustPlanner(t, PlannerConfig{Now: clockAt(now)})
	slots := findSlots(t, p, t0, 30, nil, 6, 22)
	if len(slots) != 1 {
		t.Fatalf("len(slots) = %d, want 1", len(slots))
	}
	if !slots[0].Start.Equal(now) {
		t.Errorf("slot start = %v, want %v", slots[0].Start, now)
	}
	for _, f := range slots {
		if f.Start.Before(now) {
			t.Errorf("slot starts in the past: %v", f.Start)
		}
	}
}

func TestFindSlotsDayFullyInPast(t *testing.T) {
	p := mustPlanner(t, PlannerConfig{Now: clockAt(at(23, 0))})
	if slots := findSlots(t, p, t0, 30, nil, 6, 22); len(slots) != 0 {
		t.Errorf("len(slots) = %d, want 0 for a day already over", len(slots))
	}
}

func TestFindSlotsDurationLongerThanWindow(t *testing.T) {
	p := mustPlanner(t, PlannerConfig{Now: earlyClock()})
	if slots := findSlots(t, p, t0, 17*60, nil, 6, 22); len(slots) != 0 {
		t.Errorf("len(slots) = %d, want 0", len(slots))
	}
}

func TestFindSlotsDegenerateWindow(t *testing.T) {
	p := mustPlanner(t, PlannerConfig{Now: earlyClock()})
	for _, hours := range [][2]int{{10, 10}, {14, 6}} {
		slots, err := p.FindSlots(t0, 30, nil, hours[0], hours[1])
		if err != nil {
			t.Errorf("FindSlots(%d, %d): %v, want nil error", hours[0], hours[1], err)
		}
		if len(slots) != 0 {
			t.Errorf("FindSlots(%d, %d) = %d slots, want 0", hours[0], hours[1], len(slots))
		}
	}
}

func TestFindSlotsInvalidInput(t *testing.T) {
	p := mustPlanner(t, PlannerConfig{Now: earlyClock()})

	_, err := p.FindSlots(t0, 0, nil, 6, 22)
	if !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("zero duration: err = %v, want ErrInvalidDuration", err)
	}
	_, err = p.FindSlots(t0, -30, nil, 6, 22)
	if !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("negative duration: err = %v, want ErrInvalidDuration", err)
	}
	_, err = p.FindSlots(t0, 30, nil, -1, 22)
	if !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("negative start hour: err = %v, want ErrInvalidWindow", err)
	}
	_, err = p.FindSlots(t0, 30, nil, 6, 25)
	if !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("end hour past 24: err = %v, want ErrInvalidWindow", err)
	}
}

func TestFindSlotsIgnoresOtherDays(t *testing.T) {
	p := mustPlanner(t, PlannerConfig{Now: earlyClock()})
	existing := []Session{
		session("yesterday", at(9, 0).AddDate(0, 0, -1), at(10, 0).AddDate(0, 0, -1)),
		session("tomorrow", at(9, 0).AddDate(0, 0, 1), at(10, 0).AddDate(0, 0, 1)),
	}
	slots := findSlots(t, p, t0, 30, existing, 6, 22)
	if len(slots) != 1 {
		t.Fatalf("len(slots) = %d, want 1 (other days are not obstacles)", len(slots))
	}
}

func TestFindSlotsMergesOverlappingObstacles(t *testing.T) {
	p := mustPlanner(t, PlannerConfig{Now: earlyClock()})
	existing := []Session{
		session("long", at(9, 0), at(11, 0)),
		session("inside", at(9, 30), at(10, 0)),
		session("tail", at(10, 30), at(11, 30)),
	}
	slots := findSlots(t, p, t0, 30, existing, 6, 22)
	if len(slots) != 2 {
		t.Fatalf("len(slots) = %d, want 2", len(slots))
	}
	if !slots[1].Start.Equal(at(11, 30)) {
		t.Errorf("slots[1].Start = %v, want 11:30", slots[1].Start)
	}
}

func TestFindSlotsNoOverlapInvariant(t *testing.T) {
	p := mustPlanner(t, PlannerConfig{Now: earlyClock()})
	existing := []Session{
		session("a", at(6, 45), at(8, 0)),
		session("b", at(9, 0), at(9, 20)),
		session("c", at(13, 0), at(15, 30)),
		session("d", at(21, 15), at(21, 45)),
	}
	for _, duration := range []int{15, 30, 60, 120, 240} {
		slots := findSlots(t, p, t0, duration, existing, 6, 22)
		need := time.Duration(duration) * time.Minute
		for _, f := range slots {
			if f.End.Sub(f.Start) < need {
				t.Errorf("duration %d: slot [%v, %v) shorter than request", duration, f.Start, f.End)
			}
			proposed := session("proposed", f.Start, f.End)
			for _, s := range existing {
				if proposed.Overlaps(s) {
					t.Errorf("duration %d: slot [%v, %v) overlaps session %s", duration, f.Start, f.End, s.ID)
				}
			}
		}
	}
}

// --- SuggestAcrossDays ---

func TestSuggestAcrossDaysFirstDayWithRoom(t *testing.T) {
	// Monday is fully booked; Tuesday has room. The assistant stops at
	// Tuesday's first gap.
	p := mustPlanner(t, PlannerConfig{Now: earlyClock()})
	existing := []Session{session("all day", at(6, 0), at(22, 0))}
	slot, ok, err := p.SuggestAcrossDays(t0, 7, 60, existing, 6, 22)
	if err != nil || !ok {
		t.Fatalf("SuggestAcrossDays: ok=%v err=%v", ok, err)
	}
	tuesday := at(6, 0).AddDate(0, 0, 1)
	if !slot.Start.Equal(tuesday) {
		t.Errorf("slot start = %v, want %v", slot.Start, tuesday)
	}
	if got := slot.Minutes(); got != 60 {
		t.Errorf("slot length = %d min, want 60", got)
	}
}

func TestSuggestAcrossDaysPrefersFirstDayOverBetterHour(t *testing.T) {
	// Monday only has a low-effectiveness evening gap; Tuesday is wide
	// open including the morning peak. First day with room still wins.
	p := mustPlanner(t, PlannerConfig{Now: earlyClock()})
	existing := []Session{session("most of monday", at(6, 0), at(21, 0))}
	slot, ok, err := p.SuggestAcrossDays(t0, 7, 30, existing, 6, 22)
	if err != nil || !ok {
		t.Fatalf("SuggestAcrossDays: ok=%v err=%v", ok, err)
	}
	if !sameDay(slot.Start, t0) {
		t.Errorf("slot on %v, want Monday (first day with room)", slot.Start)
	}
	if !slot.Start.Equal(at(21, 0)) {
		t.Errorf("slot start = %v, want 21:00", slot.Start)
	}
}

func TestSuggestAcrossDaysNoCapacity(t *testing.T) {
	p := mustPlanner(t, PlannerConfig{Now: earlyClock()})
	_, ok, err := p.SuggestAcrossDays(t0, 3, 17*60, nil, 6, 22)
	if err != nil {
		t.Fatalf("SuggestAcrossDays: %v", err)
	}
	if ok {
		t.Error("ok = true, want false when no day has capacity")
	}
}

// --- Ranking ---

func TestFreeSlotScore(t *testing.T) {
	p := mustPlanner(t, PlannerConfig{Now: earlyClock()})
	existing := []Session{session("busy", at(9, 0), at(10, 0))}
	slots := findSlots(t, p, t0, 30, existing, 6, 22)
	assertFloat(t, "slots[0].Score", slots[0].Score, DefaultEffectiveness[6])
	assertFloat(t, "slots[1].Score", slots[1].Score, DefaultEffectiveness[10])
}

func TestRankByEffectiveness(t *testing.T) {
	p := mustPlanner(t, PlannerConfig{Now: earlyClock()})
	existing := []Session{
		session("a", at(7, 0), at(10, 0)),
		session("b", at(11, 0), at(15, 0)),
	}
	// Gaps start at 06:00 (0.40), 10:00 (0.95), 15:00 (0.85).
	slots := findSlots(t, p, t0, 30, existing, 6, 22)
	ranked := p.RankByEffectiveness(slots)
	if len(ranked) != 3 {
		t.Fatalf("len(ranked) = %d, want 3", len(ranked))
	}
	wantHours := []int{10, 15, 6}
	for i, f := range ranked {
		if f.Start.Hour() != wantHours[i] {
			t.Errorf("ranked[%d] starts at hour %d, want %d", i, f.Start.Hour(), wantHours[i])
		}
	}
	// Input order stays chronological.
	if !slots[0].Start.Equal(at(6, 0)) {
		t.Error("RankByEffectiveness mutated its input")
	}
}
