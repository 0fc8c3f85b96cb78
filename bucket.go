package planner

import (
	"encoding"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// TimeBucket is a named relative-time category used to group sessions for
// agenda display.
type TimeBucket int

const (
	EarlierToday TimeBucket = iota + 1 // Started earlier on the current day.
	Past                               // Started on a strictly earlier day.
	NextTwoHours                       // Starts within the next two hours.
	LaterToday                         // Starts later on the current day.
	Tomorrow                           // Starts on the next calendar day.
	ThisWeek                           // Starts within the next seven days.
	ThisMonth                          // Starts within the next thirty days.
	Future                             // Starts more than thirty days ahead.
)

var (
	bucketNames = [...]string{
		EarlierToday: "EarlierToday",
		Past:         "Past",
		NextTwoHours: "NextTwoHours",
		LaterToday:   "LaterToday",
		Tomorrow:     "Tomorrow",
		ThisWeek:     "ThisWeek",
		ThisMonth:    "ThisMonth",
		Future:       "Future",
	}
	bucketByName = map[string]TimeBucket{
		"EarlierToday": EarlierToday,
		"Past":         Past,
		"NextTwoHours": NextTwoHours,
		"LaterToday":   LaterToday,
		"Tomorrow":     Tomorrow,
		"ThisWeek":     ThisWeek,
		"ThisMonth":    ThisMonth,
		"Future":       Future,
	}
)

// Buckets lists all buckets in agenda display order.
func Buckets() []TimeBucket {
	return []TimeBucket{
		EarlierToday, Past, NextTwoHours, LaterToday,
		Tomorrow, ThisWeek, ThisMonth, Future,
	}
}

// Compile-time interface checks.
var (
	_ fmt.Stringer             = TimeBucket(0)
	_ json.Marshaler           = TimeBucket(0)
	_ json.Unmarshaler         = (*TimeBucket)(nil)
	_ encoding.TextMarshaler   = TimeBucket(0)
	_ encoding.TextUnmarshaler = (*TimeBucket)(nil)
)

func (b TimeBucket) isValid() bool {
	return b >= EarlierToday && b <= Future
}

// String returns the name of the bucket ("NextTwoHours", "Tomorrow", ...).
// For invalid values it returns "TimeBucket(n)".
func (b TimeBucket) String() string {
	if b.isValid() {
		return bucketNames[b]
	}
	return fmt.Sprintf("TimeBucket(%d)", int(b))
}

// MarshalText implements encoding.TextMarshaler.
func (b TimeBucket) MarshalText() ([]byte, error) {
	if !b.isValid() {
		return nil, fmt.Errorf("planner: invalid bucket: %d", int(b))
	}
	return []byte(bucketNames[b]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *TimeBucket) UnmarshalText(text []byte) error {
	v, ok := bucketByName[string(text)]
	if !ok {
		return fmt.Errorf("planner: invalid bucket: %q", text)
	}
	*b = v
	return nil
}

// MarshalJSON implements json.Marshaler. TimeBucket serializes as a JSON string.
func (b TimeBucket) MarshalJSON() ([]byte, error) {
	text, err := b.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (b *TimeBucket) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("planner: invalid bucket: %s", data)
	}
	return b.UnmarshalText([]byte(s))
}

// ClassifyAt assigns the session to exactly one bucket relative to now.
// Predicates are evaluated in display order, first match wins, so the
// buckets partition every (now, session) pair. Classification is purely
// temporal: the Completed flag never affects bucket membership.
func ClassifyAt(now time.Time, s Session) TimeBucket {
	if s.StartTime.Before(now) {
		if sameDay(s.StartTime, now) {
			return EarlierToday
		}
		return Past
	}

	until := s.StartTime.Sub(now)
	if until < 2*time.Hour {
		return NextTwoHours
	}
	if sameDay(s.StartTime, now) {
		return LaterToday
	}
	if dayStart(s.StartTime).Sub(dayStart(now)) == 24*time.Hour {
		return Tomorrow
	}
	if until < 7*24*time.Hour {
		return ThisWeek
	}
	if until <= 30*24*time.Hour {
		return ThisMonth
	}
	return Future
}

// BucketGroup is one agenda section: a bucket plus its sessions ordered
// ascending by start time.
type BucketGroup struct {
	Bucket   TimeBucket `json:"bucket"`
	Sessions []Session  `json:"sessions"`
}

// GroupByBucket classifies every session relative to now and returns the
// non-empty buckets in display order. The input slice is not mutated.
func GroupByBucket(now time.Time, sessions []Session) []BucketGroup {
	byBucket := make(map[TimeBucket][]Session)
	for _, s := range sessions {
		b := ClassifyAt(now, s)
		byBucket[b] = append(byBucket[b], s)
	}

	groups := make([]BucketGroup, 0, len(byBucket))
	for _, b := range Buckets() {
		members := byBucket[b]
		if len(members) == 0 {
			continue
		}
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].StartTime.Before(members[j].StartTime)
		})
		groups = append(groups, BucketGroup{Bucket: b, Sessions: members})
	}
	return groups
}
