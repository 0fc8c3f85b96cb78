package planner

import (
	"fmt"
	"sort"
	"time"
)

// Store is a caller-owned, in-memory, ordered collection of sessions. The
// engine only ever reads from it; all mutation happens through the caller's
// own Add/Remove calls. Stored sessions may overlap in time — overlap is a
// display concern, and slot search simply never proposes into it.
type Store struct {
	sessions []Session
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add validates the session and appends it. The store keeps whatever the
// caller hands it, overlaps included.
func (st *Store) Add(s Session) error {
	if err := s.Validate(); err != nil {
		return err
	}
	st.sessions = append(st.sessions, s)
	return nil
}

// Update validates the replacement and swaps it in by ID. Returns
// ErrSessionNotFound when no stored session has that ID.
func (st *Store) Update(s Session) error {
	if err := s.Validate(); err != nil {
		return err
	}
	for i := range st.sessions {
		if st.sessions[i].ID == s.ID {
			st.sessions[i] = s
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrSessionNotFound, s.ID)
}

// Remove deletes the session with the given ID, reporting whether it was
// present.
func (st *Store) Remove(id string) bool {
	for i, s := range st.sessions {
		if s.ID == id {
			st.sessions = append(st.sessions[:i], st.sessions[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the session with the given ID.
func (st *Store) Get(id string) (Session, bool) {
	for _, s := range st.sessions {
		if s.ID == id {
			return s, true
		}
	}
	return Session{}, false
}

// All returns a copy of the sessions sorted ascending by start time.
func (st *Store) All() []Session {
	out := make([]Session, len(st.sessions))
	copy(out, st.sessions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

// On returns the sessions starting on day's calendar day, sorted ascending
// by start time.
func (st *Store) On(day time.Time) []Session {
	return sessionsOn(day, st.sessions)
}

// Len returns the number of stored sessions.
func (st *Store) Len() int {
	return len(st.sessions)
}
