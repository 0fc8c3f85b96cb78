package planner

import "fmt"

// DefaultSessionMinutes is the duration assumed for session types without a
// registered default.
const DefaultSessionMinutes = 45

// SessionType describes a session classification: display metadata plus the
// default duration used when a caller omits an explicit one. The engine
// only reads DefaultMinutes; label and color are opaque display strings.
type SessionType struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	Color          string `json:"color"`
	DefaultMinutes int    `json:"default_minutes"`
}

// TypeRegistry maps type IDs to their SessionType metadata.
type TypeRegistry struct {
	types map[string]SessionType
	order []string
}

// NewTypeRegistry creates an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{types: make(map[string]SessionType)}
}

// Register adds a session type. Registering an already-registered ID
// returns ErrDuplicateType; a non-positive default duration returns
// ErrInvalidDuration.
func (r *TypeRegistry) Register(t SessionType) error {
	if _, ok := r.types[t.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateType, t.ID)
	}
	if t.DefaultMinutes <= 0 {
		return fmt.Errorf("%w: type %q default %d minutes", ErrInvalidDuration, t.ID, t.DefaultMinutes)
	}
	r.types[t.ID] = t
	r.order = append(r.order, t.ID)
	return nil
}

// Lookup returns the session type for id.
func (r *TypeRegistry) Lookup(id string) (SessionType, bool) {
	t, ok := r.types[id]
	return t, ok
}

// DefaultMinutes returns the registered default duration for id, or
// DefaultSessionMinutes when the type is unknown.
func (r *TypeRegistry) DefaultMinutes(id string) int {
	if t, ok := r.types[id]; ok {
		return t.DefaultMinutes
	}
	return DefaultSessionMinutes
}

// Types returns all registered types in registration order.
func (r *TypeRegistry) Types() []SessionType {
	out := make([]SessionType, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.types[id])
	}
	return out
}
