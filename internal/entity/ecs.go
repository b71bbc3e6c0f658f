// internal/entity/ecs.go
package entity

import (
	"slices"

	"go-termite/internal/component"
	"go-termite/internal/types"
)

// Registry owns every live unit and the game clock. Iteration always follows
// insertion order, which is creation order; the map is for lookup only.
type Registry struct {
	Turn   int
	Frame  int // frames elapsed since the start of the game
	NextID types.UnitID
	units  []*component.Unit
	byID   map[types.UnitID]*component.Unit
}

func NewRegistry() *Registry {
	return &Registry{
		NextID: 1,
		byID:   make(map[types.UnitID]*component.Unit),
	}
}

// NewID allocates the next unit ID.
func (r *Registry) NewID() types.UnitID {
	id := r.NextID
	r.NextID++
	return id
}

// Add registers a unit.
func (r *Registry) Add(u *component.Unit) {
	r.units = append(r.units, u)
	r.byID[u.ID] = u
}

// Get looks a unit up by ID.
func (r *Registry) Get(id types.UnitID) (*component.Unit, bool) {
	u, ok := r.byID[id]
	return u, ok
}

// Remove drops every unit in ids, keeping the order of the rest.
func (r *Registry) Remove(ids ...types.UnitID) {
	if len(ids) == 0 {
		return
	}
	drop := make(map[types.UnitID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
		delete(r.byID, id)
	}
	r.units = slices.DeleteFunc(r.units, func(u *component.Unit) bool {
		_, ok := drop[u.ID]
		return ok
	})
}

// Len returns the number of live units.
func (r *Registry) Len() int { return len(r.units) }

// All returns the live units in creation order. The slice is a copy.
func (r *Registry) All() []*component.Unit {
	return slices.Clone(r.units)
}

// Mobiles returns the mobile units in creation order.
func (r *Registry) Mobiles() []*component.Unit {
	return r.filter(func(u *component.Unit) bool { return u.Mobile != nil })
}

// Structures returns the structures in creation order.
func (r *Registry) Structures() []*component.Unit {
	return r.filter(func(u *component.Unit) bool { return u.Structure != nil })
}

// ByCreation returns all units sorted by (CreationTime, ID).
func (r *Registry) ByCreation() []*component.Unit {
	out := slices.Clone(r.units)
	slices.SortStableFunc(out, func(a, b *component.Unit) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		}
		return 0
	})
	return out
}

// HasMobiles reports whether any mobile unit is still on the board.
func (r *Registry) HasMobiles() bool {
	for _, u := range r.units {
		if u.Mobile != nil {
			return true
		}
	}
	return false
}

func (r *Registry) filter(keep func(*component.Unit) bool) []*component.Unit {
	var out []*component.Unit
	for _, u := range r.units {
		if keep(u) {
			out = append(out, u)
		}
	}
	return out
}
