// internal/component/shield.go
package component

import "go-termite/internal/types"

// ShieldState tracks what a support grants and whom it has already shielded.
type ShieldState struct {
	Amount   float64
	shielded map[types.UnitID]struct{}
}

func NewShieldState(amount float64) *ShieldState {
	return &ShieldState{Amount: amount, shielded: make(map[types.UnitID]struct{})}
}

// Grant shields target once per lifetime. It reports whether anything was granted.
func (s *ShieldState) Grant(target *Unit) bool {
	if target.Mobile == nil {
		return false
	}
	if _, done := s.shielded[target.ID]; done {
		return false
	}
	s.shielded[target.ID] = struct{}{}
	target.Mobile.Shields += s.Amount
	return true
}

// HasShielded reports whether id already received this support's shield.
func (s *ShieldState) HasShielded(id types.UnitID) bool {
	_, ok := s.shielded[id]
	return ok
}

func (s *ShieldState) clone() *ShieldState {
	c := NewShieldState(s.Amount)
	for id := range s.shielded {
		c.shielded[id] = struct{}{}
	}
	return c
}
