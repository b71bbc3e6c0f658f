// internal/component/unit.go
package component

import (
	"fmt"

	"go-termite/internal/defs"
	"go-termite/internal/types"
	"go-termite/pkg/arena"
)

// Unit is the single record every kind shares. Behaviour hangs off the trait
// state pointers: Mobile for walking units, Structure for buildings, Shield for supports.
type Unit struct {
	ID           types.UnitID
	Kind         defs.Kind
	Side         types.Side
	Traits       defs.Trait
	Cost         float64
	Health       float64
	MaxHealth    float64
	Range        float64
	Damage       float64
	Position     arena.Point
	CreationTime int // frame of placement

	Mobile    *MobileState
	Structure *StructureState
	Shield    *ShieldState
}

// NewUnit builds a unit from its table row. Mobile units get their target edge here
// and keep it for life.
func NewUnit(id types.UnitID, def defs.Definition, side types.Side, at arena.Point, frame int) (*Unit, error) {
	if err := side.Validate(); err != nil {
		return nil, err
	}
	u := &Unit{
		ID:           id,
		Kind:         def.Kind,
		Side:         side,
		Traits:       def.Traits(),
		Cost:         def.Cost,
		Health:       def.Health,
		MaxHealth:    def.Health,
		Range:        def.Range,
		Damage:       def.Damage,
		Position:     at,
		CreationTime: frame,
	}

	if def.IsMobile() {
		edge, err := arena.TargetEdge(side, at)
		if err != nil {
			return nil, err
		}
		u.Mobile = &MobileState{Speed: def.Speed, TargetEdge: edge}
		return u, nil
	}

	u.Structure = &StructureState{UpgradeCost: def.UpgradeCost, Upgrade: def.Upgrade}
	if u.Traits.Has(defs.TraitShielder) {
		u.Shield = NewShieldState(def.Shield)
	}
	return u, nil
}

func (u *Unit) String() string {
	return fmt.Sprintf("%s#%d(%s@%s)", u.Kind, u.ID, u.Side, u.Position)
}

// IsMobile reports whether the unit walks the board.
func (u *Unit) IsMobile() bool { return u.Mobile != nil }

// Alive reports whether the unit still has health.
func (u *Unit) Alive() bool { return u.Health > 0 }

// Active reports whether the unit takes part in combat this frame: alive and
// not already leaving the board through a breach or a self-destruct.
func (u *Unit) Active() bool {
	if !u.Alive() {
		return false
	}
	return u.Mobile == nil || (!u.Mobile.Breached && !u.Mobile.SelfDestructed)
}

// Before orders units by creation frame, then by ID.
func (u *Unit) Before(o *Unit) bool {
	if u.CreationTime != o.CreationTime {
		return u.CreationTime < o.CreationTime
	}
	return u.ID < o.ID
}

// TakeDamage spends shields first, then health. Neither goes below zero.
func (u *Unit) TakeDamage(amount float64) {
	if amount <= 0 || u.Health <= 0 {
		return
	}
	if u.Mobile != nil && u.Mobile.Shields > 0 {
		if amount <= u.Mobile.Shields {
			u.Mobile.Shields -= amount
			return
		}
		amount -= u.Mobile.Shields
		u.Mobile.Shields = 0
	}

	if u.Structure != nil && amount >= u.Health {
		u.Structure.LethalHitHealth = u.Health
	}
	u.Health -= amount
	if u.Health < 0 {
		u.Health = 0
	}
}

// HealthFraction is the current share of max health.
func (u *Unit) HealthFraction() float64 {
	if u.MaxHealth <= 0 {
		return 0
	}
	return u.Health / u.MaxHealth
}

// Clone returns a deep copy that shares nothing with u.
func (u *Unit) Clone() *Unit {
	c := *u
	if u.Mobile != nil {
		m := *u.Mobile
		m.Path = append([]arena.Point(nil), u.Mobile.Path...)
		c.Mobile = &m
	}
	if u.Structure != nil {
		s := *u.Structure
		c.Structure = &s
	}
	if u.Shield != nil {
		c.Shield = u.Shield.clone()
	}
	return &c
}
