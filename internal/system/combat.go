// internal/system/combat.go
package system

import (
	"go-termite/internal/component"
	"go-termite/internal/defs"
	"go-termite/internal/entity"
	"go-termite/internal/event"
)

// CombatSystem resolves one frame of attacks.
type CombatSystem struct {
	reg    *entity.Registry
	events *event.Dispatcher
}

func NewCombatSystem(reg *entity.Registry, events *event.Dispatcher) *CombatSystem {
	return &CombatSystem{reg: reg, events: events}
}

// ResetAttacks clears every mobile unit's per-frame attack flag.
func (s *CombatSystem) ResetAttacks() {
	for _, u := range s.reg.Mobiles() {
		u.Mobile.Attacked = false
	}
}

// Update lets every attacker strike once, in creation order. Units brought
// to zero health earlier in the frame still strike: removal waits for the
// destruction step.
func (s *CombatSystem) Update() {
	units := s.reg.ByCreation()
	for _, attacker := range units {
		if !s.canAttack(attacker) {
			continue
		}
		target := SelectTarget(attacker, Candidates(attacker, units))
		if target == nil {
			continue
		}
		if attacker.Mobile != nil {
			attacker.Mobile.Attacked = true
		}
		ApplyDamage(target, attacker.Damage)
		emit(s.reg, s.events, event.UnitAttacked, event.Attack{
			Attacker: Info(attacker),
			Target:   Info(target),
			Damage:   attacker.Damage,
		})
	}
}

func (s *CombatSystem) canAttack(u *component.Unit) bool {
	if !u.Traits.Has(defs.TraitAttacker) || u.Damage <= 0 {
		return false
	}
	if m := u.Mobile; m != nil {
		return !m.Attacked && !m.Breached && !m.SelfDestructed
	}
	return true
}
