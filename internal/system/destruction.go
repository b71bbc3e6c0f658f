// internal/system/destruction.go
package system

import (
	"go-termite/internal/component"
	"go-termite/internal/entity"
	"go-termite/internal/event"
	"go-termite/internal/types"
	"go-termite/internal/utils"
	"go-termite/pkg/arena"
)

// DestructionSystem is the per-frame removal step. Every dead unit is removed
// first; effects run afterwards against the removed units, so units that killed
// each other this frame both leave the board.
type DestructionSystem struct {
	reg            *entity.Registry
	board          *arena.Board
	events         *event.Dispatcher
	players        PlayerLookup
	splash         *AreaAttackSystem
	refundFraction float64
	breachDamage   int
}

func NewDestructionSystem(reg *entity.Registry, board *arena.Board, events *event.Dispatcher,
	players PlayerLookup, splash *AreaAttackSystem, refundFraction float64, breachDamage int) *DestructionSystem {
	return &DestructionSystem{
		reg:            reg,
		board:          board,
		events:         events,
		players:        players,
		splash:         splash,
		refundFraction: refundFraction,
		breachDamage:   breachDamage,
	}
}

// Update removes dead, breached and self-destructed units and applies their
// effects. Splash can kill more units; those are handled in another pass of
// the same step. It returns every removed unit.
func (s *DestructionSystem) Update() []*component.Unit {
	var removed []*component.Unit
	for {
		batch := s.collect()
		if len(batch) == 0 {
			return removed
		}
		s.remove(batch)
		for _, u := range batch {
			s.applyEffects(u)
		}
		removed = append(removed, batch...)
	}
}

func (s *DestructionSystem) collect() []*component.Unit {
	var out []*component.Unit
	for _, u := range s.reg.All() {
		if leaving(u) {
			out = append(out, u)
		}
	}
	return out
}

func leaving(u *component.Unit) bool {
	if !u.Alive() {
		return true
	}
	return u.Mobile != nil && (u.Mobile.Breached || u.Mobile.SelfDestructed)
}

func (s *DestructionSystem) remove(batch []*component.Unit) {
	ids := make([]types.UnitID, 0, len(batch))
	for _, u := range batch {
		ids = append(ids, u.ID)
		if u.Mobile != nil {
			s.board.RemoveMobile(u.ID, u.Position)
		} else {
			s.board.RemoveStructure(u.Position)
		}
	}
	s.reg.Remove(ids...)
}

func (s *DestructionSystem) applyEffects(u *component.Unit) {
	switch {
	case u.Mobile != nil && u.Mobile.Breached && u.Alive():
		enemy := s.players(u.Side.Opponent())
		enemy.LoseHealth(s.breachDamage)
		emit(s.reg, s.events, event.EdgeBreached, event.Breach{Unit: Info(u), Damage: s.breachDamage})
	case u.Mobile != nil && u.Mobile.SelfDestructed && u.Alive():
		s.splash.Explode(u)
	case u.Structure != nil:
		emit(s.reg, s.events, event.UnitDestroyed, event.Destroyed{Unit: Info(u)})
		s.refund(u, u.Structure.LethalHitHealth)
	default:
		emit(s.reg, s.events, event.UnitDestroyed, event.Destroyed{Unit: Info(u)})
	}
}

func (s *DestructionSystem) refund(u *component.Unit, health float64) {
	amount := StructureRefund(u, health, s.refundFraction)
	s.players(u.Side).Refund(amount)
	emit(s.reg, s.events, event.StructureRefunded, event.Refund{Unit: Info(u), Amount: amount})
}

// StructureRefund is fraction × cost × health/max health, to one decimal.
func StructureRefund(u *component.Unit, health, fraction float64) float64 {
	if u.MaxHealth <= 0 {
		return 0
	}
	return utils.Round1(fraction * u.Cost * health / u.MaxHealth)
}

// RemoveMarked takes down the structures their owners asked to remove,
// refunding the current health fraction.
func (s *DestructionSystem) RemoveMarked() []*component.Unit {
	var batch []*component.Unit
	for _, u := range s.reg.Structures() {
		if u.Structure.MarkedForRemoval {
			batch = append(batch, u)
		}
	}
	s.remove(batch)
	for _, u := range batch {
		s.refund(u, u.Health)
	}
	return batch
}
