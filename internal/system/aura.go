// internal/system/aura.go
package system

import (
	"go-termite/internal/entity"
	"go-termite/internal/event"
)

// ShieldSystem lets every support shield friendly mobile units in range,
// once per support and unit.
type ShieldSystem struct {
	reg    *entity.Registry
	events *event.Dispatcher
}

func NewShieldSystem(reg *entity.Registry, events *event.Dispatcher) *ShieldSystem {
	return &ShieldSystem{reg: reg, events: events}
}

// Update applies this frame's first-time grants. Supports and targets are
// visited in creation order.
func (s *ShieldSystem) Update() {
	mobiles := s.reg.Mobiles()
	for _, support := range s.reg.Structures() {
		if support.Shield == nil || !support.Alive() {
			continue
		}
		for _, target := range mobiles {
			if target.Side != support.Side || !target.Active() {
				continue
			}
			if !support.Position.WithinRange(target.Position, support.Range) {
				continue
			}
			if support.Shield.Grant(target) {
				emit(s.reg, s.events, event.ShieldGranted, event.Shield{
					Support: Info(support),
					Target:  Info(target),
					Amount:  support.Shield.Amount,
				})
			}
		}
	}
}
