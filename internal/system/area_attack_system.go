// internal/system/area_attack_system.go
package system

import (
	"go-termite/internal/component"
	"go-termite/internal/entity"
	"go-termite/internal/event"
)

// AreaAttackSystem handles the splash of a mobile unit that blew itself up.
type AreaAttackSystem struct {
	reg         *entity.Registry
	events      *event.Dispatcher
	radius      float64
	minDistance int
}

func NewAreaAttackSystem(reg *entity.Registry, events *event.Dispatcher, radius float64, minDistance int) *AreaAttackSystem {
	return &AreaAttackSystem{reg: reg, events: events, radius: radius, minDistance: minDistance}
}

// Explode deals source's max health to every live enemy within the radius,
// provided source walked at least minDistance tiles. It reports whether the
// splash fired.
func (s *AreaAttackSystem) Explode(source *component.Unit) bool {
	splash := source.Mobile != nil && source.Mobile.DistanceMoved >= s.minDistance
	if splash {
		for _, target := range s.reg.All() {
			if target.Side == source.Side || !target.Alive() {
				continue
			}
			if source.Position.WithinRange(target.Position, s.radius) {
				ApplyDamage(target, source.MaxHealth)
			}
		}
	}
	emit(s.reg, s.events, event.UnitSelfDestructed, event.SelfDestruct{
		Unit:   Info(source),
		Splash: splash,
		Damage: source.MaxHealth,
	})
	return splash
}
