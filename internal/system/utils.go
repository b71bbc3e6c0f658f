// internal/system/utils.go
package system

import (
	"go-termite/internal/component"
	"go-termite/internal/entity"
	"go-termite/internal/event"
	"go-termite/internal/types"
)

// PlayerLookup resolves the player record of a side.
type PlayerLookup func(side types.Side) *component.Player

// ApplyDamage наносит урон юниту. Mobile units burn shields first; nothing goes
// below zero. It returns the health actually lost.
func ApplyDamage(target *component.Unit, damage float64) float64 {
	before := target.Health
	target.TakeDamage(damage)
	return before - target.Health
}

// Info builds the event descriptor of a unit.
func Info(u *component.Unit) event.UnitInfo {
	return event.UnitInfo{ID: u.ID, Kind: u.Kind, Side: u.Side, At: u.Position}
}

// emit stamps an event with the registry clock and dispatches it.
func emit(reg *entity.Registry, events *event.Dispatcher, t event.EventType, data interface{}) {
	if events == nil {
		return
	}
	events.Dispatch(event.Event{Type: t, Turn: reg.Turn, Frame: reg.Frame, Data: data})
}
