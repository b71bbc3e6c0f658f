// internal/system/state.go
package system

import (
	"go-termite/internal/component"
	"go-termite/internal/entity"
	"go-termite/internal/event"
	"go-termite/internal/types"
)

// StateSystem watches turn ends and decides when the game is over. It stops
// listening once an outcome is set.
type StateSystem struct {
	reg             *entity.Registry
	players         PlayerLookup
	eventDispatcher *event.Dispatcher
	maxTurns        int
	outcome         component.Outcome
}

func NewStateSystem(reg *entity.Registry, players PlayerLookup, eventDispatcher *event.Dispatcher, maxTurns int) *StateSystem {
	ss := &StateSystem{
		reg:             reg,
		players:         players,
		eventDispatcher: eventDispatcher,
		maxTurns:        maxTurns,
	}
	eventDispatcher.Subscribe(event.TurnEnded, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type == event.TurnEnded {
		s.Check()
	}
}

// Check evaluates the end conditions: a player at zero health, or the turn
// limit reached. Equal health at the end is a draw.
func (s *StateSystem) Check() component.Outcome {
	if s.outcome != component.OutcomeNone {
		return s.outcome
	}
	bottom := s.players(types.SideBottom).Health
	top := s.players(types.SideTop).Health
	if bottom > 0 && top > 0 && s.reg.Turn < s.maxTurns {
		return component.OutcomeNone
	}

	switch {
	case bottom > top:
		s.outcome = component.BottomWins
	case top > bottom:
		s.outcome = component.TopWins
	default:
		s.outcome = component.Draw
	}
	s.eventDispatcher.Unsubscribe(event.TurnEnded, s)
	emit(s.reg, s.eventDispatcher, event.GameOver, event.Outcome{Winner: s.outcome.String(), Turns: s.reg.Turn})
	return s.outcome
}

// Outcome returns the decided result, or OutcomeNone while the game runs.
func (s *StateSystem) Outcome() component.Outcome {
	return s.outcome
}
