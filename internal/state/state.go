// internal/state/state.go
package state

import "go-termite/internal/component"

// State — интерфейс для всех состояний (фаз хода)
type State interface {
	Phase() component.Phase
	Enter()
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	history []component.Phase
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.history = append(sm.history, sm.current.Phase())
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current returns the active state, nil before the first SetState.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Phase returns the active phase. Before the first state it reports DeployPhase.
func (sm *StateMachine) Phase() component.Phase {
	if sm.current == nil {
		return component.DeployPhase
	}
	return sm.current.Phase()
}

// History lists every phase entered so far, oldest first.
func (sm *StateMachine) History() []component.Phase {
	return append([]component.Phase(nil), sm.history...)
}

// Func is a State whose Enter runs a function.
type Func struct {
	P  component.Phase
	Do func()
}

func (f Func) Phase() component.Phase { return f.P }

func (f Func) Enter() {
	if f.Do != nil {
		f.Do()
	}
}

func (f Func) Exit() {}
