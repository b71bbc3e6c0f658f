// internal/system/movement.go
package system

import (
	"go.uber.org/zap"

	"go-termite/internal/component"
	"go-termite/internal/entity"
	"go-termite/internal/event"
	"go-termite/pkg/arena"
)

// MovementSystem steps mobile units along their cached paths and keeps the
// board's mobile layer in sync with unit positions.
type MovementSystem struct {
	reg        *entity.Registry
	board      *arena.Board
	pathfinder *arena.Pathfinder
	events     *event.Dispatcher
	logger     *zap.Logger
}

func NewMovementSystem(reg *entity.Registry, board *arena.Board, events *event.Dispatcher, logger *zap.Logger) *MovementSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MovementSystem{
		reg:        reg,
		board:      board,
		pathfinder: arena.NewPathfinder(board),
		events:     events,
		logger:     logger,
	}
}

// Update moves every due unit one tile, then rebuilds the mobile layer.
func (s *MovementSystem) Update() {
	mobiles := s.reg.Mobiles()
	for _, u := range mobiles {
		if !u.Active() {
			continue
		}
		s.step(u)
	}
	s.RebuildLayer(mobiles)
}

func (s *MovementSystem) step(u *component.Unit) {
	m := u.Mobile
	if !m.ReadyToMove() {
		return
	}

	next, ok := m.NextStep()
	if !ok {
		// Кэш пуст: пересчитываем путь.
		m.SetPath(s.pathfinder.FindPath(u.Position, m.TargetEdge, m.LastMove))
		next, ok = m.NextStep()
	}
	if !ok {
		m.SelfDestructed = true
		return
	}

	from := u.Position
	m.LastMove = next.Sub(from)
	u.Position = next
	m.FramesSinceLastMove = 0
	m.DistanceMoved++
	emit(s.reg, s.events, event.UnitMoved, event.Move{Unit: Info(u), From: from})

	if m.TargetEdge.Contains(next) {
		m.Breached = true
	}
}

// RebuildLayer clears the board's mobile stacks and reinserts units at their
// current positions, in creation order.
func (s *MovementSystem) RebuildLayer(mobiles []*component.Unit) {
	s.board.ClearMobileLayer()
	for _, u := range mobiles {
		if err := s.board.PlaceMobile(u.ID, u.Position); err != nil {
			s.logger.Warn("mobile unit on a blocked cell",
				zap.Int("unit", int(u.ID)),
				zap.String("at", u.Position.String()),
				zap.Error(err))
		}
	}
}
