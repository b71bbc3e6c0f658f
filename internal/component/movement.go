// internal/component/movement.go
package component

import "go-termite/pkg/arena"

// MobileState — состояние подвижного юнита.
type MobileState struct {
	Speed               int           // frames per tile
	Shields             float64       // absorbed before health
	FramesSinceLastMove int           // reset on every step
	LastMove            arena.Point   // last step vector, zero before the first step
	TargetEdge          arena.Edge    // fixed at deployment
	Path                []arena.Point // remaining cached steps, start excluded
	DistanceMoved       int           // tiles walked since deployment
	Attacked            bool          // attacked during the current frame
	SelfDestructed      bool          // route blocked, waiting for the destruction step
	Breached            bool          // reached the target edge
}

// ReadyToMove advances the frame counter and reports whether a step is due.
func (m *MobileState) ReadyToMove() bool {
	m.FramesSinceLastMove++
	return m.FramesSinceLastMove >= m.Speed
}

// NextStep pops the next cached cell.
func (m *MobileState) NextStep() (arena.Point, bool) {
	if len(m.Path) == 0 {
		return arena.Point{}, false
	}
	next := m.Path[0]
	m.Path = m.Path[1:]
	return next, true
}

// SetPath caches a fresh pathfinder result. The first element is the current cell.
func (m *MobileState) SetPath(path []arena.Point) {
	if len(path) <= 1 {
		m.Path = nil
		return
	}
	m.Path = append(m.Path[:0], path[1:]...)
}
