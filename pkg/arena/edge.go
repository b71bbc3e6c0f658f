// pkg/arena/edge.go
package arena

import (
	"fmt"

	"go-termite/internal/types"
)

// Edge is one of the four diagonal boundary segments of the diamond.
type Edge int

const (
	EdgeTopRight Edge = iota
	EdgeTopLeft
	EdgeBottomLeft
	EdgeBottomRight
)

var edgeNames = [...]string{"top_right", "top_left", "bottom_left", "bottom_right"}

func (e Edge) String() string {
	if e < 0 || int(e) >= len(edgeNames) {
		return fmt.Sprintf("edge(%d)", int(e))
	}
	return edgeNames[e]
}

// Cells lists the edge's boundary cells, ordered from the middle of the board outwards.
func (e Edge) Cells() []Point {
	cells := make([]Point, 0, HalfSize)
	for n := 0; n < HalfSize; n++ {
		var p Point
		switch e {
		case EdgeTopRight:
			p = Point{X: HalfSize + n, Y: Size - 1 - n}
		case EdgeTopLeft:
			p = Point{X: HalfSize - 1 - n, Y: Size - 1 - n}
		case EdgeBottomLeft:
			p = Point{X: HalfSize - 1 - n, Y: n}
		case EdgeBottomRight:
			p = Point{X: HalfSize + n, Y: n}
		default:
			return nil
		}
		cells = append(cells, p)
	}
	return cells
}

// Contains reports whether p is one of the edge's cells.
func (e Edge) Contains(p Point) bool {
	switch e {
	case EdgeTopRight:
		return p.X >= HalfSize && p.Y >= HalfSize && p.X+p.Y == HalfSize+Size-1
	case EdgeTopLeft:
		return p.X < HalfSize && p.Y >= HalfSize && p.Y-p.X == HalfSize
	case EdgeBottomLeft:
		return p.X < HalfSize && p.Y < HalfSize && p.X+p.Y == HalfSize-1
	case EdgeBottomRight:
		return p.X >= HalfSize && p.Y < HalfSize && p.X-p.Y == HalfSize
	}
	return false
}

// Direction is the unit vector pointing from the board centre towards the edge.
func (e Edge) Direction() Point {
	switch e {
	case EdgeTopRight:
		return Point{X: 1, Y: 1}
	case EdgeTopLeft:
		return Point{X: -1, Y: 1}
	case EdgeBottomLeft:
		return Point{X: -1, Y: -1}
	default:
		return Point{X: 1, Y: -1}
	}
}

// SpawnEdges returns the two edges a side may deploy mobile units on.
func SpawnEdges(side types.Side) [2]Edge {
	if side == types.SideTop {
		return [2]Edge{EdgeTopLeft, EdgeTopRight}
	}
	return [2]Edge{EdgeBottomLeft, EdgeBottomRight}
}

// IsSpawnCell reports whether p lies on one of side's spawn edges.
func IsSpawnCell(side types.Side, p Point) bool {
	for _, e := range SpawnEdges(side) {
		if e.Contains(p) {
			return true
		}
	}
	return false
}

// TargetEdge picks the edge a unit spawned at p will walk to: the enemy edge
// diagonally opposite the half of the board it starts in.
func TargetEdge(side types.Side, p Point) (Edge, error) {
	if err := side.Validate(); err != nil {
		return 0, err
	}
	left := p.X < HalfSize
	switch {
	case side == types.SideBottom && left:
		return EdgeTopRight, nil
	case side == types.SideBottom:
		return EdgeTopLeft, nil
	case left:
		return EdgeBottomRight, nil
	default:
		return EdgeBottomLeft, nil
	}
}
