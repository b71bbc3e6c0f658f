// pkg/arena/point.go
package arena

import "fmt"

// Point is a cell coordinate. Y grows from the bottom player's row 0 to the top row 27.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector from o to p.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// DistanceSq is the squared Euclidean distance. Range checks compare against
// range*range so that no square root enters the deterministic path.
func (p Point) DistanceSq(o Point) int {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// WithinRange reports whether o lies at Euclidean distance <= r from p.
func (p Point) WithinRange(o Point, r float64) bool {
	return float64(p.DistanceSq(o)) <= float64(r*r)
}

// Neighbors returns the four orthogonal neighbours in the fixed search order
// up, down, right, left. Cells outside the arena are filtered out.
func (p Point) Neighbors() []Point {
	candidates := [4]Point{
		{X: p.X, Y: p.Y + 1},
		{X: p.X, Y: p.Y - 1},
		{X: p.X + 1, Y: p.Y},
		{X: p.X - 1, Y: p.Y},
	}
	out := make([]Point, 0, 4)
	for _, c := range candidates {
		if InArena(c) {
			out = append(out, c)
		}
	}
	return out
}

// EdgeDistance is the distance to the nearest side of the square bounding board.
func (p Point) EdgeDistance() int {
	return min(p.X, Size-1-p.X, p.Y, Size-1-p.Y)
}
