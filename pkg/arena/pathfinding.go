// pkg/arena/pathfinding.go
package arena

import "math"

// MoveDirection is the axis of the previous step, used to break path-length ties.
type MoveDirection int

const (
	MoveNone MoveDirection = iota
	MoveHorizontal
	MoveVertical
)

// DirectionOf classifies a single-step move vector.
func DirectionOf(move Point) MoveDirection {
	switch {
	case move.X != 0:
		return MoveHorizontal
	case move.Y != 0:
		return MoveVertical
	}
	return MoveNone
}

// Pathfinder routes mobile units towards a quadrant edge. It only reads the
// board's structure layer; mobile units never block each other.
type Pathfinder struct {
	board *Board
}

func NewPathfinder(board *Board) *Pathfinder {
	return &Pathfinder{board: board}
}

// FindPath returns the cells a unit at start would walk, start included.
// When no endpoint is reachable the path ends on the most ideal reachable cell;
// a path of length 1 means the unit cannot make any further progress.
func (pf *Pathfinder) FindPath(start Point, edge Edge, lastMove Point) []Point {
	if pf.board.Blocked(start) {
		return []Point{start}
	}
	s := newSearch(pf.board, edge)
	ideal := s.idealnessSearch(start)
	s.validate(ideal)
	return s.buildPath(start, DirectionOf(lastMove))
}

// search holds per-call scratch state over the flat cell array.
type search struct {
	board      *Board
	direction  Point
	endpoints  []Point
	isEndpoint []bool
	pathLength []int
}

func newSearch(board *Board, edge Edge) *search {
	s := &search{
		board:      board,
		direction:  edge.Direction(),
		endpoints:  edge.Cells(),
		isEndpoint: make([]bool, Size*Size),
		pathLength: make([]int, Size*Size),
	}
	for _, e := range s.endpoints {
		s.isEndpoint[idx(e)] = true
	}
	for i := range s.pathLength {
		s.pathLength[i] = -1
	}
	return s
}

func (s *search) passable(p Point) bool {
	return InArena(p) && !s.board.Blocked(p)
}

// idealness rewards progress towards the edge: the primary axis is weighted by
// the board span so it always dominates the secondary axis.
func (s *search) idealness(p Point) int {
	if s.isEndpoint[idx(p)] {
		return math.MaxInt
	}
	score := 0
	if s.direction.Y == 1 {
		score += Size * p.Y
	} else {
		score += Size * (Size - 1 - p.Y)
	}
	if s.direction.X == 1 {
		score += p.X
	} else {
		score += Size - 1 - p.X
	}
	return score
}

// idealnessSearch walks everything reachable from start and keeps the first
// visited cell with the highest idealness.
func (s *search) idealnessSearch(start Point) Point {
	visited := make([]bool, Size*Size)
	visited[idx(start)] = true
	best := start
	bestScore := s.idealness(start)

	queue := []Point{start}
	for head := 0; head < len(queue); head++ {
		for _, n := range queue[head].Neighbors() {
			if !s.passable(n) || visited[idx(n)] {
				continue
			}
			visited[idx(n)] = true
			if score := s.idealness(n); score > bestScore {
				bestScore = score
				best = n
			}
			queue = append(queue, n)
		}
	}
	return best
}

// validate assigns every cell reachable from the target frontier its path length.
// The frontier is the ideal tile, or the whole edge when the ideal tile is on it.
func (s *search) validate(ideal Point) {
	var queue []Point
	if s.isEndpoint[idx(ideal)] {
		for _, e := range s.endpoints {
			if !s.passable(e) {
				continue
			}
			s.pathLength[idx(e)] = 0
			queue = append(queue, e)
		}
	} else {
		s.pathLength[idx(ideal)] = 0
		queue = append(queue, ideal)
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		next := s.pathLength[idx(cur)] + 1
		for _, n := range cur.Neighbors() {
			if !s.passable(n) || s.pathLength[idx(n)] >= 0 {
				continue
			}
			s.pathLength[idx(n)] = next
			queue = append(queue, n)
		}
	}
}

// buildPath walks greedily down the path-length field.
func (s *search) buildPath(start Point, dir MoveDirection) []Point {
	path := []Point{start}
	cur := start
	for len(path) <= Size*Size {
		if l := s.pathLength[idx(cur)]; l <= 0 {
			break
		}
		next := s.chooseNextMove(cur, dir)
		if next == cur {
			break
		}
		if next.X == cur.X {
			dir = MoveVertical
		} else {
			dir = MoveHorizontal
		}
		path = append(path, next)
		cur = next
	}
	return path
}

// chooseNextMove picks the neighbour with the strictly smallest path length;
// equal candidates go through betterDirection.
func (s *search) chooseNextMove(cur Point, prev MoveDirection) Point {
	best := cur
	bestLength := s.pathLength[idx(cur)]
	for _, n := range cur.Neighbors() {
		if !s.passable(n) {
			continue
		}
		l := s.pathLength[idx(n)]
		if l < 0 || l >= s.pathLength[idx(cur)] || l > bestLength {
			continue
		}
		if best != cur && l == bestLength && !s.betterDirection(cur, n, best, prev) {
			continue
		}
		best = n
		bestLength = l
	}
	return best
}

// betterDirection decides whether candidate beats the current best when both are
// equally close. Switching axis wins over continuing; on the same axis the one
// further along the quadrant direction wins.
func (s *search) betterDirection(cur, candidate, best Point, prev MoveDirection) bool {
	if prev == MoveHorizontal && candidate.X != best.X {
		return cur.Y != candidate.Y
	}
	if prev == MoveVertical && candidate.Y != best.Y {
		return cur.X != candidate.X
	}
	if prev == MoveNone {
		return cur.Y != candidate.Y
	}
	if candidate.Y == best.Y {
		return (s.direction.X == 1 && candidate.X > best.X) ||
			(s.direction.X == -1 && candidate.X < best.X)
	}
	if candidate.X == best.X {
		return (s.direction.Y == 1 && candidate.Y > best.Y) ||
			(s.direction.Y == -1 && candidate.Y < best.Y)
	}
	return true
}
