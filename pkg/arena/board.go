// pkg/arena/board.go
package arena

import (
	"errors"
	"fmt"

	"go-termite/internal/types"
)

const (
	Size     = 28
	HalfSize = Size / 2
)

var (
	ErrOutOfArena = errors.New("cell is outside the arena")
	ErrOccupied   = errors.New("cell is occupied")
)

// InArena is the diamond membership test |x-13.5| + |y-13.5| <= 14,
// evaluated on doubled integer coordinates.
func InArena(p Point) bool {
	if p.X < 0 || p.X >= Size || p.Y < 0 || p.Y >= Size {
		return false
	}
	return abs(2*p.X-(Size-1))+abs(2*p.Y-(Size-1)) <= Size
}

// InHalf reports whether p is inside side's half of the arena.
func InHalf(side types.Side, p Point) bool {
	if !InArena(p) {
		return false
	}
	if side == types.SideTop {
		return p.Y >= HalfSize
	}
	return p.Y < HalfSize
}

// Cell holds either one structure or a stack of mobile units, never both.
type Cell struct {
	Structure types.UnitID
	Mobiles   []types.UnitID
}

// Occupant is a read-only copy of what a cell holds.
type Occupant struct {
	Structure types.UnitID
	Mobiles   []types.UnitID
}

func (o Occupant) Empty() bool { return o.Structure == 0 && len(o.Mobiles) == 0 }
func (o Occupant) HasStructure() bool { return o.Structure != 0 }
func (o Occupant) HasMobiles() bool { return len(o.Mobiles) > 0 }

// Board is the occupancy index of the arena. The structure layer is authoritative
// between turns; the mobile layer is rebuilt from unit positions every frame.
type Board struct {
	cells []Cell // row-major, Size*Size
}

func NewBoard() *Board {
	return &Board{cells: make([]Cell, Size*Size)}
}

func idx(p Point) int { return p.Y*Size + p.X }

func (b *Board) cell(p Point) *Cell {
	if p.X < 0 || p.X >= Size || p.Y < 0 || p.Y >= Size {
		return nil
	}
	return &b.cells[idx(p)]
}

// PlaceStructure puts a structure on an empty in-arena cell.
func (b *Board) PlaceStructure(id types.UnitID, p Point) error {
	if !InArena(p) {
		return fmt.Errorf("%w: %v", ErrOutOfArena, p)
	}
	c := b.cell(p)
	if c.Structure != 0 || len(c.Mobiles) > 0 {
		return fmt.Errorf("%w: %v", ErrOccupied, p)
	}
	c.Structure = id
	return nil
}

// PlaceMobile appends a mobile unit to the cell's stack.
func (b *Board) PlaceMobile(id types.UnitID, p Point) error {
	if !InArena(p) {
		return fmt.Errorf("%w: %v", ErrOutOfArena, p)
	}
	c := b.cell(p)
	if c.Structure != 0 {
		return fmt.Errorf("%w: structure at %v", ErrOccupied, p)
	}
	c.Mobiles = append(c.Mobiles, id)
	return nil
}

// RemoveStructure clears the structure layer at p.
func (b *Board) RemoveStructure(p Point) {
	if c := b.cell(p); c != nil {
		c.Structure = 0
	}
}

// RemoveMobile takes one unit out of the stack at p, keeping the order of the rest.
func (b *Board) RemoveMobile(id types.UnitID, p Point) {
	c := b.cell(p)
	if c == nil {
		return
	}
	for i, m := range c.Mobiles {
		if m == id {
			c.Mobiles = append(c.Mobiles[:i], c.Mobiles[i+1:]...)
			return
		}
	}
}

// ClearMobileLayer drops every mobile entry and leaves structures in place.
func (b *Board) ClearMobileLayer() {
	for i := range b.cells {
		b.cells[i].Mobiles = b.cells[i].Mobiles[:0]
	}
}

// OccupantAt returns a copy of the cell contents at p.
func (b *Board) OccupantAt(p Point) Occupant {
	c := b.cell(p)
	if c == nil {
		return Occupant{}
	}
	occ := Occupant{Structure: c.Structure}
	if len(c.Mobiles) > 0 {
		occ.Mobiles = append([]types.UnitID(nil), c.Mobiles...)
	}
	return occ
}

// Blocked reports whether p cannot be walked through.
func (b *Board) Blocked(p Point) bool {
	c := b.cell(p)
	return c == nil || !InArena(p) || c.Structure != 0
}

// Clone returns an independent copy, used for strategy snapshots.
func (b *Board) Clone() *Board {
	out := NewBoard()
	for i, c := range b.cells {
		out.cells[i].Structure = c.Structure
		if len(c.Mobiles) > 0 {
			out.cells[i].Mobiles = append([]types.UnitID(nil), c.Mobiles...)
		}
	}
	return out
}

// Cells returns every in-arena cell in row-major order.
func Cells() []Point {
	out := make([]Point, 0, Size*Size/2+Size)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if p := (Point{X: x, Y: y}); InArena(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
