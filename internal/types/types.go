// internal/types/types.go
package types

import (
	"errors"
	"fmt"
)

// ErrInvalidSide is returned when a side value is neither bottom nor top.
var ErrInvalidSide = errors.New("invalid side")

// UnitID identifies a unit for its whole lifetime. Zero means "no unit".
type UnitID int

// Side — сторона игрока. Нижний игрок владеет рядами 0..13, верхний 14..27.
type Side int

const (
	SideBottom Side = iota
	SideTop
)

// Sides lists both sides in the fixed player order.
var Sides = [2]Side{SideBottom, SideTop}

func (s Side) String() string {
	switch s {
	case SideBottom:
		return "bottom"
	case SideTop:
		return "top"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// Validate reports ErrInvalidSide for anything other than the two real sides.
func (s Side) Validate() error {
	if s != SideBottom && s != SideTop {
		return fmt.Errorf("%w: %d", ErrInvalidSide, int(s))
	}
	return nil
}

// Index maps the side onto a [2]-array slot.
func (s Side) Index() int {
	return int(s)
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideBottom {
		return SideTop
	}
	return SideBottom
}
