package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-termite/internal/types"
)

func TestInArena(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{13, 0}, true},
		{Point{14, 0}, true},
		{Point{12, 0}, false},
		{Point{0, 13}, true},
		{Point{0, 14}, true},
		{Point{0, 0}, false},
		{Point{27, 27}, false},
		{Point{13, 13}, true},
		{Point{27, 13}, true},
		{Point{-1, 13}, false},
		{Point{28, 14}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InArena(tt.p), "InArena(%v)", tt.p)
	}
	// 4 * (1+2+...+14) cells in the diamond.
	assert.Len(t, Cells(), 420)
}

func TestEdges(t *testing.T) {
	for _, e := range []Edge{EdgeTopRight, EdgeTopLeft, EdgeBottomLeft, EdgeBottomRight} {
		cells := e.Cells()
		require.Len(t, cells, HalfSize, e.String())
		for _, c := range cells {
			assert.True(t, InArena(c), "%v cell %v outside arena", e, c)
			assert.True(t, e.Contains(c), "%v should contain %v", e, c)
		}
	}
	assert.Equal(t, Point{13, 0}, EdgeBottomLeft.Cells()[0])
	assert.Equal(t, Point{27, 13}, EdgeBottomRight.Cells()[13])
	assert.False(t, EdgeTopRight.Contains(Point{13, 27}))
	assert.True(t, EdgeTopLeft.Contains(Point{13, 27}))
}

func TestTargetEdge(t *testing.T) {
	tests := []struct {
		side types.Side
		p    Point
		want Edge
	}{
		{types.SideBottom, Point{13, 0}, EdgeTopRight},
		{types.SideBottom, Point{14, 0}, EdgeTopLeft},
		{types.SideTop, Point{13, 27}, EdgeBottomRight},
		{types.SideTop, Point{14, 27}, EdgeBottomLeft},
	}
	for _, tt := range tests {
		got, err := TargetEdge(tt.side, tt.p)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := TargetEdge(types.Side(7), Point{13, 0})
	assert.ErrorIs(t, err, types.ErrInvalidSide)
}

func TestSpawnCells(t *testing.T) {
	assert.True(t, IsSpawnCell(types.SideBottom, Point{13, 0}))
	assert.True(t, IsSpawnCell(types.SideBottom, Point{0, 13}))
	assert.False(t, IsSpawnCell(types.SideBottom, Point{0, 14}))
	assert.True(t, IsSpawnCell(types.SideTop, Point{0, 14}))
	assert.False(t, IsSpawnCell(types.SideTop, Point{13, 13}))
}

func TestBoardOccupancy(t *testing.T) {
	b := NewBoard()

	require.NoError(t, b.PlaceStructure(1, Point{13, 5}))
	assert.ErrorIs(t, b.PlaceStructure(2, Point{13, 5}), ErrOccupied)
	assert.ErrorIs(t, b.PlaceMobile(3, Point{13, 5}), ErrOccupied)
	assert.ErrorIs(t, b.PlaceStructure(4, Point{0, 0}), ErrOutOfArena)
	assert.True(t, b.Blocked(Point{13, 5}))

	require.NoError(t, b.PlaceMobile(5, Point{13, 0}))
	require.NoError(t, b.PlaceMobile(6, Point{13, 0}))
	assert.ErrorIs(t, b.PlaceStructure(7, Point{13, 0}), ErrOccupied)

	occ := b.OccupantAt(Point{13, 0})
	assert.Equal(t, []types.UnitID{5, 6}, occ.Mobiles)
	assert.False(t, occ.HasStructure())
	assert.False(t, b.Blocked(Point{13, 0}))

	b.ClearMobileLayer()
	assert.True(t, b.OccupantAt(Point{13, 0}).Empty())
	assert.Equal(t, types.UnitID(1), b.OccupantAt(Point{13, 5}).Structure)

	b.RemoveStructure(Point{13, 5})
	assert.True(t, b.OccupantAt(Point{13, 5}).Empty())
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.PlaceMobile(1, Point{13, 0}))
	c := b.Clone()
	require.NoError(t, c.PlaceMobile(2, Point{13, 0}))
	require.NoError(t, c.PlaceStructure(3, Point{13, 4}))

	assert.Equal(t, []types.UnitID{1}, b.OccupantAt(Point{13, 0}).Mobiles)
	assert.False(t, b.Blocked(Point{13, 4}))
}
