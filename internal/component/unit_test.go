package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-termite/internal/defs"
	"go-termite/internal/types"
	"go-termite/pkg/arena"
)

func newUnit(t *testing.T, kind defs.Kind, side types.Side, at arena.Point) *Unit {
	t.Helper()
	def, err := defs.Default().Get(kind)
	require.NoError(t, err)
	u, err := NewUnit(1, def, side, at, 0)
	require.NoError(t, err)
	return u
}

func TestNewUnit(t *testing.T) {
	scout := newUnit(t, defs.KindScout, types.SideBottom, arena.Point{X: 13, Y: 0})
	require.NotNil(t, scout.Mobile)
	assert.Nil(t, scout.Structure)
	assert.Equal(t, 15.0, scout.Health)
	assert.Equal(t, 15.0, scout.MaxHealth)
	assert.Equal(t, arena.EdgeTopRight, scout.Mobile.TargetEdge)

	top := newUnit(t, defs.KindDemolisher, types.SideTop, arena.Point{X: 20, Y: 21})
	assert.Equal(t, arena.EdgeBottomLeft, top.Mobile.TargetEdge)

	support := newUnit(t, defs.KindSupport, types.SideBottom, arena.Point{X: 13, Y: 5})
	require.NotNil(t, support.Structure)
	require.NotNil(t, support.Shield)
	assert.Equal(t, 3.0, support.Shield.Amount)

	def, _ := defs.Default().Get(defs.KindWall)
	_, err := NewUnit(2, def, types.Side(7), arena.Point{X: 13, Y: 5}, 0)
	assert.ErrorIs(t, err, types.ErrInvalidSide)
}

func TestTakeDamage(t *testing.T) {
	t.Run("shields absorb first", func(t *testing.T) {
		u := newUnit(t, defs.KindScout, types.SideBottom, arena.Point{X: 13, Y: 0})
		u.Mobile.Shields = 3
		u.TakeDamage(2)
		assert.Equal(t, 1.0, u.Mobile.Shields)
		assert.Equal(t, 15.0, u.Health)

		u.TakeDamage(4)
		assert.Equal(t, 0.0, u.Mobile.Shields)
		assert.Equal(t, 12.0, u.Health)
	})

	t.Run("health floors at zero", func(t *testing.T) {
		u := newUnit(t, defs.KindScout, types.SideBottom, arena.Point{X: 13, Y: 0})
		u.TakeDamage(100)
		assert.Equal(t, 0.0, u.Health)
		assert.False(t, u.Alive())
		u.TakeDamage(5)
		assert.Equal(t, 0.0, u.Health)
	})

	t.Run("structures remember the lethal hit", func(t *testing.T) {
		wall := newUnit(t, defs.KindWall, types.SideBottom, arena.Point{X: 13, Y: 5})
		wall.TakeDamage(20)
		assert.Equal(t, 0.0, wall.Structure.LethalHitHealth)
		wall.TakeDamage(50)
		assert.Equal(t, 40.0, wall.Structure.LethalHitHealth)
		assert.Equal(t, 0.0, wall.Health)
	})
}

func TestUpgrade(t *testing.T) {
	t.Run("wall keeps its health fraction", func(t *testing.T) {
		wall := newUnit(t, defs.KindWall, types.SideBottom, arena.Point{X: 13, Y: 5})
		wall.TakeDamage(30)
		require.Equal(t, 30.0, wall.Health)

		require.NoError(t, wall.Upgrade())
		assert.Equal(t, 120.0, wall.MaxHealth)
		assert.Equal(t, 60.0, wall.Health)
		assert.ErrorIs(t, wall.Upgrade(), ErrAlreadyUpgraded)
	})

	t.Run("turret changes damage and range only", func(t *testing.T) {
		turret := newUnit(t, defs.KindTurret, types.SideBottom, arena.Point{X: 13, Y: 5})
		turret.TakeDamage(5)
		require.NoError(t, turret.Upgrade())
		assert.Equal(t, 15.0, turret.Damage)
		assert.Equal(t, 3.5, turret.Range)
		assert.Equal(t, 75.0, turret.MaxHealth)
		assert.Equal(t, 70.0, turret.Health)
	})

	t.Run("support grows its shield", func(t *testing.T) {
		support := newUnit(t, defs.KindSupport, types.SideBottom, arena.Point{X: 13, Y: 5})
		require.NoError(t, support.Upgrade())
		assert.Equal(t, 4.0, support.Shield.Amount)
		assert.Equal(t, 7.0, support.Range)
	})

	t.Run("mobile units cannot upgrade", func(t *testing.T) {
		scout := newUnit(t, defs.KindScout, types.SideBottom, arena.Point{X: 13, Y: 0})
		assert.ErrorIs(t, scout.Upgrade(), ErrNotUpgradable)
	})
}

func TestShieldGrantOnce(t *testing.T) {
	support := newUnit(t, defs.KindSupport, types.SideBottom, arena.Point{X: 13, Y: 5})
	scout := newUnit(t, defs.KindScout, types.SideBottom, arena.Point{X: 13, Y: 0})
	scout.ID = 9

	assert.True(t, support.Shield.Grant(scout))
	assert.False(t, support.Shield.Grant(scout))
	assert.Equal(t, 3.0, scout.Mobile.Shields)
	assert.True(t, support.Shield.HasShielded(9))

	wall := newUnit(t, defs.KindWall, types.SideBottom, arena.Point{X: 12, Y: 5})
	assert.False(t, support.Shield.Grant(wall))
}

func TestCloneIsDeep(t *testing.T) {
	scout := newUnit(t, defs.KindScout, types.SideBottom, arena.Point{X: 13, Y: 0})
	scout.Mobile.SetPath([]arena.Point{{X: 13, Y: 0}, {X: 13, Y: 1}})

	c := scout.Clone()
	c.Mobile.Path[0] = arena.Point{X: 1, Y: 1}
	c.Health = 1
	assert.Equal(t, arena.Point{X: 13, Y: 1}, scout.Mobile.Path[0])
	assert.Equal(t, 15.0, scout.Health)
}

func TestOrdering(t *testing.T) {
	a := &Unit{ID: 4, CreationTime: 2}
	b := &Unit{ID: 1, CreationTime: 3}
	c := &Unit{ID: 5, CreationTime: 2}
	assert.True(t, a.Before(b))
	assert.True(t, a.Before(c))
	assert.False(t, b.Before(c))
}

func TestMobileMovementState(t *testing.T) {
	m := &MobileState{Speed: 2}
	assert.False(t, m.ReadyToMove())
	assert.True(t, m.ReadyToMove())

	m.SetPath([]arena.Point{{X: 13, Y: 0}})
	_, ok := m.NextStep()
	assert.False(t, ok)

	m.SetPath([]arena.Point{{X: 13, Y: 0}, {X: 13, Y: 1}, {X: 14, Y: 1}})
	next, ok := m.NextStep()
	require.True(t, ok)
	assert.Equal(t, arena.Point{X: 13, Y: 1}, next)
	assert.Len(t, m.Path, 1)
}

func TestPlayerEconomy(t *testing.T) {
	p := &Player{Side: types.SideBottom, Health: 30, StructurePoints: 40, MobilePoints: 1}
	require.True(t, p.CanAfford(true, 1))
	p.Spend(true, 1)
	assert.Equal(t, 0.0, p.MobilePoints)
	assert.False(t, p.CanAfford(true, 1))

	p.MobilePoints = 5
	p.Restore(0.75, 5, 5)
	assert.Equal(t, 8.8, p.MobilePoints) // round1(3.75) = 3.8, + 5
	assert.Equal(t, 45.0, p.StructurePoints)

	p.Refund(0.4)
	assert.Equal(t, 45.4, p.StructurePoints)

	p.LoseHealth(31)
	assert.Equal(t, 0, p.Health)
}
