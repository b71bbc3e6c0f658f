package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	lib := Default()

	tests := []struct {
		kind        Kind
		mobile      bool
		cost        float64
		health      float64
		rng         float64
		damage      float64
		speed       int
		upgradeCost float64
	}{
		{KindScout, true, 1, 15, 3.5, 2, 1, 0},
		{KindDemolisher, true, 3, 5, 4.5, 8, 2, 0},
		{KindInterceptor, true, 1, 40, 4.5, 20, 4, 0},
		{KindWall, false, 1, 60, 0, 0, 0, 1},
		{KindSupport, false, 4, 30, 3.5, 0, 0, 4},
		{KindTurret, false, 2, 75, 2.5, 5, 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			def, err := lib.Get(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, def.Kind)
			assert.Equal(t, tt.mobile, def.IsMobile())
			assert.Equal(t, tt.cost, def.Cost)
			assert.Equal(t, tt.health, def.Health)
			assert.Equal(t, tt.rng, def.Range)
			assert.Equal(t, tt.damage, def.Damage)
			assert.Equal(t, tt.speed, def.Speed)
			assert.Equal(t, tt.upgradeCost, def.UpgradeCost)
		})
	}

	wall, _ := lib.Get(KindWall)
	require.NotNil(t, wall.Upgrade)
	assert.Equal(t, 120.0, *wall.Upgrade.Health)

	support, _ := lib.Get(KindSupport)
	assert.Equal(t, 3.0, support.Shield)
	assert.Equal(t, 7.0, *support.Upgrade.Range)
	assert.Equal(t, 4.0, *support.Upgrade.Shield)

	turret, _ := lib.Get(KindTurret)
	assert.Equal(t, 15.0, *turret.Upgrade.Damage)
	assert.Equal(t, 3.5, *turret.Upgrade.Range)
	assert.Nil(t, turret.Upgrade.Health)
}

func TestTraits(t *testing.T) {
	lib := Default()
	get := func(k Kind) Trait {
		def, err := lib.Get(k)
		require.NoError(t, err)
		return def.Traits()
	}

	assert.True(t, get(KindScout).Has(TraitMobile|TraitAttacker|TraitHitsStructures))
	assert.True(t, get(KindInterceptor).Has(TraitMobile|TraitAttacker))
	assert.False(t, get(KindInterceptor).Has(TraitHitsStructures))
	assert.True(t, get(KindTurret).Has(TraitStationary|TraitAttacker))
	assert.False(t, get(KindTurret).Has(TraitHitsStructures))
	assert.True(t, get(KindSupport).Has(TraitStationary|TraitShielder))
	assert.False(t, get(KindWall).Has(TraitAttacker))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("demolisher")
	require.NoError(t, err)
	assert.Equal(t, KindDemolisher, k)

	_, err = ParseKind("dragon")
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = Default().Get(Kind(42))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestLoadLibraryRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "units.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	lib, err := LoadLibrary(path)
	require.NoError(t, err)
	assert.Equal(t, Default().All(), lib.All())
}

func TestParseLibraryRejectsBadTables(t *testing.T) {
	tests := map[string]string{
		"missing kinds": "units:\n  - {kind: scout, class: mobile, cost: 1, health: 15, speed: 1}\n",
		"unknown kind":  "units:\n  - {kind: dragon, class: mobile, cost: 1, health: 1, speed: 1}\n",
		"no speed":      "units:\n  - {kind: scout, class: mobile, cost: 1, health: 15}\n",
		"duplicate": "units:\n" +
			"  - {kind: scout, class: mobile, cost: 1, health: 15, speed: 1}\n" +
			"  - {kind: scout, class: mobile, cost: 1, health: 15, speed: 1}\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseLibrary([]byte(doc))
			assert.Error(t, err)
		})
	}

	_, err := ParseLibrary([]byte(tests["missing kinds"]))
	assert.ErrorContains(t, err, "missing definition for demolisher")

	_, err = LoadLibrary(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
