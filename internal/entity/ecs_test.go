package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-termite/internal/component"
	"go-termite/internal/types"
)

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, types.UnitID(1), r.NewID())
	assert.Equal(t, types.UnitID(2), r.NewID())

	late := &component.Unit{ID: 1, CreationTime: 5, Mobile: &component.MobileState{}}
	early := &component.Unit{ID: 2, CreationTime: 0, Structure: &component.StructureState{}}
	tie := &component.Unit{ID: 3, CreationTime: 0, Mobile: &component.MobileState{}}
	r.Add(late)
	r.Add(early)
	r.Add(tie)

	assert.Equal(t, []*component.Unit{late, early, tie}, r.All())
	assert.Equal(t, []*component.Unit{early, tie, late}, r.ByCreation())
	assert.Equal(t, []*component.Unit{late, tie}, r.Mobiles())
	assert.Equal(t, []*component.Unit{early}, r.Structures())
	assert.True(t, r.HasMobiles())

	got, ok := r.Get(2)
	require.True(t, ok)
	assert.Same(t, early, got)

	r.Remove(1, 3)
	assert.Equal(t, 1, r.Len())
	assert.False(t, r.HasMobiles())
	_, ok = r.Get(1)
	assert.False(t, ok)
}
