package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-termite/internal/defs"
)

func TestRoundTo(t *testing.T) {
	tests := []struct {
		in, want float64
		places   int
	}{
		{3.75, 3.8, 1},
		{0.375, 0.4, 1},
		{2.25, 2.2, 1},
		{59.5, 60, 0},
		{0.125, 0.1, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundTo(tt.in, tt.places), "RoundTo(%v, %d)", tt.in, tt.places)
	}
	assert.Equal(t, 3.8, Round1(3.75))
}

func TestPRNGDeterminism(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, NewPRNGService(0).Float64(), NewPRNGService(1).Float64())
}

func TestChooseWeighted(t *testing.T) {
	rng := NewPRNGService(7)
	_, ok := rng.ChooseWeighted(nil)
	assert.False(t, ok)

	only := []WeightedKind{{Kind: defs.KindWall, Weight: 0}, {Kind: defs.KindScout, Weight: 3}}
	for i := 0; i < 10; i++ {
		k, ok := rng.ChooseWeighted(only)
		assert.True(t, ok)
		assert.Equal(t, defs.KindScout, k)
	}
}
