// internal/system/targeting.go
package system

import (
	"go-termite/internal/component"
	"go-termite/internal/defs"
	"go-termite/internal/types"
	"go-termite/pkg/arena"
)

// Candidates returns the units attacker may shoot this frame: active enemies in
// range. Attackers that cannot damage structures only see mobile units.
func Candidates(attacker *component.Unit, units []*component.Unit) []*component.Unit {
	hitsStructures := attacker.Traits.Has(defs.TraitHitsStructures)
	var out []*component.Unit
	for _, u := range units {
		if u.Side == attacker.Side || !u.Active() {
			continue
		}
		if u.Mobile == nil && !hitsStructures {
			continue
		}
		if !attacker.Position.WithinRange(u.Position, attacker.Range) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// SelectTarget narrows the candidates in five passes: mobile units over
// structures, nearest, lowest health, furthest into the attacker's side,
// closest to a board edge. The most recently created survivor wins.
func SelectTarget(attacker *component.Unit, candidates []*component.Unit) *component.Unit {
	if len(candidates) == 0 {
		return nil
	}

	targets := keepMobiles(candidates)
	targets = keepMin(targets, func(u *component.Unit) float64 {
		return float64(attacker.Position.DistanceSq(u.Position))
	})
	targets = keepMin(targets, func(u *component.Unit) float64 { return u.Health })
	targets = keepMin(targets, func(u *component.Unit) float64 {
		return -float64(progress(attacker.Side, u.Position))
	})
	targets = keepMin(targets, func(u *component.Unit) float64 {
		return float64(u.Position.EdgeDistance())
	})

	best := targets[0]
	for _, u := range targets[1:] {
		if best.Before(u) {
			best = u
		}
	}
	return best
}

// progress measures how far p has pushed into side's half.
func progress(side types.Side, p arena.Point) int {
	if side == types.SideBottom {
		return arena.Size - 1 - p.Y
	}
	return p.Y
}

func keepMobiles(units []*component.Unit) []*component.Unit {
	var mobiles []*component.Unit
	for _, u := range units {
		if u.Mobile != nil {
			mobiles = append(mobiles, u)
		}
	}
	if len(mobiles) == 0 {
		return units
	}
	return mobiles
}

func keepMin(units []*component.Unit, key func(*component.Unit) float64) []*component.Unit {
	best := key(units[0])
	for _, u := range units[1:] {
		if k := key(u); k < best {
			best = k
		}
	}
	out := make([]*component.Unit, 0, len(units))
	for _, u := range units {
		if key(u) == best {
			out = append(out, u)
		}
	}
	return out
}
