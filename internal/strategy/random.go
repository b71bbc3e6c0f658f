// internal/strategy/random.go
package strategy

import (
	"go-termite/internal/component"
	"go-termite/internal/defs"
	"go-termite/internal/interfaces"
	"go-termite/internal/utils"
	"go-termite/pkg/arena"
)

// maxPicks bounds the placements a random player tries per turn.
const maxPicks = 12

var defaultWeights = []utils.WeightedKind{
	{Kind: defs.KindScout, Weight: 4},
	{Kind: defs.KindDemolisher, Weight: 2},
	{Kind: defs.KindInterceptor, Weight: 2},
	{Kind: defs.KindWall, Weight: 4},
	{Kind: defs.KindSupport, Weight: 1},
	{Kind: defs.KindTurret, Weight: 3},
}

// Random spends its budget on weighted random picks at random legal cells.
// A given seed always plays the same game.
type Random struct {
	lib         *defs.Library
	rng         *utils.PRNGService
	weights     []utils.WeightedKind
	upgradeRate float64
}

func NewRandom(lib *defs.Library, seed int64) *Random {
	return &Random{
		lib:         lib,
		rng:         utils.NewPRNGService(seed),
		weights:     defaultWeights,
		upgradeRate: 0.25,
	}
}

func (r *Random) Deploy(view *component.GameStateView) []interfaces.Deployment {
	me := view.Me()
	mp, sp := me.MobilePoints, me.StructurePoints
	taken := make(map[arena.Point]bool)

	var out []interfaces.Deployment
	for i := 0; i < maxPicks; i++ {
		kind, ok := r.rng.ChooseWeighted(r.weights)
		if !ok {
			break
		}
		def, err := r.lib.Get(kind)
		if err != nil {
			continue
		}

		var at arena.Point
		if def.IsMobile() {
			if mp < def.Cost {
				continue
			}
			edge := arena.SpawnEdges(view.Self)[r.rng.Intn(2)]
			cells := edge.Cells()
			at = cells[r.rng.Intn(len(cells))]
			if view.Board.Blocked(at) {
				continue
			}
			mp -= def.Cost
		} else {
			if sp < def.Cost {
				continue
			}
			at, ok = r.freeCell(view, taken)
			if !ok {
				continue
			}
			taken[at] = true
			sp -= def.Cost
		}
		out = append(out, interfaces.Deployment{Kind: kind, At: at})
	}
	return out
}

// freeCell picks uniformly among the empty cells of the player's half.
func (r *Random) freeCell(view *component.GameStateView, taken map[arena.Point]bool) (arena.Point, bool) {
	var free []arena.Point
	for _, p := range arena.Cells() {
		if arena.InHalf(view.Self, p) && !taken[p] && view.Board.OccupantAt(p).Empty() {
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return arena.Point{}, false
	}
	return free[r.rng.Intn(len(free))], true
}

func (r *Random) Upgrade(view *component.GameStateView) []arena.Point {
	var out []arena.Point
	for _, u := range view.Owned(true) {
		def, err := r.lib.Get(u.Kind)
		if err != nil || !def.Upgradable() || u.Structure.Upgraded {
			continue
		}
		if r.rng.Float64() < r.upgradeRate {
			out = append(out, u.Position)
		}
	}
	return out
}
