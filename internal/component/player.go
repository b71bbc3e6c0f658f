// internal/component/player.go
package component

import (
	"go-termite/internal/types"
	"go-termite/internal/utils"
)

// Player holds one side's health and resource pools.
type Player struct {
	Side            types.Side
	Health          int
	StructurePoints float64
	MobilePoints    float64
}

// CanAfford reports whether the matching pool covers cost.
func (p *Player) CanAfford(mobile bool, cost float64) bool {
	if mobile {
		return p.MobilePoints >= cost
	}
	return p.StructurePoints >= cost
}

// Spend deducts cost from the matching pool. Callers check CanAfford first.
func (p *Player) Spend(mobile bool, cost float64) {
	if mobile {
		p.MobilePoints = utils.Round1(p.MobilePoints - cost)
		return
	}
	p.StructurePoints = utils.Round1(p.StructurePoints - cost)
}

// Refund credits structure points.
func (p *Player) Refund(amount float64) {
	p.StructurePoints = utils.Round1(p.StructurePoints + amount)
}

// Restore decays mobile points, then grows both pools for the given turn.
func (p *Player) Restore(decay, structureGain, mobileGain float64) {
	p.MobilePoints = utils.Round1(p.MobilePoints * decay)
	p.StructurePoints = utils.Round1(p.StructurePoints + structureGain)
	p.MobilePoints = utils.Round1(p.MobilePoints + mobileGain)
}

// LoseHealth takes breach damage. Health does not go below zero.
func (p *Player) LoseHealth(amount int) {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
}
