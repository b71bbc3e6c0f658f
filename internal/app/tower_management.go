// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"go-termite/internal/component"
	"go-termite/internal/event"
	"go-termite/internal/interfaces"
	"go-termite/internal/system"
	"go-termite/internal/types"
	"go-termite/pkg/arena"
)

var (
	// ErrInvalidDeployment covers illegal cells and unaffordable units.
	ErrInvalidDeployment = errors.New("invalid deployment")
	// ErrInvalidUpgrade covers foreign, missing, already upgraded and unaffordable structures.
	ErrInvalidUpgrade = errors.New("invalid upgrade")
	// ErrInvalidRemoval covers cells that do not hold one of the player's structures.
	ErrInvalidRemoval = errors.New("invalid removal")
)

// Deploy applies side's requests in order. Rejected requests are skipped and
// reported; the rest still go through.
func (g *Game) Deploy(side types.Side, requests []interfaces.Deployment) []error {
	var errs []error
	for _, d := range requests {
		if _, err := g.DeployUnit(side, d); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// DeployUnit validates and places one unit.
func (g *Game) DeployUnit(side types.Side, d interfaces.Deployment) (*component.Unit, error) {
	u, err := g.placeUnit(side, d)
	if err != nil {
		g.logger.Warn("deployment rejected",
			zap.String("side", side.String()),
			zap.String("kind", d.Kind.String()),
			zap.String("at", d.At.String()),
			zap.Error(err))
		g.dispatch(event.DeploymentRejected, event.Rejection{Side: side, Kind: d.Kind, At: d.At, Reason: err.Error()})
		return nil, err
	}
	g.dispatch(event.UnitDeployed, system.Info(u))
	return u, nil
}

func (g *Game) placeUnit(side types.Side, d interfaces.Deployment) (*component.Unit, error) {
	if err := side.Validate(); err != nil {
		return nil, err
	}
	def, err := g.lib.Get(d.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDeployment, err)
	}
	if !arena.InArena(d.At) {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrInvalidDeployment, d.Kind, d.At, arena.ErrOutOfArena)
	}

	mobile := def.IsMobile()
	if mobile {
		if !arena.IsSpawnCell(side, d.At) {
			return nil, fmt.Errorf("%w: %s must start on a %s edge, got %s", ErrInvalidDeployment, d.Kind, side, d.At)
		}
		if g.board.Blocked(d.At) {
			return nil, fmt.Errorf("%w: %s %s: %w", ErrInvalidDeployment, d.Kind, d.At, arena.ErrOccupied)
		}
	} else {
		if !arena.InHalf(side, d.At) {
			return nil, fmt.Errorf("%w: %s %s is outside the %s half", ErrInvalidDeployment, d.Kind, d.At, side)
		}
		if !g.board.OccupantAt(d.At).Empty() {
			return nil, fmt.Errorf("%w: %s %s: %w", ErrInvalidDeployment, d.Kind, d.At, arena.ErrOccupied)
		}
	}

	player := g.Player(side)
	if !player.CanAfford(mobile, def.Cost) {
		return nil, fmt.Errorf("%w: cannot afford %s (cost %.1f)", ErrInvalidDeployment, d.Kind, def.Cost)
	}

	u, err := component.NewUnit(g.reg.NewID(), def, side, d.At, g.reg.Frame)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDeployment, err)
	}
	if mobile {
		err = g.board.PlaceMobile(u.ID, d.At)
	} else {
		err = g.board.PlaceStructure(u.ID, d.At)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDeployment, err)
	}
	g.reg.Add(u)
	player.Spend(mobile, def.Cost)
	return u, nil
}

// Upgrade applies side's upgrade requests in order.
func (g *Game) Upgrade(side types.Side, cells []arena.Point) []error {
	var errs []error
	for _, p := range cells {
		if err := g.UpgradeAt(side, p); err != nil {
			g.logger.Warn("upgrade rejected",
				zap.String("side", side.String()),
				zap.String("at", p.String()),
				zap.Error(err))
			g.dispatch(event.UpgradeRejected, event.Rejection{Side: side, At: p, Reason: err.Error()})
			errs = append(errs, err)
		}
	}
	return errs
}

// UpgradeAt upgrades the structure side owns at p.
func (g *Game) UpgradeAt(side types.Side, p arena.Point) error {
	u, err := g.ownedStructure(side, p)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUpgrade, err)
	}
	if u.Structure.Upgraded || u.Structure.Upgrade == nil {
		return fmt.Errorf("%w: %s at %s cannot be upgraded", ErrInvalidUpgrade, u.Kind, p)
	}
	player := g.Player(side)
	if !player.CanAfford(false, u.Structure.UpgradeCost) {
		return fmt.Errorf("%w: cannot afford upgrade of %s (cost %.1f)", ErrInvalidUpgrade, u.Kind, u.Structure.UpgradeCost)
	}
	if err := u.Upgrade(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUpgrade, err)
	}
	player.Spend(false, u.Structure.UpgradeCost)
	g.dispatch(event.UnitUpgraded, system.Info(u))
	return nil
}

// Remove marks side's structures at cells for removal after the action phase.
func (g *Game) Remove(side types.Side, cells []arena.Point) []error {
	var errs []error
	for _, p := range cells {
		u, err := g.ownedStructure(side, p)
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrInvalidRemoval, err)
			g.logger.Warn("removal rejected", zap.String("side", side.String()), zap.String("at", p.String()), zap.Error(err))
			g.dispatch(event.RemovalRejected, event.Rejection{Side: side, At: p, Reason: err.Error()})
			errs = append(errs, err)
			continue
		}
		u.Structure.MarkedForRemoval = true
	}
	return errs
}

func (g *Game) ownedStructure(side types.Side, p arena.Point) (*component.Unit, error) {
	occ := g.board.OccupantAt(p)
	if !occ.HasStructure() {
		return nil, fmt.Errorf("no structure at %s", p)
	}
	u, ok := g.reg.Get(occ.Structure)
	if !ok || u.Structure == nil {
		return nil, fmt.Errorf("no structure at %s", p)
	}
	if u.Side != side {
		return nil, fmt.Errorf("structure at %s belongs to %s", p, u.Side)
	}
	return u, nil
}
