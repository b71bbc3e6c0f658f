// internal/component/tower.go
package component

import (
	"errors"

	"go-termite/internal/defs"
	"go-termite/internal/utils"
)

// ErrAlreadyUpgraded is returned by a second upgrade of the same structure.
var ErrAlreadyUpgraded = errors.New("structure already upgraded")

// ErrNotUpgradable is returned for mobile units and kinds without an upgrade row.
var ErrNotUpgradable = errors.New("unit cannot be upgraded")

// StructureState — состояние постройки.
type StructureState struct {
	UpgradeCost      float64
	Upgrade          *defs.UpgradeDef
	Upgraded         bool
	LethalHitHealth  float64 // health right before the hit that destroyed it
	MarkedForRemoval bool    // owner asked for removal this turn
}

// Upgrade applies the one-shot stat overwrite. Health keeps its fraction of the
// maximum when the maximum changes.
func (u *Unit) Upgrade() error {
	s := u.Structure
	if s == nil || s.Upgrade == nil {
		return ErrNotUpgradable
	}
	if s.Upgraded {
		return ErrAlreadyUpgraded
	}
	s.Upgraded = true

	up := s.Upgrade
	if up.Range != nil {
		u.Range = *up.Range
	}
	if up.Damage != nil {
		u.Damage = *up.Damage
		if u.Damage > 0 {
			u.Traits |= defs.TraitAttacker
		}
	}
	if up.Shield != nil && u.Shield != nil {
		u.Shield.Amount = *up.Shield
	}
	if up.Health != nil && *up.Health != u.MaxHealth {
		fraction := u.HealthFraction()
		u.MaxHealth = *up.Health
		u.Health = utils.RoundTo(u.MaxHealth*fraction, 0)
	}
	return nil
}
