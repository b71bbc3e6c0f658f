// internal/defs/units.go
package defs

// UpgradeDef lists the stats an upgrade overwrites. Nil fields are left alone.
type UpgradeDef struct {
	Health *float64 `yaml:"health,omitempty"`
	Range  *float64 `yaml:"range,omitempty"`
	Damage *float64 `yaml:"damage,omitempty"`
	Shield *float64 `yaml:"shield,omitempty"`
}

// Definition holds the static data for one unit kind.
type Definition struct {
	Kind           Kind        `yaml:"kind"`
	Class          Class       `yaml:"class"`
	Cost           float64     `yaml:"cost"`
	Health         float64     `yaml:"health"`
	Range          float64     `yaml:"range"`
	Damage         float64     `yaml:"damage"`
	Speed          int         `yaml:"speed,omitempty"`  // frames per tile, mobile only
	Shield         float64     `yaml:"shield,omitempty"` // shield granted per unit, supports only
	HitsStructures bool        `yaml:"hits_structures"`
	UpgradeCost    float64     `yaml:"upgrade_cost,omitempty"`
	Upgrade        *UpgradeDef `yaml:"upgrade,omitempty"`
}

// IsMobile reports whether the kind walks the board.
func (d Definition) IsMobile() bool {
	return d.Class == ClassMobile
}

// Traits derives the capability set from the table row.
func (d Definition) Traits() Trait {
	var t Trait
	if d.IsMobile() {
		t |= TraitMobile
	} else {
		t |= TraitStationary
	}
	if d.Damage > 0 {
		t |= TraitAttacker
	}
	if d.Shield > 0 {
		t |= TraitShielder
	}
	if d.HitsStructures {
		t |= TraitHitsStructures
	}
	return t
}

// Upgradable reports whether the definition has an upgrade path.
func (d Definition) Upgradable() bool {
	return !d.IsMobile() && d.Upgrade != nil
}
