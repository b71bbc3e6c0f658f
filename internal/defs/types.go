// internal/defs/types.go
package defs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKind is returned for unit names that are not in the table.
var ErrUnknownKind = errors.New("unknown unit kind")

// Kind is the closed set of unit types.
type Kind int

const (
	KindScout Kind = iota
	KindDemolisher
	KindInterceptor
	KindWall
	KindSupport
	KindTurret

	kindCount
)

var kindNames = [kindCount]string{"scout", "demolisher", "interceptor", "wall", "support", "turret"}

// Kinds lists every kind in table order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a table name onto its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseKind(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = parsed
	return nil
}

// Class separates mobile units from structures.
type Class string

const (
	ClassMobile    Class = "mobile"
	ClassStructure Class = "structure"
)

// Trait is a capability bit. Behaviour is selected by traits, never by kind.
type Trait uint8

const (
	TraitMobile     Trait = 1 << iota // walks a path, has shields and speed
	TraitStationary                   // occupies a cell, blocks paths, can be upgraded
	TraitAttacker                     // deals damage each frame
	TraitShielder                     // grants shields to friendly mobile units
	TraitHitsStructures               // may target and damage structures
)

// Has reports whether every bit in want is set.
func (t Trait) Has(want Trait) bool {
	return t&want == want
}
