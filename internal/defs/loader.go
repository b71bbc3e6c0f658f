// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed units.yaml
var defaultUnits []byte

// Library holds exactly one definition per kind, indexed by Kind.
type Library struct {
	defs [kindCount]Definition
}

type libraryFile struct {
	Units []Definition `yaml:"units"`
}

// Default returns the built-in unit table.
func Default() *Library {
	lib, err := ParseLibrary(defaultUnits)
	if err != nil {
		panic(fmt.Sprintf("embedded unit table is invalid: %v", err))
	}
	return lib
}

// LoadLibrary reads a unit table from a YAML file.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read unit definitions file: %w", err)
	}
	lib, err := ParseLibrary(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// ParseLibrary decodes and validates a unit table.
func ParseLibrary(data []byte) (*Library, error) {
	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal unit definitions: %w", err)
	}

	lib := &Library{}
	var seen [kindCount]bool
	for _, def := range file.Units {
		if seen[def.Kind] {
			return nil, fmt.Errorf("duplicate definition for %s", def.Kind)
		}
		if err := validate(def); err != nil {
			return nil, err
		}
		seen[def.Kind] = true
		lib.defs[def.Kind] = def
	}
	for _, k := range Kinds() {
		if !seen[k] {
			return nil, fmt.Errorf("missing definition for %s", k)
		}
	}
	return lib, nil
}

func validate(def Definition) error {
	switch def.Class {
	case ClassMobile:
		if def.Speed <= 0 {
			return fmt.Errorf("%s: mobile units need a positive speed", def.Kind)
		}
		if def.Upgrade != nil {
			return fmt.Errorf("%s: mobile units cannot be upgraded", def.Kind)
		}
	case ClassStructure:
	default:
		return fmt.Errorf("%s: unknown class %q", def.Kind, def.Class)
	}
	if def.Cost <= 0 || def.Health <= 0 {
		return fmt.Errorf("%s: cost and health must be positive", def.Kind)
	}
	if def.Range < 0 || def.Damage < 0 || def.Shield < 0 {
		return fmt.Errorf("%s: negative stat", def.Kind)
	}
	return nil
}

// Get returns the definition for kind.
func (l *Library) Get(kind Kind) (Definition, error) {
	if kind < 0 || kind >= kindCount {
		return Definition{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	return l.defs[kind], nil
}

// All returns the table in kind order.
func (l *Library) All() []Definition {
	out := make([]Definition, kindCount)
	copy(out, l.defs[:])
	return out
}

// Marshal renders the table back to YAML.
func (l *Library) Marshal() ([]byte, error) {
	return yaml.Marshal(libraryFile{Units: l.All()})
}
