// internal/strategy/strategy.go
package strategy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go-termite/internal/defs"
	"go-termite/internal/interfaces"
)

// ErrUnknownStrategy is returned for a player description Parse cannot read.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Parse builds a strategy from a command-line description:
// "idle", "random" / "random:SEED", or a path to a YAML script.
func Parse(desc string, lib *defs.Library) (interfaces.Strategy, error) {
	name, arg, hasArg := strings.Cut(desc, ":")
	switch name {
	case "", "idle":
		return Idle{}, nil
	case "random":
		var seed int64 = 1
		if hasArg {
			n, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad seed in %q", ErrUnknownStrategy, desc)
			}
			seed = n
		}
		return NewRandom(lib, seed), nil
	}
	if strings.HasSuffix(desc, ".yaml") || strings.HasSuffix(desc, ".yml") {
		return LoadScript(desc)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, desc)
}
