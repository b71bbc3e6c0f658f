// internal/interfaces/game.go
package interfaces

import (
	"go-termite/internal/component"
	"go-termite/internal/defs"
	"go-termite/pkg/arena"
)

// Deployment is one requested placement.
type Deployment struct {
	Kind defs.Kind
	At   arena.Point
}

// Deployer decides what a player places at the start of a turn. Both players
// see the same pre-deployment state.
type Deployer interface {
	Deploy(view *component.GameStateView) []Deployment
}

// Upgrader picks the structures to upgrade after both deployments are applied.
type Upgrader interface {
	Upgrade(view *component.GameStateView) []arena.Point
}

// Remover is optional. Structures it names are removed, with a refund, after
// the action phase.
type Remover interface {
	Remove(view *component.GameStateView) []arena.Point
}

// Strategy is the full player callback contract.
type Strategy interface {
	Deployer
	Upgrader
}
