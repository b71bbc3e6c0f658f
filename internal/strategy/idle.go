// internal/strategy/idle.go
package strategy

import (
	"go-termite/internal/component"
	"go-termite/internal/interfaces"
	"go-termite/pkg/arena"
)

// Idle never deploys or upgrades anything.
type Idle struct{}

func (Idle) Deploy(*component.GameStateView) []interfaces.Deployment { return nil }

func (Idle) Upgrade(*component.GameStateView) []arena.Point { return nil }
