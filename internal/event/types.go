// internal/event/types.go
package event

import (
	"go-termite/internal/defs"
	"go-termite/internal/types"
	"go-termite/pkg/arena"
)

const (
	UnitDeployed       EventType = "UnitDeployed"       // юнит выставлен
	DeploymentRejected EventType = "DeploymentRejected" // выставление отклонено
	UnitUpgraded       EventType = "UnitUpgraded"
	UpgradeRejected    EventType = "UpgradeRejected"
	ShieldGranted      EventType = "ShieldGranted"
	UnitMoved          EventType = "UnitMoved"
	UnitAttacked       EventType = "UnitAttacked"
	UnitDestroyed      EventType = "UnitDestroyed"
	UnitSelfDestructed EventType = "UnitSelfDestructed"
	EdgeBreached       EventType = "EdgeBreached"
	StructureRefunded  EventType = "StructureRefunded"
	RemovalRejected    EventType = "RemovalRejected"
	FrameCapReached    EventType = "FrameCapReached"
	TurnEnded          EventType = "TurnEnded"
	GameOver           EventType = "GameOver"
)

// UnitInfo identifies the unit an event is about.
type UnitInfo struct {
	ID   types.UnitID
	Kind defs.Kind
	Side types.Side
	At   arena.Point
}

type Rejection struct {
	Side   types.Side
	Kind   defs.Kind
	At     arena.Point
	Reason string
}

type Shield struct {
	Support UnitInfo
	Target  UnitInfo
	Amount  float64
}

type Move struct {
	Unit UnitInfo
	From arena.Point
}

type Attack struct {
	Attacker UnitInfo
	Target   UnitInfo
	Damage   float64
}

type Destroyed struct {
	Unit UnitInfo
}

type SelfDestruct struct {
	Unit   UnitInfo
	Splash bool
	Damage float64
}

type Breach struct {
	Unit   UnitInfo
	Damage int
}

type Refund struct {
	Unit   UnitInfo
	Amount float64
}

type TurnSummary struct {
	Frames       int
	BottomHealth int
	TopHealth    int
}

type Outcome struct {
	Winner string
	Turns  int
}
