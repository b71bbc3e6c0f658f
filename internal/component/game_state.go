// internal/component/game_state.go
package component

import (
	"go-termite/internal/types"
	"go-termite/pkg/arena"
)

// Phase — текущая фаза хода.
type Phase int

const (
	DeployPhase Phase = iota
	UpgradePhase
	ActionPhase
	RemovalPhase
	RestorePhase
	GameOverPhase
)

var phaseNames = [...]string{"deploy", "upgrade", "action", "removal", "restore", "game_over"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// GameStateView is the read-only snapshot handed to strategies. It is a deep
// copy: changes made through it never reach the engine.
type GameStateView struct {
	Self    types.Side
	Turn    int
	Frame   int
	Players [2]Player
	Units   []*Unit // live units in creation order
	Board   *arena.Board
}

// Me returns the viewing player's record.
func (v *GameStateView) Me() Player { return v.Players[v.Self.Index()] }

// Enemy returns the opponent's record.
func (v *GameStateView) Enemy() Player { return v.Players[v.Self.Opponent().Index()] }

// UnitAt returns the structure at p, or the first mobile unit stacked there.
func (v *GameStateView) UnitAt(p arena.Point) *Unit {
	occ := v.Board.OccupantAt(p)
	var id types.UnitID
	switch {
	case occ.HasStructure():
		id = occ.Structure
	case occ.HasMobiles():
		id = occ.Mobiles[0]
	default:
		return nil
	}
	for _, u := range v.Units {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// Owned returns the viewer's units, optionally filtered to structures.
func (v *GameStateView) Owned(structuresOnly bool) []*Unit {
	var out []*Unit
	for _, u := range v.Units {
		if u.Side != v.Self {
			continue
		}
		if structuresOnly && u.Structure == nil {
			continue
		}
		out = append(out, u)
	}
	return out
}

// Outcome is the result of a finished game.
type Outcome int

const (
	OutcomeNone Outcome = iota
	BottomWins
	TopWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case BottomWins:
		return "bottom"
	case TopWins:
		return "top"
	case Draw:
		return "draw"
	default:
		return "none"
	}
}
