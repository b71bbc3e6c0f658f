// internal/app/game.go
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"go-termite/internal/component"
	"go-termite/internal/config"
	"go-termite/internal/defs"
	"go-termite/internal/entity"
	"go-termite/internal/event"
	"go-termite/internal/interfaces"
	"go-termite/internal/state"
	"go-termite/internal/system"
	"go-termite/internal/types"
	"go-termite/pkg/arena"
)

// ErrGameOver is returned by PlayTurn once the game has ended.
var ErrGameOver = errors.New("game is over")

// Game holds the state of one match and drives its turns.
type Game struct {
	Rules config.RulesConfig

	lib        *defs.Library
	board      *arena.Board
	reg        *entity.Registry
	players    [2]*component.Player
	strategies [2]interfaces.Strategy

	EventDispatcher *event.Dispatcher
	logger          *zap.Logger
	machine         *state.StateMachine

	ShieldSystem      *system.ShieldSystem
	MovementSystem    *system.MovementSystem
	CombatSystem      *system.CombatSystem
	DestructionSystem *system.DestructionSystem
	StateSystem       *system.StateSystem

	listeners      []event.Listener
	lastTurnFrames int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithListener subscribes l to every engine event.
func WithListener(l event.Listener) Option {
	return func(g *Game) {
		g.listeners = append(g.listeners, l)
	}
}

// NewGame wires a match between two strategies. A nil lib uses the built-in table.
func NewGame(cfg *config.Config, lib *defs.Library, bottom, top interfaces.Strategy, opts ...Option) (*Game, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if lib == nil {
		lib = defs.Default()
	}
	if bottom == nil || top == nil {
		return nil, errors.New("both strategies are required")
	}

	reg := entity.NewRegistry()
	board := arena.NewBoard()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Rules:           cfg.Rules,
		lib:             lib,
		board:           board,
		reg:             reg,
		strategies:      [2]interfaces.Strategy{bottom, top},
		EventDispatcher: eventDispatcher,
		logger:          zap.NewNop(),
		machine:         state.NewStateMachine(),
	}
	for _, side := range types.Sides {
		g.players[side.Index()] = &component.Player{
			Side:            side,
			Health:          cfg.Rules.StartingHealth,
			StructurePoints: cfg.Rules.StartingStructurePoints,
			MobilePoints:    cfg.Rules.StartingMobilePoints,
		}
	}
	for _, opt := range opts {
		opt(g)
	}
	for _, l := range g.listeners {
		eventDispatcher.SubscribeAll(l)
	}

	splash := system.NewAreaAttackSystem(reg, eventDispatcher, cfg.Rules.SelfDestructRadius, cfg.Rules.SelfDestructMinDistance)
	g.ShieldSystem = system.NewShieldSystem(reg, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(reg, board, eventDispatcher, g.logger)
	g.CombatSystem = system.NewCombatSystem(reg, eventDispatcher)
	g.DestructionSystem = system.NewDestructionSystem(reg, board, eventDispatcher, g.Player,
		splash, cfg.Rules.RefundFraction, cfg.Rules.BreachDamage)
	g.StateSystem = system.NewStateSystem(reg, g.Player, eventDispatcher, cfg.Rules.MaxTurns)

	return g, nil
}

// Player returns the live record of side.
func (g *Game) Player(side types.Side) *component.Player {
	return g.players[side.Index()]
}

// Turn returns the number of completed turns.
func (g *Game) Turn() int { return g.reg.Turn }

// Frame returns the number of frames played since the start.
func (g *Game) Frame() int { return g.reg.Frame }

// Phase returns the phase the turn driver is in.
func (g *Game) Phase() component.Phase { return g.machine.Phase() }

// Board exposes the occupancy index.
func (g *Game) Board() *arena.Board { return g.board }

// Units returns the live units in creation order.
func (g *Game) Units() []*component.Unit { return g.reg.All() }

// Unit looks a live unit up by ID.
func (g *Game) Unit(id types.UnitID) (*component.Unit, bool) { return g.reg.Get(id) }

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool {
	return g.StateSystem.Outcome() != component.OutcomeNone
}

// Outcome returns the result, OutcomeNone while the game is running.
func (g *Game) Outcome() component.Outcome {
	return g.StateSystem.Outcome()
}

// Snapshot builds the deep-copied view side's strategy receives.
func (g *Game) Snapshot(side types.Side) *component.GameStateView {
	view := &component.GameStateView{
		Self:  side,
		Turn:  g.reg.Turn,
		Frame: g.reg.Frame,
		Board: g.board.Clone(),
	}
	for _, s := range types.Sides {
		view.Players[s.Index()] = *g.Player(s)
	}
	for _, u := range g.reg.All() {
		view.Units = append(view.Units, u.Clone())
	}
	return view
}

// PlayTurn runs one full turn: deploy, upgrade, action, removal, restore.
func (g *Game) PlayTurn() error {
	if g.IsOver() {
		return ErrGameOver
	}
	turn := g.reg.Turn
	g.logger.Debug("turn started", zap.Int("turn", turn), zap.Int("frame", g.reg.Frame))

	g.machine.SetState(state.Func{P: component.DeployPhase, Do: g.deployPhase})
	g.machine.SetState(state.Func{P: component.UpgradePhase, Do: g.upgradePhase})
	g.machine.SetState(state.Func{P: component.ActionPhase, Do: func() { g.lastTurnFrames = g.RunActionPhase() }})
	g.machine.SetState(state.Func{P: component.RemovalPhase, Do: g.removalPhase})
	g.machine.SetState(state.Func{P: component.RestorePhase, Do: g.restorePhase})

	g.reg.Turn++
	bottom, top := g.Player(types.SideBottom), g.Player(types.SideTop)
	g.dispatch(event.TurnEnded, event.TurnSummary{
		Frames:       g.lastTurnFrames,
		BottomHealth: bottom.Health,
		TopHealth:    top.Health,
	})

	if g.IsOver() {
		g.machine.SetState(state.Func{P: component.GameOverPhase})
		g.logger.Info("game over",
			zap.String("winner", g.Outcome().String()),
			zap.Int("turns", g.reg.Turn),
			zap.Int("bottom_health", bottom.Health),
			zap.Int("top_health", top.Health))
	}
	return nil
}

// Run plays turns until the game ends or ctx is cancelled. Cancellation is
// checked between turns.
func (g *Game) Run(ctx context.Context) (component.Outcome, error) {
	for !g.IsOver() {
		if err := ctx.Err(); err != nil {
			return component.OutcomeNone, err
		}
		if err := g.PlayTurn(); err != nil {
			return component.OutcomeNone, err
		}
	}
	return g.Outcome(), nil
}

// RunActionPhase plays frames until no mobile unit is left. It returns the
// number of frames played.
func (g *Game) RunActionPhase() int {
	frames := 0
	for g.reg.HasMobiles() {
		if frames >= g.Rules.MaxFramesPerTurn {
			g.logger.Warn("frame cap reached, clearing mobile units",
				zap.Int("turn", g.reg.Turn),
				zap.Int("frames", frames),
				zap.Int("mobiles", len(g.reg.Mobiles())))
			g.dispatch(event.FrameCapReached, nil)
			g.clearMobiles()
			break
		}
		g.ProcessFrame()
		frames++
	}
	return frames
}

// ProcessFrame runs one frame: shields, movement, attack reset, attacks,
// destruction.
func (g *Game) ProcessFrame() {
	g.ShieldSystem.Update()
	g.MovementSystem.Update()
	g.CombatSystem.ResetAttacks()
	g.CombatSystem.Update()
	g.DestructionSystem.Update()
	g.reg.Frame++
}

func (g *Game) clearMobiles() {
	var ids []types.UnitID
	for _, u := range g.reg.Mobiles() {
		ids = append(ids, u.ID)
	}
	g.reg.Remove(ids...)
	g.board.ClearMobileLayer()
}

func (g *Game) deployPhase() {
	// Both players decide on the same state.
	var views [2]*component.GameStateView
	for _, side := range types.Sides {
		views[side.Index()] = g.Snapshot(side)
	}
	for _, side := range types.Sides {
		requests := g.strategies[side.Index()].Deploy(views[side.Index()])
		g.Deploy(side, requests)
	}
}

func (g *Game) upgradePhase() {
	var requests [2][]arena.Point
	for _, side := range types.Sides {
		requests[side.Index()] = g.strategies[side.Index()].Upgrade(g.Snapshot(side))
	}
	for _, side := range types.Sides {
		g.Upgrade(side, requests[side.Index()])
	}
}

func (g *Game) removalPhase() {
	for _, side := range types.Sides {
		remover, ok := g.strategies[side.Index()].(interfaces.Remover)
		if !ok {
			continue
		}
		g.Remove(side, remover.Remove(g.Snapshot(side)))
	}
	g.DestructionSystem.RemoveMarked()
}

func (g *Game) restorePhase() {
	r := g.Rules
	mobileGain := r.MobilePointsPerTurn + float64(g.reg.Turn/r.MobileGrowthInterval)
	for _, side := range types.Sides {
		g.Player(side).Restore(r.MobilePointsDecay, r.StructurePointsPerTurn, mobileGain)
	}
}

func (g *Game) dispatch(t event.EventType, data interface{}) {
	g.EventDispatcher.Dispatch(event.Event{Type: t, Turn: g.reg.Turn, Frame: g.reg.Frame, Data: data})
}
