// internal/tournament/tournament.go
package tournament

import (
	"context"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"go-termite/internal/app"
	"go-termite/internal/component"
	"go-termite/internal/config"
	"go-termite/internal/defs"
	"go-termite/internal/interfaces"
	"go-termite/internal/types"
)

// StrategyFactory builds a fresh strategy for one match. Strategies hold
// state, so matches never share an instance.
type StrategyFactory func() (interfaces.Strategy, error)

// Match pairs two players.
type Match struct {
	Name   string
	Bottom StrategyFactory
	Top    StrategyFactory
}

// Result is the summary of one finished match.
type Result struct {
	ID           uuid.UUID
	Name         string
	Outcome      component.Outcome
	Turns        int
	Frames       int
	BottomHealth int
	TopHealth    int
}

// Runner plays independent matches in parallel. Each game stays
// single-threaded; only whole matches run concurrently.
type Runner struct {
	cfg     *config.Config
	lib     *defs.Library
	workers int
	logger  *zap.Logger
}

// NewRunner creates a runner. workers <= 0 means one per CPU.
func NewRunner(cfg *config.Config, lib *defs.Library, workers int, logger *zap.Logger) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{cfg: cfg, lib: lib, workers: workers, logger: logger}
}

// Run plays every match and returns the results in match order. The first
// failure cancels the matches still running.
func (r *Runner) Run(ctx context.Context, matches []Match) ([]Result, error) {
	results := make([]Result, len(matches))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)

	for i, m := range matches {
		eg.Go(func() error {
			res, err := r.play(egCtx, m)
			if err != nil {
				return fmt.Errorf("match %d (%s): %w", i, m.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) play(ctx context.Context, m Match) (Result, error) {
	bottom, err := m.Bottom()
	if err != nil {
		return Result{}, fmt.Errorf("bottom strategy: %w", err)
	}
	top, err := m.Top()
	if err != nil {
		return Result{}, fmt.Errorf("top strategy: %w", err)
	}

	id := uuid.New()
	logger := r.logger.With(zap.String("match", id.String()), zap.String("name", m.Name))
	g, err := app.NewGame(r.cfg, r.lib, bottom, top, app.WithLogger(logger))
	if err != nil {
		return Result{}, err
	}
	outcome, err := g.Run(ctx)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		ID:           id,
		Name:         m.Name,
		Outcome:      outcome,
		Turns:        g.Turn(),
		Frames:       g.Frame(),
		BottomHealth: g.Player(types.SideBottom).Health,
		TopHealth:    g.Player(types.SideTop).Health,
	}
	logger.Info("match finished", zap.String("winner", outcome.String()), zap.Int("turns", res.Turns))
	return res, nil
}

// Tally counts outcomes.
func Tally(results []Result) map[component.Outcome]int {
	out := make(map[component.Outcome]int)
	for _, r := range results {
		out[r.Outcome]++
	}
	return out
}
