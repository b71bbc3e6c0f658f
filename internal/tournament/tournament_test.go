package tournament

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"go-termite/internal/component"
	"go-termite/internal/config"
	"go-termite/internal/defs"
	"go-termite/internal/interfaces"
	"go-termite/internal/strategy"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func idle() (interfaces.Strategy, error) { return strategy.Idle{}, nil }

func random(lib *defs.Library, seed int64) StrategyFactory {
	return func() (interfaces.Strategy, error) { return strategy.NewRandom(lib, seed), nil }
}

func shortConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Rules.MaxTurns = 8
	return cfg
}

func TestRunnerKeepsMatchOrder(t *testing.T) {
	lib := defs.Default()
	var matches []Match
	for i := 0; i < 6; i++ {
		matches = append(matches, Match{
			Name:   fmt.Sprintf("m%d", i),
			Bottom: random(lib, int64(i+1)),
			Top:    random(lib, int64(i+100)),
		})
	}

	results, err := NewRunner(shortConfig(), lib, 3, nil).Run(context.Background(), matches)
	require.NoError(t, err)
	require.Len(t, results, len(matches))
	for i, r := range results {
		assert.Equal(t, fmt.Sprintf("m%d", i), r.Name)
		assert.NotEqual(t, component.OutcomeNone, r.Outcome)
		assert.NotZero(t, r.ID)
	}

	// Serial and parallel runs agree on every outcome.
	serial, err := NewRunner(shortConfig(), lib, 1, nil).Run(context.Background(), matches)
	require.NoError(t, err)
	for i := range results {
		assert.Equal(t, serial[i].Outcome, results[i].Outcome)
		assert.Equal(t, serial[i].Frames, results[i].Frames)
	}
}

func TestRunnerStopsOnFactoryError(t *testing.T) {
	boom := errors.New("boom")
	matches := []Match{
		{Name: "ok", Bottom: idle, Top: idle},
		{Name: "bad", Bottom: idle, Top: func() (interfaces.Strategy, error) { return nil, boom }},
	}
	_, err := NewRunner(shortConfig(), nil, 2, nil).Run(context.Background(), matches)
	assert.ErrorIs(t, err, boom)
}

func TestRunnerHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRunner(shortConfig(), nil, 2, nil).Run(ctx, []Match{{Name: "x", Bottom: idle, Top: idle}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTally(t *testing.T) {
	got := Tally([]Result{{Outcome: component.Draw}, {Outcome: component.BottomWins}, {Outcome: component.Draw}})
	assert.Equal(t, 2, got[component.Draw])
	assert.Equal(t, 1, got[component.BottomWins])
}
