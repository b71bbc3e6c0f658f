// cmd/termite/cmd_run.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-termite/internal/app"
	"go-termite/internal/event"
	"go-termite/internal/ledger"
	"go-termite/internal/strategy"
	"go-termite/internal/types"
)

func newRunCmd(c *cli) *cobra.Command {
	var (
		bottom, top string
		ledgerPath  string
		turns       int
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play one match",
		Long: `Play one match between two players. A player is "idle", "random[:SEED]"
or the path to a YAML script.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if turns > 0 {
				c.cfg.Rules.MaxTurns = turns
			}
			b, err := strategy.Parse(bottom, c.lib)
			if err != nil {
				return fmt.Errorf("bottom: %w", err)
			}
			t, err := strategy.Parse(top, c.lib)
			if err != nil {
				return fmt.Errorf("top: %w", err)
			}

			g, err := app.NewGame(c.cfg, c.lib, b, t,
				app.WithLogger(c.logger),
				app.WithListener(event.NewLogListener(c.logger)))
			if err != nil {
				return err
			}
			outcome, err := g.Run(cmd.Context())
			if err != nil {
				return err
			}

			bh, th := g.Player(types.SideBottom).Health, g.Player(types.SideTop).Health
			fmt.Fprintf(cmd.OutOrStdout(), "winner: %s after %d turns (%d frames), health %d / %d\n",
				outcome, g.Turn(), g.Frame(), bh, th)

			if ledgerPath == "" {
				return nil
			}
			l, err := ledger.Open(ledgerPath)
			if err != nil {
				return err
			}
			defer l.Close()
			id, err := l.Record(ledger.Entry{
				Name:         bottom + " vs " + top,
				Bottom:       bottom,
				Top:          top,
				Winner:       outcome.String(),
				Turns:        g.Turn(),
				Frames:       g.Frame(),
				BottomHealth: bh,
				TopHealth:    th,
			})
			if err != nil {
				return err
			}
			c.logger.Info("match recorded", zap.String("id", id), zap.String("ledger", ledgerPath))
			return nil
		},
	}
	cmd.Flags().StringVar(&bottom, "bottom", "idle", "Bottom player")
	cmd.Flags().StringVar(&top, "top", "idle", "Top player")
	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "Record the result in this SQLite file")
	cmd.Flags().IntVar(&turns, "turns", 0, "Override the turn limit")
	return cmd
}
