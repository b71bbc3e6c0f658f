// cmd/termite/cmd_batch.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-termite/internal/component"
	"go-termite/internal/interfaces"
	"go-termite/internal/ledger"
	"go-termite/internal/strategy"
	"go-termite/internal/tournament"
)

func newBatchCmd(c *cli) *cobra.Command {
	var (
		bottom, top string
		games       int
		workers     int
		seed        int64
		ledgerPath  string
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Play many matches in parallel",
		Long: `Play --games matches. A "random" player without a seed gets a fresh seed
per match, counted up from --seed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if games <= 0 {
				return fmt.Errorf("--games must be positive, got %d", games)
			}
			// Ошибки в описаниях ловим до запуска.
			for _, desc := range []string{bottom, top} {
				if _, err := strategy.Parse(desc, c.lib); err != nil {
					return err
				}
			}

			matches := make([]tournament.Match, games)
			for i := range matches {
				matches[i] = tournament.Match{
					Name:   fmt.Sprintf("%s vs %s #%d", bottom, top, i+1),
					Bottom: c.factory(bottom, seed+int64(2*i)),
					Top:    c.factory(top, seed+int64(2*i+1)),
				}
			}

			results, err := tournament.NewRunner(c.cfg, c.lib, workers, c.logger).Run(cmd.Context(), matches)
			if err != nil {
				return err
			}

			var l *ledger.Ledger
			if ledgerPath != "" {
				if l, err = ledger.Open(ledgerPath); err != nil {
					return err
				}
				defer l.Close()
			}
			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintf(out, "%-28s %-6s turns=%-3d health=%d/%d\n",
					r.Name, r.Outcome, r.Turns, r.BottomHealth, r.TopHealth)
				if l == nil {
					continue
				}
				if _, err := l.Record(ledger.Entry{
					ID:           r.ID.String(),
					Name:         r.Name,
					Bottom:       bottom,
					Top:          top,
					Winner:       r.Outcome.String(),
					Turns:        r.Turns,
					Frames:       r.Frames,
					BottomHealth: r.BottomHealth,
					TopHealth:    r.TopHealth,
				}); err != nil {
					return err
				}
			}

			tally := tournament.Tally(results)
			fmt.Fprintf(out, "bottom %d, top %d, draw %d\n",
				tally[component.BottomWins], tally[component.TopWins], tally[component.Draw])
			return nil
		},
	}
	cmd.Flags().StringVar(&bottom, "bottom", "random", "Bottom player")
	cmd.Flags().StringVar(&top, "top", "random", "Top player")
	cmd.Flags().IntVarP(&games, "games", "n", 10, "Number of matches")
	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "Parallel matches (0 = one per CPU)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "First seed for unseeded random players")
	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "Record the results in this SQLite file")
	return cmd
}

func (c *cli) factory(desc string, seed int64) tournament.StrategyFactory {
	if desc == "random" {
		return func() (interfaces.Strategy, error) { return strategy.NewRandom(c.lib, seed), nil }
	}
	return func() (interfaces.Strategy, error) { return strategy.Parse(desc, c.lib) }
}
