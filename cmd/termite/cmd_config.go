// cmd/termite/cmd_config.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newConfigCmd(c *cli) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "config [path]",
		Short: "Write the effective configuration as YAML",
		Long: `Write the configuration in use (defaults, the --config file and TERMITE_*
overrides) to path, or to the --config file when no path is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := c.cfg.Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
