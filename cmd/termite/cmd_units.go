// cmd/termite/cmd_units.go
package main

import (
	"github.com/spf13/cobra"
)

func newUnitsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "Print the unit table in use as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := c.lib.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
