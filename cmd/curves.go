package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"source.quilibrium.com/quilibrium/g2engine/pkg/core/curves/native/twist"
)

var curvesCmd = &cobra.Command{
	Use:   "curves",
	Short: "Lists the built-in curves",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range twist.CurveNames() {
			c, err := twist.CurveByName(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s\t%s\t%s-type\t%d bits\n",
				c.Name(),
				c.Family(),
				c.Twist(),
				c.Field().ModBits(),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(curvesCmd)
}
