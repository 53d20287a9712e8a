package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"source.quilibrium.com/quilibrium/g2engine/pkg/core/curves/native/twist"
)

var generatorCmd = &cobra.Command{
	Use:   "generator",
	Short: "Prints the encoded G2 generator of the configured curve",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := Hasher.Curve()
		compress := EngineConfig.Engine.Compressed
		out := make([]byte, c.SerializedSize(compress))
		if err := twist.ECP2_generator(c).ToBytes(out, compress); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generatorCmd)
}
