package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var mulCmd = &cobra.Command{
	Use:   "mul <point hex> <scalar hex>",
	Short: "Multiplies an encoded G2 point by a big-endian scalar",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		point, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
		if err != nil {
			return errors.Wrap(err, "point")
		}
		scalar, err := hex.DecodeString(strings.TrimPrefix(args[1], "0x"))
		if err != nil {
			return errors.Wrap(err, "scalar")
		}

		out, err := Hasher.Mul(point, scalar)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mulCmd)
}
