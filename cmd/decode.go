package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <point hex>",
	Short: "Decodes a G2 point and prints its affine coordinates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
		if err != nil {
			return errors.Wrap(err, "point")
		}
		P, err := Hasher.Decode(b)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), P.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
