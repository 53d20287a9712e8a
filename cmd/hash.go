package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

var encodeOnly bool

var hashCmd = &cobra.Command{
	Use:   "hash <message>",
	Short: "Hashes a message to G2 with the configured expander and tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash := Hasher.HashToG2
		if encodeOnly {
			hash = Hasher.EncodeToG2
		}
		out, err := hash([]byte(args[0]))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
		return nil
	},
}

var mapitCmd = &cobra.Command{
	Use:   "mapit <message>",
	Short: "Maps the SHA3-256 digest of a message to G2 with the legacy map",
	Long: "Maps the SHA3-256 digest of a message to G2 with the legacy try-and-increment map.\n" +
		"The running time depends on the message, so never use it on secrets.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := Hasher.MapToG2([]byte(args[0]))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
		return nil
	},
}

func init() {
	hashCmd.Flags().BoolVar(
		&encodeOnly,
		"encode",
		false,
		"use the single element, non-uniform encoding",
	)
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(mapitCmd)
}
