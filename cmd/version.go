package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const Version = "1.0.0"

func PrintVersion(w io.Writer) {
	fmt.Fprintln(w, "G2 Twist Engine - CLI - v"+Version)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the version",
	// skips config loading
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		PrintVersion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
