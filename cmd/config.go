package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"source.quilibrium.com/quilibrium/g2engine/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Performs a configuration operation",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Resets the configuration file to defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		EngineConfig = &config.Config{Engine: config.DefaultEngineConfig()}
		if err := config.SaveConfig(configDirectory, EngineConfig); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved default config to "+configDirectory)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := yaml.Marshal(EngineConfig)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
