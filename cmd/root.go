package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"source.quilibrium.com/quilibrium/g2engine/config"
	"source.quilibrium.com/quilibrium/g2engine/pkg/crypto"
)

var configDirectory string
var curveOverride string
var debug bool

var EngineConfig *config.Config
var Logger *zap.Logger
var Hasher *crypto.TwistG2Hasher

var rootCmd = &cobra.Command{
	Use:           "g2",
	Short:         "G2 arithmetic on pairing-friendly twist curves",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		EngineConfig, err = config.LoadConfig(configDirectory)
		if err != nil {
			return errors.Wrap(err, "invalid config directory "+configDirectory)
		}

		if curveOverride != "" {
			EngineConfig.Engine.Curve = curveOverride
		}

		Logger, err = newLogger(EngineConfig.LogFile)
		if err != nil {
			return errors.Wrap(err, "logger")
		}

		Hasher, err = crypto.NewTwistG2HasherFromConfig(Logger, EngineConfig.Engine)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if Logger != nil {
			_ = Logger.Sync()
		}
	},
}

func newLogger(logFile string) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if debug {
		zc = zap.NewDevelopmentConfig()
	}
	if logFile != "" {
		zc.OutputPaths = []string{logFile}
		zc.ErrorOutputPaths = []string{logFile}
	}
	return zc.Build()
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&configDirectory,
		"config",
		".config/",
		"config directory (default is .config/)",
	)
	rootCmd.PersistentFlags().StringVar(
		&curveOverride,
		"curve",
		"",
		"curve to use instead of the configured one",
	)
	rootCmd.PersistentFlags().BoolVar(
		&debug,
		"debug",
		false,
		"development logging at debug level",
	)
}
