package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openmix/oscwire/internal/config"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "oscwire",
	Short: "Open Sound Control toolkit",
	Long: `oscwire - a toolkit for working with OSC traffic over UDP.

Provides commands for sending one-off messages and bundles, printing
incoming packets to stdout, and a live per-address traffic monitor.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves the effective config from the optional file and
// the command line. Flags win over the file.
func loadConfig(listenFlag string) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if listenFlag != "" {
		cfg.Listen = listenFlag
	}
	if verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// newLogger builds the process logger. Verbose drops the level to
// debug so the server's malformed-packet drops become visible.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
