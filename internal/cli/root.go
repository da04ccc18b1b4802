// Package cli holds the builderhub command tree.
package cli

import (
	"fmt"

	"builderhub-payments/config"
	"builderhub-payments/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "builderhub",
	Short: "BuilderHub payments service",
	Long: `BuilderHub payments: artisan wallet ledger, contract payments with
escrow, and mobile-money dispatch to Orange Money, Moov Money, Wave and
Telecel Money. Configuration is read from config.yaml and BHP_* environment
variables.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default ./config.yaml or ./config/config.yaml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}
	return cfg, logger.New(cfg.Log.Level, cfg.Log.Pretty), nil
}
