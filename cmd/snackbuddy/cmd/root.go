// Package cmd implements the snackbuddy CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/snackbuddy/deal-tracker/internal/config"
	"github.com/snackbuddy/deal-tracker/pkg/logger"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "snackbuddy",
		Short: "Build the SnackBuddy daily deals page",
		Long: "snackbuddy turns a raw per-SKU price-tracking table into the\n" +
			"deduplicated, classified deal feed and static page the deals\n" +
			"site is built from.",
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "snackbuddy.yaml", "config file path")
	rootCmd.PersistentFlags().
		String("input", "", "input CSV path (overrides config)")
	rootCmd.PersistentFlags().
		String("log-level", "", "log level (debug, info, warn, error)")

	cobra.CheckErr(viper.BindPFlag("input", rootCmd.PersistentFlags().Lookup("input")))
	cobra.CheckErr(viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")))

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(versionCmd())
}

func initConfig() {
	viper.SetEnvPrefix("SNACKBUDDY")
	viper.AutomaticEnv()
}

// loadConfig loads the YAML config and applies flag/env overrides.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if in := viper.GetString("input"); in != "" {
		cfg.Paths.InputCSV = in
	}
	if lvl := viper.GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}

	return cfg, logger.New(cfg.Logging.Level, cfg.Logging.Format), nil
}
