package main

import (
	"fmt"
	"os"

	"codeberg.org/mutker/smuscan/internal/config"
	"codeberg.org/mutker/smuscan/internal/logger"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "smuscan",
	Short: "Identify fields in the AMD SMU PM table",
	Long: `smuscan scans the raw PM table exported by the ryzen_smu kernel module
for byte offsets that plausibly hold temperatures, power draw, frequencies
and voltages. No public schema for the table exists; candidates are found
by value-range classification and per-core array pattern detection, then
confirmed by monitoring them under load.`,
	SilenceUsage: true,
}

func initApp(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		if err := os.Setenv("SMUSCAN_CONFIG", cfgFile); err != nil {
			return err
		}
	}

	var err error
	cfg, err = config.Load(rootCmd.PersistentFlags())
	if err != nil {
		return err
	}

	// An unknown log level falls back to info; the run continues.
	if err := logger.Init(cfg.LogLevel, logger.IsService()); err != nil {
		logger.Warn().Err(err).Msg("invalid log level, using info")
	}

	return nil
}

func init() {
	rootCmd.PersistentPreRunE = initApp
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default /etc/smuscan.toml)")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("path", config.DefaultPath, "ryzen_smu sysfs path")
}

// Execute runs the root command. Snapshot source failures are terminal
// for one-shot commands.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
