package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"codeberg.org/mutker/smuscan/internal/logger"
	"codeberg.org/mutker/smuscan/internal/monitor"
	"codeberg.org/mutker/smuscan/internal/pid"
	"codeberg.org/mutker/smuscan/internal/tui"
	"github.com/spf13/cobra"
)

var (
	monitorInterval time.Duration
	monitorTUI      bool
)

var monitorCmd = &cobra.Command{
	Use:   "monitor OFFSET...",
	Short: "Continuously watch chosen offsets",
	Long: `Poll the PM table and print the decoded value at each given offset
until interrupted. Offsets are hex (0x10C) or decimal, 4-byte aligned.
With --tui, render a live dashboard instead of one line per tick.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		offsets, err := parseOffsets(args)
		if err != nil {
			return err
		}

		reader, err := openReader()
		if err != nil {
			return err
		}

		interval := monitorInterval
		if interval <= 0 {
			interval = cfg.Interval
		}

		if err := pid.Write(); err != nil {
			return err
		}
		defer func() {
			if err := pid.Remove(); err != nil {
				logger.Warn().Err(err).Msg("failed to remove pid file")
			}
		}()

		if monitorTUI {
			return tui.Run(reader, offsets, interval)
		}

		svc, err := monitor.NewService(monitor.Config{
			Offsets:  offsets,
			Interval: interval,
		}, reader.Table)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go handleSignals(cancel)

		fmt.Printf("Monitoring %d offsets every %s (Ctrl+C to stop)\n\n", len(offsets), interval)

		return svc.Run(ctx, printTick)
	},
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

func printTick(tick monitor.Tick) {
	pairs := make([]string, 0, len(tick.Values))
	for _, f := range tick.Values {
		pairs = append(pairs, fmt.Sprintf("0x%04X:%10.4f", f.Offset, f.Value))
	}
	fmt.Printf("[%s] %s\n", tick.Time.Format("15:04:05"), strings.Join(pairs, " | "))
}

func init() {
	monitorCmd.Flags().DurationVar(&monitorInterval, "interval", 0, "poll interval (default from config)")
	monitorCmd.Flags().BoolVar(&monitorTUI, "tui", false, "render a live dashboard")
	rootCmd.AddCommand(monitorCmd)
}
