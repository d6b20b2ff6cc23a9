package main

import (
	"fmt"

	"codeberg.org/mutker/smuscan/internal/pmtable"
	"github.com/spf13/cobra"
)

var arraysCmd = &cobra.Command{
	Use:   "arrays [quantity...]",
	Short: "Scan for per-core array candidates",
	Long: `Scan for windows of consecutive floats that look like per-core
arrays. Temperature and power use strict matching (every core in range,
bounded mean and spread); frequency tolerates a couple of idle-core
outliers. Overlapping windows at adjacent bases are expected noise and
are not deduplicated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader, err := openReader()
		if err != nil {
			return err
		}
		table, err := reader.Table()
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")

		cores := coresFlag
		if cores <= 0 {
			cores = resolveCores(reader)
		}
		names := args
		if len(names) == 0 {
			names = cfg.ArrayNames()
		}

		printHeader(reader, len(table))
		fmt.Printf("=== Searching for %d-element arrays ===\n\n", cores)

		for _, name := range names {
			profile, ok := cfg.ArrayProfile(name)
			if !ok {
				return fmt.Errorf("unknown array quantity %q (configured: %v)", name, cfg.ArrayNames())
			}

			order := pmtable.OrderOffset
			if profile.Mode == pmtable.ModeStrict {
				order = pmtable.OrderMeanDesc
			}
			candidates := pmtable.RankArrays(pmtable.FindArrays(table, cores, profile), order)
			unit := unitSuffix(name)

			fmt.Printf("Per-core %s candidates (%s, %g-%g%s):\n", name, profile.Mode, profile.Value.Low, profile.Value.High, unit)
			if len(candidates) == 0 {
				fmt.Println("  no matches")
				fmt.Println()
				continue
			}
			for _, c := range candidates[:capped(len(candidates), limit)] {
				printCandidate(c, profile.Mode, unit)
			}
			if n := len(candidates); limit > 0 && n > limit {
				fmt.Printf("  ... (%d more)\n", n-limit)
			}
			fmt.Println()
		}

		return nil
	},
}

func printCandidate(c pmtable.ArrayCandidate, mode pmtable.ArrayMode, unit string) {
	if mode == pmtable.ModeStrict {
		fmt.Printf("\n  0x%04X: avg=%.1f%s, spread=%.1f%s\n", c.Base, c.Mean, unit, c.Spread, unit)
	} else {
		fmt.Printf("\n  0x%04X:\n", c.Base)
	}
	for i, v := range c.Values {
		fmt.Printf("    CCD%d Core %d: %8.1f%s\n", i/8, i%8, v, unit)
	}
}

var coresFlag int

func init() {
	arraysCmd.Flags().Int("limit", 0, "maximum candidates per quantity (0 = all)")
	arraysCmd.Flags().IntVar(&coresFlag, "cores", 0, "per-core array length (0 = detect)")
	rootCmd.AddCommand(arraysCmd)
}
