package main

import (
	"fmt"

	"codeberg.org/mutker/smuscan/internal/pmtable"
	"github.com/spf13/cobra"
)

// scanOrder assigns the ranking policy per quantity. The junction
// temperature is usually the hottest sensor, so highest-first
// shortens that search; SoC temperature has no value discriminator
// and stays in offset order like everything else.
func scanOrder(name string) pmtable.Order {
	switch name {
	case "tctl", "temperature":
		return pmtable.OrderValueDesc
	default:
		return pmtable.OrderOffset
	}
}

var scanCmd = &cobra.Command{
	Use:   "scan [quantity...]",
	Short: "Scan for single-offset candidates by value range",
	Long: `Scan every 4-byte-aligned offset for values inside a quantity's
plausible range. Quantities default to the whole configured catalog
(temperature, power, frequency, voltage, tctl, soc).`,
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

		names := args
		if len(names) == 0 {
			names = cfg.RangeNames()
		}

		printHeader(reader, len(table))
		for _, name := range names {
			r, ok := cfg.Range(name)
			if !ok {
				return fmt.Errorf("unknown quantity %q (configured: %v)", name, cfg.RangeNames())
			}

			fields := pmtable.RankFields(pmtable.Classify(table, r), scanOrder(name))
			unit := unitSuffix(name)

			fmt.Printf("=== %s candidates (%g-%g%s) ===\n\n", name, r.Low, r.High, unit)
			if len(fields) == 0 {
				fmt.Println("  no matches")
				fmt.Println()
				continue
			}
			for _, f := range fields[:capped(len(fields), limit)] {
				fmt.Printf("  0x%04X: %10.4f%s\n", f.Offset, f.Value, unit)
			}
			if n := len(fields); limit > 0 && n > limit {
				fmt.Printf("  ... (%d more)\n", n-limit)
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	scanCmd.Flags().Int("limit", 0, "maximum candidates per quantity (0 = all)")
	rootCmd.AddCommand(scanCmd)
}
