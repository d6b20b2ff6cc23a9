package main

import (
	"fmt"

	"codeberg.org/mutker/smuscan/internal/pmtable"
	"github.com/spf13/cobra"
)

// heuristicBands annotate dump output with empirically interesting
// value ranges. Display data only; nothing downstream depends on them.
var heuristicBands = []struct {
	band  pmtable.Range
	label string
}{
	{pmtable.Range{Low: 150, High: 170}, " <- possible PPT limit"},
	{pmtable.Range{Low: 200, High: 250}, " <- possible EDC limit"},
	{pmtable.Range{Low: 90, High: 100}, " <- possible TDC limit"},
	{pmtable.Range{Low: 1500, High: 3500}, " <- possible FCLK/MCLK"},
	{pmtable.Range{Low: 4000, High: 6500}, " <- possible core freq"},
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump every float in the table with heuristic annotations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		reader, err := openReader()
		if err != nil {
			return err
		}
		table, err := reader.Table()
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")

		printHeader(reader, len(table))
		fmt.Printf("=== PM Table Dump (%d bytes) ===\n\n", len(table))

		shown := 0
		for offset := 0; offset+4 <= len(table); offset += 4 {
			value, ok := pmtable.ReadFloat32(table, offset)
			if !ok {
				break
			}

			label := ""
			for _, h := range heuristicBands {
				if h.band.Contains(float64(value)) {
					label = h.label
					break
				}
			}
			fmt.Printf("  0x%04X (field %3d): %12.4f%s\n", offset, offset/4, value, label)

			shown++
			if limit > 0 && shown >= limit {
				fmt.Printf("  ... (truncated at %d fields)\n", limit)
				break
			}
		}

		return nil
	},
}

func init() {
	dumpCmd.Flags().Int("limit", 0, "maximum fields to print (0 = all)")
	rootCmd.AddCommand(dumpCmd)
}
