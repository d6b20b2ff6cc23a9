package main

import (
	"fmt"

	"codeberg.org/mutker/smuscan/internal/cpuinfo"
	"github.com/spf13/cobra"
)

var freqsCmd = &cobra.Command{
	Use:   "freqs",
	Short: "Cross-reference table values against OS-reported core clocks",
	Long: `Read per-core clock speeds from the OS and search the table for
offsets holding a value near core 0's clock. The OS list and the table
share no layout, so a match here is independent confirmation.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		reader, err := openReader()
		if err != nil {
			return err
		}
		table, err := reader.Table()
		if err != nil {
			return err
		}
		tolerance, _ := cmd.Flags().GetFloat64("tolerance")

		freqs, err := cpuinfo.Frequencies()
		if err != nil {
			return err
		}
		if len(freqs) == 0 {
			return fmt.Errorf("no core clocks reported by the OS")
		}

		printHeader(reader, len(table))
		fmt.Printf("Found %d cores:\n", len(freqs))
		for i, mhz := range freqs[:capped(len(freqs), 16)] {
			fmt.Printf("  Core %2d: %8.1f MHz\n", i, mhz)
		}

		sample := freqs[0]
		fmt.Printf("\nSearching for values within %.0f MHz of Core 0 (%.0f MHz)...\n", tolerance, sample)
		matches := cpuinfo.MatchTable(table, sample, tolerance)
		if len(matches) == 0 {
			fmt.Println("  no matching values in PM table")
			fmt.Println("  (frequencies may need to be read from the OS instead)")
			return nil
		}
		for _, f := range matches {
			fmt.Printf("  0x%04X: %8.1f MHz\n", f.Offset, f.Value)
		}

		return nil
	},
}

func init() {
	freqsCmd.Flags().Float64("tolerance", 100, "match tolerance in MHz")
	rootCmd.AddCommand(freqsCmd)
}
