package main

import (
	"fmt"

	"codeberg.org/mutker/smuscan/internal/cpuinfo"
	"github.com/spf13/cobra"
)

var sensorsCmd = &cobra.Command{
	Use:   "sensors",
	Short: "Show hwmon temperature sensors for comparison",
	Long: `List the OS's hwmon temperature readings (filtered to the CPU
driver when present) next to nothing at all: run a temperature scan in
another terminal and compare by eye.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		sensors, err := cpuinfo.SensorTemperatures()
		if err != nil {
			return err
		}
		if len(sensors) == 0 {
			fmt.Println("no temperature sensors reported by the OS")
			return nil
		}

		fmt.Println("hwmon temperature readings:")
		for _, s := range sensors {
			fmt.Printf("  %-24s %6.1f°C\n", s.Key, s.Temperature)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(sensorsCmd)
}
