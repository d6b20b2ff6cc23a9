package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show SMU and PM table identity",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		reader, err := openReader()
		if err != nil {
			return err
		}

		firmware := "Unknown"
		if v, err := reader.FirmwareVersion(); err == nil && v != "" {
			firmware = v
		}
		driver := "Unknown"
		if v, err := reader.DriverVersion(); err == nil && v != "" {
			driver = v
		}
		size := 0
		if s, err := reader.TableSize(); err == nil {
			size = s
		}

		fmt.Printf("Codename:         %s (ID: %d)\n", reader.Codename(), reader.CodenameID())
		fmt.Printf("PM Table Version: 0x%08X\n", reader.TableVersion())
		fmt.Printf("PM Table Size:    %d bytes\n", size)
		fmt.Printf("SMU Firmware:     %s\n", firmware)
		fmt.Printf("Driver Version:   %s\n", driver)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
