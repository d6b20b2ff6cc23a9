package main

import (
	"fmt"
	"strconv"
	"strings"

	"codeberg.org/mutker/smuscan/internal/cpuinfo"
	"codeberg.org/mutker/smuscan/internal/logger"
	"codeberg.org/mutker/smuscan/internal/smu"
)

func openReader() (smu.Reader, error) {
	return smu.NewWithPath(cfg.Path)
}

// printHeader prints the identity block shared by all one-shot
// commands.
func printHeader(reader smu.Reader, tableLen int) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("smuscan — AMD SMU PM Table Analyzer")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Codename:         %s (ID: %d)\n", reader.Codename(), reader.CodenameID())
	fmt.Printf("PM Table Version: 0x%08X\n", reader.TableVersion())
	fmt.Printf("PM Table Size:    %d bytes\n", tableLen)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()
}

// parseOffset accepts hex (0x10C) or decimal byte offsets; the field
// grid is 4-byte aligned, so anything else is a usage error.
func parseOffset(arg string) (int, error) {
	base := 10
	digits := arg
	if strings.HasPrefix(arg, "0x") || strings.HasPrefix(arg, "0X") {
		base = 16
		digits = arg[2:]
	}

	offset, err := strconv.ParseInt(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q: %w", arg, err)
	}
	if offset < 0 || offset%4 != 0 {
		return 0, fmt.Errorf("offset %q must be a non-negative multiple of 4", arg)
	}

	return int(offset), nil
}

func parseOffsets(args []string) ([]int, error) {
	offsets := make([]int, 0, len(args))
	for _, arg := range args {
		offset, err := parseOffset(arg)
		if err != nil {
			return nil, err
		}
		offsets = append(offsets, offset)
	}

	return offsets, nil
}

// resolveCores picks the per-core array unit count: explicit config,
// then the OS core count, then the codename's topology, then 16.
func resolveCores(reader smu.Reader) int {
	if cfg.Cores > 0 {
		return cfg.Cores
	}

	if count, err := cpuinfo.PhysicalCores(); err == nil {
		return count
	}

	codename := reader.Codename()
	if codename != smu.Unsupported {
		return codename.CoresPerCCD() * codename.MaxCCDs()
	}

	logger.Debug().Msg("core count not detectable, assuming 16")

	return 16
}

// unitSuffix maps catalog quantity names to their display unit.
func unitSuffix(name string) string {
	switch name {
	case "temperature", "tctl", "soc":
		return "°C"
	case "power":
		return "W"
	case "frequency":
		return " MHz"
	case "voltage":
		return "V"
	default:
		return ""
	}
}

// capped applies the display limit; 0 means show everything.
func capped(n, limit int) int {
	if limit > 0 && limit < n {
		return limit
	}

	return n
}
