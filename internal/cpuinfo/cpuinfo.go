// Package cpuinfo cross-references PM table candidates against what
// the OS itself reports: per-core clock speeds and hwmon temperature
// sensors. Neither source shares the table's layout, so agreement
// between the two is the strongest confirmation available.
package cpuinfo

import (
	"strings"

	"codeberg.org/mutker/smuscan/internal/errors"
	"codeberg.org/mutker/smuscan/internal/pmtable"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
)

// Frequencies returns the current clock speed in MHz for each logical
// CPU, in CPU order.
func Frequencies() ([]float64, error) {
	errFactory := errors.New()

	info, err := cpu.Info()
	if err != nil {
		return nil, errFactory.Wrap(ErrReadCPUInfo, err)
	}

	freqs := make([]float64, 0, len(info))
	for _, c := range info {
		freqs = append(freqs, c.Mhz)
	}

	return freqs, nil
}

// PhysicalCores returns the physical core count, the natural unit
// count for per-core array scans.
func PhysicalCores() (int, error) {
	errFactory := errors.New()

	count, err := cpu.Counts(false)
	if err != nil {
		return 0, errFactory.Wrap(ErrReadCPUInfo, err)
	}
	if count <= 0 {
		return 0, errFactory.New(ErrNoCores)
	}

	return count, nil
}

// MatchTable returns the table offsets whose decoded value lies within
// tolerance of an OS-reported frequency. Implemented on the classifier
// with a synthesized range: |v - mhz| < tolerance is exactly the open
// interval (mhz-tolerance, mhz+tolerance).
func MatchTable(table []byte, mhz, tolerance float64) []pmtable.Field {
	r := pmtable.Range{
		Name: "cpuinfo_match",
		Low:  mhz - tolerance,
		High: mhz + tolerance,
	}

	return pmtable.Classify(table, r)
}

// Sensor is one hwmon temperature reading.
type Sensor struct {
	Key         string
	Temperature float64
}

// SensorTemperatures returns hwmon temperature sensors, filtered to
// the CPU driver (k10temp) when any of its sensors are present.
func SensorTemperatures() ([]Sensor, error) {
	errFactory := errors.New()

	stats, err := host.SensorsTemperatures()
	if err != nil {
		return nil, errFactory.Wrap(ErrReadSensors, err)
	}

	sensors := make([]Sensor, 0, len(stats))
	cpuOnly := false
	for _, s := range stats {
		if strings.Contains(s.SensorKey, "k10temp") {
			cpuOnly = true
			break
		}
	}
	for _, s := range stats {
		if cpuOnly && !strings.Contains(s.SensorKey, "k10temp") {
			continue
		}
		sensors = append(sensors, Sensor{Key: s.SensorKey, Temperature: s.Temperature})
	}

	return sensors, nil
}
