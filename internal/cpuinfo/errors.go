package cpuinfo

import "codeberg.org/mutker/smuscan/internal/errors"

const (
	ErrReadCPUInfo = errors.ErrorCode("cpuinfo_read_failed")
	ErrReadSensors = errors.ErrorCode("cpuinfo_sensors_read_failed")
	ErrNoCores     = errors.ErrorCode("cpuinfo_no_cores")
)
