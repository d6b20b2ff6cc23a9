package monitor

import "codeberg.org/mutker/smuscan/internal/errors"

const (
	// Configuration errors
	ErrInvalidConfig   = errors.ErrorCode("monitor_invalid_config")
	ErrInvalidInterval = errors.ErrorCode("monitor_invalid_interval")
	ErrInvalidOffset   = errors.ErrorCode("monitor_invalid_offset")
	ErrNoOffsets       = errors.ErrorCode("monitor_no_offsets")

	// Source errors
	ErrNilSource = errors.ErrorCode("monitor_nil_source")
)
