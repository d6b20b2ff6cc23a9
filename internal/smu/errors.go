package smu

import "codeberg.org/mutker/smuscan/internal/errors"

const (
	// Source errors
	ErrModuleNotLoaded  = errors.ErrorCode("smu_module_not_loaded")
	ErrPermissionDenied = errors.ErrorCode("smu_permission_denied")
	ErrReadFailed       = errors.ErrorCode("smu_read_failed")

	// Attribute errors
	ErrInvalidAttribute = errors.ErrorCode("smu_invalid_attribute")
)
