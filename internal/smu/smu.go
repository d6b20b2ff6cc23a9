package smu

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"codeberg.org/mutker/smuscan/internal/errors"
)

const DefaultSysfsPath = "/sys/kernel/ryzen_smu_drv"

type reader struct {
	sysfsPath string
}

// New creates a Reader over the default ryzen_smu sysfs tree.
func New() (Reader, error) {
	return NewWithPath(DefaultSysfsPath)
}

// NewWithPath creates a Reader over a custom sysfs tree. A missing
// tree means the kernel module is not loaded.
func NewWithPath(path string) (Reader, error) {
	errFactory := errors.New()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errFactory.WithData(ErrModuleNotLoaded, path)
		}
		return nil, errFactory.Wrap(ErrReadFailed, err)
	}

	return &reader{sysfsPath: path}, nil
}

func (r *reader) Table() ([]byte, error) {
	return r.readBinary("pm_table")
}

func (r *reader) TableVersion() uint32 {
	data, err := r.readBinary("pm_table_version")
	if err != nil || len(data) < 4 {
		return 0
	}

	return binary.LittleEndian.Uint32(data[:4])
}

func (r *reader) TableSize() (int, error) {
	errFactory := errors.New()

	text, err := r.readString("pm_table_size")
	if err != nil {
		return 0, err
	}

	size, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, errFactory.Wrap(ErrInvalidAttribute, err)
	}

	return size, nil
}

func (r *reader) CodenameID() int {
	text, err := r.readString("codename")
	if err != nil {
		return 0
	}

	id, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}

	return id
}

func (r *reader) Codename() Codename {
	return CodenameFromID(r.CodenameID())
}

func (r *reader) FirmwareVersion() (string, error) {
	text, err := r.readString("version")
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}

func (r *reader) DriverVersion() (string, error) {
	text, err := r.readString("drv_version")
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}

func (r *reader) readBinary(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(r.sysfsPath, name))
	if err != nil {
		return nil, r.classify(name, err)
	}

	return data, nil
}

func (r *reader) readString(name string) (string, error) {
	data, err := r.readBinary(name)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// classify maps filesystem failures onto the source-error taxonomy: a
// missing attribute means the module is not loaded, EACCES means the
// caller needs elevated privileges, anything else is a plain read
// failure.
func (r *reader) classify(name string, err error) error {
	errFactory := errors.New()

	switch {
	case os.IsNotExist(err):
		return errFactory.WithData(ErrModuleNotLoaded, filepath.Join(r.sysfsPath, name))
	case os.IsPermission(err):
		return errFactory.WithData(ErrPermissionDenied, filepath.Join(r.sysfsPath, name))
	default:
		return errFactory.Wrap(ErrReadFailed, err)
	}
}
