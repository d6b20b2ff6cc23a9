package monitor

import (
	"time"

	"codeberg.org/mutker/smuscan/internal/errors"
)

type Config struct {
	Offsets  []int
	Interval time.Duration
}

func (c Config) Validate() error {
	errFactory := errors.New()

	if len(c.Offsets) == 0 {
		return errFactory.New(ErrNoOffsets)
	}
	for _, offset := range c.Offsets {
		if offset < 0 || offset%4 != 0 {
			return errFactory.WithData(ErrInvalidOffset, offset)
		}
	}
	if c.Interval <= 0 {
		return errFactory.WithData(ErrInvalidInterval, c.Interval)
	}

	return nil
}
