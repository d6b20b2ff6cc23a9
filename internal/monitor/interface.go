package monitor

import (
	"context"
	"time"

	"codeberg.org/mutker/smuscan/internal/pmtable"
)

// Source supplies a fresh PM table snapshot for each tick. A failed
// acquisition skips that tick; the monitor has no retry policy beyond
// the next scheduled tick.
type Source func() ([]byte, error)

// Tick carries one poll's decoded values. Offsets past the end of that
// tick's snapshot are omitted, not zeroed.
type Tick struct {
	Time   time.Time
	Values []pmtable.Field
}

// Runner polls a fixed set of offsets until the context is cancelled.
type Runner interface {
	Run(ctx context.Context, emit func(Tick)) error
}
