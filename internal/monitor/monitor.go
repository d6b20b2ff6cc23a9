// Package monitor polls chosen PM table offsets at a fixed interval so
// a hypothesis from a one-shot scan can be confirmed by watching the
// values move under load.
package monitor

import (
	"context"
	"time"

	"codeberg.org/mutker/smuscan/internal/errors"
	"codeberg.org/mutker/smuscan/internal/logger"
	"codeberg.org/mutker/smuscan/internal/pmtable"
)

type service struct {
	cfg    Config
	source Source
}

func NewService(cfg Config, source Source) (Runner, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}
	if source == nil {
		return nil, errFactory.New(ErrNilSource)
	}

	return &service{
		cfg:    cfg,
		source: source,
	}, nil
}

// Run emits one tick immediately, then one per interval, until ctx is
// cancelled. Cancellation is checked at tick boundaries only; a scan
// completes in well under any sane interval.
func (s *service) Run(ctx context.Context, emit func(Tick)) error {
	s.tick(emit)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.tick(emit)
		}
	}
}

func (s *service) tick(emit func(Tick)) {
	table, err := s.source()
	if err != nil {
		logger.Warn().Err(err).Msg("snapshot unavailable, skipping tick")
		return
	}

	values := make([]pmtable.Field, 0, len(s.cfg.Offsets))
	for _, offset := range s.cfg.Offsets {
		if v, ok := pmtable.ReadFloat32(table, offset); ok {
			values = append(values, pmtable.Field{Offset: offset, Value: v})
		}
	}

	emit(Tick{Time: time.Now(), Values: values})
}
