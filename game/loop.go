package game

import (
	"context"
	"errors"
	"time"
)

// ErrStopRun can be returned by a tick callback to end RunFixed cleanly
var ErrStopRun = errors.New("stop run")

// RunFixed drives the session at a fixed tick interval until ctx is done, a
// tick fails or onTick returns an error. onTick may be nil. Returning
// ErrStopRun from onTick stops the run without an error.
func RunFixed(ctx context.Context, s *Session, input InputProvider, interval time.Duration, onTick func(Snapshot) error) error {
	if interval <= 0 {
		interval = s.World().Config.TickInterval
	}
	if interval <= 0 {
		interval = DefaultConfig().TickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if err := s.Step(input); err != nil {
			return err
		}
		if onTick == nil {
			continue
		}
		if err := onTick(s.Snapshot()); err != nil {
			if errors.Is(err, ErrStopRun) {
				return nil
			}
			return err
		}
	}
}
