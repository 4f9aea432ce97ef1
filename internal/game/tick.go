package game

import (
	"context"
	"errors"
	"time"
)

// ErrQuit is returned by a Frame to end the loop on the player's request.
var ErrQuit = errors.New("game: quit requested")

// TickSource yields the time elapsed between successive frames. The sequence
// is infinite and cannot be restarted; Next blocks until the next frame is due.
type TickSource interface {
	Next(ctx context.Context) (time.Duration, error)
}

// Frame is driven once per tick: Update first, then Render.
type Frame interface {
	Update(elapsed time.Duration) error
	Render() error
}

// RunLoop drives f from src until the context is cancelled or f fails.
// Pausing is the frame's business; the loop itself never stops ticking.
func RunLoop(ctx context.Context, src TickSource, f Frame) error {
	for {
		elapsed, err := src.Next(ctx)
		if err != nil {
			return err
		}
		if err := f.Update(elapsed); err != nil {
			return err
		}
		if err := f.Render(); err != nil {
			return err
		}
	}
}

// FrameClock is a wall-clock tick source capped at a target frame rate.
type FrameClock struct {
	frameTime time.Duration
	last      time.Time
}

// NewFrameClock creates a clock that ticks at most once per frameTime.
func NewFrameClock(frameTime time.Duration) *FrameClock {
	return &FrameClock{frameTime: frameTime}
}

// Next waits until the next frame is due and returns the time since the
// previous tick. The first tick returns zero immediately.
func (c *FrameClock) Next(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if c.last.IsZero() {
		c.last = time.Now()
		return 0, nil
	}

	if wait := time.Until(c.last.Add(c.frameTime)); wait > 0 {
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return 0, ctx.Err()
		case <-timer.C:
		}
	}

	now := time.Now()
	elapsed := now.Sub(c.last)
	c.last = now
	return elapsed, nil
}

// FixedStep is a synthetic tick source that always reports the same step
// without waiting. Useful for tests and headless runs.
type FixedStep time.Duration

// Next returns the fixed step.
func (f FixedStep) Next(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return time.Duration(f), nil
}
