// Package driver calls a frame function once per display refresh, either
// headless on a timer or inside a raylib window (build tag raylib).
package driver

import (
	"context"
	"errors"
	"time"

	"github.com/gogpu/ggbench/bench"
)

// Frame is called once per frame with a monotonic timestamp and the time
// since the previous frame, both in nanoseconds. Returning true stops the
// driver.
type Frame func(now, elapsed int64) bool

// ErrFrameLimit is returned when a driver stops at its frame limit before
// the frame function reported completion.
var ErrFrameLimit = errors.New("driver: frame limit reached")

// Ticker drives frames without a window.
type Ticker struct {
	// Rate is the target frame rate. Zero runs frames back to back.
	Rate int
	// MaxFrames stops the ticker after this many frames. Zero means no
	// limit.
	MaxFrames int
	// Clock provides timestamps. Nil means a bench.SystemClock started by
	// Run.
	Clock bench.Clock
}

// NewTicker returns a ticker paced at rate frames per second.
func NewTicker(rate int) *Ticker {
	return &Ticker{Rate: rate}
}

// Run calls fn until it returns true, ctx is done or MaxFrames is reached,
// and returns the number of frames run.
func (t *Ticker) Run(ctx context.Context, fn Frame) (int, error) {
	clock := t.Clock
	if clock == nil {
		clock = bench.NewSystemClock()
	}

	var tick <-chan time.Time
	if t.Rate > 0 {
		tk := time.NewTicker(time.Second / time.Duration(t.Rate))
		defer tk.Stop()
		tick = tk.C
	}

	frames := 0
	prev := clock.Nanotime()
	for {
		if t.MaxFrames > 0 && frames >= t.MaxFrames {
			return frames, ErrFrameLimit
		}
		if err := ctx.Err(); err != nil {
			return frames, err
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return frames, ctx.Err()
			case <-tick:
			}
		}

		now := clock.Nanotime()
		frames++
		if fn(now, now-prev) {
			return frames, nil
		}
		prev = now
	}
}
