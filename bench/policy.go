package bench

import (
	"fmt"
	"math"
	"time"
)

const (
	// ProbeLoops is the default number of iterations of the Init phase.
	ProbeLoops = 3

	// EstimateMargin is the default factor applied to a probed median
	// before deriving a loop count.
	EstimateMargin = 0.95
)

// Calibration bounds the iteration counts chosen for each phase.
type Calibration struct {
	// WarmupLoopsMin is the loop count of the first boot warmup round.
	WarmupLoopsMin int
	// WarmupLoopsMax bounds boot warmup: rounds double while the loop
	// count is at most half of it.
	WarmupLoopsMax int
	// TestMinLoops is the floor for WarmupTest and Run loop counts.
	TestMinLoops int
	// TestMaxLoops is the WarmupTest and Run loop count used when the
	// estimate is zero or not finite, which happens with a coarse clock.
	// It does not bound counts derived from a usable estimate.
	TestMaxLoops int
	// TestMinDuration is the target duration of WarmupTest and Run.
	TestMinDuration time.Duration
	// ProbeLoops is the Init loop count. Zero means the ProbeLoops
	// constant.
	ProbeLoops int
	// Margin scales medians into estimates. Zero means EstimateMargin.
	Margin float64
}

// DefaultCalibration returns the calibration used when none is configured.
func DefaultCalibration() Calibration {
	return Calibration{
		WarmupLoopsMin:  50,
		WarmupLoopsMax:  400,
		TestMinLoops:    30,
		TestMaxLoops:    10000,
		TestMinDuration: 5 * time.Second,
		ProbeLoops:      ProbeLoops,
		Margin:          EstimateMargin,
	}
}

// Validate checks the bounds are usable.
func (c Calibration) Validate() error {
	switch {
	case c.WarmupLoopsMin <= 0:
		return fmt.Errorf("%w: warmup loops min must be positive, got %d", ErrInvalidCalibration, c.WarmupLoopsMin)
	case c.WarmupLoopsMax < c.WarmupLoopsMin:
		return fmt.Errorf("%w: warmup loops max %d < min %d", ErrInvalidCalibration, c.WarmupLoopsMax, c.WarmupLoopsMin)
	case c.TestMinLoops <= 0:
		return fmt.Errorf("%w: test min loops must be positive, got %d", ErrInvalidCalibration, c.TestMinLoops)
	case c.TestMaxLoops < c.TestMinLoops:
		return fmt.Errorf("%w: test max loops %d < min %d", ErrInvalidCalibration, c.TestMaxLoops, c.TestMinLoops)
	case c.TestMinDuration < 0:
		return fmt.Errorf("%w: negative test duration %v", ErrInvalidCalibration, c.TestMinDuration)
	case c.ProbeLoops < 0:
		return fmt.Errorf("%w: negative probe loops %d", ErrInvalidCalibration, c.ProbeLoops)
	case c.Margin < 0 || c.Margin > 1 || math.IsNaN(c.Margin):
		return fmt.Errorf("%w: margin %g outside [0, 1]", ErrInvalidCalibration, c.Margin)
	}
	return nil
}

// NextWarmup returns the loop count of the boot warmup round following a
// round of n loops, and whether another round is needed. The count doubles
// while n <= WarmupLoopsMax/2, so boot warmup takes at most
// ceil(log2(max/min)) + 1 rounds.
func (c Calibration) NextWarmup(n int) (next int, again bool) {
	if 2*n <= c.WarmupLoopsMax {
		return 2 * n, true
	}
	return n, false
}

// WarmupRounds returns the loop counts of every boot warmup round.
func (c Calibration) WarmupRounds() []int {
	rounds := []int{c.WarmupLoopsMin}
	for n := c.WarmupLoopsMin; ; {
		next, again := c.NextWarmup(n)
		if !again {
			return rounds
		}
		rounds = append(rounds, next)
		n = next
	}
}

// Probe returns the Init loop count.
func (c Calibration) Probe() int {
	if c.ProbeLoops == 0 {
		return ProbeLoops
	}
	return c.ProbeLoops
}

// Estimate returns the per-operation latency estimate derived from a phase
// result: the margin times its median.
func (c Calibration) Estimate(r Result) float64 {
	m := c.Margin
	if m == 0 {
		m = EstimateMargin
	}
	return m * r.NsPerOpMedian
}

// TestLoops returns the loop count needed to last TestMinDuration at
// estimateNs nanoseconds per iteration, truncated and floored at
// TestMinLoops. Fast programs get as many loops as the duration needs;
// TestMaxLoops only stands in for an unusable estimate.
func (c Calibration) TestLoops(estimateNs float64) int {
	if estimateNs <= 0 || math.IsNaN(estimateNs) || math.IsInf(estimateNs, 0) {
		return c.TestMaxLoops
	}
	q := float64(c.TestMinDuration.Nanoseconds()) / estimateNs
	if q >= math.MaxInt32 {
		return math.MaxInt32
	}
	return max(c.TestMinLoops, int(q))
}
