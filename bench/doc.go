// Package bench implements the adaptive benchmark engine of ggbench.
//
// # Overview
//
// A [Bench] replays drawing programs against a render target, one iteration
// per frame of an external frame clock. Each file goes through a fixed
// sequence of phases, and the iteration budget of every phase is derived from
// the latency measured in the previous one:
//
//	BootWarmup -> Init -> WarmupTest -> Run
//
// BootWarmup only runs once per benchmark, on the first file, and doubles its
// loop count until it exceeds half of [Calibration.WarmupLoopsMax]. Init is a
// three iteration probe. WarmupTest and Run are sized so that a phase lasts at
// least [Calibration.TestMinDuration]. Only the Run result is scored.
//
// # Driving
//
// The caller owns the loop and calls [Bench.AdvanceFrame] once per tick:
//
//	b := bench.New(files, loader, surface)
//	for {
//	    now := time.Since(start).Nanoseconds()
//	    if b.AdvanceFrame(now, now-last) {
//	        break
//	    }
//	    last = now
//	}
//	b.Aggregator().WriteTable(os.Stdout)
//
// AdvanceFrame returns true exactly once, on the frame that completes the
// measured run of the last file.
//
// # Statistics
//
// Per-iteration timings are normalized to nanoseconds per operation and
// reduced to the median and the 95th percentile with nearest-rank semantics.
// For an even number of samples the lower of the two middle values is the
// median. See [Summarize].
//
// # Concurrency
//
// A Bench is not safe for concurrent use. All state is mutated synchronously
// inside AdvanceFrame.
package bench
