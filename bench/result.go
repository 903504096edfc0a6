package bench

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Result is the summary of one completed phase. It is a value type and is
// never modified after Summarize returns it.
type Result struct {
	Label               string
	OpsPerIteration     int
	SampleCount         int
	NsPerOpMedian       float64
	NsPerOpPercentile95 float64
	TotalTimeMillis     float64
}

// Summarize reduces a full sample buffer to a Result.
//
// Each sample is normalized to nanoseconds per operation (ops below one
// count as one), sorted, and reduced to:
//   - the median: the element at index (n-1)/2, the lower middle for even n
//   - the 95th percentile: the element at rank ceil(0.95*n), 1-based
//
// Both are empirical quantiles of the sorted values. totalNanos is the wall
// clock duration of the phase as seen by the caller, not the sum of the
// samples, so timer granularity and pauses between iterations are visible in
// TotalTimeMillis.
func Summarize(label string, opsPerIteration int, s *Samples, totalNanos int64) (Result, error) {
	n := s.Len()
	if n == 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrEmptyBuffer, label)
	}

	perOp := make([]float64, n)
	for i := 0; i < n; i++ {
		sample := s.At(i)
		ops := max(sample.Ops, 1)
		perOp[i] = float64(sample.ElapsedNanos) / float64(ops)
	}
	sort.Float64s(perOp)

	return Result{
		Label:               label,
		OpsPerIteration:     opsPerIteration,
		SampleCount:         n,
		NsPerOpMedian:       stat.Quantile(0.5, stat.Empirical, perOp, nil),
		NsPerOpPercentile95: stat.Quantile(0.95, stat.Empirical, perOp, nil),
		TotalTimeMillis:     toMillis(float64(totalNanos)),
	}, nil
}

// FPSMedian returns the frames per second equivalent of the median latency.
// A zero median is not measurable and yields 0.
func (r Result) FPSMedian() float64 {
	if r.NsPerOpMedian <= 0 {
		return 0
	}
	return 1e9 / r.NsPerOpMedian
}

// MedianMillis returns the median latency in milliseconds.
func (r Result) MedianMillis() float64 { return toMillis(r.NsPerOpMedian) }

// Percentile95Millis returns the 95th percentile latency in milliseconds.
func (r Result) Percentile95Millis() float64 { return toMillis(r.NsPerOpPercentile95) }

// String formats the result as one tab separated log line matching
// ResultHeader.
func (r Result) String() string {
	return fmt.Sprintf("%s\t%d\t%d\t%.3f\t%.3f\t%.3f\t%.3f",
		r.Label, r.OpsPerIteration, r.SampleCount,
		r.MedianMillis(), r.Percentile95Millis(), r.FPSMedian(), r.TotalTimeMillis)
}

// ResultHeader returns the column header for Result.String lines.
func ResultHeader() string {
	return "Test\tOps\tNbr\tMed(ms)\tPct95(ms)\tFPS\tTotal(ms)"
}

func toMillis(ns float64) float64 {
	return ns / 1e6
}
