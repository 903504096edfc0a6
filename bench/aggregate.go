package bench

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// FileResult pairs a scored Run result with the file it measured.
type FileResult struct {
	File   string
	Result Result
}

// Score holds running sums over every scored file.
type Score struct {
	Tests       int
	Threads     int
	TotalMedian float64 // ns/op
	TotalPct95  float64 // ns/op
	TotalFPS    float64
}

// ScoreSummary is the mean of a Score over its tests.
type ScoreSummary struct {
	Tests        int
	Threads      int
	MedianMillis float64
	Pct95Millis  float64
	FPS          float64
}

// Mean divides the sums by the number of tests. With no tests every mean is
// NaN.
func (s Score) Mean() ScoreSummary {
	n := float64(s.Tests)
	if s.Tests == 0 {
		n = math.NaN()
	}
	return ScoreSummary{
		Tests:        s.Tests,
		Threads:      s.Threads,
		MedianMillis: toMillis(s.TotalMedian / n),
		Pct95Millis:  toMillis(s.TotalPct95 / n),
		FPS:          s.TotalFPS / n,
	}
}

// Aggregator collects phase results for the final report. Warmup results
// are only logged; Run results are logged and scored.
type Aggregator struct {
	warmup  []Result
	results []FileResult
	score   Score
}

// NewAggregator returns an empty aggregator for a single-threaded run.
func NewAggregator() *Aggregator {
	return &Aggregator{score: Score{Threads: 1}}
}

// RecordWarmup logs a result that does not count toward the score.
func (a *Aggregator) RecordWarmup(r Result) {
	a.warmup = append(a.warmup, r)
}

// RecordRun logs and scores the Run result of file.
func (a *Aggregator) RecordRun(file string, r Result) {
	a.results = append(a.results, FileResult{File: file, Result: r})
	a.score.Tests++
	a.score.TotalMedian += r.NsPerOpMedian
	a.score.TotalPct95 += r.NsPerOpPercentile95
	a.score.TotalFPS += r.FPSMedian()
}

// Warmup returns the logged warmup results in order.
func (a *Aggregator) Warmup() []Result {
	return append([]Result(nil), a.warmup...)
}

// Results returns the scored file results in order.
func (a *Aggregator) Results() []FileResult {
	return append([]FileResult(nil), a.results...)
}

// Score returns the running sums.
func (a *Aggregator) Score() Score {
	return a.score
}

// WriteLogs writes the warmup and test logs.
func (a *Aggregator) WriteLogs(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("WARMUP results:\n")
	sb.WriteString(ResultHeader())
	sb.WriteByte('\n')
	for _, r := range a.warmup {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}
	sb.WriteString("\nTEST results:\n")
	sb.WriteString(ResultHeader())
	sb.WriteByte('\n')
	for _, fr := range a.results {
		sb.WriteString(fr.Result.String())
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteTable writes the tab separated score table.
func (a *Aggregator) WriteTable(w io.Writer) error {
	return WriteScoreTable(w, a.score.Mean())
}

// WriteScoreTable writes s as a tab separated table, one metric per row.
func WriteScoreTable(w io.Writer, s ScoreSummary) error {
	_, err := fmt.Fprintf(w, "Tests\t%d\t\nThreads\t%d\t\nMed\t%.3f\t\nPct95\t%.3f\t\nFPS\t%.3f\t\n",
		s.Tests, s.Threads, s.MedianMillis, s.Pct95Millis, s.FPS)
	return err
}
