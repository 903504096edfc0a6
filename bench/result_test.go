package bench

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"
)

func samplesOf(t *testing.T, elapsed ...int64) *Samples {
	t.Helper()
	s := NewSamples(len(elapsed))
	for i, e := range elapsed {
		if err := s.Record(i, 1, e); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestSummarizeSingleSample(t *testing.T) {
	r, err := Summarize("one", 1, samplesOf(t, 42), 100)
	if err != nil {
		t.Fatal(err)
	}
	if r.NsPerOpMedian != 42 || r.NsPerOpPercentile95 != 42 {
		t.Errorf("median=%v p95=%v, want 42 and 42", r.NsPerOpMedian, r.NsPerOpPercentile95)
	}
	if r.SampleCount != 1 {
		t.Errorf("SampleCount = %d, want 1", r.SampleCount)
	}
}

func TestSummarizeHundred(t *testing.T) {
	values := make([]int64, 100)
	for i := range values {
		values[i] = int64(100 - i)
	}
	r, err := Summarize("hundred", 1, samplesOf(t, values...), 0)
	if err != nil {
		t.Fatal(err)
	}
	if r.NsPerOpMedian != 50 {
		t.Errorf("median = %v, want 50 (lower middle)", r.NsPerOpMedian)
	}
	if r.NsPerOpPercentile95 != 95 {
		t.Errorf("p95 = %v, want 95", r.NsPerOpPercentile95)
	}
}

func TestSummarizeOrderStatistics(t *testing.T) {
	tests := []struct {
		name    string
		elapsed []int64
		median  float64
		p95     float64
	}{
		{"two", []int64{20, 10}, 10, 20},
		{"three", []int64{3, 1, 2}, 2, 3},
		{"four", []int64{4, 1, 3, 2}, 2, 4},
		{"twenty", seq(1, 20), 10, 19},
		{"twentyone", seq(1, 21), 11, 20},
		{"sixty", seq(1, 60), 30, 57},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Summarize(tt.name, 1, samplesOf(t, tt.elapsed...), 0)
			if err != nil {
				t.Fatal(err)
			}
			if r.NsPerOpMedian != tt.median {
				t.Errorf("median = %v, want %v", r.NsPerOpMedian, tt.median)
			}
			if r.NsPerOpPercentile95 != tt.p95 {
				t.Errorf("p95 = %v, want %v", r.NsPerOpPercentile95, tt.p95)
			}
		})
	}
}

func TestSummarizePermutationInvariant(t *testing.T) {
	values := seq(1, 37)
	want, err := Summarize("x", 1, samplesOf(t, values...), 7)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		rng.Shuffle(len(values), func(a, b int) { values[a], values[b] = values[b], values[a] })
		got, err := Summarize("x", 1, samplesOf(t, values...), 7)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("shuffle %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestSummarizeNormalizesOps(t *testing.T) {
	s := NewSamples(3)
	_ = s.Record(0, 4, 400) // 100 ns/op
	_ = s.Record(1, 0, 50)  // zero ops counts as one
	_ = s.Record(2, 2, 600) // 300 ns/op
	r, err := Summarize("ops", 4, s, 0)
	if err != nil {
		t.Fatal(err)
	}
	if r.NsPerOpMedian != 100 {
		t.Errorf("median = %v, want 100", r.NsPerOpMedian)
	}
	if r.NsPerOpPercentile95 != 300 {
		t.Errorf("p95 = %v, want 300", r.NsPerOpPercentile95)
	}
	if r.OpsPerIteration != 4 {
		t.Errorf("OpsPerIteration = %d, want 4", r.OpsPerIteration)
	}
}

func TestSummarizeTotalIsWallClock(t *testing.T) {
	r, err := Summarize("t", 1, samplesOf(t, 1, 1, 1), 5_000_000)
	if err != nil {
		t.Fatal(err)
	}
	if r.TotalTimeMillis != 5 {
		t.Errorf("TotalTimeMillis = %v, want 5", r.TotalTimeMillis)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize("empty", 1, NewSamples(0), 0)
	if !errors.Is(err, ErrEmptyBuffer) {
		t.Errorf("error = %v, want ErrEmptyBuffer", err)
	}
}

func TestResultFPS(t *testing.T) {
	r := Result{NsPerOpMedian: 1e6}
	if got := r.FPSMedian(); got != 1000 {
		t.Errorf("FPSMedian() = %v, want 1000", got)
	}
	if got := (Result{}).FPSMedian(); got != 0 {
		t.Errorf("FPSMedian() of zero median = %v, want 0", got)
	}
	if math.Abs(r.MedianMillis()-1) > 1e-12 {
		t.Errorf("MedianMillis() = %v, want 1", r.MedianMillis())
	}
}

func TestResultString(t *testing.T) {
	r := Result{Label: "map", OpsPerIteration: 1, SampleCount: 3,
		NsPerOpMedian: 2e6, NsPerOpPercentile95: 3e6, TotalTimeMillis: 7}
	got := r.String()
	want := "map\t1\t3\t2.000\t3.000\t500.000\t7.000"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if n := strings.Count(ResultHeader(), "\t"); n != strings.Count(got, "\t") {
		t.Errorf("header has %d columns separators, line has %d", n, strings.Count(got, "\t"))
	}
}

func BenchmarkSummarize(b *testing.B) {
	s := NewSamples(1000)
	for i := 0; i < 1000; i++ {
		_ = s.Record(i, 1, int64(i*7%1000))
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Summarize("bench", 1, s, 0)
	}
}

func seq(from, to int64) []int64 {
	out := make([]int64, 0, to-from+1)
	for v := from; v <= to; v++ {
		out = append(out, v)
	}
	return out
}
