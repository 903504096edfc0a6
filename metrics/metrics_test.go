package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/ggbench/bench"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorObservesRun(t *testing.T) {
	c := NewCollector("run-1")
	c.OnPhase("a", bench.PhaseInit, 3)
	if got := testutil.ToFloat64(c.planned.WithLabelValues("Init")); got != 3 {
		t.Errorf("planned Init = %v, want 3", got)
	}
	c.OnResult("a", bench.PhaseInit, bench.Result{SampleCount: 3, NsPerOpMedian: 1e6})
	c.OnResult("a", bench.PhaseRun, bench.Result{SampleCount: 40, NsPerOpMedian: 2e6, NsPerOpPercentile95: 3e6})
	c.OnFailure("b", bench.ErrLoadFailure)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"median", testutil.ToFloat64(c.median.WithLabelValues("a")), 2e6},
		{"p95", testutil.ToFloat64(c.pct95.WithLabelValues("a")), 3e6},
		{"fps", testutil.ToFloat64(c.fps.WithLabelValues("a")), 500},
		{"init iterations", testutil.ToFloat64(c.iterations.WithLabelValues("Init")), 3},
		{"run iterations", testutil.ToFloat64(c.iterations.WithLabelValues("Run")), 40},
		{"completed", testutil.ToFloat64(c.completed), 1},
		{"failed", testutil.ToFloat64(c.failed), 1},
		{"planned after result", testutil.ToFloat64(c.planned.WithLabelValues("Init")), 0},
	}
	for _, ch := range checks {
		if ch.got != ch.want {
			t.Errorf("%s = %v, want %v", ch.name, ch.got, ch.want)
		}
	}
}

func TestCollectorWarmupDoesNotScore(t *testing.T) {
	c := NewCollector("run")
	c.OnResult("a", bench.PhaseWarmupTest, bench.Result{SampleCount: 10, NsPerOpMedian: 1e6})
	if n := testutil.CollectAndCount(c.median); n != 0 {
		t.Errorf("median series = %d, want 0", n)
	}
	if got := testutil.ToFloat64(c.completed); got != 0 {
		t.Errorf("completed = %v, want 0", got)
	}
}

func TestHandler(t *testing.T) {
	c := NewCollector("run-7")
	c.OnResult("map", bench.PhaseRun, bench.Result{SampleCount: 1, NsPerOpMedian: 1e6})

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()
	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	want := `ggbench_ns_per_op_median{file="map",run="run-7"} 1e+06`
	if !strings.Contains(string(body), want) {
		t.Errorf("scrape missing %q:\n%s", want, body)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	c := NewCollector("run")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}
