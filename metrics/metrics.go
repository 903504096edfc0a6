// Package metrics exports benchmark progress as Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gogpu/ggbench/bench"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector is a bench.Observer that keeps per-file results in gauges.
// Its metrics live on a private registry, so several collectors can exist
// in one process.
type Collector struct {
	reg *prometheus.Registry

	median     *prometheus.GaugeVec
	pct95      *prometheus.GaugeVec
	fps        *prometheus.GaugeVec
	planned    *prometheus.GaugeVec
	iterations *prometheus.CounterVec
	completed  prometheus.Counter
	failed     prometheus.Counter
}

var _ bench.Observer = (*Collector)(nil)

// NewCollector registers the benchmark metrics on a new registry. runID is
// attached to every series as the run label.
func NewCollector(runID string) *Collector {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	constLabels := prometheus.Labels{"run": runID}

	return &Collector{
		reg: reg,
		median: f.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "ggbench_ns_per_op_median",
			Help:        "Median time per operation of the measured run",
			ConstLabels: constLabels,
		}, []string{"file"}),
		pct95: f.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "ggbench_ns_per_op_p95",
			Help:        "95th percentile time per operation of the measured run",
			ConstLabels: constLabels,
		}, []string{"file"}),
		fps: f.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "ggbench_fps",
			Help:        "Frames per second at the median of the measured run",
			ConstLabels: constLabels,
		}, []string{"file"}),
		planned: f.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "ggbench_planned_iterations",
			Help:        "Planned iterations of the phase in progress",
			ConstLabels: constLabels,
		}, []string{"phase"}),
		iterations: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "ggbench_iterations_total",
			Help:        "Iterations completed by phase",
			ConstLabels: constLabels,
		}, []string{"phase"}),
		completed: f.NewCounter(prometheus.CounterOpts{
			Name:        "ggbench_files_completed_total",
			Help:        "Files whose measured run completed",
			ConstLabels: constLabels,
		}),
		failed: f.NewCounter(prometheus.CounterOpts{
			Name:        "ggbench_files_failed_total",
			Help:        "Files aborted by an error",
			ConstLabels: constLabels,
		}),
	}
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// OnPhase implements bench.Observer.
func (c *Collector) OnPhase(_ string, p bench.Phase, planned int) {
	c.planned.WithLabelValues(p.String()).Set(float64(planned))
}

// OnResult implements bench.Observer.
func (c *Collector) OnResult(file string, p bench.Phase, r bench.Result) {
	c.iterations.WithLabelValues(p.String()).Add(float64(r.SampleCount))
	c.planned.WithLabelValues(p.String()).Set(0)
	if p != bench.PhaseRun {
		return
	}
	c.median.WithLabelValues(file).Set(r.NsPerOpMedian)
	c.pct95.WithLabelValues(file).Set(r.NsPerOpPercentile95)
	c.fps.WithLabelValues(file).Set(r.FPSMedian())
	c.completed.Inc()
}

// OnFailure implements bench.Observer.
func (c *Collector) OnFailure(string, error) {
	c.failed.Inc()
}

// Handler serves the collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{Registry: c.reg})
}

// Serve exposes /metrics on addr until ctx is done.
func (c *Collector) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return c.serve(ctx, ln)
}

func (c *Collector) serve(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
