package bench

// Phase identifies a stage of the per-file benchmark sequence.
type Phase int

const (
	// PhaseBootWarmup warms caches and the runtime. Runs once per benchmark.
	PhaseBootWarmup Phase = iota
	// PhaseInit probes the latency of a new file with ProbeLoops iterations.
	PhaseInit
	// PhaseWarmupTest runs a probe-sized loop to refine the estimate.
	PhaseWarmupTest
	// PhaseRun is the measured phase. Its result is scored.
	PhaseRun
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseBootWarmup:
		return "BootWarmup"
	case PhaseInit:
		return "Init"
	case PhaseWarmupTest:
		return "WarmupTest"
	case PhaseRun:
		return "Run"
	default:
		return "Unknown"
	}
}

// phaseState is the active phase together with its budget and buffer. A new
// phaseState replaces the previous one on every transition.
type phaseState struct {
	phase      Phase
	planned    int
	index      int
	startNanos int64
	samples    *Samples
}

func newPhaseState(p Phase, planned int, now int64) phaseState {
	return phaseState{
		phase:      p,
		planned:    planned,
		startNanos: now,
		samples:    NewSamples(planned),
	}
}

func (s *phaseState) complete() bool {
	return s.samples.IsFull(s.index)
}
