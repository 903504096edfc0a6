package bench

import (
	"fmt"
	"runtime"

	"github.com/gogpu/gg"
)

// DefaultAngleStep is the rotation applied to the animation transform after
// every iteration: about two pixels of arc at a distance of 512 pixels.
const DefaultAngleStep = 1.0 / 512

// Failure records a file that was aborted.
type Failure struct {
	File string
	Err  error
}

// Option configures a Bench.
type Option func(*Bench)

// WithCalibration sets the phase sizing bounds.
func WithCalibration(c Calibration) Option {
	return func(b *Bench) { b.cal = c }
}

// WithClock sets the clock used to time iterations.
func WithClock(c Clock) Option {
	return func(b *Bench) { b.clock = c }
}

// WithAggregator sets the aggregator receiving phase results.
func WithAggregator(a *Aggregator) Option {
	return func(b *Bench) { b.agg = a }
}

// WithObserver sets an observer notified of phases and results.
func WithObserver(o Observer) Option {
	return func(b *Bench) { b.obs = o }
}

// WithAngleStep sets the per-iteration animation rotation in radians.
func WithAngleStep(rad float64) Option {
	return func(b *Bench) { b.angleStep = rad }
}

// WithGCBeforeFile runs a garbage collection before each file is measured.
func WithGCBeforeFile(on bool) Option {
	return func(b *Bench) { b.gcBeforeFile = on }
}

// Bench is the benchmark state machine. It owns the current phase, its
// sample buffer and the file cursor.
type Bench struct {
	files  FileSource
	loader Loader
	target Target

	cal          Calibration
	clock        Clock
	agg          *Aggregator
	obs          Observer
	angleStep    float64
	gcBeforeFile bool

	// Current file.
	file      Handle
	prog      Program
	fileIndex int
	anim      gg.Matrix
	cx, cy    float64

	ps       phaseState
	booted   bool
	done     bool
	meter    frameMeter
	failures []Failure
}

// New returns a Bench over files rendering to target.
func New(files FileSource, loader Loader, target Target, opts ...Option) *Bench {
	b := &Bench{
		files:     files,
		loader:    loader,
		target:    target,
		cal:       DefaultCalibration(),
		clock:     NewSystemClock(),
		agg:       NewAggregator(),
		obs:       nopObserver{},
		angleStep: DefaultAngleStep,
		fileIndex: -1,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AdvanceFrame runs one frame of the benchmark. now is a monotonic timestamp
// and elapsed the time since the previous frame, both in nanoseconds.
//
// Each call loads the next file if none is loaded, completes the active
// phase if its budget is spent, and then renders one iteration. It returns
// true only on the frame that completes the benchmark, and false on every
// other call, including all calls after completion.
func (b *Bench) AdvanceFrame(now, elapsed int64) bool {
	if b.done {
		return false
	}
	b.meter.tick(now, elapsed)

	if b.prog == nil && !b.nextFile(now) {
		return b.finish()
	}

	if b.ps.complete() {
		if err := b.completePhase(now); err != nil {
			b.abort(err)
		}
		if b.prog == nil && !b.nextFile(now) {
			return b.finish()
		}
	}

	if err := b.render(); err != nil {
		b.abort(err)
	}
	return false
}

// Done reports whether the benchmark has completed.
func (b *Bench) Done() bool { return b.done }

// Phase returns the active phase.
func (b *Bench) Phase() Phase { return b.ps.phase }

// Iteration returns the index of the next iteration in the active phase and
// the number planned.
func (b *Bench) Iteration() (index, planned int) { return b.ps.index, b.ps.planned }

// FileIndex returns the position of the current file, -1 before the first.
func (b *Bench) FileIndex() int { return b.fileIndex }

// Current returns the name of the current file.
func (b *Bench) Current() string { return b.file.Name }

// FrameRate returns the number of frames counted during the last full
// second.
func (b *Bench) FrameRate() int { return b.meter.fps }

// Aggregator returns the aggregator holding the results.
func (b *Bench) Aggregator() *Aggregator { return b.agg }

// Failures returns the files aborted so far.
func (b *Bench) Failures() []Failure { return append([]Failure(nil), b.failures...) }

// nextFile loads files until one succeeds and starts its first phase. It
// returns false when no file is left.
func (b *Bench) nextFile(now int64) bool {
	for {
		h, ok := b.files.Next()
		if !ok {
			return false
		}
		b.fileIndex++
		b.file = h

		prog, err := b.loader.Load(h)
		if err != nil {
			b.fail(fmt.Errorf("load %s: %w", h.Name, err))
			continue
		}
		if prog == nil {
			b.fail(fmt.Errorf("load %s: %w: nil program", h.Name, ErrLoadFailure))
			continue
		}
		b.prog = prog
		Logger().Info("drawing", "file", h.Name, "width", prog.Width(), "height", prog.Height())

		if b.gcBeforeFile {
			runtime.GC()
		}
		b.prepareView()

		if b.booted {
			b.startPhase(PhaseInit, b.cal.Probe(), now)
		} else {
			b.startPhase(PhaseBootWarmup, b.cal.WarmupLoopsMin, now)
		}
		return true
	}
}

// prepareView centers the program canvas inside the target and resets the
// animation transform.
func (b *Bench) prepareView() {
	w, h := b.target.Size()
	b.cx = float64(b.prog.Width()) / 2
	b.cy = float64(b.prog.Height()) / 2
	hx := max(0, b.cx-float64(w)/2)
	hy := max(0, b.cy-float64(h)/2)
	b.anim = gg.Translate(-hx, -hy)
}

func (b *Bench) startPhase(p Phase, planned int, now int64) {
	b.ps = newPhaseState(p, planned, now)
	b.obs.OnPhase(b.file.Name, p, planned)
}

// completePhase summarizes the active phase and starts the next one. After
// the Run phase the program is released and no phase is started.
func (b *Bench) completePhase(now int64) error {
	p := b.ps.phase
	label := b.file.Name
	if p != PhaseRun {
		label = fmt.Sprintf("%s[%s-%d]", b.file.Name, p, b.ps.planned)
	}
	r, err := Summarize(label, 1, b.ps.samples, now-b.ps.startNanos)
	if err != nil {
		return err
	}
	b.obs.OnResult(b.file.Name, p, r)

	switch p {
	case PhaseBootWarmup:
		b.agg.RecordWarmup(r)
		Logger().Debug("boot warmup", "result", r.String())
		if next, again := b.cal.NextWarmup(b.ps.planned); again {
			b.startPhase(PhaseBootWarmup, next, now)
			return nil
		}
		b.booted = true
		b.startPhase(PhaseInit, b.cal.Probe(), now)

	case PhaseInit:
		b.agg.RecordWarmup(r)
		loops := b.cal.TestLoops(b.cal.Estimate(r))
		Logger().Debug("probe", "result", r.String(), "loops", loops)
		b.startPhase(PhaseWarmupTest, loops, now)

	case PhaseWarmupTest:
		b.agg.RecordWarmup(r)
		loops := b.cal.TestLoops(b.cal.Estimate(r))
		Logger().Debug("warmup test", "result", r.String(), "loops", loops)
		b.startPhase(PhaseRun, loops, now)

	case PhaseRun:
		b.agg.RecordRun(b.file.Name, r)
		Logger().Info("result", "file", b.file.Name,
			"med_ms", r.MedianMillis(), "pct95_ms", r.Percentile95Millis(), "fps", r.FPSMedian())
		b.release()
	}
	return nil
}

// render executes one iteration of the active phase and rotates the
// animation transform.
func (b *Bench) render() error {
	start := b.clock.Nanotime()
	b.prog.Execute(b.target, b.anim)
	elapsed := b.clock.Nanotime() - start

	if err := b.ps.samples.Record(b.ps.index, 1, elapsed); err != nil {
		return err
	}
	b.ps.index++
	b.anim = b.anim.Multiply(rotateAbout(b.angleStep, b.cx, b.cy))
	return nil
}

func (b *Bench) abort(err error) {
	b.fail(err)
	b.release()
}

func (b *Bench) fail(err error) {
	Logger().Warn("file aborted", "file", b.file.Name, "err", err)
	b.failures = append(b.failures, Failure{File: b.file.Name, Err: err})
	b.obs.OnFailure(b.file.Name, err)
}

func (b *Bench) release() {
	if r, ok := b.prog.(Releaser); ok {
		r.Release()
	}
	b.prog = nil
}

func (b *Bench) finish() bool {
	b.done = true
	Logger().Info("benchmark finished", "files", b.files.Len(),
		"scored", b.agg.Score().Tests, "failed", len(b.failures))
	return true
}

// rotateAbout returns a rotation by angle around (x, y).
func rotateAbout(angle, x, y float64) gg.Matrix {
	return gg.Translate(x, y).Multiply(gg.Rotate(angle)).Multiply(gg.Translate(-x, -y))
}

// frameMeter counts frames per wall second. A frame crossing the second
// boundary closes the window and is counted in the next one.
type frameMeter struct {
	started    bool
	frames     int
	fps        int
	nextSecond int64
	worst      int64
}

func (m *frameMeter) tick(now, elapsed int64) {
	if !m.started {
		m.started = true
		m.nextSecond = now + 1_000_000_000
	}
	if now > m.nextSecond {
		m.fps = m.frames
		Logger().Debug("frame rate", "fps", m.fps, "worst_frame_ms", toMillis(float64(m.worst)))
		m.frames = 0
		m.worst = 0
		m.nextSecond = now + 1_000_000_000
	}
	m.frames++
	m.worst = max(m.worst, elapsed)
}
