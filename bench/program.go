package bench

import (
	"time"

	"github.com/gogpu/gg"
)

// Target is the surface programs render to. Bench only needs its size to
// center programs inside it.
type Target interface {
	Size() (width, height int)
}

// Program is a loaded drawing program. Execute renders it once onto t with
// m applied on top of its recorded geometry.
type Program interface {
	Width() int
	Height() int
	Execute(t Target, m gg.Matrix)
}

// Releaser is implemented by programs holding resources that should be
// dropped as soon as their file is done.
type Releaser interface {
	Release()
}

// Handle names one benchmark input.
type Handle struct {
	// Name is the label used in logs and reports.
	Name string
	// Path locates the input for the Loader.
	Path string
}

func (h Handle) String() string { return h.Name }

// Loader turns handles into programs. Errors should wrap ErrLoadFailure.
type Loader interface {
	Load(h Handle) (Program, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(h Handle) (Program, error)

// Load calls f(h).
func (f LoaderFunc) Load(h Handle) (Program, error) { return f(h) }

// FileSource yields the benchmark inputs in order. It is consumed once.
type FileSource interface {
	Next() (Handle, bool)
	Len() int
}

// FileList is a FileSource over a fixed slice of handles.
type FileList struct {
	handles []Handle
	pos     int
}

// NewFileList returns a FileSource yielding handles in order.
func NewFileList(handles ...Handle) *FileList {
	return &FileList{handles: append([]Handle(nil), handles...)}
}

// Next returns the next handle, or false once the list is exhausted.
func (l *FileList) Next() (Handle, bool) {
	if l.pos >= len(l.handles) {
		return Handle{}, false
	}
	h := l.handles[l.pos]
	l.pos++
	return h, true
}

// Len returns the total number of handles, consumed or not.
func (l *FileList) Len() int { return len(l.handles) }

// Clock measures iteration time.
type Clock interface {
	// Nanotime returns a monotonic timestamp in nanoseconds.
	Nanotime() int64
}

// SystemClock reads the monotonic clock of the time package.
type SystemClock struct {
	base time.Time
}

// NewSystemClock returns a clock whose zero is the time of the call.
func NewSystemClock() *SystemClock {
	return &SystemClock{base: time.Now()}
}

// Nanotime returns nanoseconds elapsed since the clock was created.
func (c *SystemClock) Nanotime() int64 {
	return time.Since(c.base).Nanoseconds()
}

// Observer receives benchmark progress. Calls happen synchronously from
// AdvanceFrame.
type Observer interface {
	// OnPhase is called when a phase starts.
	OnPhase(file string, p Phase, planned int)
	// OnResult is called when a phase completes.
	OnResult(file string, p Phase, r Result)
	// OnFailure is called when a file is aborted.
	OnFailure(file string, err error)
}

type nopObserver struct{}

func (nopObserver) OnPhase(string, Phase, int)     {}
func (nopObserver) OnResult(string, Phase, Result) {}
func (nopObserver) OnFailure(string, error)        {}

// Observers fans out to several observers in order.
type Observers []Observer

// OnPhase implements Observer.
func (o Observers) OnPhase(file string, p Phase, planned int) {
	for _, obs := range o {
		obs.OnPhase(file, p, planned)
	}
}

// OnResult implements Observer.
func (o Observers) OnResult(file string, p Phase, r Result) {
	for _, obs := range o {
		obs.OnResult(file, p, r)
	}
}

// OnFailure implements Observer.
func (o Observers) OnFailure(file string, err error) {
	for _, obs := range o {
		obs.OnFailure(file, err)
	}
}
