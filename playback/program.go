package playback

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/ggbench/bench"
)

// Program is a bench.Program backed by a gg recording.
type Program struct {
	name string
	rec  *recording.Recording
}

var (
	_ bench.Program  = (*Program)(nil)
	_ bench.Releaser = (*Program)(nil)
)

// NewProgram wraps rec under name.
func NewProgram(name string, rec *recording.Recording) *Program {
	return &Program{name: name, rec: rec}
}

// Name returns the name the program was created with.
func (p *Program) Name() string { return p.name }

// Width returns the recorded canvas width.
func (p *Program) Width() int {
	if p.rec == nil {
		return 0
	}
	return p.rec.Width()
}

// Height returns the recorded canvas height.
func (p *Program) Height() int {
	if p.rec == nil {
		return 0
	}
	return p.rec.Height()
}

// Commands returns the number of recorded commands.
func (p *Program) Commands() int {
	if p.rec == nil {
		return 0
	}
	return len(p.rec.Commands())
}

// Execute plays the recording back onto t through m and flushes pending GPU
// work so the measured time covers the whole draw. Targets other than
// *Surface are ignored.
func (p *Program) Execute(t bench.Target, m gg.Matrix) {
	s, ok := t.(*Surface)
	if !ok || p.rec == nil {
		return
	}
	s.SetView(m)
	if err := p.rec.Playback(s); err != nil {
		bench.Logger().Warn("playback failed", "program", p.name, "err", err)
	}
	if err := s.Flush(); err != nil {
		bench.Logger().Warn("gpu flush failed", "program", p.name, "err", err)
	}
}

// Release drops the recording. Execute is a no-op afterwards.
func (p *Program) Release() {
	p.rec = nil
}
