package playback

import (
	"testing"

	"github.com/gogpu/gg"
)

type otherTarget struct{}

func (otherTarget) Size() (int, int) { return 100, 100 }

func TestProgramExecute(t *testing.T) {
	s := NewSurface(100, 100)
	defer s.Close()
	s.Clear()

	p := NewProgram("square", redSquare())
	if p.Width() != 100 || p.Height() != 100 {
		t.Errorf("size = %dx%d, want 100x100", p.Width(), p.Height())
	}
	if p.Commands() == 0 {
		t.Error("Commands() = 0, want recorded commands")
	}
	p.Execute(s, gg.Translate(-30, 0))
	if s.View() != gg.Translate(-30, 0) {
		t.Errorf("view = %+v, want translation by -30", s.View())
	}
	if img := s.Image(); !isRed(img, 20, 50) {
		t.Errorf("pixel (20,50) = %v, want red", img.At(20, 50))
	}
}

func TestProgramIgnoresForeignTarget(t *testing.T) {
	p := NewProgram("square", redSquare())
	p.Execute(otherTarget{}, gg.Identity())
}

func TestProgramRelease(t *testing.T) {
	s := NewSurface(100, 100)
	defer s.Close()
	s.Clear()

	p := NewProgram("square", redSquare())
	p.Release()
	if p.Width() != 0 || p.Commands() != 0 {
		t.Error("released program still reports its recording")
	}
	p.Execute(s, gg.Identity())
	if img := s.Image(); !isWhite(img, 50, 50) {
		t.Error("released program drew onto the surface")
	}
}

func BenchmarkProgramExecute(b *testing.B) {
	s := NewSurface(400, 400)
	defer s.Close()
	p := NewProgram("square", redSquare())
	m := gg.Identity()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Execute(s, m)
	}
}
