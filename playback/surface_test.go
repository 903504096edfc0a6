package playback

import (
	"image"
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

func isRed(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r > 0xf000 && g < 0x1000 && b < 0x1000
}

func isWhite(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r > 0xf000 && g > 0xf000 && b > 0xf000
}

func redSquare() *recording.Recording {
	rec := recording.NewRecorder(100, 100)
	rec.SetFillRGB(1, 0, 0)
	rec.DrawRectangle(40, 40, 20, 20)
	rec.Fill()
	return rec.FinishRecording()
}

func TestSurfaceSize(t *testing.T) {
	s := NewSurface(320, 200)
	defer s.Close()
	w, h := s.Size()
	if w != 320 || h != 200 {
		t.Errorf("Size() = %dx%d, want 320x200", w, h)
	}
}

func TestSurfaceViewTranslatesGeometry(t *testing.T) {
	tests := []struct {
		name    string
		view    gg.Matrix
		red     image.Point
		outside image.Point
	}{
		{"identity", gg.Identity(), image.Pt(50, 50), image.Pt(35, 50)},
		{"shift right", gg.Translate(30, 0), image.Pt(80, 50), image.Pt(50, 50)},
		{"shift up", gg.Translate(0, -30), image.Pt(50, 20), image.Pt(50, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurface(100, 100)
			defer s.Close()
			s.Clear()
			s.SetView(tt.view)
			if err := redSquare().Playback(s); err != nil {
				t.Fatalf("Playback: %v", err)
			}
			img := s.Image()
			if !isRed(img, tt.red.X, tt.red.Y) {
				t.Errorf("pixel %v is %v, want red", tt.red, img.At(tt.red.X, tt.red.Y))
			}
			if !isWhite(img, tt.outside.X, tt.outside.Y) {
				t.Errorf("pixel %v is %v, want background", tt.outside, img.At(tt.outside.X, tt.outside.Y))
			}
		})
	}
}

func TestSurfaceFillRectFollowsView(t *testing.T) {
	s := NewSurface(100, 100)
	defer s.Close()
	s.Clear()
	// a quarter turn about the centre maps the strip on the left onto the top
	s.SetView(gg.Translate(50, 50).Multiply(gg.Rotate(math.Pi / 2)).Multiply(gg.Translate(-50, -50)))
	if err := s.Begin(100, 100); err != nil {
		t.Fatal(err)
	}
	s.FillRect(recording.NewRect(0, 0, 20, 100), recording.NewSolidBrush(gg.RGB(1, 0, 0)))
	if err := s.End(); err != nil {
		t.Fatal(err)
	}
	img := s.Image()
	if !isRed(img, 50, 10) {
		t.Errorf("rotated strip missing at (50,10): %v", img.At(50, 10))
	}
	if !isWhite(img, 10, 50) {
		t.Errorf("unrotated strip drawn at (10,50): %v", img.At(10, 50))
	}
}

func TestSurfaceClearResetsPixels(t *testing.T) {
	s := NewSurface(100, 100)
	defer s.Close()
	if err := redSquare().Playback(s); err != nil {
		t.Fatal(err)
	}
	s.Clear()
	if img := s.Image(); !isWhite(img, 50, 50) {
		t.Errorf("pixel after Clear = %v, want background", img.At(50, 50))
	}
}

func TestSurfaceUnbalancedRestore(t *testing.T) {
	s := NewSurface(10, 10)
	defer s.Close()
	if err := s.Begin(10, 10); err != nil {
		t.Fatal(err)
	}
	s.Restore()
	if s.depth != 0 {
		t.Fatalf("depth after stray Restore = %d, want 0", s.depth)
	}
	s.Save()
	s.Save()
	if err := s.End(); err != nil {
		t.Fatal(err)
	}
	if s.depth != 0 {
		t.Errorf("depth after End = %d, want 0", s.depth)
	}
}

func TestBrushColor(t *testing.T) {
	red := gg.RGB(1, 0, 0)
	tests := []struct {
		name  string
		brush recording.Brush
		want  gg.RGBA
	}{
		{"solid", recording.NewSolidBrush(red), red},
		{"linear", recording.NewLinearGradientBrush(0, 0, 1, 1).AddColorStop(0, red), red},
		{"empty gradient", recording.NewRadialGradientBrush(0, 0, 0, 1), gg.Black},
		{"nil", nil, gg.Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := brushColor(tt.brush); got != tt.want {
				t.Errorf("brushColor() = %v, want %v", got, tt.want)
			}
		})
	}
}
