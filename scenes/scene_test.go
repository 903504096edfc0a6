package scenes

import (
	"strings"
	"testing"

	"github.com/gogpu/gg/recording"
)

const sampleScene = `
name: sample
width: 400
height: 300
ops:
  - fill_color: "#3366cc"
  - rect: [10, 10, 200, 100]
  - fill: true
  - save: true
  - translate: [200, 150]
  - rotate: 0.5
  - stroke_color: "#000"
  - line_width: 3
  - dash: [4, 2]
  - circle: [0, 0, 40]
  - stroke: true
  - dash: []
  - restore: true
  - fill_rule: evenodd
  - polygon: [0, 0, 50, 0, 25, 40]
  - fill: true
  - polyline: [0, 0, 10, 10, 20, 0]
  - ellipse: [100, 100, 30, 10]
  - line: [0, 0, 400, 300]
  - stroke: true
  - scale: [2, 2]
`

func TestParseScene(t *testing.T) {
	s, err := Parse([]byte(sampleScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Name != "sample" || s.Width != 400 || s.Height != 300 {
		t.Errorf("header = %q %dx%d", s.Name, s.Width, s.Height)
	}
	if len(s.Ops) != 21 {
		t.Fatalf("len(Ops) = %d, want 21", len(s.Ops))
	}

	rec := s.Record()
	var fills, strokes, saves int
	for _, c := range rec.Commands() {
		switch c.(type) {
		case recording.FillPathCommand:
			fills++
		case recording.StrokePathCommand:
			strokes++
		case recording.SaveCommand:
			saves++
		}
	}
	if fills != 2 || strokes != 2 || saves != 1 {
		t.Errorf("fills=%d strokes=%d saves=%d, want 2 2 1", fills, strokes, saves)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"not yaml", "width: [", ""},
		{"no canvas", "ops: []", "invalid canvas"},
		{"empty op", "width: 1\nheight: 1\nops:\n  - {}", "no operation"},
		{"two ops", "width: 1\nheight: 1\nops:\n  - {fill: true, stroke: true}", "2 operations"},
		{"bad color", "width: 1\nheight: 1\nops:\n  - fill_color: red", "bad color"},
		{"bad rect", "width: 1\nheight: 1\nops:\n  - rect: [1, 2, 3]", "rect takes 4"},
		{"odd polygon", "width: 1\nheight: 1\nops:\n  - polygon: [1, 2, 3]", "polygon needs"},
		{"fill rule", "width: 1\nheight: 1\nops:\n  - fill_rule: winding", "unknown fill rule"},
		{"negative width", "width: 1\nheight: 1\nops:\n  - line_width: -1", "negative line width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse succeeded")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidHex(t *testing.T) {
	for s, want := range map[string]bool{
		"#fff": true, "ffff": true, "#a1b2c3": true, "#a1b2c3d4": true,
		"#ggg": false, "": false, "#12345": false,
	} {
		if got := validHex(s); got != want {
			t.Errorf("validHex(%q) = %v, want %v", s, got, want)
		}
	}
}
