package scenes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"gopkg.in/yaml.v3"
)

// Scene is a drawing described in YAML:
//
//	width: 400
//	height: 300
//	ops:
//	  - fill_color: "#3366cc"
//	  - rect: [10, 10, 200, 100]
//	  - fill: true
//	  - translate: [200, 150]
//	  - rotate: 0.5
//	  - stroke_color: "#000"
//	  - line_width: 3
//	  - circle: [0, 0, 40]
//	  - stroke: true
//
// Each op sets exactly one field. Shapes append to the current path; fill
// and stroke consume it.
type Scene struct {
	Name   string `yaml:"name,omitempty"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Ops    []Op   `yaml:"ops"`
}

// Op is a single drawing operation.
type Op struct {
	FillColor   string     `yaml:"fill_color,omitempty"`
	StrokeColor string     `yaml:"stroke_color,omitempty"`
	LineWidth   *float64   `yaml:"line_width,omitempty"`
	Dash        *[]float64 `yaml:"dash,omitempty"` // empty clears
	FillRule    string     `yaml:"fill_rule,omitempty"`

	Rect     []float64 `yaml:"rect,omitempty"`     // x y w h
	Circle   []float64 `yaml:"circle,omitempty"`   // x y r
	Ellipse  []float64 `yaml:"ellipse,omitempty"`  // x y rx ry
	Line     []float64 `yaml:"line,omitempty"`     // x1 y1 x2 y2
	Polyline []float64 `yaml:"polyline,omitempty"` // x y pairs
	Polygon  []float64 `yaml:"polygon,omitempty"`  // x y pairs, closed

	Fill    bool `yaml:"fill,omitempty"`
	Stroke  bool `yaml:"stroke,omitempty"`
	Save    bool `yaml:"save,omitempty"`
	Restore bool `yaml:"restore,omitempty"`

	Translate []float64 `yaml:"translate,omitempty"` // x y
	Rotate    *float64  `yaml:"rotate,omitempty"`    // radians
	Scale     []float64 `yaml:"scale,omitempty"`     // sx sy
}

var errEmptyOp = errors.New("no operation set")

// Parse decodes a YAML scene and checks its shape.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas %dx%d", s.Width, s.Height)
	}
	for i, op := range s.Ops {
		if err := op.check(); err != nil {
			return nil, fmt.Errorf("op %d: %w", i, err)
		}
	}
	return &s, nil
}

// Record replays the scene into a recording.
func (s *Scene) Record() *recording.Recording {
	rec := recording.NewRecorder(s.Width, s.Height)
	for _, op := range s.Ops {
		op.apply(rec)
	}
	return rec.FinishRecording()
}

func (op *Op) check() error {
	set := 0
	count := func(ok bool) {
		if ok {
			set++
		}
	}
	count(op.FillColor != "")
	count(op.StrokeColor != "")
	count(op.LineWidth != nil)
	count(op.Dash != nil)
	count(op.FillRule != "")
	count(op.Rect != nil)
	count(op.Circle != nil)
	count(op.Ellipse != nil)
	count(op.Line != nil)
	count(op.Polyline != nil)
	count(op.Polygon != nil)
	count(op.Fill)
	count(op.Stroke)
	count(op.Save)
	count(op.Restore)
	count(op.Translate != nil)
	count(op.Rotate != nil)
	count(op.Scale != nil)
	switch {
	case set == 0:
		return errEmptyOp
	case set > 1:
		return fmt.Errorf("%d operations in one entry", set)
	}

	for _, c := range []string{op.FillColor, op.StrokeColor} {
		if c != "" && !validHex(c) {
			return fmt.Errorf("bad color %q", c)
		}
	}
	switch op.FillRule {
	case "", "nonzero", "evenodd":
	default:
		return fmt.Errorf("unknown fill rule %q", op.FillRule)
	}
	if op.LineWidth != nil && *op.LineWidth < 0 {
		return fmt.Errorf("negative line width %g", *op.LineWidth)
	}

	args := []struct {
		name string
		v    []float64
		n    int
	}{
		{"rect", op.Rect, 4},
		{"circle", op.Circle, 3},
		{"ellipse", op.Ellipse, 4},
		{"line", op.Line, 4},
		{"translate", op.Translate, 2},
		{"scale", op.Scale, 2},
	}
	for _, a := range args {
		if a.v != nil && len(a.v) != a.n {
			return fmt.Errorf("%s takes %d numbers, got %d", a.name, a.n, len(a.v))
		}
	}
	for name, v := range map[string][]float64{"polyline": op.Polyline, "polygon": op.Polygon} {
		if v != nil && (len(v) < 4 || len(v)%2 != 0) {
			return fmt.Errorf("%s needs at least two x y pairs, got %d numbers", name, len(v))
		}
	}
	return nil
}

func (op *Op) apply(rec *recording.Recorder) {
	switch {
	case op.FillColor != "":
		rec.SetFillStyle(recording.NewSolidBrush(gg.Hex(op.FillColor)))
	case op.StrokeColor != "":
		rec.SetStrokeStyle(recording.NewSolidBrush(gg.Hex(op.StrokeColor)))
	case op.LineWidth != nil:
		rec.SetLineWidth(*op.LineWidth)
	case op.Dash != nil:
		if len(*op.Dash) == 0 {
			rec.ClearDash()
		} else {
			rec.SetDash(*op.Dash...)
		}
	case op.FillRule == "evenodd":
		rec.SetFillRule(recording.FillRuleEvenOdd)
	case op.FillRule == "nonzero":
		rec.SetFillRule(recording.FillRuleNonZero)
	case op.Rect != nil:
		rec.DrawRectangle(op.Rect[0], op.Rect[1], op.Rect[2], op.Rect[3])
	case op.Circle != nil:
		rec.DrawCircle(op.Circle[0], op.Circle[1], op.Circle[2])
	case op.Ellipse != nil:
		rec.DrawEllipse(op.Ellipse[0], op.Ellipse[1], op.Ellipse[2], op.Ellipse[3])
	case op.Line != nil:
		rec.MoveTo(op.Line[0], op.Line[1])
		rec.LineTo(op.Line[2], op.Line[3])
	case op.Polyline != nil:
		points(rec, op.Polyline)
	case op.Polygon != nil:
		points(rec, op.Polygon)
		rec.ClosePath()
	case op.Fill:
		rec.Fill()
	case op.Stroke:
		rec.Stroke()
	case op.Save:
		rec.Save()
	case op.Restore:
		rec.Restore()
	case op.Translate != nil:
		rec.Translate(op.Translate[0], op.Translate[1])
	case op.Rotate != nil:
		rec.Rotate(*op.Rotate)
	case op.Scale != nil:
		rec.Scale(op.Scale[0], op.Scale[1])
	}
}

func points(rec *recording.Recorder, xy []float64) {
	rec.MoveTo(xy[0], xy[1])
	for i := 2; i+1 < len(xy); i += 2 {
		rec.LineTo(xy[i], xy[i+1])
	}
}

func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	_, err := strconv.ParseUint(s, 16, 32)
	return err == nil
}
