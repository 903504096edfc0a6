package playback

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/ggbench/bench"
)

// Background is the color Clear paints when no other color was set.
var Background = gg.White

// Surface is a recording.Backend drawing onto one long-lived gg.Context.
// It is not safe for concurrent use.
type Surface struct {
	ctx        *gg.Context
	width      int
	height     int
	view       gg.Matrix
	depth      int
	background gg.RGBA
	face       text.Face
	err        error
}

var _ recording.Backend = (*Surface)(nil)

// NewSurface allocates a surface of the given size.
func NewSurface(width, height int, opts ...gg.ContextOption) *Surface {
	return &Surface{
		ctx:        gg.NewContext(width, height, opts...),
		width:      width,
		height:     height,
		view:       gg.Identity(),
		background: Background,
	}
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// SetView sets the matrix applied to all geometry played back afterwards.
func (s *Surface) SetView(m gg.Matrix) {
	s.view = m
}

// View returns the current view matrix.
func (s *Surface) View() gg.Matrix {
	return s.view
}

// SetBackground sets the color used by Clear.
func (s *Surface) SetBackground(c gg.RGBA) {
	s.background = c
}

// SetFont sets the face used for recorded text. Without one, text commands
// are skipped.
func (s *Surface) SetFont(face text.Face) {
	s.face = face
}

// Clear paints the whole surface with the background color and drops any
// clip left over from the previous frame.
func (s *Surface) Clear() {
	s.ctx.ResetClip()
	s.ctx.ClearWithColor(s.background)
}

// Context returns the underlying context, for overlays such as the HUD.
func (s *Surface) Context() *gg.Context {
	return s.ctx
}

// Image returns the current pixels. A failed GPU flush is logged and the
// pixels as they stand are returned.
func (s *Surface) Image() image.Image {
	if err := s.ctx.FlushGPU(); err != nil {
		bench.Logger().Warn("gpu flush failed", "err", err)
	}
	return s.ctx.Image()
}

// Flush submits pending GPU work, if any.
func (s *Surface) Flush() error {
	return s.ctx.FlushGPU()
}

// Close releases the context.
func (s *Surface) Close() error {
	return s.ctx.Close()
}

// Begin starts a playback. The context is kept; only the state stack and
// the error of the previous playback are reset. The recording size is
// ignored since the view decides where the recording lands.
func (s *Surface) Begin(_, _ int) error {
	s.unwind()
	s.err = nil
	s.ctx.Identity()
	return nil
}

// End unwinds unbalanced saves and reports the first drawing error of the
// playback.
func (s *Surface) End() error {
	s.unwind()
	return s.err
}

// Save pushes the graphics state.
func (s *Surface) Save() {
	s.ctx.Push()
	s.depth++
}

// Restore pops the graphics state. Restores without a matching Save are
// ignored.
func (s *Surface) Restore() {
	if s.depth == 0 {
		return
	}
	s.ctx.Pop()
	s.depth--
}

// SetTransform is a no-op: recorded geometry is already in world space.
func (s *Surface) SetTransform(recording.Matrix) {}

// SetClip intersects the clip with path.
func (s *Surface) SetClip(path *gg.Path, rule recording.FillRule) {
	if path == nil {
		return
	}
	s.ctx.SetFillRule(convertFillRule(rule))
	s.setPath(path)
	s.ctx.Clip()
}

// ClearClip removes the clip.
func (s *Surface) ClearClip() {
	s.ctx.ResetClip()
}

// FillPath fills path with brush.
func (s *Surface) FillPath(path *gg.Path, brush recording.Brush, rule recording.FillRule) {
	if path == nil {
		return
	}
	s.ctx.SetFillBrush(gg.Solid(brushColor(brush)))
	s.ctx.SetFillRule(convertFillRule(rule))
	s.setPath(path)
	s.check(s.ctx.Fill())
}

// StrokePath strokes path with brush.
func (s *Surface) StrokePath(path *gg.Path, brush recording.Brush, stroke recording.Stroke) {
	if path == nil {
		return
	}
	s.ctx.SetStrokeBrush(gg.Solid(brushColor(brush)))
	s.applyStroke(stroke)
	s.setPath(path)
	s.check(s.ctx.Stroke())
}

// FillRect fills rect. The rectangle goes through the view like any other
// path so it rotates with the scene.
func (s *Surface) FillRect(rect recording.Rect, brush recording.Brush) {
	p := gg.NewPath()
	p.Rectangle(rect.MinX, rect.MinY, rect.Width(), rect.Height())
	s.FillPath(p, brush, recording.FillRuleNonZero)
}

// DrawImage is not supported; scenes carry vector content only.
func (s *Surface) DrawImage(image.Image, recording.Rect, recording.Rect, recording.ImageOptions) {}

// DrawText draws s at the view-transformed baseline origin.
func (s *Surface) DrawText(str string, x, y float64, face text.Face, brush recording.Brush) {
	if face == nil {
		face = s.face
	}
	if face == nil {
		return
	}
	pt := s.view.TransformPoint(gg.Pt(x, y))
	s.ctx.SetFont(face)
	s.ctx.SetColor(brushColor(brush).Color())
	s.ctx.DrawString(str, pt.X, pt.Y)
}

func (s *Surface) check(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

func (s *Surface) unwind() {
	for s.depth > 0 {
		s.ctx.Pop()
		s.depth--
	}
}

// setPath replaces the context path with path mapped through the view.
// The context transform stays at identity.
func (s *Surface) setPath(path *gg.Path) {
	if !s.view.IsIdentity() {
		path = path.Transform(s.view)
	}
	s.ctx.Identity()
	s.ctx.ClearPath()
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			s.ctx.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			s.ctx.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			s.ctx.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			s.ctx.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			s.ctx.ClosePath()
		}
	}
}

func (s *Surface) applyStroke(stroke recording.Stroke) {
	s.ctx.SetLineWidth(stroke.Width)
	s.ctx.SetLineCap(convertLineCap(stroke.Cap))
	s.ctx.SetLineJoin(convertLineJoin(stroke.Join))
	s.ctx.SetMiterLimit(stroke.MiterLimit)
	if len(stroke.DashPattern) > 0 {
		s.ctx.SetDash(stroke.DashPattern...)
		s.ctx.SetDashOffset(stroke.DashOffset)
	} else {
		s.ctx.ClearDash()
	}
}

// brushColor flattens a recorded brush to one color. Gradients use their
// first stop; anything else is black.
func brushColor(brush recording.Brush) gg.RGBA {
	switch br := brush.(type) {
	case recording.SolidBrush:
		return br.Color
	case *recording.LinearGradientBrush:
		return firstStop(br.Stops)
	case *recording.RadialGradientBrush:
		return firstStop(br.Stops)
	case *recording.SweepGradientBrush:
		return firstStop(br.Stops)
	}
	return gg.Black
}

func firstStop(stops []recording.GradientStop) gg.RGBA {
	if len(stops) == 0 {
		return gg.Black
	}
	return stops[0].Color
}

func convertFillRule(rule recording.FillRule) gg.FillRule {
	if rule == recording.FillRuleEvenOdd {
		return gg.FillRuleEvenOdd
	}
	return gg.FillRuleNonZero
}

func convertLineCap(c recording.LineCap) gg.LineCap {
	switch c {
	case recording.LineCapRound:
		return gg.LineCapRound
	case recording.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func convertLineJoin(j recording.LineJoin) gg.LineJoin {
	switch j {
	case recording.LineJoinRound:
		return gg.LineJoinRound
	case recording.LineJoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}
