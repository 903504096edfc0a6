package scenes

import (
	"math"
	"math/rand/v2"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// Canvas sizes of the built-in scenes. The map is larger than the default
// window so it exercises view centering.
const (
	shapesWidth  = 800
	shapesHeight = 600
	gridWidth    = 1600
	gridHeight   = 900
	mapWidth     = 2400
	mapHeight    = 1600

	// MapSeed seeds the map generator so every run draws the same map.
	MapSeed = 512
)

func init() {
	Register("circles", Circles)
	Register("ellipses-fill", func() *recording.Recording { return Ellipses(true) })
	Register("ellipses-stroke", func() *recording.Recording { return Ellipses(false) })
	Register("shapes", Shapes)
	Register("map", func() *recording.Recording { return Map(MapSeed) })
}

// Circles fills a grid of translucent circles.
func Circles() *recording.Recording {
	rec := recording.NewRecorder(gridWidth, gridHeight)
	const step = 40.0
	i := 0
	for y := step / 2; y < gridHeight; y += step {
		for x := step / 2; x < gridWidth; x += step {
			rec.SetColor(gg.HSL(float64(i%24)*15, 0.7, 0.5))
			rec.DrawCircle(x, y, step*0.45)
			rec.Fill()
			i++
		}
	}
	return rec.FinishRecording()
}

// Ellipses draws rotated ellipses around the canvas centre, filled or
// stroked.
func Ellipses(fill bool) *recording.Recording {
	rec := recording.NewRecorder(gridWidth, gridHeight)
	cx, cy := gridWidth/2.0, gridHeight/2.0
	rec.SetLineWidth(2)
	const n = 180
	for i := 0; i < n; i++ {
		t := float64(i) / n
		rec.Push()
		rec.Translate(cx, cy)
		rec.Rotate(t * math.Pi)
		rec.DrawEllipse(0, 0, 60+t*380, 20+t*120)
		if fill {
			c := gg.HSL(t*360, 0.8, 0.5)
			c.A = 0.15
			rec.SetColor(c)
			rec.Fill()
		} else {
			rec.SetColor(gg.HSL(t*360, 0.8, 0.4))
			rec.Stroke()
		}
		rec.Pop()
	}
	return rec.FinishRecording()
}

// Shapes records a mix of circles, rectangles, rotated squares, curves and
// a star.
func Shapes() *recording.Recording {
	rec := recording.NewRecorder(shapesWidth, shapesHeight)

	const bands = 100
	for i := 0; i < bands; i++ {
		t := float64(i) / bands
		rec.SetColor(gg.RGB(0.1+t*0.4, 0.2+t*0.3, 0.4+t*0.2))
		rec.DrawRectangle(0, shapesHeight*t, shapesWidth, shapesHeight/bands+1)
		rec.Fill()
	}

	for _, c := range []struct{ x, y, r, g, b float64 }{
		{150, 150, 1, 0.3, 0.3},
		{200, 150, 0.3, 1, 0.3},
		{175, 200, 0.3, 0.3, 1},
	} {
		rec.SetRGBA(c.r, c.g, c.b, 0.8)
		rec.DrawCircle(c.x, c.y, 60)
		rec.Fill()
	}

	rec.SetRGB(1, 0.8, 0)
	rec.DrawRoundedRectangle(350, 100, 120, 80, 15)
	rec.Fill()
	rec.SetRGB(1, 1, 1)
	rec.SetLineWidth(4)
	rec.DrawRectangle(350, 100, 120, 80)
	rec.Stroke()

	for i := 0; i < 8; i++ {
		rec.Push()
		rec.Translate(600, 150)
		rec.Rotate(float64(i) * math.Pi / 4)
		rec.SetColor(gg.HSL(float64(i)*45, 0.8, 0.6))
		rec.DrawRectangle(-30, -30, 60, 60)
		rec.Fill()
		rec.Pop()
	}

	rec.Push()
	rec.Translate(150, 400)
	rec.SetRGB(1, 0.5, 0)
	rec.MoveTo(0, 0)
	rec.CubicTo(50, -50, 100, 50, 150, 0)
	rec.CubicTo(200, -30, 250, 30, 300, 0)
	rec.SetLineWidth(6)
	rec.Stroke()

	rec.Translate(400, 0)
	rec.SetRGB(1, 1, 0)
	const points = 5
	for i := 0; i < points*2; i++ {
		r := 60.0
		if i%2 == 1 {
			r = 30
		}
		a := float64(i)*math.Pi/points - math.Pi/2
		if i == 0 {
			rec.MoveTo(r*math.Cos(a), r*math.Sin(a))
		} else {
			rec.LineTo(r*math.Cos(a), r*math.Sin(a))
		}
	}
	rec.ClosePath()
	rec.Fill()
	rec.Pop()

	return rec.FinishRecording()
}

// Map records a synthetic map layer: land blocks, water polygons and a
// road network of dashed and solid polylines. The same seed gives the same
// recording.
func Map(seed uint64) *recording.Recording {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	rec := recording.NewRecorder(mapWidth, mapHeight)

	rec.SetColor(gg.Hex("#f2efe9"))
	rec.DrawRectangle(0, 0, mapWidth, mapHeight)
	rec.Fill()

	for i := 0; i < 400; i++ {
		x := rng.Float64() * mapWidth
		y := rng.Float64() * mapHeight
		polygon(rec, rng, x, y, 20+rng.Float64()*60, 4+rng.IntN(5))
		rec.SetColor(gg.Hex("#d9d0c9"))
		rec.Fill()
	}

	rec.SetFillRule(recording.FillRuleEvenOdd)
	for i := 0; i < 12; i++ {
		x := rng.Float64() * mapWidth
		y := rng.Float64() * mapHeight
		polygon(rec, rng, x, y, 80+rng.Float64()*160, 12+rng.IntN(12))
		rec.SetColor(gg.Hex("#aad3df"))
		rec.Fill()
	}
	rec.SetFillRule(recording.FillRuleNonZero)

	roads := []struct {
		n     int
		width float64
		color string
		dash  []float64
	}{
		{300, 1.5, "#ffffff", nil},
		{80, 4, "#f7fabf", nil},
		{20, 7, "#e892a2", nil},
		{15, 2, "#555555", []float64{8, 6}},
	}
	for _, r := range roads {
		rec.SetLineWidth(r.width)
		if r.dash != nil {
			rec.SetDash(r.dash...)
		} else {
			rec.ClearDash()
		}
		rec.SetColor(gg.Hex(r.color))
		for i := 0; i < r.n; i++ {
			x := rng.Float64() * mapWidth
			y := rng.Float64() * mapHeight
			rec.MoveTo(x, y)
			for j := 0; j < 6; j++ {
				x += (rng.Float64() - 0.5) * 300
				y += (rng.Float64() - 0.5) * 300
				rec.LineTo(x, y)
			}
			rec.Stroke()
		}
	}
	rec.ClearDash()

	return rec.FinishRecording()
}

func polygon(rec *recording.Recorder, rng *rand.Rand, cx, cy, radius float64, sides int) {
	for i := 0; i < sides; i++ {
		a := 2 * math.Pi * float64(i) / float64(sides)
		r := radius * (0.6 + 0.4*rng.Float64())
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		if i == 0 {
			rec.MoveTo(x, y)
		} else {
			rec.LineTo(x, y)
		}
	}
	rec.ClosePath()
}
