//go:build raylib

package driver

import (
	"context"
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gogpu/ggbench/bench"
	"github.com/gogpu/ggbench/playback"
)

// Window shows a surface in a raylib window and paces frames with the
// display.
type Window struct {
	Title string
	// FPS is passed to SetTargetFPS. Zero leaves the rate unlimited.
	FPS     int
	Surface *playback.Surface
}

// NewWindow returns a window driver for s.
func NewWindow(title string, fps int, s *playback.Surface) *Window {
	return &Window{Title: title, FPS: fps, Surface: s}
}

// Run opens the window and calls fn once per frame until it returns true,
// the window is closed or ctx is done.
func (w *Window) Run(ctx context.Context, fn Frame) (int, error) {
	width, height := w.Surface.Size()

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), w.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(w.FPS))

	img := rl.GenImageColor(width, height, rl.White)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(tex)

	pixels := make([]color.RGBA, width*height)
	clock := bench.NewSystemClock()
	prev := clock.Nanotime()
	frames := 0
	for !rl.WindowShouldClose() {
		if err := ctx.Err(); err != nil {
			return frames, err
		}
		now := clock.Nanotime()
		frames++
		done := fn(now, now-prev)
		prev = now

		copyPixels(pixels, w.Surface.Image(), width, height)
		rl.UpdateTexture(tex, pixels)
		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		rl.DrawTexture(tex, 0, 0, rl.White)
		rl.EndDrawing()

		if done {
			return frames, nil
		}
	}
	return frames, nil
}

func copyPixels(dst []color.RGBA, src image.Image, width, height int) {
	if rgba, ok := src.(*image.RGBA); ok {
		for y := 0; y < height; y++ {
			row := rgba.Pix[y*rgba.Stride:]
			for x := 0; x < width; x++ {
				i := x * 4
				dst[y*width+x] = color.RGBA{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}
			}
		}
		return
	}
	b := src.Bounds()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dst[y*width+x] = color.RGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
		}
	}
}
