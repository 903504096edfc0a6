package playback

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD draws a "Frame rate" label in the top-left corner of a surface. The
// rate itself comes from the caller, usually bench.Bench.FrameRate.
type HUD struct {
	source *text.FontSource
	face   text.Face
	size   float64
	color  gg.RGBA
}

// NewHUD loads the Go Regular font at size points.
func NewHUD(size float64) (*HUD, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("playback: load hud font: %w", err)
	}
	return &HUD{source: src, face: src.Face(size), size: size, color: gg.Black}, nil
}

// Label returns the text drawn for fps.
func Label(fps int) string {
	return fmt.Sprintf("Frame rate: %d", fps)
}

// Face returns the HUD font face.
func (h *HUD) Face() text.Face { return h.face }

// Draw renders the label for fps onto s in device space.
func (h *HUD) Draw(s *Surface, fps int) {
	ctx := s.Context()
	ctx.Push()
	defer ctx.Pop()
	ctx.Identity()
	ctx.SetFont(h.face)
	ctx.SetColor(h.color.Color())
	ctx.DrawString(Label(fps), 8, 8+h.size)
}

// Close releases the font source.
func (h *HUD) Close() error {
	return h.source.Close()
}
