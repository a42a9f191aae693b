// Package export renders sketches without a window: raster output through
// gg and vector output through svgo.
package export

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/iburimskiy/sketch-playground/internal/draw"
	"github.com/iburimskiy/sketch-playground/internal/sketch"
)

// rasterCanvas replays draw ops onto a gg context.
type rasterCanvas struct {
	dc *gg.Context
}

func (c rasterCanvas) FillRect(x, y, w, h float64, col color.RGBA) {
	c.dc.SetColor(draw.Premultiplied(col))
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

func (c rasterCanvas) FillCircle(cx, cy, r float64, col color.RGBA) {
	c.dc.SetColor(draw.Premultiplied(col))
	c.dc.DrawCircle(cx, cy, r)
	c.dc.Fill()
}

func (c rasterCanvas) StrokeLine(x1, y1, x2, y2, width float64, col color.RGBA) {
	c.dc.SetColor(draw.Premultiplied(col))
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
}

// Render advances inst frames times on a size x size surface and returns the
// composited result together with the last frame. Layer ops accumulate
// across frames exactly as they do in the live host.
func Render(inst sketch.Instance, size, frames int) (image.Image, draw.Frame) {
	layer := gg.NewContext(size, size)
	inst.Reset(size)

	var last draw.Frame
	for i := 0; i < frames; i++ {
		last = inst.Advance(size)
		draw.Apply(rasterCanvas{dc: layer}, last.Layer)
	}

	out := gg.NewContext(size, size)
	out.SetColor(draw.Premultiplied(last.Background))
	out.Clear()
	out.DrawImage(layer.Image(), 0, 0)
	return out.Image(), last
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}
