package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/sketch-playground/internal/draw"
)

// Surface is the drawing surface of the active sketch: the visible image and
// the offscreen accumulation layer that keeps trails between frames.
type Surface struct {
	visible *ebiten.Image
	layer   *ebiten.Image
	size    int
	stamped int // ops drawn onto layer since it was allocated
}

// NewSurface allocates a square surface with an empty layer.
func NewSurface(size int) *Surface {
	s := &Surface{}
	s.Recreate(size)
	return s
}

// Size returns the side length in pixels.
func (s *Surface) Size() int { return s.size }

// Stamped returns how many ops the current layer holds.
func (s *Surface) Stamped() int { return s.stamped }

// Recreate throws away both images and allocates new ones. Accumulated
// trails are lost.
func (s *Surface) Recreate(size int) {
	s.Dispose()
	s.visible = ebiten.NewImage(size, size)
	s.layer = ebiten.NewImage(size, size)
	s.size = size
}

// Dispose releases the images.
func (s *Surface) Dispose() {
	if s.visible != nil {
		s.visible.Deallocate()
		s.visible = nil
	}
	if s.layer != nil {
		s.layer.Deallocate()
		s.layer = nil
	}
	s.size = 0
	s.stamped = 0
}

// Stamp draws ops onto the accumulation layer.
func (s *Surface) Stamp(ops []draw.Op) {
	if s.layer == nil {
		return
	}
	draw.Apply(imageCanvas{dst: s.layer}, ops)
	s.stamped += len(ops)
}

// Composite clears the visible image to bg and draws the layer over it with
// ordinary source-over blending.
func (s *Surface) Composite(bg color.RGBA) *ebiten.Image {
	if s.visible == nil {
		return nil
	}
	s.visible.Fill(draw.Premultiplied(bg))
	s.visible.DrawImage(s.layer, &ebiten.DrawImageOptions{})
	return s.visible
}

// imageCanvas replays draw ops onto an ebiten image with the vector package.
type imageCanvas struct {
	dst *ebiten.Image
}

func (c imageCanvas) FillRect(x, y, w, h float64, col color.RGBA) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), draw.Premultiplied(col), false)
}

func (c imageCanvas) FillCircle(cx, cy, r float64, col color.RGBA) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), draw.Premultiplied(col), true)
}

func (c imageCanvas) StrokeLine(x1, y1, x2, y2, width float64, col color.RGBA) {
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), draw.Premultiplied(col), true)
}
