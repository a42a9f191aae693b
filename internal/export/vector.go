package export

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/iburimskiy/sketch-playground/internal/draw"
)

// vectorCanvas replays draw ops as SVG elements. svgo works in integer
// units, so coordinates are rounded.
type vectorCanvas struct {
	s *svg.SVG
}

func (c vectorCanvas) FillRect(x, y, w, h float64, col color.RGBA) {
	c.s.Rect(px(x), px(y), px(w), px(h), fillStyle(col))
}

func (c vectorCanvas) FillCircle(cx, cy, r float64, col color.RGBA) {
	c.s.Circle(px(cx), px(cy), max(1, px(r)), fillStyle(col))
}

func (c vectorCanvas) StrokeLine(x1, y1, x2, y2, width float64, col color.RGBA) {
	c.s.Line(px(x1), px(y1), px(x2), px(y2), strokeStyle(col, width))
}

// WriteSVG writes a single frame: the background, then the layer ops in
// order. Trails built up over earlier frames are not reproduced.
func WriteSVG(w io.Writer, fr draw.Frame, size int) error {
	ew := &errWriter{w: w}
	s := svg.New(ew)
	s.Start(size, size)
	s.Rect(0, 0, size, size, fillStyle(fr.Background))
	draw.Apply(vectorCanvas{s: s}, fr.Layer)
	s.End()
	return ew.err
}

func px(v float64) int {
	return int(math.Round(v))
}

func fillStyle(c color.RGBA) string {
	return fmt.Sprintf("fill:#%02x%02x%02x;fill-opacity:%.3f", c.R, c.G, c.B, float64(c.A)/255)
}

func strokeStyle(c color.RGBA, width float64) string {
	return fmt.Sprintf("stroke:#%02x%02x%02x;stroke-opacity:%.3f;stroke-width:%g", c.R, c.G, c.B, float64(c.A)/255, width)
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
