// Package draw describes a sketch frame as a list of surface-independent
// drawing operations. The live ebiten host and the headless exporters both
// replay the same lists.
package draw

import (
	"image/color"
)

// Kind selects which primitive an Op draws.
type Kind int

const (
	KindFillRect Kind = iota
	KindFillCircle
	KindStrokeLine
)

func (k Kind) String() string {
	switch k {
	case KindFillRect:
		return "rect"
	case KindFillCircle:
		return "circle"
	case KindStrokeLine:
		return "line"
	default:
		return "unknown"
	}
}

// Op is one drawing operation in surface pixel coordinates.
//
//	rect:   (X, Y) top-left, W x H
//	circle: (X, Y) centre, radius R
//	line:   (X, Y) to (X2, Y2), stroke width W
//
// Color carries straight (non-premultiplied) alpha.
type Op struct {
	Kind  Kind
	X, Y  float64
	X2    float64
	Y2    float64
	W, H  float64
	R     float64
	Color color.RGBA
}

func Rect(x, y, w, h float64, c color.RGBA) Op {
	return Op{Kind: KindFillRect, X: x, Y: y, W: w, H: h, Color: c}
}

// Circle takes a diameter, as p5's circle() does.
func Circle(x, y, diameter float64, c color.RGBA) Op {
	return Op{Kind: KindFillCircle, X: x, Y: y, R: diameter / 2, Color: c}
}

func Line(x1, y1, x2, y2, width float64, c color.RGBA) Op {
	return Op{Kind: KindStrokeLine, X: x1, Y: y1, X2: x2, Y2: y2, W: width, Color: c}
}

// Frame is the output of advancing a sketch by one frame. Background clears
// the visible surface; Layer is stamped onto the accumulation layer in order
// and the layer is then composited over the background.
type Frame struct {
	Index      int
	Background color.RGBA
	Layer      []Op
}

// Canvas is anything a frame can be replayed onto.
type Canvas interface {
	FillRect(x, y, w, h float64, c color.RGBA)
	FillCircle(cx, cy, r float64, c color.RGBA)
	StrokeLine(x1, y1, x2, y2, width float64, c color.RGBA)
}

// Apply replays ops onto c in order.
func Apply(c Canvas, ops []Op) {
	for _, op := range ops {
		switch op.Kind {
		case KindFillRect:
			c.FillRect(op.X, op.Y, op.W, op.H, op.Color)
		case KindFillCircle:
			c.FillCircle(op.X, op.Y, op.R, op.Color)
		case KindStrokeLine:
			c.StrokeLine(op.X, op.Y, op.X2, op.Y2, op.W, op.Color)
		}
	}
}
