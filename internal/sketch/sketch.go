// Package sketch holds the interchangeable drawing routines and the registry
// that orders them. A sketch reads its parameter store once per frame and
// returns the frame as draw operations; it never touches a real surface.
package sketch

import (
	"github.com/iburimskiy/sketch-playground/internal/draw"
	"github.com/iburimskiy/sketch-playground/internal/noise"
	"github.com/iburimskiy/sketch-playground/internal/params"
)

// Instance is one running sketch bound to a store.
type Instance interface {
	// Advance increments the frame counter and returns the next frame for a
	// square surface of the given side length.
	Advance(size int) draw.Frame
	// Reset is called when the surface is recreated at a new size.
	Reset(size int)
}

// Factory builds an instance reading from store. The seed fixes the noise
// field so runs are reproducible.
type Factory func(store params.Store, seed int64) Instance

// frameFunc is the pure advance step most sketches are built from.
type frameFunc func(frame int, store params.Store, size int, field *noise.Field) draw.Frame

// stateless adapts a frameFunc into an Instance; its only state is the frame
// counter.
type stateless struct {
	store params.Store
	field *noise.Field
	frame int
	fn    frameFunc
}

func newStateless(fn frameFunc) Factory {
	return func(store params.Store, seed int64) Instance {
		return &stateless{store: store, field: noise.New(seed), fn: fn}
	}
}

func (s *stateless) Advance(size int) draw.Frame {
	s.frame++
	return s.fn(s.frame, s.store, size, s.field)
}

func (s *stateless) Reset(int) {}

// fade is the translucent overpaint that turns the layer into trails.
func fade(size int, trail float64) draw.Op {
	c := draw.MustHex("#000000" + draw.AlphaHex(trail))
	return draw.Rect(0, 0, float64(size), float64(size), c)
}
