package sketch

import (
	"math"

	"github.com/iburimskiy/sketch-playground/internal/draw"
	"github.com/iburimskiy/sketch-playground/internal/noise"
	"github.com/iburimskiy/sketch-playground/internal/params"
)

var (
	paperBackground = draw.MustHex("#f4efe6")
	printInk        = draw.MustHex("#1b1b1b")
)

const printInkAlpha = 200

var PrintParams = params.Defs{
	{Name: "lineCount", Min: 4, Max: 60, Step: 1, Default: 24},
	{Name: "jitter", Min: 0, Max: 40, Step: 1, Default: 12},
	{Name: "noiseScale", Min: 0.001, Max: 0.05, Step: 0.001, Default: 0.01},
	{Name: "speed", Min: 0.1, Max: 4, Step: 0.1, Default: 1},
	{Name: "strokeWeight", Min: 0.5, Max: 3, Step: 0.5, Default: 1},
	{Name: "trailTransparency", Min: 0, Max: 255, Step: 1, Default: 0},
}

// NewPrint builds the plotter hatch sketch.
var NewPrint Factory = newStateless(PrintFrame)

// PrintFrame advances a pen across the surface, drawing one short segment per
// hatch line. Each pass over the width shifts the noise so later passes land
// beside the earlier ones, which build up like ink when the trail is 0.
func PrintFrame(frame int, store params.Store, size int, field *noise.Field) draw.Frame {
	lines := store.Int("lineCount")
	jitter := store.Get("jitter")
	scale := store.Get("noiseScale")
	speed := store.Get("speed")
	weight := store.Get("strokeWeight")

	var ops []draw.Op
	if trail := store.Get("trailTransparency"); trail >= 1 {
		ops = append(ops, fade(size, trail))
	}

	s := float64(size)
	if s <= 0 || lines <= 0 || speed <= 0 {
		return draw.Frame{Index: frame, Background: paperBackground, Layer: ops}
	}

	x0 := float64(frame-1) * speed
	x1 := x0 + speed
	pass0 := math.Floor(x0 / s)
	pass1 := math.Floor(x1 / s)
	if pass0 != pass1 {
		// The segment would straddle the right edge; start the next pass.
		return draw.Frame{Index: frame, Background: paperBackground, Layer: ops}
	}
	px0 := x0 - pass0*s
	px1 := x1 - pass0*s

	ink := draw.WithAlpha(printInk, printInkAlpha)
	gap := s / float64(lines+1)
	for k := 0; k < lines; k++ {
		base := gap * float64(k+1)
		y0 := base + (field.At2(px0*scale, float64(k)+pass0*7.3)-0.5)*2*jitter
		y1 := base + (field.At2(px1*scale, float64(k)+pass0*7.3)-0.5)*2*jitter
		ops = append(ops, draw.Line(px0, y0, px1, y1, weight, ink))
	}

	return draw.Frame{Index: frame, Background: paperBackground, Layer: ops}
}
