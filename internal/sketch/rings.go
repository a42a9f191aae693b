package sketch

import (
	"math"

	"github.com/iburimskiy/sketch-playground/internal/draw"
	"github.com/iburimskiy/sketch-playground/internal/noise"
	"github.com/iburimskiy/sketch-playground/internal/params"
)

// RingSamples is the number of angles sampled over the half turn.
const RingSamples = 85

const ringDotDiameter = 5

var (
	ringBackground = draw.MustHex("#050818")
	ringFrom       = draw.MustHex("#151E3F")
	ringTo         = draw.MustHex("#2C8C99")
)

// RingParams are the tunables of the mirrored ring sketch. Some are only
// surfaced as sliders and not read by the frame routine.
var RingParams = params.Defs{
	{Name: "timeMultiplier", Min: 0, Max: 0.01, Step: 0.00001, Default: 0.0003},
	{Name: "amplitude", Min: 0, Max: 200, Step: 1, Default: 150},
	{Name: "noiseSize", Min: 0, Max: 100, Step: 1, Default: 80},
	{Name: "noiseScale", Min: 0, Max: 0.1, Step: 0.0001, Default: 0.0026},
	{Name: "noiseDetailOctave", Min: 0, Max: 10, Step: 1, Default: 2},
	{Name: "noiseDetailFalloff", Min: 0, Max: 1, Step: 0.05, Default: 0.5},
	{Name: "innerRingSize", Min: 0, Max: 1, Step: 0.01, Default: 0.6},
	{Name: "outerRingSize", Min: 0, Max: 1, Step: 0.01, Default: 0.75},
	{Name: "bgTransparency", Min: 0, Max: 255, Step: 1, Default: 200},
	{Name: "trailTransparency", Min: 0, Max: 255, Step: 1, Default: 5},
}

// NewRings builds the mirrored ring sketch.
var NewRings Factory = newStateless(RingFrame)

// RingFrame computes frame number frame of the ring sketch. For a given
// field seed the output depends only on its arguments.
//
// The layer first receives a black fade rectangle whose alpha is the trail
// transparency, then two dots per sampled angle: one at (r sin a, r cos a)
// from the centre and its mirror across the vertical axis. The radius is the
// amplitude pushed outward by noise, and each dot is tinted by a second,
// faster noise sample.
func RingFrame(frame int, store params.Store, size int, field *noise.Field) draw.Frame {
	field.Detail(store.Int("noiseDetailOctave"), store.Get("noiseDetailFalloff"))

	amplitude := store.Get("amplitude")
	noiseSize := store.Get("noiseSize")
	cx := float64(size) / 2
	cy := float64(size) / 2

	ops := make([]draw.Op, 0, 1+2*RingSamples)
	ops = append(ops, fade(size, store.Get("trailTransparency")))

	f := float64(frame)
	delta := math.Pi / RingSamples
	for i := 0; i < RingSamples; i++ {
		angle := float64(i) * delta
		n := field.At1(f*0.01 - angle)
		r := amplitude + math.Abs(n)*noiseSize

		x1 := cx + r*math.Sin(angle)
		y1 := cy + r*math.Cos(angle)
		x2 := cx - r*math.Sin(angle)
		y2 := y1

		c1 := draw.Lerp(ringFrom, ringTo, 0.2+math.Abs(field.At1(f*0.08-angle)))
		c2 := draw.Lerp(ringFrom, ringTo, 0.2+math.Abs(field.At1(f*0.08+angle+math.Pi)))

		ops = append(ops,
			draw.Circle(x1, y1, ringDotDiameter, c1),
			draw.Circle(x2, y2, ringDotDiameter, c2),
		)
	}

	return draw.Frame{Index: frame, Background: ringBackground, Layer: ops}
}
