package sketch

import (
	"math"

	"github.com/iburimskiy/sketch-playground/internal/draw"
	"github.com/iburimskiy/sketch-playground/internal/noise"
	"github.com/iburimskiy/sketch-playground/internal/params"
)

var (
	waterBackground = draw.MustHex("#02121c")
	waterDeep       = draw.MustHex("#0a3d62")
	waterFoam       = draw.MustHex("#c7ecee")
)

// waterSpacing is the horizontal distance between dots on one wave.
const waterSpacing = 6

var WaterParams = params.Defs{
	{Name: "waveCount", Min: 1, Max: 12, Step: 1, Default: 5},
	{Name: "amplitude", Min: 0, Max: 100, Step: 1, Default: 40},
	{Name: "noiseScale", Min: 0, Max: 0.05, Step: 0.0005, Default: 0.01},
	{Name: "speed", Min: 0, Max: 0.05, Step: 0.001, Default: 0.01},
	{Name: "dotSize", Min: 1, Max: 10, Step: 0.5, Default: 3},
	{Name: "trailTransparency", Min: 0, Max: 255, Step: 1, Default: 12},
}

// NewWater builds the stacked wave sketch.
var NewWater Factory = newStateless(WaterFrame)

// WaterFrame lays waveCount horizontal waves over the surface. Each wave is a
// sine displaced by noise and sampled as dots; brighter dots sit where the
// noise is high.
func WaterFrame(frame int, store params.Store, size int, field *noise.Field) draw.Frame {
	waves := store.Int("waveCount")
	amplitude := store.Get("amplitude")
	scale := store.Get("noiseScale")
	t := float64(frame) * store.Get("speed")
	dot := store.Get("dotSize")

	ops := []draw.Op{fade(size, store.Get("trailTransparency"))}
	if waves <= 0 {
		return draw.Frame{Index: frame, Background: waterBackground, Layer: ops}
	}

	s := float64(size)
	for k := 0; k < waves; k++ {
		base := s * float64(k+1) / float64(waves+1)
		for x := 0.0; x < s; x += waterSpacing {
			n := field.At3(x*scale, float64(k)*0.3, t)
			y := base + math.Sin(x*0.02+t*3+float64(k))*amplitude*0.5 + (n-0.5)*amplitude
			ops = append(ops, draw.Circle(x, y, dot, draw.Lerp(waterDeep, waterFoam, n)))
		}
	}

	return draw.Frame{Index: frame, Background: waterBackground, Layer: ops}
}
