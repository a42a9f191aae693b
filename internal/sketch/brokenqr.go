package sketch

import (
	"github.com/iburimskiy/sketch-playground/internal/draw"
	"github.com/iburimskiy/sketch-playground/internal/noise"
	"github.com/iburimskiy/sketch-playground/internal/params"
)

var (
	qrBackground = draw.MustHex("#ffffff")
	qrDark       = draw.MustHex("#111111")
	qrBroken     = draw.MustHex("#c2185b")
)

// finderSize is the side of a QR finder pattern in modules.
const finderSize = 7

var QRParams = params.Defs{
	{Name: "modules", Min: 21, Max: 41, Step: 4, Default: 25},
	{Name: "threshold", Min: 0, Max: 1, Step: 0.01, Default: 0.5},
	{Name: "breakage", Min: 0, Max: 1, Step: 0.01, Default: 0.25},
	{Name: "drift", Min: 0, Max: 30, Step: 1, Default: 8},
	{Name: "speed", Min: 0, Max: 0.05, Step: 0.001, Default: 0.01},
	{Name: "trailTransparency", Min: 0, Max: 255, Step: 1, Default: 40},
}

// NewBrokenQR builds the broken QR code sketch.
var NewBrokenQR Factory = newStateless(BrokenQRFrame)

// BrokenQRFrame draws a QR-like grid: three finder patterns and a static
// noise-chosen data area. Modules where a slow time-varying noise falls below
// the breakage level are knocked out of place and tinted.
func BrokenQRFrame(frame int, store params.Store, size int, field *noise.Field) draw.Frame {
	n := store.Int("modules")
	threshold := store.Get("threshold")
	breakage := store.Get("breakage")
	drift := store.Get("drift")
	t := float64(frame) * store.Get("speed")

	ops := []draw.Op{fade(size, store.Get("trailTransparency"))}
	if n <= 0 {
		return draw.Frame{Index: frame, Background: qrBackground, Layer: ops}
	}

	s := float64(size)
	margin := s * 0.1
	cell := (s - 2*margin) / float64(n)

	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			dark, inFinder := finderModule(i, j, n)
			if !inFinder {
				dark = field.At2(float64(i)*0.7, float64(j)*0.7) > threshold
			}
			if !dark {
				continue
			}

			x := margin + float64(i)*cell
			y := margin + float64(j)*cell
			c := qrDark
			if !inFinder && field.At3(float64(i)*0.2, float64(j)*0.2, t) < breakage {
				x += (field.At3(float64(i), float64(j), t+10) - 0.5) * 2 * drift
				y += (field.At3(float64(j), float64(i), t+20) - 0.5) * 2 * drift
				c = qrBroken
			}
			ops = append(ops, draw.Rect(x, y, cell, cell, c))
		}
	}

	return draw.Frame{Index: frame, Background: qrBackground, Layer: ops}
}

// finderModule reports whether module (i, j) lies inside one of the three
// finder patterns (including their one-module separator) and, if so, whether
// it is dark.
func finderModule(i, j, n int) (dark, inside bool) {
	corners := [3][2]int{{0, 0}, {n - finderSize, 0}, {0, n - finderSize}}
	for _, c := range corners {
		di, dj := i-c[0], j-c[1]
		if di < -1 || di > finderSize || dj < -1 || dj > finderSize {
			continue
		}
		if di < 0 || di >= finderSize || dj < 0 || dj >= finderSize {
			return false, true
		}
		ring := min(di, dj, finderSize-1-di, finderSize-1-dj)
		return ring != 1, true
	}
	return false, false
}
