package draw

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// AlphaHex renders an opacity in 0..255 as two lower-case hex digits, the
// suffix appended to "#rrggbb" for the trail fade. The value is floored and
// clamped to a byte.
func AlphaHex(v float64) string {
	return fmt.Sprintf("%02x", alphaByte(v))
}

func alphaByte(v float64) uint8 {
	f := math.Floor(v)
	switch {
	case math.IsNaN(f) || f < 0:
		return 0
	case f > 255:
		return 255
	}
	return uint8(f)
}

// ParseHex parses "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (color.RGBA, error) {
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("parse alpha of %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}, nil
}

// MustHex is ParseHex for colour literals.
func MustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Lerp interpolates from a to b in RGB space. t is clamped to [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.RGBA{R: r, G: g, B: bl, A: uint8(math.Round(alpha))}
}

// WithAlpha returns c with its alpha replaced by the floored, clamped value.
// Colour channels are not premultiplied; the canvases expect straight alpha.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	c.A = alphaByte(a)
	return c
}

// Premultiplied converts straight alpha to the premultiplied form Go's
// image/color types use.
func Premultiplied(c color.RGBA) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}

// clamp01 maps NaN to 0.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
