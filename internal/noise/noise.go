// Package noise provides the seeded smooth-noise field the sketches sample.
//
// Octaves are summed the way p5's noise() does it: the first octave has
// weight 0.5, every further octave doubles the frequency and multiplies the
// weight by the falloff. With the default detail the result lies in [0, 1).
package noise

import (
	"github.com/ojrac/opensimplex-go"
)

const (
	DefaultOctaves = 4
	DefaultFalloff = 0.5
)

// Field is a deterministic noise source. The same seed, detail and
// coordinates always give the same value.
type Field struct {
	src     opensimplex.Noise
	seed    int64
	octaves int
	falloff float64
}

func New(seed int64) *Field {
	return &Field{
		src:     opensimplex.New(seed),
		seed:    seed,
		octaves: DefaultOctaves,
		falloff: DefaultFalloff,
	}
}

// Seed returns the seed the field was built with.
func (f *Field) Seed() int64 { return f.seed }

// Detail sets the octave count and per-octave falloff. Octaves <= 0 makes
// every sample 0.
func (f *Field) Detail(octaves int, falloff float64) {
	f.octaves = octaves
	f.falloff = falloff
}

// At1 samples the field along one axis.
func (f *Field) At1(x float64) float64 {
	return f.fbm(func(freq float64) float64 {
		return f.src.Eval2(x*freq, 0)
	})
}

// At2 samples the field on a plane.
func (f *Field) At2(x, y float64) float64 {
	return f.fbm(func(freq float64) float64 {
		return f.src.Eval2(x*freq, y*freq)
	})
}

// At3 samples the field in space; sketches use z as time.
func (f *Field) At3(x, y, z float64) float64 {
	return f.fbm(func(freq float64) float64 {
		return f.src.Eval3(x*freq, y*freq, z*freq)
	})
}

func (f *Field) fbm(eval func(freq float64) float64) float64 {
	var total float64
	amp, freq := 0.5, 1.0
	for i := 0; i < f.octaves; i++ {
		total += amp * unit(eval(freq))
		amp *= f.falloff
		freq *= 2
	}
	return total
}

// unit maps a raw simplex sample from [-1, 1] into [0, 1).
func unit(v float64) float64 {
	u := (v + 1) / 2
	if u < 0 {
		return 0
	}
	if u >= 1 {
		return 0.9999999
	}
	return u
}
