package sketch

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/sketch-playground/internal/draw"
	"github.com/iburimskiy/sketch-playground/internal/noise"
	"github.com/iburimskiy/sketch-playground/internal/params"
)

var (
	flowBackground = draw.MustHex("#0b0b12")
	flowFrom       = draw.MustHex("#8c1c13")
	flowTo         = draw.MustHex("#e8c547")
)

const flowStrokeAlpha = 140

var FlowParams = params.Defs{
	{Name: "particleCount", Min: 10, Max: 1000, Step: 10, Default: 300},
	{Name: "noiseScale", Min: 0.001, Max: 0.05, Step: 0.001, Default: 0.008},
	{Name: "zSpeed", Min: 0, Max: 0.02, Step: 0.0005, Default: 0.003},
	{Name: "force", Min: 0.01, Max: 1, Step: 0.01, Default: 0.2},
	{Name: "maxSpeed", Min: 0.5, Max: 8, Step: 0.1, Default: 2},
	{Name: "strokeWeight", Min: 0.5, Max: 4, Step: 0.5, Default: 1},
	{Name: "trailTransparency", Min: 0, Max: 255, Step: 1, Default: 8},
}

// Particle is steered by the noise angle field every frame.
type Particle struct {
	Pos  Vec
	Vel  Vec
	Acc  Vec
	Prev Vec
}

type flowField struct {
	store     params.Store
	field     *noise.Field
	rng       *rand.Rand
	frame     int
	size      int
	particles []Particle
}

// NewFlowField builds the particle flow field sketch.
func NewFlowField(store params.Store, seed int64) Instance {
	return &flowField{
		store: store,
		field: noise.New(seed),
		rng:   rand.New(rand.NewPCG(uint64(seed), 0x5eed)),
	}
}

// Reset scatters a new set of particles over a surface of the given size.
func (f *flowField) Reset(size int) {
	f.size = size
	f.particles = f.particles[:0]
	f.fill(f.store.Int("particleCount"))
}

func (f *flowField) fill(n int) {
	if n < 0 {
		n = 0
	}
	if len(f.particles) > n {
		f.particles = f.particles[:n]
		return
	}
	for len(f.particles) < n {
		p := Vec{f.rng.Float64() * float64(f.size), f.rng.Float64() * float64(f.size)}
		f.particles = append(f.particles, Particle{Pos: p, Prev: p})
	}
}

func (f *flowField) Advance(size int) draw.Frame {
	if size != f.size {
		f.Reset(size)
	}
	f.frame++
	f.fill(f.store.Int("particleCount"))

	scale := f.store.Get("noiseScale")
	z := float64(f.frame) * f.store.Get("zSpeed")
	force := f.store.Get("force")
	maxSpeed := f.store.Get("maxSpeed")
	weight := f.store.Get("strokeWeight")

	ops := make([]draw.Op, 0, 1+len(f.particles))
	ops = append(ops, fade(size, f.store.Get("trailTransparency")))

	for i := range f.particles {
		p := &f.particles[i]
		n := f.field.At3(p.Pos.X*scale, p.Pos.Y*scale, z)
		p.Acc = fromAngle(n*4*math.Pi, force)
		p.Vel = p.Vel.Add(p.Acc).Limit(maxSpeed)
		p.Prev = p.Pos
		p.Pos = p.Pos.Add(p.Vel)

		if wrapped, moved := p.Pos.wrap(float64(size)); moved {
			p.Pos = wrapped
			p.Prev = wrapped
			continue
		}

		c := draw.WithAlpha(draw.Lerp(flowFrom, flowTo, n), flowStrokeAlpha)
		ops = append(ops, draw.Line(p.Prev.X, p.Prev.Y, p.Pos.X, p.Pos.Y, weight, c))
	}

	return draw.Frame{Index: f.frame, Background: flowBackground, Layer: ops}
}

// Particles exposes the live particle set.
func (f *flowField) Particles() []Particle {
	return f.particles
}
