package sketch

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/iburimskiy/sketch-playground/internal/draw"
	"github.com/iburimskiy/sketch-playground/internal/noise"
	"github.com/iburimskiy/sketch-playground/internal/params"
)

const testSize = 500

func TestRingFrameDeterministic(t *testing.T) {
	store := RingParams.InitStore()
	a := RingFrame(120, store, testSize, noise.New(42))
	b := RingFrame(120, store, testSize, noise.New(42))
	if !reflect.DeepEqual(a, b) {
		t.Fatal("RingFrame differs for identical frame, store and seed")
	}

	// A field reused across calls must not carry state between them.
	f := noise.New(42)
	RingFrame(5, store, testSize, f)
	c := RingFrame(120, store, testSize, f)
	if !reflect.DeepEqual(a, c) {
		t.Fatal("RingFrame depends on earlier calls")
	}
}

func TestRingFrameShape(t *testing.T) {
	store := RingParams.InitStore()
	fr := RingFrame(1, store, testSize, noise.New(1))

	if fr.Index != 1 {
		t.Errorf("Index = %d, want 1", fr.Index)
	}
	if fr.Background != draw.MustHex("#050818") {
		t.Errorf("Background = %v", fr.Background)
	}
	if got, want := len(fr.Layer), 1+2*RingSamples; got != want {
		t.Fatalf("len(Layer) = %d, want %d", got, want)
	}

	fadeOp := fr.Layer[0]
	if fadeOp.Kind != draw.KindFillRect || fadeOp.W != testSize || fadeOp.H != testSize {
		t.Errorf("first op = %+v, want full-surface rect", fadeOp)
	}
	if fadeOp.Color.A != 5 || fadeOp.Color.R != 0 {
		t.Errorf("fade colour = %v, want black with alpha 5", fadeOp.Color)
	}

	for i := 0; i < RingSamples; i++ {
		p1, p2 := fr.Layer[1+2*i], fr.Layer[2+2*i]
		if p1.Kind != draw.KindFillCircle || p1.R != 2.5 {
			t.Fatalf("sample %d: op = %+v, want circle of radius 2.5", i, p1)
		}
		if math.Abs((p1.X+p2.X)-testSize) > 1e-9 {
			t.Errorf("sample %d: x1+x2 = %v, want %v", i, p1.X+p2.X, testSize)
		}
		if p1.Y != p2.Y {
			t.Errorf("sample %d: y1 = %v, y2 = %v, want equal", i, p1.Y, p2.Y)
		}
		r := math.Hypot(p1.X-testSize/2, p1.Y-testSize/2)
		if r < 150-1e-9 || r > 150+80 {
			t.Errorf("sample %d: radius %v outside [150, 230]", i, r)
		}
	}
}

func TestRingFrameReadsStoreEachCall(t *testing.T) {
	store := RingParams.InitStore()
	f := noise.New(9)
	store.Set("trailTransparency", 200)
	store.Set("noiseSize", 0)
	store.Set("amplitude", 10)
	fr := RingFrame(3, store, testSize, f)
	if fr.Layer[0].Color.A != 200 {
		t.Errorf("fade alpha = %d, want 200", fr.Layer[0].Color.A)
	}
	p := fr.Layer[1]
	if r := math.Hypot(p.X-testSize/2, p.Y-testSize/2); math.Abs(r-10) > 1e-9 {
		t.Errorf("radius = %v, want 10", r)
	}
}

func TestInstanceCountsFrames(t *testing.T) {
	inst := NewRings(RingParams.InitStore(), 1)
	for want := 1; want <= 3; want++ {
		if got := inst.Advance(testSize).Index; got != want {
			t.Errorf("Advance().Index = %d, want %d", got, want)
		}
	}
}

func TestDefaultRegistryStores(t *testing.T) {
	r := Default()
	for _, id := range r.IDs() {
		c, err := r.Get(id)
		if err != nil {
			t.Fatal(err)
		}
		s := c.InitStore()
		for _, d := range c.Params {
			if s[d.Name] != d.Default {
				t.Errorf("%s: store[%s] = %v, want %v", id, d.Name, s[d.Name], d.Default)
			}
		}
	}
}

func TestRegistryCycle(t *testing.T) {
	r := Default()
	want := []string{"default", "test", "qr", "print1", "qr6"}
	if !reflect.DeepEqual(r.IDs(), want) {
		t.Fatalf("IDs() = %v, want %v", r.IDs(), want)
	}
	for _, start := range want {
		id := start
		for i := 0; i < r.Len(); i++ {
			id = r.Next(id)
		}
		if id != start {
			t.Errorf("cycling %d times from %s ended at %s", r.Len(), start, id)
		}
	}
	if r.Next("qr6") != "default" {
		t.Errorf("Next(qr6) = %s, want default", r.Next("qr6"))
	}
	if r.Next("missing") != r.First() {
		t.Errorf("Next(missing) = %s, want %s", r.Next("missing"), r.First())
	}
}

func TestRegistryRejects(t *testing.T) {
	good := Config{ID: "a", New: NewRings, Params: RingParams}
	tests := []struct {
		name    string
		configs []Config
	}{
		{"none", nil},
		{"empty id", []Config{{New: NewRings}}},
		{"duplicate", []Config{good, good}},
		{"no factory", []Config{{ID: "b"}}},
		{"bad params", []Config{{ID: "c", New: NewRings, Params: params.Defs{{Name: "x", Min: 1, Max: 0, Step: 1}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRegistry(tt.configs...); err == nil {
				t.Error("NewRegistry should fail")
			}
		})
	}

	_, err := NewRegistry(Config{ID: "c", New: NewRings, Params: params.Defs{{Name: "x", Min: 1, Max: 0, Step: 1}}})
	if !errors.Is(err, params.ErrInvalidDefinition) {
		t.Errorf("err = %v, want ErrInvalidDefinition", err)
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	_, err := Default().Get("nope")
	if !errors.Is(err, ErrUnknownSketch) {
		t.Errorf("Get(nope) err = %v, want ErrUnknownSketch", err)
	}
}

func TestEveryBuiltinAdvances(t *testing.T) {
	r := Default()
	for _, id := range r.IDs() {
		c, _ := r.Get(id)
		inst := c.New(c.InitStore(), 3)
		inst.Reset(testSize)
		for i := 0; i < 10; i++ {
			fr := inst.Advance(testSize)
			for _, op := range fr.Layer {
				if math.IsNaN(op.X) || math.IsNaN(op.Y) {
					t.Fatalf("%s: NaN coordinate in %+v", id, op)
				}
			}
		}
	}
}

func TestFlowFieldParticles(t *testing.T) {
	store := FlowParams.InitStore()
	inst := NewFlowField(store, 11).(*flowField)
	inst.Reset(testSize)
	if got := len(inst.Particles()); got != 300 {
		t.Fatalf("particles = %d, want 300", got)
	}

	for i := 0; i < 200; i++ {
		inst.Advance(testSize)
	}
	for _, p := range inst.Particles() {
		if p.Pos.X < 0 || p.Pos.X >= testSize || p.Pos.Y < 0 || p.Pos.Y >= testSize {
			t.Fatalf("particle escaped the surface: %+v", p.Pos)
		}
		if p.Vel.Len() > store.Get("maxSpeed")+1e-9 {
			t.Fatalf("speed %v above limit", p.Vel.Len())
		}
	}

	store.Set("particleCount", 50)
	inst.Advance(testSize)
	if got := len(inst.Particles()); got != 50 {
		t.Errorf("particles after shrink = %d, want 50", got)
	}
}

func TestFlowFieldReproducible(t *testing.T) {
	a := NewFlowField(FlowParams.InitStore(), 4)
	b := NewFlowField(FlowParams.InitStore(), 4)
	for i := 0; i < 20; i++ {
		fa, fb := a.Advance(testSize), b.Advance(testSize)
		if !reflect.DeepEqual(fa, fb) {
			t.Fatalf("frame %d differs for the same seed", i+1)
		}
	}
}

func TestVecWrap(t *testing.T) {
	tests := []struct {
		in    Vec
		want  Vec
		moved bool
	}{
		{Vec{10, 10}, Vec{10, 10}, false},
		{Vec{-1, 10}, Vec{99, 10}, true},
		{Vec{100, 250}, Vec{0, 50}, true},
	}
	for _, tt := range tests {
		got, moved := tt.in.wrap(100)
		if got != tt.want || moved != tt.moved {
			t.Errorf("wrap(%v) = %v, %v, want %v, %v", tt.in, got, moved, tt.want, tt.moved)
		}
	}
}

func TestFinderModule(t *testing.T) {
	tests := []struct {
		i, j         int
		dark, inside bool
	}{
		{0, 0, true, true},
		{1, 1, false, true},
		{3, 3, true, true},
		{7, 0, false, true},
		{8, 8, false, false},
		{24, 0, true, true},
		{0, 24, true, true},
		{24, 24, false, false},
	}
	for _, tt := range tests {
		dark, inside := finderModule(tt.i, tt.j, 25)
		if dark != tt.dark || inside != tt.inside {
			t.Errorf("finderModule(%d, %d) = %v, %v, want %v, %v", tt.i, tt.j, dark, inside, tt.dark, tt.inside)
		}
	}
}

func TestPrintFrameSkipsEdge(t *testing.T) {
	store := PrintParams.InitStore()
	store.Set("speed", 3)
	f := noise.New(1)

	// frame 167 spans x in [498, 501) and straddles the edge of a 500px surface.
	if fr := PrintFrame(167, store, testSize, f); len(fr.Layer) != 0 {
		t.Errorf("straddling frame drew %d ops, want 0", len(fr.Layer))
	}
	fr := PrintFrame(1, store, testSize, f)
	if len(fr.Layer) != store.Int("lineCount") {
		t.Errorf("len(Layer) = %d, want %d", len(fr.Layer), store.Int("lineCount"))
	}
}
