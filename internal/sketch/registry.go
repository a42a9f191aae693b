package sketch

import (
	"errors"
	"fmt"

	"github.com/iburimskiy/sketch-playground/internal/params"
)

// ErrUnknownSketch is returned when an id is not registered.
var ErrUnknownSketch = errors.New("unknown sketch")

// Config describes one registered sketch. It is not modified after
// registration.
type Config struct {
	ID     string
	Name   string
	Title  string
	New    Factory
	Params params.Defs
}

// InitStore returns a fresh store seeded from the sketch's defaults.
func (c Config) InitStore() params.Store {
	return c.Params.InitStore()
}

// Registry is an ordered, read-only table of sketches.
type Registry struct {
	order []string
	byID  map[string]Config
}

// NewRegistry checks every config and keeps them in the given order.
func NewRegistry(configs ...Config) (*Registry, error) {
	r := &Registry{byID: make(map[string]Config, len(configs))}
	for _, c := range configs {
		if c.ID == "" {
			return nil, errors.New("sketch with empty id")
		}
		if _, dup := r.byID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate sketch id %q", c.ID)
		}
		if c.New == nil {
			return nil, fmt.Errorf("sketch %q has no factory", c.ID)
		}
		if err := c.Params.Validate(); err != nil {
			return nil, fmt.Errorf("sketch %q: %w", c.ID, err)
		}
		r.order = append(r.order, c.ID)
		r.byID[c.ID] = c
	}
	if len(r.order) == 0 {
		return nil, errors.New("registry has no sketches")
	}
	return r, nil
}

// Default returns the built-in sketches in cycling order.
func Default() *Registry {
	r, err := NewRegistry(
		Config{ID: "default", Name: "Water Sketch", Title: "this is a water sketch", New: NewWater, Params: WaterParams},
		Config{ID: "test", Name: "Test Flow Field", Title: "this is just a flow field", New: NewFlowField, Params: FlowParams},
		Config{ID: "qr", Name: "QR Code 1", Title: "this is a a print sketch", New: NewRings, Params: RingParams},
		Config{ID: "print1", Name: "Print Sketch 1", Title: "this is a print sketch", New: NewPrint, Params: PrintParams},
		Config{ID: "qr6", Name: "Broken QR Code 1", Title: "this is not a valid QR Code", New: NewBrokenQR, Params: QRParams},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the config for id.
func (r *Registry) Get(id string) (Config, error) {
	c, ok := r.byID[id]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownSketch, id)
	}
	return c, nil
}

// IDs returns the ids in cycling order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

func (r *Registry) Len() int { return len(r.order) }

func (r *Registry) First() string { return r.order[0] }

// Next returns the id after id, wrapping at the end. An unknown id yields the
// first sketch.
func (r *Registry) Next(id string) string {
	for i, v := range r.order {
		if v == id {
			return r.order[(i+1)%len(r.order)]
		}
	}
	return r.order[0]
}
