// Package params holds the tunable numeric inputs of a sketch: the
// definitions that bound each slider and the live store the active sketch
// reads every frame.
package params

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDefinition is returned by Defs.Validate.
var ErrInvalidDefinition = errors.New("invalid parameter definition")

// Definition describes one tunable value. Min <= Default <= Max and Step > 0.
type Definition struct {
	Name    string
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

// Snap quantises v the way a range slider does: clamp to [Min, Max], then
// round to the nearest multiple of Step counted from Min.
func (d Definition) Snap(v float64) float64 {
	v = clamp(v, d.Min, d.Max)
	if d.Step <= 0 {
		return v
	}
	steps := math.Round((v - d.Min) / d.Step)
	return clamp(d.Min+steps*d.Step, d.Min, d.Max)
}

// Fraction maps v to its slider position in [0, 1].
func (d Definition) Fraction(v float64) float64 {
	span := d.Max - d.Min
	if span <= 0 {
		return 0
	}
	return clamp((v-d.Min)/span, 0, 1)
}

// FromFraction maps a slider position back to a snapped value.
func (d Definition) FromFraction(f float64) float64 {
	return d.Snap(d.Min + clamp(f, 0, 1)*(d.Max-d.Min))
}

func (d Definition) validate() error {
	switch {
	case d.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidDefinition)
	case !(d.Step > 0):
		return fmt.Errorf("%w: %s: step %v must be positive", ErrInvalidDefinition, d.Name, d.Step)
	case !(d.Min <= d.Default && d.Default <= d.Max):
		return fmt.Errorf("%w: %s: default %v outside [%v, %v]", ErrInvalidDefinition, d.Name, d.Default, d.Min, d.Max)
	}
	return nil
}

// Defs is an ordered set of definitions. Order is the slider order.
type Defs []Definition

// Validate reports the first definition that breaks its bounds invariant, or
// a name used twice.
func (ds Defs) Validate() error {
	seen := make(map[string]bool, len(ds))
	for _, d := range ds {
		if err := d.validate(); err != nil {
			return err
		}
		if seen[d.Name] {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidDefinition, d.Name)
		}
		seen[d.Name] = true
	}
	return nil
}

// Lookup returns the definition with the given name.
func (ds Defs) Lookup(name string) (Definition, bool) {
	for _, d := range ds {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// InitStore returns a fresh store holding every default.
func (ds Defs) InitStore() Store {
	s := make(Store, len(ds))
	for _, d := range ds {
		s[d.Name] = d.Default
	}
	return s
}

// Store maps parameter names to their current values. It is shared by
// reference between the controls and the running sketch; writes are not
// clamped.
type Store map[string]float64

// Get returns the value for name, or 0 when it is absent.
func (s Store) Get(name string) float64 {
	return s[name]
}

// Set writes v in place.
func (s Store) Set(name string, v float64) {
	s[name] = v
}

// Int returns the value for name truncated toward zero.
func (s Store) Int(name string) int {
	return int(s[name])
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
