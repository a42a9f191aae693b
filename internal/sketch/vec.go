package sketch

import "math"

// Vec is a 2D vector in surface pixels.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

func fromAngle(a, length float64) Vec {
	return Vec{math.Cos(a) * length, math.Sin(a) * length}
}

// Limit caps the length of v at max.
func (v Vec) Limit(max float64) Vec {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// wrap folds v back into [0, size) on both axes and reports whether it moved.
func (v Vec) wrap(size float64) (Vec, bool) {
	out := v
	if size <= 0 {
		return out, false
	}
	out.X = math.Mod(out.X, size)
	if out.X < 0 {
		out.X += size
	}
	out.Y = math.Mod(out.Y, size)
	if out.Y < 0 {
		out.Y += size
	}
	return out, out != v
}
