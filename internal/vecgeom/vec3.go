// Package vecgeom provides the 3D vector algebra and cut-plane abstraction
// that the dragknife rewriter uses to reason about tool motion in a 2D
// plane embedded in 3D space.
package vecgeom

import "github.com/chewxy/math32"

// Vec3 is a triple of 32-bit floats, matching the precision G-code
// coordinates are parsed and emitted at.
type Vec3 struct {
	X, Y, Z float32
}

// Zero is the origin, returned by Normalized for a zero-magnitude vector.
var Zero = Vec3{}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v / s.
func (v Vec3) Div(s float32) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

// Magnitude returns the Euclidean length of v.
func (v Vec3) Magnitude() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns v scaled to unit length. A zero vector normalizes to
// zero rather than dividing by zero.
func (v Vec3) Normalized() Vec3 {
	m := v.Magnitude()
	if m == 0 {
		return Zero
	}
	return v.Div(m)
}
