package vecgeom

import "github.com/chewxy/math32"

// Plane selects the cut plane arc interpolation is defined in, chosen by
// G17/G18/G19.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneZX
	PlaneYZ
)

// Axis identifies one of the three machine axes by its role in a plane:
// a main coordinate letter (X/Y/Z), an arc-center-offset letter (I/J/K),
// and a reserved rotary letter (A/B/C).
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// MainName returns the main coordinate letter for the axis.
func (a Axis) MainName() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	default:
		return "Z"
	}
}

// CenterName returns the arc-center-offset letter for the axis.
func (a Axis) CenterName() string {
	switch a {
	case AxisX:
		return "I"
	case AxisY:
		return "J"
	default:
		return "K"
	}
}

// RotaryName returns the reserved rotary letter for the axis.
func (a Axis) RotaryName() string {
	switch a {
	case AxisX:
		return "A"
	case AxisY:
		return "B"
	default:
		return "C"
	}
}

// Axis1 returns the plane's first in-plane axis.
func (p Plane) Axis1() Axis {
	switch p {
	case PlaneXY:
		return AxisX
	case PlaneZX:
		return AxisZ
	default: // PlaneYZ
		return AxisY
	}
}

// Axis2 returns the plane's second in-plane axis.
func (p Plane) Axis2() Axis {
	switch p {
	case PlaneXY:
		return AxisY
	case PlaneZX:
		return AxisX
	default: // PlaneYZ
		return AxisZ
	}
}

// Axis3 returns the plane's out-of-plane axis.
func (p Plane) Axis3() Axis {
	switch p {
	case PlaneXY:
		return AxisZ
	case PlaneZX:
		return AxisY
	default: // PlaneYZ
		return AxisX
	}
}

// CoordsForPlane returns v's coordinates along (axis_1, axis_2) for plane.
func CoordsForPlane(v Vec3, plane Plane) (float32, float32) {
	switch plane {
	case PlaneXY:
		return v.X, v.Y
	case PlaneZX:
		return v.Z, v.X
	default: // PlaneYZ
		return v.Y, v.Z
	}
}

// ThirdCoord returns v's out-of-plane coordinate for plane.
func ThirdCoord(v Vec3, plane Plane) float32 {
	switch plane {
	case PlaneXY:
		return v.Z
	case PlaneZX:
		return v.Y
	default: // PlaneYZ
		return v.X
	}
}

// ProjectPlane zeroes v's out-of-plane component.
func ProjectPlane(v Vec3, plane Plane) Vec3 {
	out := v
	switch plane {
	case PlaneXY:
		out.Z = 0
	case PlaneZX:
		out.Y = 0
	default: // PlaneYZ
		out.X = 0
	}
	return out
}

// FromPlane builds a Vec3 from in-plane components (axis_1, axis_2), with
// the out-of-plane component set to 0.
func FromPlane(axis1, axis2 float32, plane Plane) Vec3 {
	switch plane {
	case PlaneXY:
		return Vec3{X: axis1, Y: axis2}
	case PlaneZX:
		return Vec3{Z: axis1, X: axis2}
	default: // PlaneYZ
		return Vec3{Y: axis1, Z: axis2}
	}
}

// UnitAngle returns the in-plane unit vector at polar angle theta.
func UnitAngle(theta float32, plane Plane) Vec3 {
	return FromPlane(math32.Cos(theta), math32.Sin(theta), plane)
}

// AngleTo returns the polar angle, in the cut plane, from a to b.
func AngleTo(a, b Vec3, plane Plane) float32 {
	a1, a2 := CoordsForPlane(a, plane)
	b1, b2 := CoordsForPlane(b, plane)
	return math32.Atan2(b2-a2, b1-a1)
}
