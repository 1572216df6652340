package geom

import "math"

// Axis identifies one of the three coordinate axes.
type Axis int

// Coordinate axes, in X, Y, Z order.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// MinAxis returns the axis along which v is smallest. Ties resolve to the
// lowest-indexed axis (X before Y before Z).
func MinAxis(v Vec3) Axis {
	a := AxisX
	if v.Y < v.X {
		a = AxisY
	}
	if v.Z < v.Component(a) {
		a = AxisZ
	}
	return a
}

// MaxAxis returns the axis along which v is largest. Ties resolve to the
// lowest-indexed axis (X before Y before Z).
func MaxAxis(v Vec3) Axis {
	a := AxisX
	if v.Y > v.X {
		a = AxisY
	}
	if v.Z > v.Component(a) {
		a = AxisZ
	}
	return a
}

// MillimetersPerInch converts millimeter measurements to inches for display.
const MillimetersPerInch = 25.4

// UprightRotation returns the rotation that moves an extent lying along the
// given axis onto the vertical (Y) axis. It is a fixed three-entry decision
// table: a single quarter turn about one coordinate axis, or the identity
// when the extent is already vertical.
func UprightRotation(height Axis) Mat4 {
	switch height {
	case AxisX:
		// X -> Y, Y -> -X
		return RotateZ(math.Pi / 2)
	case AxisZ:
		// Z -> Y, Y -> -Z
		return RotateX(math.Pi / 2)
	default:
		return Identity()
	}
}
