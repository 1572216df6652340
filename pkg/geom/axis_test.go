package geom

import (
	"math"
	"testing"
)

func TestMinAxis(t *testing.T) {
	cases := []struct {
		size Vec3
		want Axis
	}{
		{Vec3{1, 2, 3}, AxisX},
		{Vec3{2, 1, 3}, AxisY},
		{Vec3{3, 2, 1}, AxisZ},
		// Ties resolve to the lowest-indexed axis.
		{Vec3{1, 1, 2}, AxisX},
		{Vec3{2, 1, 1}, AxisY},
		{Vec3{1, 1, 1}, AxisX},
	}
	for _, c := range cases {
		if got := MinAxis(c.size); got != c.want {
			t.Errorf("MinAxis(%v) = %v, want %v", c.size, got, c.want)
		}
	}
}

func TestMaxAxis(t *testing.T) {
	cases := []struct {
		size Vec3
		want Axis
	}{
		{Vec3{3, 2, 1}, AxisX},
		{Vec3{1, 3, 2}, AxisY},
		{Vec3{1, 2, 3}, AxisZ},
		{Vec3{3, 3, 1}, AxisX},
	}
	for _, c := range cases {
		if got := MaxAxis(c.size); got != c.want {
			t.Errorf("MaxAxis(%v) = %v, want %v", c.size, got, c.want)
		}
	}
}

func TestUprightRotationY(t *testing.T) {
	if !UprightRotation(AxisY).IsIdentity() {
		t.Error("UprightRotation(AxisY) should be the identity")
	}
}

func TestUprightRotationMovesExtentToY(t *testing.T) {
	for _, a := range []Axis{AxisX, AxisY, AxisZ} {
		m := UprightRotation(a)

		var dir Vec3
		switch a {
		case AxisX:
			dir = Vec3{1, 0, 0}
		case AxisY:
			dir = Vec3{0, 1, 0}
		case AxisZ:
			dir = Vec3{0, 0, 1}
		}

		got := m.TransformPoint(dir)
		if math.Abs(math.Abs(got.Y)-1) > epsilon {
			t.Errorf("UprightRotation(%v) maps %v axis to %v, want +/-Y", a, a, got)
		}
	}
}
