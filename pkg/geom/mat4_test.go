package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-12

func vecNear(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < epsilon &&
		math.Abs(a.Y-b.Y) < epsilon &&
		math.Abs(a.Z-b.Z) < epsilon
}

func TestIdentityTransformPoint(t *testing.T) {
	p := Vec3{1, 2, 3}
	if got := Identity().TransformPoint(p); got != p {
		t.Errorf("Identity().TransformPoint(%v) = %v, want %v", p, got, p)
	}
}

func TestTranslateTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformPoint(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if !vecNear(got, want) {
		t.Errorf("Translate.TransformPoint() = %v, want %v", got, want)
	}
}

func TestRotateZQuarterTurn(t *testing.T) {
	m := RotateZ(math.Pi / 2)

	got := m.TransformPoint(Vec3{1, 0, 0})
	if !vecNear(got, Vec3{0, 1, 0}) {
		t.Errorf("RotateZ(90) maps X to %v, want +Y", got)
	}

	got = m.TransformPoint(Vec3{0, 1, 0})
	if !vecNear(got, Vec3{-1, 0, 0}) {
		t.Errorf("RotateZ(90) maps Y to %v, want -X", got)
	}
}

func TestRotateXQuarterTurn(t *testing.T) {
	m := RotateX(math.Pi / 2)

	got := m.TransformPoint(Vec3{0, 0, 1})
	if !vecNear(got, Vec3{0, -1, 0}) {
		t.Errorf("RotateX(90) maps Z to %v, want -Y", got)
	}

	got = m.TransformPoint(Vec3{0, 1, 0})
	if !vecNear(got, Vec3{0, 0, 1}) {
		t.Errorf("RotateX(90) maps Y to %v, want +Z", got)
	}
}

func TestMulComposesTransforms(t *testing.T) {
	// Translate then rotate: rotation applied first to the point.
	m := Translate(1, 0, 0).Mul(RotateZ(math.Pi / 2))
	got := m.TransformPoint(Vec3{1, 0, 0})
	want := Vec3{1, 1, 0}
	if !vecNear(got, want) {
		t.Errorf("composed TransformPoint() = %v, want %v", got, want)
	}
}

func TestFromQuat(t *testing.T) {
	// Quarter turn about Z as a quaternion.
	half := math.Pi / 4
	m := FromQuat(0, 0, math.Sin(half), math.Cos(half))
	got := m.TransformPoint(Vec3{1, 0, 0})
	if !vecNear(got, Vec3{0, 1, 0}) {
		t.Errorf("FromQuat quarter turn maps X to %v, want +Y", got)
	}

	// Zero quaternion degrades to identity.
	if got := FromQuat(0, 0, 0, 0); !got.IsIdentity() {
		t.Errorf("FromQuat(0,0,0,0) = %v, want identity", got)
	}
}
