package scene

import (
	"math"
	"testing"

	"github.com/robertogonzalez-tech/pallet-configurator/pkg/geom"
)

const tolerance = 1e-4

// cuboidMesh builds an indexed box mesh spanning min..min+size.
func cuboidMesh(name string, min, size geom.Vec3) *Mesh {
	var corners [8][3]float32
	for i := 0; i < 8; i++ {
		x := min.X
		if i&1 != 0 {
			x += size.X
		}
		y := min.Y
		if i&2 != 0 {
			y += size.Y
		}
		z := min.Z
		if i&4 != 0 {
			z += size.Z
		}
		corners[i] = [3]float32{float32(x), float32(y), float32(z)}
	}

	// Two triangles per face.
	faces := [][4]uint32{
		{0, 1, 3, 2}, // -Z
		{4, 6, 7, 5}, // +Z
		{0, 4, 5, 1}, // -Y
		{2, 3, 7, 6}, // +Y
		{0, 2, 6, 4}, // -X
		{1, 5, 7, 3}, // +X
	}

	mesh := &Mesh{Name: name, Positions: corners[:]}
	for _, f := range faces {
		mesh.Indices = append(mesh.Indices, f[0], f[1], f[2], f[0], f[2], f[3])
	}
	return mesh
}

func cuboidScene(min, size geom.Vec3) *Scene {
	return &Scene{Meshes: []*Mesh{cuboidMesh("box", min, size)}}
}

func near(a, b geom.Vec3) bool {
	return math.Abs(a.X-b.X) < tolerance &&
		math.Abs(a.Y-b.Y) < tolerance &&
		math.Abs(a.Z-b.Z) < tolerance
}

func TestSceneBounds(t *testing.T) {
	s := cuboidScene(geom.Vec3{X: -1, Y: -2, Z: -3}, geom.Vec3{X: 2, Y: 4, Z: 6})

	b := s.Bounds()
	if !near(b.Min, geom.Vec3{X: -1, Y: -2, Z: -3}) {
		t.Errorf("Bounds().Min = %v, want {-1 -2 -3}", b.Min)
	}
	if !near(b.Size(), geom.Vec3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Bounds().Size() = %v, want {2 4 6}", b.Size())
	}
}

func TestSceneCentroid(t *testing.T) {
	s := cuboidScene(geom.Vec3{X: 10, Y: 20, Z: 30}, geom.Vec3{X: 2, Y: 2, Z: 2})

	got := s.Centroid()
	want := geom.Vec3{X: 11, Y: 21, Z: 31}
	if !near(got, want) {
		t.Errorf("Centroid() = %v, want %v", got, want)
	}
}

func TestTranslateRecenters(t *testing.T) {
	s := cuboidScene(geom.Vec3{X: 5, Y: 6, Z: 7}, geom.Vec3{X: 4, Y: 4, Z: 4})

	s.Translate(s.Centroid().Neg())

	if got := s.Centroid(); !near(got, geom.Vec3{}) {
		t.Errorf("centroid after recentering = %v, want origin", got)
	}
}

func TestTransformPermutesExtents(t *testing.T) {
	s := cuboidScene(geom.Vec3{}, geom.Vec3{X: 10, Y: 20, Z: 30})

	s.Transform(geom.RotateX(math.Pi / 2))

	size := s.Bounds().Size()
	want := geom.Vec3{X: 10, Y: 30, Z: 20}
	if !near(size, want) {
		t.Errorf("size after quarter turn about X = %v, want %v", size, want)
	}
}

func TestEmptyScene(t *testing.T) {
	s := &Scene{}
	if !s.IsEmpty() {
		t.Error("new scene should be empty")
	}
	if got := s.Centroid(); got != (geom.Vec3{}) {
		t.Errorf("empty scene centroid = %v, want origin", got)
	}
	if !s.Bounds().IsEmpty() {
		t.Error("empty scene bounds should be empty")
	}
}
