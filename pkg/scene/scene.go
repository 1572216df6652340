// Package scene holds triangulated 3D geometry in memory and moves it
// between the STL and GLB file formats. A scene is a flat list of meshes in
// world space; loading bakes any node transforms into the vertices, so
// bounds, centroid and transforms all operate on world coordinates.
package scene

import (
	"github.com/robertogonzalez-tech/pallet-configurator/pkg/geom"
)

// Mesh is a single triangle mesh.
type Mesh struct {
	Name      string
	Positions [][3]float32
	Normals   [][3]float32 // empty or one per position
	Indices   []uint32     // three per triangle
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Scene is a collection of meshes.
type Scene struct {
	Meshes []*Mesh
}

// IsEmpty reports whether the scene contains no geometry.
func (s *Scene) IsEmpty() bool {
	for _, m := range s.Meshes {
		if len(m.Positions) > 0 {
			return false
		}
	}
	return true
}

// VertexCount returns the total number of vertices across all meshes.
func (s *Scene) VertexCount() int {
	total := 0
	for _, m := range s.Meshes {
		total += m.VertexCount()
	}
	return total
}

// TriangleCount returns the total number of triangles across all meshes.
func (s *Scene) TriangleCount() int {
	total := 0
	for _, m := range s.Meshes {
		total += m.TriangleCount()
	}
	return total
}

// Bounds returns the axis-aligned bounding box of all geometry.
func (s *Scene) Bounds() geom.Box {
	box := geom.NewBox()
	for _, m := range s.Meshes {
		for _, p := range m.Positions {
			box.Extend(geom.Vec3{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])})
		}
	}
	return box
}

// Centroid returns the mean vertex position across the whole scene.
// An empty scene has its centroid at the origin.
func (s *Scene) Centroid() geom.Vec3 {
	var sum geom.Vec3
	count := 0
	for _, m := range s.Meshes {
		for _, p := range m.Positions {
			sum = sum.Add(geom.Vec3{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])})
			count++
		}
	}
	if count == 0 {
		return geom.Vec3{}
	}
	return sum.Scale(1.0 / float64(count))
}

// Translate moves every vertex by the given offset.
func (s *Scene) Translate(offset geom.Vec3) {
	s.Transform(geom.Translate(offset.X, offset.Y, offset.Z))
}

// Transform applies the matrix to every vertex position. Normals are
// transformed by the rotation part and renormalized.
func (s *Scene) Transform(m geom.Mat4) {
	for _, mesh := range s.Meshes {
		for i, p := range mesh.Positions {
			v := m.TransformPoint(geom.Vec3{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])})
			mesh.Positions[i] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
		}
		for i, n := range mesh.Normals {
			v := m.TransformDir(geom.Vec3{X: float64(n[0]), Y: float64(n[1]), Z: float64(n[2])}).Normalize()
			mesh.Normals[i] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
		}
	}
}
