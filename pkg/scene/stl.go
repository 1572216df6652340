package scene

import (
	"math"

	"github.com/robertogonzalez-tech/pallet-configurator/pkg/formats"
)

// FromSTL converts a parsed STL mesh into a single-mesh scene. STL is a
// triangle soup, so vertices are not deduplicated; facet normals are kept
// per vertex, with degenerate normals recomputed from the triangle winding.
func FromSTL(stl *formats.STL, name string) *Scene {
	mesh := &Mesh{
		Name:      name,
		Positions: make([][3]float32, 0, len(stl.Triangles)*3),
		Normals:   make([][3]float32, 0, len(stl.Triangles)*3),
		Indices:   make([]uint32, 0, len(stl.Triangles)*3),
	}

	for i := range stl.Triangles {
		tri := &stl.Triangles[i]
		normal := tri.Normal
		if normal == ([3]float32{}) {
			normal = faceNormal(tri.Vertices)
		}
		base := uint32(len(mesh.Positions))
		for v := 0; v < 3; v++ {
			mesh.Positions = append(mesh.Positions, tri.Vertices[v])
			mesh.Normals = append(mesh.Normals, normal)
			mesh.Indices = append(mesh.Indices, base+uint32(v))
		}
	}

	return &Scene{Meshes: []*Mesh{mesh}}
}

// ToSTL flattens the scene into a single STL triangle soup.
func (s *Scene) ToSTL(header string) *formats.STL {
	stl := &formats.STL{
		Header:    header,
		Triangles: make([]formats.STLTriangle, 0, s.TriangleCount()),
	}

	for _, mesh := range s.Meshes {
		for i := 0; i+2 < len(mesh.Indices); i += 3 {
			var tri formats.STLTriangle
			for v := 0; v < 3; v++ {
				tri.Vertices[v] = mesh.Positions[mesh.Indices[i+v]]
			}
			tri.Normal = faceNormal(tri.Vertices)
			stl.Triangles = append(stl.Triangles, tri)
		}
	}

	return stl
}

// faceNormal computes the unit normal of a triangle from its winding.
func faceNormal(verts [3][3]float32) [3]float32 {
	e1 := [3]float32{verts[1][0] - verts[0][0], verts[1][1] - verts[0][1], verts[1][2] - verts[0][2]}
	e2 := [3]float32{verts[2][0] - verts[0][0], verts[2][1] - verts[0][1], verts[2][2] - verts[0][2]}
	cross := [3]float32{
		e1[1]*e2[2] - e1[2]*e2[1],
		e1[2]*e2[0] - e1[0]*e2[2],
		e1[0]*e2[1] - e1[1]*e2[0],
	}
	length := float32(math.Sqrt(float64(cross[0]*cross[0] + cross[1]*cross[1] + cross[2]*cross[2])))
	if length > 0 {
		cross[0] /= length
		cross[1] /= length
		cross[2] /= length
	}
	return cross
}
