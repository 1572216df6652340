package scene

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/robertogonzalez-tech/pallet-configurator/pkg/geom"
)

// ErrNoGeometry is returned when a GLB file contains no triangle geometry.
var ErrNoGeometry = errors.New("GLB contains no triangle geometry")

// LoadGLB reads a binary glTF file into a scene. Node transforms are baked
// into the vertices, so the returned geometry is in world space.
func LoadGLB(path string) (*Scene, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	s := &Scene{}
	for _, root := range sceneRoots(doc) {
		if err := collectNode(doc, root, geom.Identity(), s); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if s.IsEmpty() {
		return nil, fmt.Errorf("%s: %w", path, ErrNoGeometry)
	}
	return s, nil
}

// sceneRoots returns the root nodes of the active scene, falling back to the
// first scene and finally to all nodes for documents without a scene entry.
func sceneRoots(doc *gltf.Document) []uint32 {
	if doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes) {
		return doc.Scenes[*doc.Scene].Nodes
	}
	if len(doc.Scenes) > 0 {
		return doc.Scenes[0].Nodes
	}
	roots := make([]uint32, len(doc.Nodes))
	for i := range doc.Nodes {
		roots[i] = uint32(i)
	}
	return roots
}

func collectNode(doc *gltf.Document, nodeIdx uint32, parent geom.Mat4, s *Scene) error {
	if int(nodeIdx) >= len(doc.Nodes) {
		return fmt.Errorf("node index %d out of range", nodeIdx)
	}
	node := doc.Nodes[nodeIdx]
	world := parent.Mul(localMatrix(node))

	if node.Mesh != nil {
		if int(*node.Mesh) >= len(doc.Meshes) {
			return fmt.Errorf("mesh index %d out of range", *node.Mesh)
		}
		mesh, err := readMesh(doc, doc.Meshes[*node.Mesh], world)
		if err != nil {
			return err
		}
		if mesh != nil {
			if mesh.Name == "" {
				mesh.Name = node.Name
			}
			s.Meshes = append(s.Meshes, mesh)
		}
	}

	for _, child := range node.Children {
		if err := collectNode(doc, child, world, s); err != nil {
			return err
		}
	}
	return nil
}

// localMatrix returns the node's local transform, honoring the glTF rule
// that matrix and TRS properties are mutually exclusive.
func localMatrix(node *gltf.Node) geom.Mat4 {
	var m geom.Mat4
	for i, v := range node.MatrixOrDefault() {
		m[i] = float64(v)
	}
	if !m.IsIdentity() {
		return m
	}

	t := node.TranslationOrDefault()
	r := node.RotationOrDefault()
	sc := node.ScaleOrDefault()

	return geom.Translate(float64(t[0]), float64(t[1]), float64(t[2])).
		Mul(geom.FromQuat(float64(r[0]), float64(r[1]), float64(r[2]), float64(r[3]))).
		Mul(geom.Scale(float64(sc[0]), float64(sc[1]), float64(sc[2])))
}

// readMesh decodes all triangle primitives of a glTF mesh and bakes the
// world transform into positions and normals.
func readMesh(doc *gltf.Document, src *gltf.Mesh, world geom.Mat4) (*Mesh, error) {
	mesh := &Mesh{Name: src.Name}

	for _, prim := range src.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		if int(posIdx) >= len(doc.Accessors) {
			return nil, fmt.Errorf("position accessor %d out of range", posIdx)
		}

		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return nil, fmt.Errorf("reading positions: %w", err)
		}

		var normals [][3]float32
		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok && int(normIdx) < len(doc.Accessors) {
			normals, err = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("reading normals: %w", err)
			}
		}

		var indices []uint32
		if prim.Indices != nil {
			if int(*prim.Indices) >= len(doc.Accessors) {
				return nil, fmt.Errorf("index accessor %d out of range", *prim.Indices)
			}
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, fmt.Errorf("reading indices: %w", err)
			}
		} else {
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		base := uint32(len(mesh.Positions))
		for _, p := range positions {
			v := world.TransformPoint(geom.Vec3{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])})
			mesh.Positions = append(mesh.Positions, [3]float32{float32(v.X), float32(v.Y), float32(v.Z)})
		}
		for _, n := range normals {
			v := world.TransformDir(geom.Vec3{X: float64(n[0]), Y: float64(n[1]), Z: float64(n[2])}).Normalize()
			mesh.Normals = append(mesh.Normals, [3]float32{float32(v.X), float32(v.Y), float32(v.Z)})
		}
		for _, idx := range indices {
			mesh.Indices = append(mesh.Indices, base+idx)
		}
	}

	if len(mesh.Positions) == 0 {
		return nil, nil
	}
	// Normals are all-or-nothing per mesh; drop them if primitives disagree.
	if len(mesh.Normals) != len(mesh.Positions) {
		mesh.Normals = nil
	}
	return mesh, nil
}

// SaveGLB writes the scene as a binary glTF file with a single neutral
// material shared by every mesh.
func SaveGLB(s *Scene, path string) error {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "pallet-configurator model tools"

	doc.Materials = []*gltf.Material{{
		Name: "default",
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{0.8, 0.8, 0.8, 1},
			MetallicFactor:  gltf.Float(0.1),
			RoughnessFactor: gltf.Float(0.8),
		},
		AlphaMode: gltf.AlphaOpaque,
	}}

	for _, mesh := range s.Meshes {
		if len(mesh.Positions) == 0 {
			continue
		}

		normals := mesh.Normals
		if len(normals) != len(mesh.Positions) {
			normals = flatNormals(mesh)
		}

		posAccessor := modeler.WritePosition(doc, mesh.Positions)
		normalAccessor := modeler.WriteNormal(doc, normals)
		indicesAccessor := modeler.WriteIndices(doc, mesh.Indices)

		prim := &gltf.Primitive{
			Attributes: map[string]uint32{
				gltf.POSITION: uint32(posAccessor),
				gltf.NORMAL:   uint32(normalAccessor),
			},
			Indices:  gltf.Index(uint32(indicesAccessor)),
			Material: gltf.Index(0),
		}

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name:       mesh.Name,
			Primitives: []*gltf.Primitive{prim},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: mesh.Name,
			Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}

	return gltf.SaveBinary(doc, path)
}

// flatNormals builds one face normal per vertex for meshes that arrived
// without usable normals.
func flatNormals(mesh *Mesh) [][3]float32 {
	normals := make([][3]float32, len(mesh.Positions))
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		i0, i1, i2 := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
		n := faceNormal([3][3]float32{
			mesh.Positions[i0],
			mesh.Positions[i1],
			mesh.Positions[i2],
		})
		normals[i0] = n
		normals[i1] = n
		normals[i2] = n
	}
	return normals
}
