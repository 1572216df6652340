// Package formats provides parsers and writers for the mesh file formats the
// model tools exchange. STL is the only format implemented directly; GLB is
// handled by the scene package on top of a glTF library.
package formats

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// STL format errors.
var (
	ErrTruncatedSTLData = errors.New("truncated STL data")
	ErrMalformedSTL     = errors.New("malformed STL data")
)

const (
	stlHeaderSize   = 80
	stlTriangleSize = 50 // 12 floats + attribute byte count
)

// STLTriangle is a single facet: a normal and three vertices.
type STLTriangle struct {
	Normal   [3]float32
	Vertices [3][3]float32
}

// STL represents a parsed STL mesh.
type STL struct {
	// Header is the 80-byte comment from binary files, or the solid name
	// from ASCII files.
	Header    string
	Triangles []STLTriangle
}

// TriangleCount returns the number of facets.
func (s *STL) TriangleCount() int {
	return len(s.Triangles)
}

// ParseSTL parses STL data in either binary or ASCII form.
func ParseSTL(data []byte) (*STL, error) {
	if isBinarySTL(data) {
		return parseBinarySTL(data)
	}
	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid")) {
		return parseASCIISTL(data)
	}
	return parseBinarySTL(data)
}

// LoadSTL reads and parses an STL file.
func LoadSTL(path string) (*STL, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mesh, err := ParseSTL(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return mesh, nil
}

// isBinarySTL decides binary vs ASCII. ASCII files start with "solid", but
// so can a binary header, so the declared triangle count is cross-checked
// against the actual file length.
func isBinarySTL(data []byte) bool {
	if len(data) < stlHeaderSize+4 {
		return false
	}
	count := binary.LittleEndian.Uint32(data[stlHeaderSize:])
	expected := stlHeaderSize + 4 + int(count)*stlTriangleSize
	return expected == len(data)
}

func parseBinarySTL(data []byte) (*STL, error) {
	if len(data) < stlHeaderSize+4 {
		return nil, ErrTruncatedSTLData
	}

	header := strings.TrimRight(string(data[:stlHeaderSize]), "\x00 ")
	count := binary.LittleEndian.Uint32(data[stlHeaderSize:])

	need := stlHeaderSize + 4 + int(count)*stlTriangleSize
	if len(data) < need {
		return nil, ErrTruncatedSTLData
	}

	mesh := &STL{
		Header:    header,
		Triangles: make([]STLTriangle, count),
	}

	offset := stlHeaderSize + 4
	for i := uint32(0); i < count; i++ {
		tri := &mesh.Triangles[i]
		tri.Normal = readVec3f(data[offset:])
		tri.Vertices[0] = readVec3f(data[offset+12:])
		tri.Vertices[1] = readVec3f(data[offset+24:])
		tri.Vertices[2] = readVec3f(data[offset+36:])
		offset += stlTriangleSize // attribute byte count ignored
	}

	return mesh, nil
}

func readVec3f(data []byte) [3]float32 {
	return [3]float32{
		math.Float32frombits(binary.LittleEndian.Uint32(data[0:])),
		math.Float32frombits(binary.LittleEndian.Uint32(data[4:])),
		math.Float32frombits(binary.LittleEndian.Uint32(data[8:])),
	}
}

func parseASCIISTL(data []byte) (*STL, error) {
	mesh := &STL{}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var tri STLTriangle
	vertexIdx := 0

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				mesh.Header = strings.Join(fields[1:], " ")
			}
		case "facet":
			// "facet normal nx ny nz"
			if len(fields) < 5 {
				return nil, fmt.Errorf("%w: bad facet line", ErrMalformedSTL)
			}
			n, err := parseFloats(fields[2:5])
			if err != nil {
				return nil, err
			}
			tri = STLTriangle{Normal: n}
			vertexIdx = 0
		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: bad vertex line", ErrMalformedSTL)
			}
			if vertexIdx > 2 {
				return nil, fmt.Errorf("%w: more than three vertices in facet", ErrMalformedSTL)
			}
			v, err := parseFloats(fields[1:4])
			if err != nil {
				return nil, err
			}
			tri.Vertices[vertexIdx] = v
			vertexIdx++
		case "endfacet":
			if vertexIdx != 3 {
				return nil, fmt.Errorf("%w: facet with %d vertices", ErrMalformedSTL, vertexIdx)
			}
			mesh.Triangles = append(mesh.Triangles, tri)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return mesh, nil
}

func parseFloats(fields []string) ([3]float32, error) {
	var out [3]float32
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return out, fmt.Errorf("%w: %q is not a number", ErrMalformedSTL, f)
		}
		out[i] = float32(v)
	}
	return out, nil
}

// WriteSTL writes the mesh in binary STL form.
func WriteSTL(w io.Writer, mesh *STL) error {
	var header [stlHeaderSize]byte
	copy(header[:], mesh.Header)
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(mesh.Triangles))); err != nil {
		return err
	}

	buf := make([]byte, stlTriangleSize)
	for i := range mesh.Triangles {
		tri := &mesh.Triangles[i]
		writeVec3f(buf[0:], tri.Normal)
		writeVec3f(buf[12:], tri.Vertices[0])
		writeVec3f(buf[24:], tri.Vertices[1])
		writeVec3f(buf[36:], tri.Vertices[2])
		buf[48], buf[49] = 0, 0
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}

	return nil
}

// SaveSTL writes the mesh to a binary STL file.
func SaveSTL(path string, mesh *STL) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	if err := WriteSTL(bw, mesh); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeVec3f(dst []byte, v [3]float32) {
	binary.LittleEndian.PutUint32(dst[0:], math.Float32bits(v[0]))
	binary.LittleEndian.PutUint32(dst[4:], math.Float32bits(v[1]))
	binary.LittleEndian.PutUint32(dst[8:], math.Float32bits(v[2]))
}
