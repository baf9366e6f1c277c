package placeholder

import (
	"errors"
	"fmt"
	stdmath "math"

	jsoniter "github.com/json-iterator/go"

	"github.com/Faultbox/roomseed/pkg/chunk"
	"github.com/Faultbox/roomseed/pkg/math"
)

// GLB container constants.
const (
	GLBMagic      = "glTF"
	GLBVersion    = 2
	GLBHeaderSize = 12

	// Generator is recorded in asset.generator of every document.
	Generator = "roomseed"
)

// glTF accessor component types.
const (
	componentFloat         = 5126
	componentUnsignedShort = 5123
)

// ErrInvalidMesh is returned when a mesh cannot be encoded.
var ErrInvalidMesh = errors.New("invalid mesh")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Mesh is an indexed triangle list.
type Mesh struct {
	Positions []math.Vec3
	Indices   []uint16
}

// Triangle returns the fixed placeholder triangle.
func Triangle() Mesh {
	return Mesh{
		Positions: []math.Vec3{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
		Indices: []uint16{0, 1, 2},
	}
}

// Validate checks that indices form whole, non-degenerate triangles
// referencing existing positions.
func (m Mesh) Validate() error {
	if len(m.Positions) == 0 {
		return fmt.Errorf("%w: no positions", ErrInvalidMesh)
	}
	if len(m.Indices) == 0 || len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a whole number of triangles", ErrInvalidMesh, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Positions) {
			return fmt.Errorf("%w: index %d at %d out of range (%d positions)", ErrInvalidMesh, idx, i, len(m.Positions))
		}
	}
	for i := 0; i < len(m.Indices); i += 3 {
		a, b, c := m.Positions[m.Indices[i]], m.Positions[m.Indices[i+1]], m.Positions[m.Indices[i+2]]
		if math.TriangleArea(a, b, c) == 0 {
			return fmt.Errorf("%w: triangle %d is degenerate", ErrInvalidMesh, i/3)
		}
	}
	return nil
}

// Document is the JSON scene descriptor stored in the GLB JSON chunk.
// Field order is the serialized key order.
type Document struct {
	Asset       Asset        `json:"asset"`
	Scenes      []Scene      `json:"scenes"`
	Nodes       []Node       `json:"nodes"`
	Meshes      []MeshDesc   `json:"meshes"`
	Buffers     []Buffer     `json:"buffers"`
	BufferViews []BufferView `json:"bufferViews"`
	Accessors   []Accessor   `json:"accessors"`
}

// Asset holds glTF asset metadata.
type Asset struct {
	Version   string `json:"version"`
	Generator string `json:"generator,omitempty"`
}

// Scene lists root node indices.
type Scene struct {
	Nodes []int `json:"nodes"`
}

// Node references a mesh.
type Node struct {
	Mesh int `json:"mesh"`
}

// MeshDesc is a glTF mesh.
type MeshDesc struct {
	Primitives []Primitive `json:"primitives"`
}

// Primitive binds attribute and index accessors.
type Primitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    int            `json:"indices"`
}

// Buffer is the binary blob carried in the BIN chunk.
type Buffer struct {
	ByteLength int `json:"byteLength"`
}

// BufferView is a byte range within a buffer.
type BufferView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset"`
	ByteLength int `json:"byteLength"`
}

// Accessor is a typed view over a buffer view.
type Accessor struct {
	BufferView    int       `json:"bufferView"`
	ComponentType int       `json:"componentType"`
	Count         int       `json:"count"`
	Type          string    `json:"type"`
	Min           []float32 `json:"min"`
	Max           []float32 `json:"max"`
}

// EncodeGLB returns a complete GLB containing the fixed placeholder triangle.
func EncodeGLB() []byte {
	data, err := encodeMesh(Triangle())
	if err != nil {
		panic("placeholder: encoding fixed triangle: " + err.Error())
	}
	return data
}

func encodeMesh(m Mesh) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	le := chunk.GLB.Order

	positions := make([]byte, 0, len(m.Positions)*12)
	for _, p := range m.Positions {
		for _, v := range p.Array() {
			positions = le.AppendUint32(positions, stdmath.Float32bits(v))
		}
	}

	indices := make([]byte, 0, len(m.Indices)*2+2)
	minIndex, maxIndex := m.Indices[0], m.Indices[0]
	for _, idx := range m.Indices {
		indices = le.AppendUint16(indices, idx)
		minIndex = min(minIndex, idx)
		maxIndex = max(maxIndex, idx)
	}
	indices = chunk.Pad(indices, 4, 0)

	blob := make([]byte, 0, len(positions)+len(indices))
	blob = append(blob, positions...)
	blob = append(blob, indices...)

	lo, hi := math.Bounds(m.Positions)
	loArr, hiArr := lo.Array(), hi.Array()

	doc := Document{
		Asset:  Asset{Version: "2.0", Generator: Generator},
		Scenes: []Scene{{Nodes: []int{0}}},
		Nodes:  []Node{{Mesh: 0}},
		Meshes: []MeshDesc{{Primitives: []Primitive{{
			Attributes: map[string]int{"POSITION": 0},
			Indices:    1,
		}}}},
		Buffers: []Buffer{{ByteLength: len(blob)}},
		BufferViews: []BufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: len(positions)},
			{Buffer: 0, ByteOffset: len(positions), ByteLength: len(indices)},
		},
		Accessors: []Accessor{
			{
				BufferView:    0,
				ComponentType: componentFloat,
				Count:         len(m.Positions),
				Type:          "VEC3",
				Min:           loArr[:],
				Max:           hiArr[:],
			},
			{
				BufferView:    1,
				ComponentType: componentUnsignedShort,
				Count:         len(m.Indices),
				Type:          "SCALAR",
				Min:           []float32{float32(minIndex)},
				Max:           []float32{float32(maxIndex)},
			},
		},
	}

	text, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	text = chunk.Pad(text, 4, ' ')

	total := GLBHeaderSize + chunk.GLB.Overhead()*2 + len(text) + len(blob)
	out := make([]byte, 0, total)
	out = append(out, GLBMagic...)
	out = le.AppendUint32(out, GLBVersion)
	out = le.AppendUint32(out, uint32(total))
	out = chunk.GLB.Append(out, "JSON", text)
	out = chunk.GLB.Append(out, "BIN", blob)
	return out, nil
}
