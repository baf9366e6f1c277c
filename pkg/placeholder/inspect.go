package placeholder

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/Faultbox/roomseed/pkg/chunk"
)

// Inspection errors.
var (
	ErrBadMagic    = errors.New("bad magic signature")
	ErrBadLayout   = errors.New("unexpected chunk layout")
	ErrLengthFault = errors.New("declared length mismatch")
)

// ChunkInfo summarizes one framed chunk.
type ChunkInfo struct {
	Tag    string
	Length int
	CRC    uint32
}

// PNGInfo is the structure of an encoded PNG.
type PNGInfo struct {
	Width, Height uint32
	BitDepth      uint8
	ColorType     uint8
	Chunks        []ChunkInfo
	Data          []byte // concatenated IDAT payloads
}

// InspectPNG walks the chunk framing of a PNG and verifies every checksum.
func InspectPNG(data []byte) (*PNGInfo, error) {
	if len(data) < len(PNGSignature) || string(data[:len(PNGSignature)]) != PNGSignature {
		return nil, fmt.Errorf("%w: not a PNG", ErrBadMagic)
	}

	info := &PNGInfo{}
	rest := data[len(PNGSignature):]
	for len(rest) > 0 {
		c, next, err := chunk.PNG.Next(rest)
		if err != nil {
			return nil, err
		}
		rest = next
		info.Chunks = append(info.Chunks, ChunkInfo{Tag: c.Name(), Length: len(c.Payload), CRC: c.CRC})

		switch c.Name() {
		case "IHDR":
			if len(c.Payload) != 13 {
				return nil, fmt.Errorf("%w: IHDR is %d bytes", ErrBadLayout, len(c.Payload))
			}
			info.Width = binary.BigEndian.Uint32(c.Payload[0:4])
			info.Height = binary.BigEndian.Uint32(c.Payload[4:8])
			info.BitDepth = c.Payload[8]
			info.ColorType = c.Payload[9]
		case "IDAT":
			info.Data = append(info.Data, c.Payload...)
		case "IEND":
			if len(rest) != 0 {
				return nil, fmt.Errorf("%w: %d bytes after IEND", ErrBadLayout, len(rest))
			}
		}
	}

	if len(info.Chunks) == 0 || info.Chunks[0].Tag != "IHDR" {
		return nil, fmt.Errorf("%w: first chunk is not IHDR", ErrBadLayout)
	}
	if info.Chunks[len(info.Chunks)-1].Tag != "IEND" {
		return nil, fmt.Errorf("%w: missing IEND", ErrBadLayout)
	}
	return info, nil
}

// GLBInfo is the structure of an encoded GLB.
type GLBInfo struct {
	Version  uint32
	Length   uint32
	Chunks   []ChunkInfo
	Document Document
	Binary   []byte
}

// InspectGLB walks a GLB container, checks its declared lengths and
// alignment, and decodes the JSON document.
func InspectGLB(data []byte) (*GLBInfo, error) {
	if len(data) < GLBHeaderSize || string(data[:4]) != GLBMagic {
		return nil, fmt.Errorf("%w: not a GLB", ErrBadMagic)
	}

	le := chunk.GLB.Order
	info := &GLBInfo{
		Version: le.Uint32(data[4:8]),
		Length:  le.Uint32(data[8:12]),
	}
	if int(info.Length) != len(data) {
		return nil, fmt.Errorf("%w: header declares %d bytes, got %d", ErrLengthFault, info.Length, len(data))
	}

	var payloads [][]byte
	rest := data[GLBHeaderSize:]
	for len(rest) > 0 {
		c, next, err := chunk.GLB.Next(rest)
		if err != nil {
			return nil, err
		}
		if len(c.Payload)%4 != 0 {
			return nil, fmt.Errorf("%w: %q payload of %d bytes is not 4-byte aligned", ErrBadLayout, c.Name(), len(c.Payload))
		}
		rest = next
		info.Chunks = append(info.Chunks, ChunkInfo{Tag: c.Name(), Length: len(c.Payload)})
		payloads = append(payloads, c.Payload)
	}

	if len(info.Chunks) != 2 || info.Chunks[0].Tag != "JSON" || info.Chunks[1].Tag != "BIN" {
		return nil, fmt.Errorf("%w: expected JSON then BIN chunks", ErrBadLayout)
	}
	if err := json.Unmarshal(payloads[0], &info.Document); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	info.Binary = payloads[1]

	for i, v := range info.Document.BufferViews {
		if !v.within(len(info.Binary)) {
			return nil, fmt.Errorf("%w: buffer view %d exceeds binary chunk", ErrLengthFault, i)
		}
	}
	for i, a := range info.Document.Accessors {
		if a.Count < 0 {
			return nil, fmt.Errorf("%w: accessor %d has negative count %d", ErrBadLayout, i, a.Count)
		}
	}
	return info, nil
}

// Positions decodes the float32 VEC3 data referenced by accessor 0's view.
func (g *GLBInfo) Positions() ([][3]float32, error) {
	view, acc, err := g.accessorView(0)
	if err != nil {
		return nil, err
	}
	if acc.Count > view.ByteLength/12 {
		return nil, fmt.Errorf("%w: position view too short", ErrLengthFault)
	}
	out := make([][3]float32, acc.Count)
	b := g.Binary[view.ByteOffset:]
	for i := range out {
		for j := range 3 {
			out[i][j] = math.Float32frombits(binary.LittleEndian.Uint32(b[(i*3+j)*4:]))
		}
	}
	return out, nil
}

// Indices decodes the uint16 SCALAR data referenced by accessor 1's view.
func (g *GLBInfo) Indices() ([]uint16, error) {
	view, acc, err := g.accessorView(1)
	if err != nil {
		return nil, err
	}
	if acc.Count > view.ByteLength/2 {
		return nil, fmt.Errorf("%w: index view too short", ErrLengthFault)
	}
	out := make([]uint16, acc.Count)
	b := g.Binary[view.ByteOffset:]
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	return out, nil
}

func (g *GLBInfo) accessorView(i int) (BufferView, Accessor, error) {
	if i >= len(g.Document.Accessors) {
		return BufferView{}, Accessor{}, fmt.Errorf("%w: no accessor %d", ErrBadLayout, i)
	}
	acc := g.Document.Accessors[i]
	if acc.BufferView < 0 || acc.BufferView >= len(g.Document.BufferViews) {
		return BufferView{}, Accessor{}, fmt.Errorf("%w: accessor %d has no buffer view", ErrBadLayout, i)
	}
	if acc.Count < 0 {
		return BufferView{}, Accessor{}, fmt.Errorf("%w: accessor %d has negative count %d", ErrBadLayout, i, acc.Count)
	}
	view := g.Document.BufferViews[acc.BufferView]
	if !view.within(len(g.Binary)) {
		return BufferView{}, Accessor{}, fmt.Errorf("%w: buffer view %d exceeds binary chunk", ErrLengthFault, acc.BufferView)
	}
	return view, acc, nil
}

// within reports whether v lies inside a buffer of n bytes without
// overflowing on huge offsets.
func (v BufferView) within(n int) bool {
	return v.ByteOffset >= 0 && v.ByteLength >= 0 &&
		v.ByteOffset <= n && v.ByteLength <= n-v.ByteOffset
}
