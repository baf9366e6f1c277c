// Package chunk implements the length/tag/payload block framing shared by
// PNG and GLB.
//
// A framed chunk is laid out as:
//
//	length  uint32  payload length in the layout's byte order
//	tag     [4]byte ASCII type, zero-padded when shorter than 4 bytes
//	payload []byte
//	crc     uint32  CRC-32 (IEEE) of tag ∥ payload, only when Layout.Checksum is set
package chunk

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
)

// TagSize is the width of a chunk type tag in bytes.
const TagSize = 4

// Chunk framing errors.
var (
	ErrTruncated   = errors.New("truncated chunk")
	ErrBadChecksum = errors.New("chunk checksum mismatch")
)

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Layout describes how a format frames its chunks.
type Layout struct {
	Order    byteOrder
	Checksum bool
}

// Known layouts.
var (
	// PNG chunks use big-endian lengths and carry a CRC-32 trailer.
	PNG = Layout{Order: binary.BigEndian, Checksum: true}
	// GLB chunks use little-endian lengths and have no trailer.
	GLB = Layout{Order: binary.LittleEndian, Checksum: false}
)

// Chunk is a decoded chunk.
type Chunk struct {
	Tag     [TagSize]byte
	Payload []byte
	CRC     uint32 // zero when the layout has no checksum
}

// Name returns the tag with trailing zero padding removed.
func (c Chunk) Name() string {
	n := TagSize
	for n > 0 && c.Tag[n-1] == 0 {
		n--
	}
	return string(c.Tag[:n])
}

// Tag converts a name of at most TagSize bytes into a zero-padded tag.
// It panics on longer names; tags are compile-time constants.
func Tag(name string) [TagSize]byte {
	if len(name) > TagSize {
		panic(fmt.Sprintf("chunk: tag %q longer than %d bytes", name, TagSize))
	}
	var t [TagSize]byte
	copy(t[:], name)
	return t
}

// Overhead returns the number of framing bytes around a payload.
func (l Layout) Overhead() int {
	if l.Checksum {
		return 12
	}
	return 8
}

// Append frames payload under tag and appends it to dst.
func (l Layout) Append(dst []byte, tag string, payload []byte) []byte {
	t := Tag(tag)
	dst = l.Order.AppendUint32(dst, uint32(len(payload)))
	dst = append(dst, t[:]...)
	dst = append(dst, payload...)
	if l.Checksum {
		dst = l.Order.AppendUint32(dst, Checksum(t, payload))
	}
	return dst
}

// Frame returns payload framed under tag.
func (l Layout) Frame(tag string, payload []byte) []byte {
	return l.Append(make([]byte, 0, len(payload)+l.Overhead()), tag, payload)
}

// Next decodes the chunk at the start of data and returns the remainder.
// The checksum, if any, is verified.
func (l Layout) Next(data []byte) (Chunk, []byte, error) {
	var c Chunk
	if len(data) < 8 {
		return c, nil, ErrTruncated
	}
	n := int(l.Order.Uint32(data[0:4]))
	copy(c.Tag[:], data[4:8])

	end := 8 + n
	if n < 0 || end > len(data) {
		return c, nil, fmt.Errorf("%w: %q declares %d bytes, %d available", ErrTruncated, c.Name(), n, len(data)-8)
	}
	c.Payload = data[8:end]

	if l.Checksum {
		if end+4 > len(data) {
			return c, nil, fmt.Errorf("%w: %q missing checksum", ErrTruncated, c.Name())
		}
		c.CRC = l.Order.Uint32(data[end : end+4])
		if want := Checksum(c.Tag, c.Payload); c.CRC != want {
			return c, nil, fmt.Errorf("%w: %q has 0x%08x, want 0x%08x", ErrBadChecksum, c.Name(), c.CRC, want)
		}
		end += 4
	}
	return c, data[end:], nil
}

// Checksum computes CRC-32 (IEEE) over tag ∥ payload.
func Checksum(tag [TagSize]byte, payload []byte) uint32 {
	crc := crc32.ChecksumIEEE(tag[:])
	return crc32.Update(crc, crc32.IEEETable, payload)
}

// Pad right-pads b with fill until its length is a multiple of align.
func Pad(b []byte, align int, fill byte) []byte {
	for len(b)%align != 0 {
		b = append(b, fill)
	}
	return b
}
