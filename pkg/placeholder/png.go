package placeholder

import (
	"bytes"
	"compress/zlib"

	"github.com/Faultbox/roomseed/pkg/chunk"
)

// PNGSignature is the fixed 8-byte PNG file signature.
const PNGSignature = "\x89PNG\r\n\x1a\n"

// IHDR field values for a 1x1 truecolor image.
const (
	pngWidth     = 1
	pngHeight    = 1
	pngBitDepth  = 8
	pngTruecolor = 2
)

// EncodePNG returns a complete 1x1 truecolor PNG filled with c.
func EncodePNG(c Color) []byte {
	ihdr := make([]byte, 0, 13)
	ihdr = chunk.PNG.Order.AppendUint32(ihdr, pngWidth)
	ihdr = chunk.PNG.Order.AppendUint32(ihdr, pngHeight)
	// bit depth, color type, compression, filter, interlace
	ihdr = append(ihdr, pngBitDepth, pngTruecolor, 0, 0, 0)

	idat := deflateScanline([]byte{0, c.R, c.G, c.B})

	out := make([]byte, 0, len(PNGSignature)+3*chunk.PNG.Overhead()+len(ihdr)+len(idat))
	out = append(out, PNGSignature...)
	out = chunk.PNG.Append(out, "IHDR", ihdr)
	out = chunk.PNG.Append(out, "IDAT", idat)
	out = chunk.PNG.Append(out, "IEND", nil)
	return out
}

// deflateScanline zlib-compresses raw scanline bytes.
// Writes to a bytes.Buffer cannot fail.
func deflateScanline(raw []byte) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	w.Write(raw)
	w.Close()
	return buf.Bytes()
}
