package placeholder

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"testing"
)

func TestEncodePNG_Signature(t *testing.T) {
	data := EncodePNG(Color{150, 111, 51})
	if !bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}) {
		t.Errorf("missing PNG signature: % x", data[:8])
	}
}

func TestEncodePNG_ChunkLayout(t *testing.T) {
	colors := []Color{{0, 0, 0}, {255, 255, 255}, {150, 111, 51}, {1, 2, 3}}

	for _, c := range colors {
		t.Run(c.Hex(), func(t *testing.T) {
			data := EncodePNG(c)

			// Walk chunks by hand so the checks do not depend on InspectPNG.
			var tags []string
			off := 8
			for off < len(data) {
				n := int(binary.BigEndian.Uint32(data[off:]))
				tag := data[off+4 : off+8]
				payload := data[off+8 : off+8+n]
				crc := binary.BigEndian.Uint32(data[off+8+n:])

				want := crc32.ChecksumIEEE(append(append([]byte(nil), tag...), payload...))
				if crc != want {
					t.Errorf("%s: crc 0x%08x, want 0x%08x", tag, crc, want)
				}
				tags = append(tags, string(tag))
				off += 12 + n
			}
			if off != len(data) {
				t.Fatalf("chunks overrun data: offset %d, length %d", off, len(data))
			}

			want := []string{"IHDR", "IDAT", "IEND"}
			if len(tags) != len(want) {
				t.Fatalf("expected tags %v, got %v", want, tags)
			}
			for i := range want {
				if tags[i] != want[i] {
					t.Errorf("chunk %d: expected %s, got %s", i, want[i], tags[i])
				}
			}
		})
	}
}

func TestEncodePNG_Header(t *testing.T) {
	data := EncodePNG(Color{10, 20, 30})
	ihdr := data[16:29]
	want := []byte{
		0, 0, 0, 1, // width
		0, 0, 0, 1, // height
		8, // bit depth
		2, // truecolor
		0, 0, 0,
	}
	if !bytes.Equal(ihdr, want) {
		t.Errorf("IHDR payload = % x, want % x", ihdr, want)
	}
}

func TestEncodePNG_Scanline(t *testing.T) {
	info, err := InspectPNG(EncodePNG(Color{7, 8, 9}))
	if err != nil {
		t.Fatalf("InspectPNG failed: %v", err)
	}
	r, err := zlib.NewReader(bytes.NewReader(info.Data))
	if err != nil {
		t.Fatalf("zlib reader: %v", err)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("inflate: %v", err)
	}
	if !bytes.Equal(raw, []byte{0, 7, 8, 9}) {
		t.Errorf("scanline = %v, want [0 7 8 9]", raw)
	}
}

func TestEncodePNG_RoundTrip(t *testing.T) {
	colors := []Color{{150, 111, 51}, {220, 220, 220}, {130, 158, 189}, {0, 0, 0}, {255, 0, 128}}

	for _, c := range colors {
		t.Run(c.Hex(), func(t *testing.T) {
			img, err := png.Decode(bytes.NewReader(EncodePNG(c)))
			if err != nil {
				t.Fatalf("png.Decode failed: %v", err)
			}
			if img.Bounds() != image.Rect(0, 0, 1, 1) {
				t.Fatalf("expected 1x1 image, got %v", img.Bounds())
			}
			rgb, ok := img.(*image.RGBA)
			if !ok {
				t.Fatalf("expected *image.RGBA, got %T", img)
			}
			got := rgb.RGBAAt(0, 0)
			if got.R != c.R || got.G != c.G || got.B != c.B || got.A != 255 {
				t.Errorf("pixel = %v, want %v", got, c)
			}
		})
	}
}

func TestEncodePNG_Deterministic(t *testing.T) {
	a := EncodePNG(Color{1, 2, 3})
	b := EncodePNG(Color{1, 2, 3})
	if !bytes.Equal(a, b) {
		t.Error("expected identical output for identical input")
	}
}
