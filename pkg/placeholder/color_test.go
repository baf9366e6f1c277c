package placeholder

import (
	"errors"
	"testing"
)

func TestNewColor(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    Color
		wantErr bool
	}{
		{"wood", 150, 111, 51, Color{150, 111, 51}, false},
		{"black", 0, 0, 0, Color{}, false},
		{"white", 255, 255, 255, Color{255, 255, 255}, false},
		{"red too high", 256, 0, 0, Color{}, true},
		{"green negative", 0, -1, 0, Color{}, true},
		{"blue too high", 0, 0, 1000, Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewColor(tt.r, tt.g, tt.b)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidChannel) {
					t.Errorf("expected ErrInvalidChannel, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("NewColor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr error
	}{
		{"#966f33", Color{150, 111, 51}, nil},
		{"966F33", Color{150, 111, 51}, nil},
		{"150,111,51", Color{150, 111, 51}, nil},
		{" 220, 220 ,220 ", Color{220, 220, 220}, nil},
		{"1,2", Color{}, ErrInvalidChannel},
		{"1,2,x", Color{}, ErrInvalidChannel},
		{"1,2,300", Color{}, ErrInvalidChannel},
		{"#fff", Color{}, ErrInvalidHexColor},
		{"#gggggg", Color{}, ErrInvalidHexColor},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	c := Color{150, 111, 51}
	if c.Hex() != "#966f33" {
		t.Errorf("expected #966f33, got %s", c.Hex())
	}
	if c.String() != "rgb(150, 111, 51)" {
		t.Errorf("unexpected String(): %s", c.String())
	}
}

func TestInspectPNG(t *testing.T) {
	info, err := InspectPNG(EncodePNG(Color{200, 180, 120}))
	if err != nil {
		t.Fatalf("InspectPNG failed: %v", err)
	}
	if info.Width != 1 || info.Height != 1 || info.BitDepth != 8 || info.ColorType != 2 {
		t.Errorf("unexpected header %+v", info)
	}
	if len(info.Chunks) != 3 {
		t.Errorf("expected 3 chunks, got %d", len(info.Chunks))
	}

	if _, err := InspectPNG([]byte("not a png")); !errors.Is(err, ErrBadMagic) {
		t.Errorf("expected ErrBadMagic, got %v", err)
	}

	trailing := append(EncodePNG(Color{}), 0, 0, 0, 0, 'J', 'U', 'N', 'K')
	if _, err := InspectPNG(trailing); err == nil {
		t.Error("expected error for data after IEND")
	}
}
