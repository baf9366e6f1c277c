// Package placeholder synthesizes minimal binary placeholder assets:
// single-pixel truecolor PNG textures and a single-triangle GLB model.
//
// Encoders are pure functions that return owned byte slices; they never
// touch the file system.
package placeholder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Color errors.
var (
	ErrInvalidChannel  = errors.New("invalid channel value")
	ErrInvalidHexColor = errors.New("invalid hex color")
)

// Color is an 8-bit truecolor RGB triple.
type Color struct {
	R, G, B uint8
}

// NewColor builds a Color from integer channels.
// Values outside 0-255 are rejected rather than clamped.
func NewColor(r, g, b int) (Color, error) {
	for i, v := range [3]int{r, g, b} {
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("%w: %s=%d", ErrInvalidChannel, channelNames[i], v)
		}
	}
	return Color{uint8(r), uint8(g), uint8(b)}, nil
}

var channelNames = [3]string{"red", "green", "blue"}

// ParseColor accepts "#rrggbb", "rrggbb" or "r,g,b".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return Color{}, fmt.Errorf("%w: %q needs 3 channels", ErrInvalidChannel, s)
		}
		var ch [3]int
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return Color{}, fmt.Errorf("%w: %s=%q", ErrInvalidChannel, channelNames[i], p)
			}
			ch[i] = v
		}
		return NewColor(ch[0], ch[1], ch[2])
	}
	return ParseHexColor(s)
}

// ParseHexColor parses "#rrggbb" (the leading '#' is optional).
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHexColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHexColor, s)
	}
	return Color{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the color as "rgb(r, g, b)".
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
