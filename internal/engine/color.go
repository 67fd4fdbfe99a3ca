package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

var ErrInvalidColor = errors.New("invalid color")

// Color is a normalized RGBA color, each channel in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGBA8 builds a color from 0-255 channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// ParseHexColor parses "#RRGGBBAA".
func ParseHexColor(hex string) (Color, error) {
	if len(hex) != 9 || hex[0] != '#' {
		return Color{}, fmt.Errorf("%w %q: want #RRGGBBAA", ErrInvalidColor, hex)
	}

	var ch [4]uint8
	for i := range ch {
		v, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w %q: %w", ErrInvalidColor, hex, err)
		}
		ch[i] = uint8(v)
	}
	return RGBA8(ch[0], ch[1], ch[2], ch[3]), nil
}

// Shade adds d to the RGB channels, leaving alpha untouched.
func (c Color) Shade(d float32) Color {
	return Color{R: c.R + d, G: c.G + d, B: c.B + d, A: c.A}
}

// RGBA8 returns the color rounded to 0-255 channels.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// Hex formats the color as "#RRGGBBAA".
func (c Color) Hex() string {
	r, g, b, a := c.RGBA8()
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
}

func to8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

// UnmarshalJSON accepts either a "#RRGGBBAA" string or a [r, g, b, a] array
// of 0-255 channels.
func (c *Color) UnmarshalJSON(data []byte) error {
	var hex string
	if err := json.Unmarshal(data, &hex); err == nil {
		parsed, err := ParseHexColor(hex)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var ch [4]uint8
	if err := json.Unmarshal(data, &ch); err != nil {
		return fmt.Errorf("%w %s: %w", ErrInvalidColor, data, err)
	}
	*c = RGBA8(ch[0], ch[1], ch[2], ch[3])
	return nil
}
