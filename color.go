package rounded

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/gogpu/gg-rounded/material"
)

// ErrInvalidColor is returned by ParseColor for unrecognized input.
var ErrInvalidColor = errors.New("rounded: invalid color")

// RGBA represents a straight-alpha color with red, green, blue, and alpha
// components. Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	p := c.Premultiply()
	return uint32(clamp01(p.R) * 65535), uint32(clamp01(p.G) * 65535),
		uint32(clamp01(p.B) * 65535), uint32(clamp01(p.A) * 65535)
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
		A: float64(n.A) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Malformed input yields opaque black.
func Hex(hex string) RGBA {
	c, err := parseHexColor(hex)
	if err != nil {
		return Black
	}
	return c
}

// ParseColor parses a hex color (see Hex) or a CSS/SVG color name such as
// "cornflowerblue". "transparent" and "clear" map to Transparent.
func ParseColor(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	switch name := strings.ToLower(s); name {
	case "":
		return RGBA{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	case "transparent", "clear":
		return Transparent, nil
	default:
		if c, ok := colornames.Map[name]; ok {
			return FromColor(c), nil
		}
	}
	return parseHexColor(s)
}

func parseHexColor(hex string) (RGBA, error) {
	orig := hex
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b, a uint32
	a = 255
	var ok bool

	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) &&
			parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) &&
			parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	}
	if !ok {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// HexString formats the color as "#rrggbbaa".
func (c RGBA) HexString() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", to255(c.R), to255(c.G), to255(c.B), to255(c.A))
}

// String implements fmt.Stringer.
func (c RGBA) String() string { return c.HexString() }

// Premultiply returns a premultiplied color.
func (c RGBA) Premultiply() RGBA {
	return RGBA{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// material converts the color to the shader representation.
func (c RGBA) material() material.Color {
	return material.Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: float32(c.A)}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func to255(x float64) uint8 {
	return uint8(clamp01(x)*255 + 0.5)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA2(0, 0, 0, 0)
)
