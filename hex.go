package tint

import (
	"fmt"

	icolor "github.com/gogpu/tint/internal/color"
)

// ParseHex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", each with an
// optional leading '#' and in any letter case. Short forms double every
// digit. Alpha defaults to opaque when omitted.
//
// Any other length or a non-hex digit yields an error wrapping ErrInvalidHex.
func ParseHex(s string) (Color, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255
	ok := true

	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b) &&
			parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b) &&
			parseHex(hex[6:8], &a)
	default:
		ok = false
	}

	if !ok {
		logRejected("tint: hex parse failed", s)
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return RGBA(
		float64(r)/255,
		float64(g)/255,
		float64(b)/255,
		float64(a)/255,
	), nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// It is intended for package-level color literals.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex decodes s into val. It reports false on a non-hex digit.
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

// Hex formats the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	r, g, b, _ := c.To255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// HexAlpha formats the color as "#rrggbb" when fully opaque and as
// "#rrggbbaa" otherwise.
func (c Color) HexAlpha() string {
	if c.a == 1 {
		return c.Hex()
	}
	return fmt.Sprintf("%s%02x", c.Hex(), icolor.ToByte(c.a))
}
