package tint

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// cssOnlyNames holds the CSS keywords missing from the SVG 1.1 table.
var cssOnlyNames = map[string]Color{
	"transparent":   Transparent,
	"rebeccapurple": RGB255(0x66, 0x33, 0x99),
}

// ParseNamed looks up an SVG 1.1 / CSS color keyword such as "Dark Slate
// Gray". Matching ignores case, spaces, hyphens and underscores. The CSS
// additions "transparent" and "rebeccapurple" are accepted as well.
func ParseNamed(name string) (Color, error) {
	key := normalizeName(name)
	if c, ok := cssOnlyNames[key]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[key]; ok {
		return FromColor(c), nil
	}
	logRejected("tint: unknown color name", name)
	return Color{}, fmt.Errorf("%w: %q", ErrUnknownName, name)
}

// Parse accepts either a hex color (see ParseHex) or a color name (see
// ParseNamed). Strings starting with '#' are always treated as hex.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return ParseHex(s)
	}
	if c, err := ParseNamed(s); err == nil {
		return c, nil
	}
	return ParseHex(s)
}

func normalizeName(name string) string {
	// A Caser is stateful, so each call gets its own.
	folded := cases.Fold().String(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, folded)
}
