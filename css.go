package tint

import (
	"fmt"
	"math"
	"strconv"
)

// CSSRGB formats the color as "rgb(R, G, B)" with 0-255 integer channels.
func (c Color) CSSRGB() string {
	r, g, b, _ := c.To255()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// CSSRGBA formats the color as "rgba(R, G, B, A)" with alpha as a bare decimal.
func (c Color) CSSRGBA() string {
	r, g, b, a := c.To255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(a))
}

// CSSHSL formats the color as "hsl(H, S%, L%)" with integer degrees and percentages.
func (c Color) CSSHSL() string {
	h, s, l := cssHSL(c.HSLA())
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
}

// CSSHSLA formats the color as "hsla(H, S%, L%, A)".
func (c Color) CSSHSLA() string {
	hsl := c.HSLA()
	h, s, l := cssHSL(hsl)
	return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", h, s, l, formatAlpha(hsl.A))
}

func cssHSL(h HSLA) (deg, sat, light int) {
	deg = int(math.Round(h.H*360)) % 360
	sat = int(math.Round(h.S * 100))
	light = int(math.Round(h.L * 100))
	return deg, sat, light
}

// formatAlpha prints alpha with the shortest exact decimal representation.
func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}
