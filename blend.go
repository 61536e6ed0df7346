package tint

import "github.com/gogpu/tint/internal/blend"

// BlendMode selects the formula used by Blend.
type BlendMode uint8

const (
	// Separable blend modes (per channel)
	BlendNormal     BlendMode = iota // source
	BlendMultiply                    // a*b
	BlendScreen                      // 1-(1-a)(1-b)
	BlendOverlay                     // a<0.5 ? 2ab : 1-2(1-a)(1-b)
	BlendDarken                      // min(a,b)
	BlendLighten                     // max(a,b)
	BlendColorDodge                  // a/(1-b)
	BlendColorBurn                   // 1-(1-a)/b
	BlendHardLight                   // overlay(b,a)
	BlendSoftLight                   // a<0.5 ? 2ab+a²(1-2b) : 2a(1-b)+√a(2b-1)
	BlendDifference                  // |a-b|
	BlendExclusion                   // a+b-2ab

	// Non-separable blend modes
	BlendHue        // hue of source, saturation and luminosity of backdrop
	BlendSaturation // saturation of source, hue and luminosity of backdrop
	BlendColor      // hue and saturation of source, luminosity of backdrop
	BlendLuminosity // luminosity of source, hue and saturation of backdrop
)

var blendModeNames = [...]string{
	BlendNormal:     "normal",
	BlendMultiply:   "multiply",
	BlendScreen:     "screen",
	BlendOverlay:    "overlay",
	BlendDarken:     "darken",
	BlendLighten:    "lighten",
	BlendColorDodge: "color-dodge",
	BlendColorBurn:  "color-burn",
	BlendHardLight:  "hard-light",
	BlendSoftLight:  "soft-light",
	BlendDifference: "difference",
	BlendExclusion:  "exclusion",
	BlendHue:        "hue",
	BlendSaturation: "saturation",
	BlendColor:      "color",
	BlendLuminosity: "luminosity",
}

// String returns the CSS mix-blend-mode keyword for the mode.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "unknown"
}

// Blend composites source onto backdrop using mode.
//
// In the formulas above a is the backdrop channel and b the source channel.
// For opaque colors the result is exactly the formula. Translucent colors
// follow W3C Compositing Level 1: the blend result is weighted by the
// backdrop alpha and then composited with Porter-Duff source-over.
func Blend(mode BlendMode, backdrop, source Color) Color {
	rgb, a := blend.Composite(
		blend.Mode(mode),
		blend.RGB{R: backdrop.r, G: backdrop.g, B: backdrop.b}, backdrop.a,
		blend.RGB{R: source.r, G: source.g, B: source.b}, source.a,
	)
	return RGBA(rgb.R, rgb.G, rgb.B, a)
}

// Over composites source over backdrop (Porter-Duff source-over).
func Over(source, backdrop Color) Color {
	rgb, a := blend.SourceOver(
		blend.RGB{R: source.r, G: source.g, B: source.b}, source.a,
		blend.RGB{R: backdrop.r, G: backdrop.g, B: backdrop.b}, backdrop.a,
	)
	return RGBA(rgb.R, rgb.G, rgb.B, a)
}

// Multiply is Blend(BlendMultiply, backdrop, source).
func Multiply(backdrop, source Color) Color { return Blend(BlendMultiply, backdrop, source) }

// Screen is Blend(BlendScreen, backdrop, source).
func Screen(backdrop, source Color) Color { return Blend(BlendScreen, backdrop, source) }

// Overlay is Blend(BlendOverlay, backdrop, source).
func Overlay(backdrop, source Color) Color { return Blend(BlendOverlay, backdrop, source) }

// HardLight is Blend(BlendHardLight, backdrop, source).
func HardLight(backdrop, source Color) Color { return Blend(BlendHardLight, backdrop, source) }

// SoftLight is Blend(BlendSoftLight, backdrop, source).
func SoftLight(backdrop, source Color) Color { return Blend(BlendSoftLight, backdrop, source) }

// Difference is Blend(BlendDifference, backdrop, source).
func Difference(backdrop, source Color) Color { return Blend(BlendDifference, backdrop, source) }

// Exclusion is Blend(BlendExclusion, backdrop, source).
func Exclusion(backdrop, source Color) Color { return Blend(BlendExclusion, backdrop, source) }

// DarkenBlend is Blend(BlendDarken, backdrop, source): the per-channel minimum.
func DarkenBlend(backdrop, source Color) Color { return Blend(BlendDarken, backdrop, source) }

// LightenBlend is Blend(BlendLighten, backdrop, source): the per-channel maximum.
func LightenBlend(backdrop, source Color) Color { return Blend(BlendLighten, backdrop, source) }
