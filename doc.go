// Package tint provides color values and the numeric operations around them.
//
// # Overview
//
// tint models an immutable sRGB color with straight alpha and offers the
// usual toolbox of a design or styling library: conversion to and from HSL,
// CIE XYZ and CIE L*a*b*, hex, CSS and named color notation, lightness and
// saturation manipulation, Sass-style mixing, WCAG contrast, the W3C blend
// modes and multi-stop gradients.
//
// # Quick Start
//
//	import "github.com/gogpu/tint"
//
//	c := tint.MustParseHex("#336699")
//	lighter := tint.Lighten(0.1, c)
//	fmt.Println(lighter.CSSHSL())
//
//	palette := tint.LinearGradient(tint.SpaceLab, []tint.Color{tint.Red, tint.Blue}, 7)
//
// # Components
//
// Every component is in [0, 1]. Constructors and conversions clamp their
// results, so a Color is always valid. Hue is measured in turns (1 is a full
// circle); use Degrees to convert.
//
// # Interoperability
//
// Color implements image/color.Color, and FromColor accepts any
// image/color.Color, so tint colors can be drawn with the standard image
// packages.
//
// # Logging
//
// The package is silent by default. See SetLogger.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Color, HSLA, Lab, XYZ, Gradient, BlendMode, Space
//   - internal/color: sRGB transfer functions, XYZ and Lab math
//   - internal/blend: W3C blend formulas and Porter-Duff compositing
package tint

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
