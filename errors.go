package tint

import "errors"

// Sentinel errors for tint package.
var (
	// ErrInvalidHex is returned when a string is not a 3, 4, 6 or 8 digit
	// hex color with an optional leading '#'.
	ErrInvalidHex = errors.New("tint: invalid hex color format")

	// ErrUnknownName is returned when a color name is not a known CSS name.
	ErrUnknownName = errors.New("tint: unknown color name")
)
