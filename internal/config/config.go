package config

import (
	"fmt"
	"image/color"
)

// IconSize is the edge length, in pixels, of a square icon.
type IconSize int

// Name returns the "WxH" form used in output file names (e.g. "192x192").
func (s IconSize) Name() string {
	return fmt.Sprintf("%dx%d", s, s)
}

// sizes is the fixed set of icon sizes a web-app manifest asks for.
var sizes = [...]IconSize{72, 96, 128, 144, 152, 192, 384, 512}

// Sizes returns the icon sizes in generation order. The slice is a fresh
// copy on each call.
func Sizes() []IconSize {
	out := make([]IconSize, len(sizes))
	copy(out, sizes[:])
	return out
}

// Placeholder palette.
var (
	Background     = color.NRGBA{0x25, 0x63, 0xEB, 0xFF} // #2563EB
	Circle         = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	PrimaryLabel   = Background
	SecondaryLabel = color.NRGBA{0x64, 0x74, 0x8B, 0xFF} // #64748B
)

// Placeholder label text.
const (
	PrimaryText   = "ETA"
	SecondaryText = "CALC"
)

// Layout divisors, all relative to the icon edge length.
const (
	MarginDivisor        = 8  // circle inset on each side
	PrimaryFontDivisor   = 8  // primary label font size
	SecondaryFontDivisor = 15 // secondary label font size
	GapDivisor           = 30 // space between the two labels
	LiftDivisor          = 20 // upward shift of the primary label

	MinPrimaryFont   = 12
	MinSecondaryFont = 8
)

// Metrics used when no font face is available: width is approximated as
// glyphs * size/K and height as size/FallbackHeightDivisor.
const (
	PrimaryWidthK         = 15
	SecondaryWidthK       = 20
	FallbackHeightDivisor = 10
)

// PrimaryFontSize returns the primary label font size in pixels for an icon.
func PrimaryFontSize(size int) int {
	return max(size/PrimaryFontDivisor, MinPrimaryFont)
}

// SecondaryFontSize returns the secondary label font size in pixels.
func SecondaryFontSize(size int) int {
	return max(size/SecondaryFontDivisor, MinSecondaryFont)
}
