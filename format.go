package gfx

import (
	"fmt"
	"strings"
)

// Format represents a native pixel encoding.
//
// The ordinal values are part of the external interface: they are never
// renumbered and new formats are only appended.
type Format uint8

const (
	// FormatNone is the zero value. It is never valid for a constructed surface.
	FormatNone Format = iota

	// FormatRGB565 is 16-bit RGB, 5-6-5 bits, little-endian in memory.
	FormatRGB565

	// FormatRGB332 is 8-bit RGB, 3-3-2 bits.
	FormatRGB332

	// FormatRGB2220 is 8-bit RGB, 2-2-2 bits in the high six bits.
	FormatRGB2220

	// FormatARGB8888 is 32-bit ARGB, little-endian in memory.
	FormatARGB8888

	// FormatRGBx888 is 32-bit RGB with an unused high byte.
	FormatRGBx888

	// FormatMono is 1 bit per pixel, the leftmost pixel in the least
	// significant bit of each byte.
	FormatMono

	// formatCount is the number of formats (for internal use).
	formatCount
)

// formatInfo contains metadata about a pixel format.
type formatInfo struct {
	name         string
	bitsPerPixel int
}

var formatInfoTable = [formatCount]formatInfo{
	FormatNone:     {name: "None"},
	FormatRGB565:   {name: "RGB565", bitsPerPixel: 16},
	FormatRGB332:   {name: "RGB332", bitsPerPixel: 8},
	FormatRGB2220:  {name: "RGB2220", bitsPerPixel: 8},
	FormatARGB8888: {name: "ARGB8888", bitsPerPixel: 32},
	FormatRGBx888:  {name: "RGBx888", bitsPerPixel: 32},
	FormatMono:     {name: "Mono", bitsPerPixel: 1},
}

// IsValid reports whether f is a known format other than FormatNone.
func (f Format) IsValid() bool {
	return f > FormatNone && f < formatCount
}

// String returns a string representation of the format.
func (f Format) String() string {
	if f >= formatCount {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return formatInfoTable[f].name
}

// BitsPerPixel returns the number of bits one pixel occupies.
func (f Format) BitsPerPixel() int {
	if f >= formatCount {
		return 0
	}
	return formatInfoTable[f].bitsPerPixel
}

// PixelSize returns the number of bytes per pixel, or 0 for formats that
// pack several pixels into one byte.
func (f Format) PixelSize() int {
	return f.BitsPerPixel() / 8
}

// RowBytes returns the minimum number of bytes needed for a row of width pixels.
func (f Format) RowBytes(width int) int {
	return (width*f.BitsPerPixel() + 7) / 8
}

// ParseFormat returns the format whose name matches s, ignoring case.
func ParseFormat(s string) (Format, error) {
	for f := FormatRGB565; f < formatCount; f++ {
		if strings.EqualFold(s, formatInfoTable[f].name) {
			return f, nil
		}
	}
	return FormatNone, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}
