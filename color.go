package gfx

import "image/color"

// Color is a logical 32-bit color in non-premultiplied ARGB order
// (0xAARRGGBB), independent of any surface's native encoding.
type Color uint32

// Transparent is the background sentinel for PutChar and PutString: glyph
// pixels whose bit is clear are left untouched when bg == Transparent.
const Transparent Color = 0

// Common colors.
const (
	Black Color = 0xFF000000
	White Color = 0xFFFFFFFF
	Red   Color = 0xFFFF0000
	Green Color = 0xFF00FF00
	Blue  Color = 0xFF0000FF
)

// ARGB creates a color from alpha, red, green and blue components.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB creates an opaque color from red, green and blue components.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// A returns the alpha component.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// RGBA implements color.Color. The result is alpha-premultiplied as the
// interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	if v, ok := c.(Color); ok {
		return v
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}
