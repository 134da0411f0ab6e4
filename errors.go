package gfx

import "errors"

// Sentinel errors returned by surface construction. Drawing operations never
// fail; out-of-range coordinates are clipped instead.
var (
	// ErrInvalidFormat is returned for FormatNone or an unknown format value.
	ErrInvalidFormat = errors.New("gfx: invalid format")

	// ErrNoBuffer is returned by Init when no buffer is supplied.
	ErrNoBuffer = errors.New("gfx: no buffer")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("gfx: invalid dimensions")

	// ErrInvalidStride is returned when stride is smaller than one row of pixels.
	ErrInvalidStride = errors.New("gfx: stride too small for width")

	// ErrSizeOverflow is returned when stride*height does not fit in an int.
	ErrSizeOverflow = errors.New("gfx: buffer size overflow")

	// ErrBufferTooSmall is returned when the buffer is shorter than stride*height.
	ErrBufferTooSmall = errors.New("gfx: buffer too small")

	// ErrAllocation is returned by Create when the allocator cannot supply a buffer.
	ErrAllocation = errors.New("gfx: allocation failed")

	// ErrGlyphTooWide is returned when a font's glyph width exceeds the row word.
	ErrGlyphTooWide = errors.New("gfx: glyph wider than row word")

	// ErrInvalidFont is returned for fonts with bad dimensions or a ragged table.
	ErrInvalidFont = errors.New("gfx: invalid font")
)
