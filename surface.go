package gfx

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
)

// Flags control surface behavior. Bits not defined here are kept but
// otherwise ignored.
type Flags uint32

const (
	// FlagFreeOnDestroy makes Destroy release an owned buffer.
	FlagFreeOnDestroy Flags = 1 << 0

	// FlagFlushCPUCache makes Flush and FlushRows invoke the surface's Flusher.
	FlagFlushCPUCache Flags = 1 << 1
)

// MaxAlpha is the fully opaque global alpha value.
const MaxAlpha = 255

// Surface is a rectangular pixel buffer in one native format, with the
// format's drawing operations bound at construction.
//
// Thread safety: Surface is not safe for concurrent use. Callers sharing a
// surface between goroutines must synchronize access themselves.
type Surface struct {
	buf       Buffer
	pix       []byte
	flags     Flags
	format    Format
	width     int
	height    int
	stride    int
	pixelSize int
	alpha     uint8

	ops       ops
	codec     Codec
	flusher   Flusher
	allocator Allocator
}

// geometry validates the surface layout and returns the effective stride
// and the number of bytes the buffer must hold. A stride of 0 selects the
// minimal stride for the width.
func geometry(width, height, stride int, format Format) (int, int, error) {
	if !format.IsValid() {
		return 0, 0, ErrInvalidFormat
	}
	if width <= 0 || height <= 0 {
		return 0, 0, ErrInvalidDimensions
	}
	if width > math.MaxInt/format.BitsPerPixel() {
		return 0, 0, ErrSizeOverflow
	}
	minStride := format.RowBytes(width)
	if stride == 0 {
		stride = minStride
	}
	if stride < minStride {
		return 0, 0, ErrInvalidStride
	}
	if stride > math.MaxInt/height {
		return 0, 0, ErrSizeOverflow
	}
	return stride, stride * height, nil
}

// Init initializes s to draw into buf.
//
// The format must be valid, buf must be non-nil and hold at least
// stride*height bytes, and stride must cover one row of pixels. A stride of
// 0 selects the minimal stride. On error s is left unmodified.
func Init(s *Surface, buf Buffer, width, height, stride int, format Format, flags Flags, opts ...Option) error {
	if !format.IsValid() {
		return ErrInvalidFormat
	}
	if buf == nil || buf.Bytes() == nil {
		return ErrNoBuffer
	}
	stride, size, err := geometry(width, height, stride, format)
	if err != nil {
		return err
	}
	pix := buf.Bytes()
	if len(pix) < size {
		return ErrBufferTooSmall
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	*s = Surface{
		buf:       buf,
		pix:       pix,
		flags:     flags,
		format:    format,
		width:     width,
		height:    height,
		stride:    stride,
		pixelSize: format.PixelSize(),
		alpha:     o.alpha,
		ops:       opsFor(format),
		codec:     format.Codec(),
		flusher:   o.flusher,
		allocator: o.allocator,
	}
	return nil
}

// Create returns a new surface. When buf is nil, Create allocates
// stride*height bytes from the configured Allocator, marks the buffer as
// owned, and sets FlagFreeOnDestroy.
func Create(buf Buffer, width, height, stride int, format Format, flags Flags, opts ...Option) (*Surface, error) {
	s := new(Surface)
	if buf != nil {
		if err := Init(s, buf, width, height, stride, format, flags, opts...); err != nil {
			return nil, err
		}
		return s, nil
	}

	stride, size, err := geometry(width, height, stride, format)
	if err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	pix, err := o.allocator.Alloc(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	if len(pix) < size {
		o.allocator.Free(pix)
		return nil, ErrAllocation
	}
	owned := NewOwned(pix, o.allocator.Free)
	if err := Init(s, owned, width, height, stride, format, flags|FlagFreeOnDestroy, opts...); err != nil {
		owned.Release()
		return nil, err
	}
	Logger().Debug("gfx: surface created",
		slog.String("format", format.String()),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("bytes", size))
	return s, nil
}

// Destroy releases the surface. An owned buffer is released when
// FlagFreeOnDestroy is set; a borrowed buffer is never touched. The surface
// must not be used afterwards.
func (s *Surface) Destroy() {
	if o, ok := s.buf.(*Owned); ok && s.flags&FlagFreeOnDestroy != 0 {
		o.Release()
		Logger().Debug("gfx: surface buffer released", slog.Int("bytes", len(s.pix)))
	}
	*s = Surface{}
}

// Width returns the width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the height in pixels.
func (s *Surface) Height() int { return s.height }

// Stride returns the number of bytes between the starts of consecutive rows.
func (s *Surface) Stride() int { return s.stride }

// PixelSize returns the bytes per pixel, or 0 for FormatMono.
func (s *Surface) PixelSize() int { return s.pixelSize }

// Len returns the length of the pixel buffer in bytes.
func (s *Surface) Len() int { return len(s.pix) }

// Format returns the pixel format.
func (s *Surface) Format() Format { return s.format }

// Flags returns the surface flags.
func (s *Surface) Flags() Flags { return s.flags }

// Bytes returns the raw pixel memory.
func (s *Surface) Bytes() []byte { return s.pix }

// Buffer returns the buffer the surface was built on.
func (s *Surface) Buffer() Buffer { return s.buf }

// Codec returns the codec bound to the surface's format.
func (s *Surface) Codec() Codec { return s.codec }

// Alpha returns the global alpha used when the surface is a blend source.
func (s *Surface) Alpha() uint8 { return s.alpha }

// SetAlpha sets the global alpha used when the surface is a blend source.
func (s *Surface) SetAlpha(a uint8) { s.alpha = a }

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface. Converting through the
// model yields the color the surface would store.
func (s *Surface) ColorModel() color.Model {
	c := s.codec
	return color.ModelFunc(func(in color.Color) color.Color {
		return c.Decode(c.Encode(FromColor(in)))
	})
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.Pixel(x, y)
}

// Set implements the draw.Image interface.
func (s *Surface) Set(x, y int, c color.Color) {
	s.PutPixel(x, y, FromColor(c))
}
