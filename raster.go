package gfx

import (
	"image"
	"log/slog"
	"math"
	"math/bits"
)

// Drawing operations never fail. Coordinates outside the surface are
// clipped away silently; callers that need strict bounds must check them
// first.

func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// PutPixel sets the pixel at (x, y). Out-of-bounds coordinates are ignored.
func (s *Surface) PutPixel(x, y int, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	s.ops.putPixel(s, x, y, s.codec.Encode(c))
}

// RawPixel returns the native pixel value at (x, y), or 0 outside the surface.
func (s *Surface) RawPixel(x, y int) uint32 {
	if !s.inBounds(x, y) {
		return 0
	}
	return s.ops.pixel(s, x, y)
}

// Pixel returns the decoded color at (x, y), or Transparent outside the surface.
func (s *Surface) Pixel(x, y int) Color {
	if !s.inBounds(x, y) {
		return Transparent
	}
	return s.codec.Decode(s.ops.pixel(s, x, y))
}

// FillRect fills the w x h rectangle at (x, y) with c, clamped to the surface.
func (s *Surface) FillRect(x, y, w, h int, c Color) {
	x, _, w = clipSpan(x, x, w, s.width, s.width)
	y, _, h = clipSpan(y, y, h, s.height, s.height)
	if w == 0 || h == 0 {
		return
	}
	s.ops.fillRect(s, span(x, y, w, h), s.codec.Encode(c))
}

// CopyRect copies the w x h rectangle at (x, y) to (x2, y2) within the
// surface. The result is the same as copying through a temporary buffer
// even when the rectangles overlap. Parts of either rectangle outside the
// surface are dropped.
func (s *Surface) CopyRect(x, y, w, h, x2, y2 int) {
	x, x2, w = clipSpan(x, x2, w, s.width, s.width)
	y, y2, h = clipSpan(y, y2, h, s.height, s.height)
	if w == 0 || h == 0 {
		return
	}
	s.ops.copyRect(s, span(x, y, w, h), image.Pt(x2, y2))
}

// span returns the rectangle at (x, y) of size w x h. Callers pass values
// already clipped to a surface, so the sums cannot overflow.
func span(x, y, w, h int) image.Rectangle {
	return image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+w, y+h)}
}

// clipSpan clips a run of n cells that starts at src in a line of srcLen
// cells and lands at dst in a line of dstLen cells. It returns the clipped
// start positions and length, or a zero length if nothing is visible. The
// arithmetic saturates, so any int arguments are safe.
func clipSpan(src, dst, n, srcLen, dstLen int) (int, int, int) {
	if n <= 0 {
		return 0, 0, 0
	}
	lo := max(0, subSat(0, src), subSat(0, dst))
	hi := min(n, subSat(srcLen, src), subSat(dstLen, dst))
	if lo >= hi {
		return 0, 0, 0
	}
	return src + lo, dst + lo, hi - lo
}

// subSat returns a-b clamped to the int range.
func subSat(a, b int) int {
	switch {
	case b < 0 && a > math.MaxInt+b:
		return math.MaxInt
	case b > 0 && a < math.MinInt+b:
		return math.MinInt
	}
	return a - b
}

// Line draws a one pixel wide line from (x1, y1) to (x2, y2) inclusive. The
// pixel on each step of the major axis is the nearest to the ideal line,
// with halves rounded away from the start point. The segment is clipped to
// the surface before stepping, so the cost is bounded by the surface size
// however long the line is, and the visible pixels are the same as those of
// the unclipped line.
func (s *Surface) Line(x1, y1, x2, y2 int, c Color) {
	switch {
	case y1 == y2:
		s.FillRect(max(min(x1, x2), 0), y1, axisLen(x1, x2, s.width), 1, c)
		return
	case x1 == x2:
		s.FillRect(x1, max(min(y1, y2), 0), 1, axisLen(y1, y2, s.height), c)
		return
	}

	p := s.codec.Encode(c)
	dx, sx := distance(x1, x2)
	dy, sy := distance(y1, y2)
	if dx >= dy {
		lo, hi, ok := visibleSteps(x1, sx, dx, s.width)
		for i := lo; ok; i++ {
			y := advance(y1, sy, minorStep(i, dx, dy))
			if y >= 0 && y < s.height {
				s.ops.putPixel(s, advance(x1, sx, i), y, p)
			}
			ok = i < hi
		}
		return
	}
	lo, hi, ok := visibleSteps(y1, sy, dy, s.height)
	for i := lo; ok; i++ {
		x := advance(x1, sx, minorStep(i, dy, dx))
		if x >= 0 && x < s.width {
			s.ops.putPixel(s, x, advance(y1, sy, i), p)
		}
		ok = i < hi
	}
}

// axisLen returns how many cells of the inclusive run between a and b fall
// inside [0, limit), counted from max(min(a, b), 0).
func axisLen(a, b, limit int) int {
	lo := max(min(a, b), 0)
	hi := min(max(a, b), limit-1)
	if lo > hi {
		return 0
	}
	return hi - lo + 1
}

// distance returns |b-a|, which always fits a uint64, and the step
// direction from a to b.
func distance(a, b int) (uint64, int) {
	if b >= a {
		return uint64(b) - uint64(a), 1
	}
	return uint64(a) - uint64(b), -1
}

// advance returns a moved n cells in direction sign. The caller guarantees
// the result lies between the two endpoints of a line, so it fits an int.
func advance(a, sign int, n uint64) int {
	if sign > 0 {
		return int(uint64(a) + n)
	}
	return int(uint64(a) - n)
}

// visibleSteps returns the inclusive range of steps i in [0, n] for which
// a moved i cells in direction sign lies inside [0, limit).
func visibleSteps(a, sign int, n uint64, limit int) (lo, hi uint64, ok bool) {
	if sign > 0 {
		if a >= limit {
			return 0, 0, false
		}
		if a < 0 {
			lo = uint64(0) - uint64(a)
		}
		hi = uint64(limit-1) - uint64(a)
	} else {
		if a < 0 {
			return 0, 0, false
		}
		if a >= limit {
			lo = uint64(a) - uint64(limit-1)
		}
		hi = uint64(a)
	}
	hi = min(hi, n)
	return lo, hi, lo <= hi
}

// minorStep returns the minor axis offset at major step i of a line that
// spans major cells along its major axis and minor cells along the other:
// i*minor/major rounded to nearest, halves up. minor <= major, so the
// 128-bit product divides without overflow.
func minorStep(i, major, minor uint64) uint64 {
	if major == 0 {
		return 0
	}
	hi, lo := bits.Mul64(i, minor)
	q, r := bits.Div64(hi, lo, major)
	if r >= major-r {
		q++
	}
	return q
}

// CopyLines copies height whole rows from src starting at srcY into dst
// starting at dstY. Both surfaces must share the same stride and format;
// otherwise nothing is copied. No format conversion is performed. The row
// range is clipped to both surfaces, and dst may be the same surface as src.
func CopyLines(dst, src *Surface, srcY, dstY, height int) {
	if dst.stride != src.stride || dst.format != src.format {
		Logger().Debug("gfx: copylines skipped, surface layouts differ",
			slog.String("dst", dst.format.String()),
			slog.String("src", src.format.String()),
			slog.Int("dst_stride", dst.stride),
			slog.Int("src_stride", src.stride))
		return
	}
	srcY, dstY, height = clipSpan(srcY, dstY, height, src.height, dst.height)
	if height == 0 {
		return
	}
	stride := src.stride
	copy(dst.pix[dstY*stride:(dstY+height)*stride], src.pix[srcY*stride:(srcY+height)*stride])
}
