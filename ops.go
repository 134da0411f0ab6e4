package gfx

import (
	"encoding/binary"
	"image"
)

// ops is the per-format operation set bound to a surface at construction.
// Every call receives coordinates already clipped to the surface.
type ops interface {
	pixel(s *Surface, x, y int) uint32
	putPixel(s *Surface, x, y int, p uint32)
	fillRect(s *Surface, r image.Rectangle, p uint32)
	copyRect(s *Surface, r image.Rectangle, dst image.Point)
}

// opsFor returns the operation set for a valid format.
func opsFor(f Format) ops {
	switch f.BitsPerPixel() {
	case 8:
		return ops8
	case 16:
		return ops16
	case 32:
		return ops32
	case 1:
		return monoOps{}
	default:
		return nil
	}
}

// word is the native storage type of a byte-aligned pixel.
type word interface {
	~uint8 | ~uint16 | ~uint32
}

// packedOps implements ops for formats that store one pixel in 1, 2 or 4
// little-endian bytes.
type packedOps[W word] struct {
	size  int
	load  func([]byte) W
	store func([]byte, W)
}

var (
	ops8 = packedOps[uint8]{
		size:  1,
		load:  func(b []byte) uint8 { return b[0] },
		store: func(b []byte, v uint8) { b[0] = v },
	}
	ops16 = packedOps[uint16]{
		size:  2,
		load:  binary.LittleEndian.Uint16,
		store: binary.LittleEndian.PutUint16,
	}
	ops32 = packedOps[uint32]{
		size:  4,
		load:  binary.LittleEndian.Uint32,
		store: binary.LittleEndian.PutUint32,
	}
)

func (o packedOps[W]) offset(s *Surface, x, y int) int {
	return y*s.stride + x*o.size
}

func (o packedOps[W]) pixel(s *Surface, x, y int) uint32 {
	return uint32(o.load(s.pix[o.offset(s, x, y):]))
}

func (o packedOps[W]) putPixel(s *Surface, x, y int, p uint32) {
	o.store(s.pix[o.offset(s, x, y):], W(p))
}

// fillRect writes the first row by doubling copies of one pixel, then
// copies that row to the rest of the rectangle.
func (o packedOps[W]) fillRect(s *Surface, r image.Rectangle, p uint32) {
	rowLen := r.Dx() * o.size
	start := o.offset(s, r.Min.X, r.Min.Y)
	first := s.pix[start : start+rowLen]

	o.store(first, W(p))
	for n := o.size; n < rowLen; n *= 2 {
		copy(first[n:], first[:n])
	}
	for y := r.Min.Y + 1; y < r.Max.Y; y++ {
		off := o.offset(s, r.Min.X, y)
		copy(s.pix[off:off+rowLen], first)
	}
}

// copyRect moves rows bottom-up when the destination lies below the source
// so overlapping rows are read before they are overwritten. Within a row
// copy behaves like memmove.
func (o packedOps[W]) copyRect(s *Surface, r image.Rectangle, dst image.Point) {
	rowLen := r.Dx() * o.size
	h := r.Dy()
	move := func(i int) {
		src := o.offset(s, r.Min.X, r.Min.Y+i)
		dest := o.offset(s, dst.X, dst.Y+i)
		copy(s.pix[dest:dest+rowLen], s.pix[src:src+rowLen])
	}
	if dst.Y > r.Min.Y {
		for i := h - 1; i >= 0; i-- {
			move(i)
		}
		return
	}
	for i := 0; i < h; i++ {
		move(i)
	}
}

// monoOps implements ops for FormatMono. Pixel x of a row lives in byte x/8
// at bit x%8.
type monoOps struct{}

func (monoOps) bit(s *Surface, x, y int) (int, byte) {
	return y*s.stride + x>>3, 1 << uint(x&7)
}

func (m monoOps) pixel(s *Surface, x, y int) uint32 {
	i, mask := m.bit(s, x, y)
	if s.pix[i]&mask != 0 {
		return 1
	}
	return 0
}

func (m monoOps) putPixel(s *Surface, x, y int, p uint32) {
	i, mask := m.bit(s, x, y)
	if p&1 != 0 {
		s.pix[i] |= mask
	} else {
		s.pix[i] &^= mask
	}
}

func (m monoOps) fillRect(s *Surface, r image.Rectangle, p uint32) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.putPixel(s, x, y, p)
		}
	}
}

// copyRect picks the scan direction on both axes so that no source pixel is
// overwritten before it has been read.
func (m monoOps) copyRect(s *Surface, r image.Rectangle, dst image.Point) {
	w, h := r.Dx(), r.Dy()
	y0, y1, dy := 0, h, 1
	if dst.Y > r.Min.Y {
		y0, y1, dy = h-1, -1, -1
	}
	x0, x1, dx := 0, w, 1
	if dst.Y == r.Min.Y && dst.X > r.Min.X {
		x0, x1, dx = w-1, -1, -1
	}
	for j := y0; j != y1; j += dy {
		for i := x0; i != x1; i += dx {
			m.putPixel(s, dst.X+i, dst.Y+j, m.pixel(s, r.Min.X+i, r.Min.Y+j))
		}
	}
}
