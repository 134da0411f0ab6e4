package gfx

import (
	"fmt"
	"image"
	"sort"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/encoding/charmap"
)

// MaxGlyphWidth is the widest glyph a row word can hold.
const MaxGlyphWidth = 32

// GlyphRange maps the runes [Low, High] to consecutive glyphs starting at
// glyph index Offset.
type GlyphRange struct {
	Low, High rune
	Offset    int
}

// Font is an immutable monospace bitmap font. Each glyph is Height row
// words; bit i of a row word is column i, so the least significant bit is
// the leftmost pixel. Fonts are built with NewFont or FontFromFace, which
// enforce MaxGlyphWidth.
type Font struct {
	// Charmap, when set, translates runes to single-byte glyph indices
	// before range lookup, for fonts laid out in a legacy code page.
	Charmap *charmap.Charmap

	width   int
	height  int
	advance int
	rows    []uint32
	ranges  []GlyphRange
}

// Width returns the glyph cell width in pixels.
func (f *Font) Width() int { return f.width }

// Height returns the glyph cell height in pixels.
func (f *Font) Height() int { return f.height }

// Advance returns the horizontal distance between glyph origins in PutString.
func (f *Font) Advance() int { return f.advance }

// NewFont builds a font whose glyph n covers rows[n*height:(n+1)*height] and
// is selected by rune n.
func NewFont(width, height int, rows []uint32) (*Font, error) {
	if width > MaxGlyphWidth {
		return nil, fmt.Errorf("%w: %d > %d", ErrGlyphTooWide, width, MaxGlyphWidth)
	}
	if width <= 0 || height <= 0 || len(rows) == 0 || len(rows)%height != 0 {
		return nil, ErrInvalidFont
	}
	n := len(rows) / height
	return &Font{
		width:   width,
		height:  height,
		advance: width,
		rows:    rows,
		ranges:  []GlyphRange{{Low: 0, High: rune(n - 1), Offset: 0}},
	}, nil
}

// FontFromFace converts a basicfont face into a Font. A mask pixel with
// more than half coverage becomes a set bit.
func FontFromFace(face *basicfont.Face) (*Font, error) {
	if face == nil || face.Mask == nil {
		return nil, ErrInvalidFont
	}
	if face.Width > MaxGlyphWidth {
		return nil, fmt.Errorf("%w: %d > %d", ErrGlyphTooWide, face.Width, MaxGlyphWidth)
	}
	if face.Width <= 0 || face.Height <= 0 || len(face.Ranges) == 0 {
		return nil, ErrInvalidFont
	}

	var glyphs int
	ranges := make([]GlyphRange, 0, len(face.Ranges))
	for _, r := range face.Ranges {
		if r.High <= r.Low {
			continue
		}
		// basicfont ranges are half-open.
		ranges = append(ranges, GlyphRange{Low: r.Low, High: r.High - 1, Offset: r.Offset})
		glyphs = max(glyphs, r.Offset+int(r.High-r.Low))
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Low < ranges[j].Low })

	b := face.Mask.Bounds()
	rows := make([]uint32, glyphs*face.Height)
	for g := 0; g < glyphs; g++ {
		for row := 0; row < face.Height; row++ {
			var word uint32
			for col := 0; col < face.Width; col++ {
				pt := image.Pt(b.Min.X+col, b.Min.Y+g*face.Height+row)
				if !pt.In(b) {
					continue
				}
				if _, _, _, a := face.Mask.At(pt.X, pt.Y).RGBA(); a > 0x7FFF {
					word |= 1 << uint(col)
				}
			}
			rows[g*face.Height+row] = word
		}
	}

	return &Font{
		width:   face.Width,
		height:  face.Height,
		advance: max(face.Advance, face.Width),
		rows:    rows,
		ranges:  ranges,
	}, nil
}

// Glyph returns the row words for r, or false if the font has no glyph for it.
func (f *Font) Glyph(r rune) ([]uint32, bool) {
	if f.Charmap != nil {
		b, ok := f.Charmap.EncodeRune(r)
		if !ok {
			return nil, false
		}
		r = rune(b)
	}
	i := sort.Search(len(f.ranges), func(i int) bool { return f.ranges[i].High >= r })
	if i == len(f.ranges) || r < f.ranges[i].Low {
		return nil, false
	}
	start := (f.ranges[i].Offset + int(r-f.ranges[i].Low)) * f.height
	if start+f.height > len(f.rows) {
		return nil, false
	}
	return f.rows[start : start+f.height], true
}

// PutChar draws the glyph for r with its top-left corner at (x, y). Set bits
// are drawn in fg; clear bits in bg, or left untouched when bg is
// Transparent. Pixels outside the surface are clipped. A rune without a
// glyph draws nothing.
func (s *Surface) PutChar(f *Font, r rune, x, y int, fg, bg Color) {
	glyph, ok := f.Glyph(r)
	if !ok {
		return
	}
	fgp := s.codec.Encode(fg)
	bgp := s.codec.Encode(bg)
	opaque := bg != Transparent

	for row, word := range glyph {
		py := y + row
		if py < 0 || py >= s.height {
			continue
		}
		for col := 0; col < f.width; col++ {
			px := x + col
			if px < 0 || px >= s.width {
				continue
			}
			switch {
			case word&(1<<uint(col)) != 0:
				s.ops.putPixel(s, px, py, fgp)
			case opaque:
				s.ops.putPixel(s, px, py, bgp)
			}
		}
	}
}

// PutString draws str left to right starting at (x, y), advancing by
// f.Advance() per rune, and returns the x coordinate after the last glyph.
func (s *Surface) PutString(f *Font, str string, x, y int, fg, bg Color) int {
	for _, r := range str {
		s.PutChar(f, r, x, y, fg, bg)
		x += f.advance
	}
	return x
}
