package gfx

// Codec converts between logical colors and a format's native pixel value.
//
// Encoding is lossy for formats narrower than 8 bits per channel: low-order
// bits are dropped, with no rounding or dithering. Decoding widens each
// channel by bit replication. For every format and color,
// Encode(Decode(Encode(c))) == Encode(c).
type Codec interface {
	Encode(c Color) uint32
	Decode(p uint32) Color
}

// Codec returns the codec for f, or nil if f is not valid.
func (f Format) Codec() Codec {
	switch f {
	case FormatRGB565:
		return rgb565Codec{}
	case FormatRGB332:
		return rgb332Codec{}
	case FormatRGB2220:
		return rgb2220Codec{}
	case FormatARGB8888:
		return argb8888Codec{}
	case FormatRGBx888:
		return rgbx888Codec{}
	case FormatMono:
		return monoCodec{}
	default:
		return nil
	}
}

// expand widens an n-bit channel value to 8 bits by repeating its bits.
func expand(v uint32, n uint) uint8 {
	v <<= 8 - n
	for s := n; s < 8; s += n {
		v |= v >> s
	}
	return uint8(v)
}

type rgb565Codec struct{}

func (rgb565Codec) Encode(c Color) uint32 {
	return uint32(c.R()>>3)<<11 | uint32(c.G()>>2)<<5 | uint32(c.B()>>3)
}

func (rgb565Codec) Decode(p uint32) Color {
	return RGB(expand(p>>11&0x1F, 5), expand(p>>5&0x3F, 6), expand(p&0x1F, 5))
}

type rgb332Codec struct{}

func (rgb332Codec) Encode(c Color) uint32 {
	return uint32(c.R()>>5)<<5 | uint32(c.G()>>5)<<2 | uint32(c.B()>>6)
}

func (rgb332Codec) Decode(p uint32) Color {
	return RGB(expand(p>>5&0x7, 3), expand(p>>2&0x7, 3), expand(p&0x3, 2))
}

type rgb2220Codec struct{}

func (rgb2220Codec) Encode(c Color) uint32 {
	return uint32(c.R()>>6)<<6 | uint32(c.G()>>6)<<4 | uint32(c.B()>>6)<<2
}

func (rgb2220Codec) Decode(p uint32) Color {
	return RGB(expand(p>>6&0x3, 2), expand(p>>4&0x3, 2), expand(p>>2&0x3, 2))
}

type argb8888Codec struct{}

func (argb8888Codec) Encode(c Color) uint32 { return uint32(c) }
func (argb8888Codec) Decode(p uint32) Color { return Color(p) }

type rgbx888Codec struct{}

func (rgbx888Codec) Encode(c Color) uint32 { return uint32(c) & 0x00FFFFFF }
func (rgbx888Codec) Decode(p uint32) Color { return Color(p | 0xFF000000) }

// Mono luma weights are BT.709 scaled to sum to 1024.
const (
	lumaR         = 218
	lumaG         = 732
	lumaB         = 74
	monoThreshold = 128
)

type monoCodec struct{}

func (monoCodec) Encode(c Color) uint32 {
	luma := (lumaR*uint32(c.R()) + lumaG*uint32(c.G()) + lumaB*uint32(c.B())) >> 10
	if luma >= monoThreshold {
		return 1
	}
	return 0
}

func (monoCodec) Decode(p uint32) Color {
	if p&1 != 0 {
		return White
	}
	return Black
}
