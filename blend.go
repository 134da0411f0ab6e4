package gfx

// Blend composites the w x h region of source at (srcX, srcY) onto target
// at (destX, destY), weighted by the source surface's global alpha:
//
//	result = (dst*(255-alpha) + src*alpha) / 255
//
// per channel, with integer truncation. Colors are decoded to logical ARGB
// before mixing and encoded with the target's codec afterwards, so the two
// surfaces may use different formats. The region is clipped against both
// surfaces. A source alpha of 0 leaves the target untouched.
func Blend(target, source *Surface, srcX, srcY, w, h, destX, destY int) {
	alpha := uint32(source.alpha)
	if alpha == 0 {
		return
	}
	srcX, destX, w = clipSpan(srcX, destX, w, source.width, target.width)
	srcY, destY, h = clipSpan(srcY, destY, h, source.height, target.height)
	if w == 0 || h == 0 {
		return
	}

	inv := MaxAlpha - alpha
	for j := 0; j < h; j++ {
		sy, ty := srcY+j, destY+j
		for i := 0; i < w; i++ {
			sx, tx := srcX+i, destX+i
			src := source.codec.Decode(source.ops.pixel(source, sx, sy))
			dst := target.codec.Decode(target.ops.pixel(target, tx, ty))
			target.ops.putPixel(target, tx, ty, target.codec.Encode(mix(dst, src, alpha, inv)))
		}
	}
}

// SurfaceBlend blends all of source onto target at (destX, destY).
func SurfaceBlend(target, source *Surface, destX, destY int) {
	Blend(target, source, 0, 0, source.width, source.height, destX, destY)
}

// mix weights every channel of dst by inv and of src by alpha, where
// alpha+inv == 255.
func mix(dst, src Color, alpha, inv uint32) Color {
	var out uint32
	for shift := 0; shift < 32; shift += 8 {
		d := uint32(dst) >> shift & 0xFF
		s := uint32(src) >> shift & 0xFF
		out |= (d*inv + s*alpha) / MaxAlpha << shift
	}
	return Color(out)
}
