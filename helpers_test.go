package gfx

import "testing"

var allFormats = []Format{
	FormatRGB565,
	FormatRGB332,
	FormatRGB2220,
	FormatARGB8888,
	FormatRGBx888,
	FormatMono,
}

// mustCreate returns a self-allocated surface destroyed at test cleanup.
func mustCreate(t testing.TB, w, h int, f Format) *Surface {
	t.Helper()
	s, err := Create(nil, w, h, 0, f, 0)
	if err != nil {
		t.Fatalf("Create(%dx%d, %v) error = %v", w, h, f, err)
	}
	t.Cleanup(s.Destroy)
	return s
}

// snapshot returns the raw pixel values of s in row-major order.
func snapshot(s *Surface) []uint32 {
	out := make([]uint32, 0, s.Width()*s.Height())
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			out = append(out, s.RawPixel(x, y))
		}
	}
	return out
}

// paintPattern fills s with a position-dependent pattern that differs
// between neighbouring pixels in every format.
func paintPattern(s *Surface) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			v := uint8(x*37 + y*101)
			c := RGB(v, v^0x5A, v+0x33)
			if s.Format() == FormatMono && (x*7+y*3)%3 == 0 {
				c = White
			} else if s.Format() == FormatMono {
				c = Black
			}
			s.PutPixel(x, y, c)
		}
	}
}
