package gfx

import (
	"image"
	"math"
	"testing"
)

func TestFillRect_Scenario(t *testing.T) {
	s := mustCreate(t, 8, 8, FormatRGB565)
	s.FillRect(0, 0, 8, 8, Black)
	s.FillRect(2, 2, 2, 2, White)

	c := FormatRGB565.Codec()
	if got := s.RawPixel(3, 3); got != c.Encode(White) {
		t.Errorf("RawPixel(3, 3) = %#x, want %#x", got, c.Encode(White))
	}
	if got := s.RawPixel(0, 0); got != c.Encode(Black) {
		t.Errorf("RawPixel(0, 0) = %#x, want %#x", got, c.Encode(Black))
	}
}

func TestFillRect_InsideAndOutside(t *testing.T) {
	rects := []image.Rectangle{
		image.Rect(0, 0, 1, 1),
		image.Rect(2, 1, 9, 4),
		image.Rect(0, 0, 13, 7),
		image.Rect(5, 3, 13, 7),
		image.Rect(7, 0, 8, 7),
	}

	for _, f := range allFormats {
		t.Run(f.String(), func(t *testing.T) {
			c := f.Codec()
			for _, r := range rects {
				s := mustCreate(t, 13, 7, f)
				s.FillRect(0, 0, 13, 7, Black)
				s.FillRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), White)

				for y := 0; y < 7; y++ {
					for x := 0; x < 13; x++ {
						want := c.Encode(Black)
						if image.Pt(x, y).In(r) {
							want = c.Encode(White)
						}
						if got := s.RawPixel(x, y); got != want {
							t.Fatalf("rect %v: RawPixel(%d, %d) = %#x, want %#x", r, x, y, got, want)
						}
					}
				}
			}
		})
	}
}

func TestFillRect_Clipping(t *testing.T) {
	for _, f := range allFormats {
		t.Run(f.String(), func(t *testing.T) {
			c := f.Codec()
			s := mustCreate(t, 6, 6, f)
			s.FillRect(-3, -3, 5, 5, White)
			s.FillRect(4, 4, 100, 100, White)
			s.FillRect(10, 10, 2, 2, White)
			s.FillRect(0, 0, -2, 3, White)

			for y := 0; y < 6; y++ {
				for x := 0; x < 6; x++ {
					lit := (x < 2 && y < 2) || (x >= 4 && y >= 4)
					want := uint32(0)
					if lit {
						want = c.Encode(White)
					}
					if got := s.RawPixel(x, y); got != want {
						t.Fatalf("RawPixel(%d, %d) = %#x, want %#x", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestFillRect_StridePaddingUntouched(t *testing.T) {
	for _, f := range allFormats {
		t.Run(f.String(), func(t *testing.T) {
			const w, h = 5, 3
			stride := f.RowBytes(w) + 3
			mem := make([]byte, stride*h)
			for i := range mem {
				mem[i] = 0xAA
			}
			s, err := Create(Borrowed(mem), w, h, stride, f, 0)
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			s.Clear(White)

			for y := 0; y < h; y++ {
				for i := f.RowBytes(w); i < stride; i++ {
					if mem[y*stride+i] != 0xAA {
						t.Fatalf("padding byte %d of row %d = %#x", i, y, mem[y*stride+i])
					}
				}
			}
		})
	}
}

func TestFillRect_MonoPreservesNeighbours(t *testing.T) {
	s := mustCreate(t, 16, 1, FormatMono)
	s.FillRect(0, 0, 16, 1, White)
	s.FillRect(3, 0, 6, 1, Black)

	if got := s.Bytes(); got[0] != 0x07 || got[1] != 0xFE {
		t.Errorf("bytes = %#x %#x, want 0x07 0xfe", got[0], got[1])
	}
}

func TestPutPixel_OutOfBounds(t *testing.T) {
	s := mustCreate(t, 4, 4, FormatARGB8888)
	s.Clear(Black)
	before := snapshot(s)

	for _, p := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {-100, 100}} {
		s.PutPixel(p.X, p.Y, White)
	}

	after := snapshot(s)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("pixel %d changed by out-of-bounds PutPixel", i)
		}
	}
	if got := s.Pixel(-1, 0); got != Transparent {
		t.Errorf("Pixel(-1, 0) = %#08x, want Transparent", uint32(got))
	}
}

func TestPutPixel_ByteOffset(t *testing.T) {
	s, err := Create(Borrowed(make([]byte, 10*3)), 4, 3, 10, FormatRGB565, 0)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	s.PutPixel(2, 1, Red)

	// y*stride + x*pixelsize, little-endian
	mem := s.Bytes()
	if mem[14] != 0x00 || mem[15] != 0xF8 {
		t.Errorf("bytes at 14..15 = %#x %#x, want 0x00 0xf8", mem[14], mem[15])
	}
}

// referenceCopyRect copies through an intermediate buffer.
func referenceCopyRect(s *Surface, x, y, w, h, x2, y2 int) []uint32 {
	want := snapshot(s)
	tmp := make(map[image.Point]uint32)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			sp := image.Pt(x+i, y+j)
			dp := image.Pt(x2+i, y2+j)
			if sp.In(s.Bounds()) && dp.In(s.Bounds()) {
				tmp[dp] = s.RawPixel(sp.X, sp.Y)
			}
		}
	}
	for p, v := range tmp {
		want[p.Y*s.Width()+p.X] = v
	}
	return want
}

func TestCopyRect_OverlapMatchesTemporaryBuffer(t *testing.T) {
	shifts := []image.Point{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{2, 3}, {-2, -3}, {3, -2}, {-3, 2},
		{0, 0}, {9, 1},
	}

	for _, f := range allFormats {
		t.Run(f.String(), func(t *testing.T) {
			for _, d := range shifts {
				s := mustCreate(t, 12, 10, f)
				paintPattern(s)

				x, y, w, h := 2, 2, 7, 5
				want := referenceCopyRect(s, x, y, w, h, x+d.X, y+d.Y)
				s.CopyRect(x, y, w, h, x+d.X, y+d.Y)

				got := snapshot(s)
				for i := range want {
					if got[i] != want[i] {
						t.Fatalf("shift %v: pixel (%d, %d) = %#x, want %#x",
							d, i%12, i/12, got[i], want[i])
					}
				}
			}
		})
	}
}

func TestCopyRect_Clipping(t *testing.T) {
	s := mustCreate(t, 8, 8, FormatRGB332)
	paintPattern(s)

	want := referenceCopyRect(s, -2, -2, 6, 6, 5, 5)
	s.CopyRect(-2, -2, 6, 6, 5, 5)
	got := snapshot(s)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pixel %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestLine_ZeroLength(t *testing.T) {
	for _, f := range allFormats {
		t.Run(f.String(), func(t *testing.T) {
			s := mustCreate(t, 5, 5, f)
			s.Line(2, 3, 2, 3, White)

			lit := 0
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					if s.RawPixel(x, y) != 0 {
						lit++
					}
				}
			}
			if lit != 1 {
				t.Errorf("lit pixels = %d, want 1", lit)
			}
			if got := s.RawPixel(2, 3); got != f.Codec().Encode(White) {
				t.Errorf("RawPixel(2, 3) = %#x, want %#x", got, f.Codec().Encode(White))
			}
		})
	}
}

func TestLine_Octants(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"horizontal", 1, 5, 9, 5},
		{"horizontal reversed", 9, 5, 1, 5},
		{"vertical", 4, 1, 4, 9},
		{"vertical reversed", 4, 9, 4, 1},
		{"diagonal", 0, 0, 9, 9},
		{"anti-diagonal", 9, 0, 0, 9},
		{"shallow right down", 0, 2, 9, 5},
		{"shallow left up", 9, 5, 0, 2},
		{"steep right down", 2, 0, 5, 9},
		{"steep left up", 5, 9, 2, 0},
		{"shallow right up", 0, 7, 9, 3},
		{"steep left down", 7, 0, 3, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustCreate(t, 10, 10, FormatARGB8888)
			s.Line(tt.x1, tt.y1, tt.x2, tt.y2, White)

			if s.Pixel(tt.x1, tt.y1) != White || s.Pixel(tt.x2, tt.y2) != White {
				t.Error("line endpoints not drawn")
			}

			dx := abs(tt.x2 - tt.x1)
			dy := abs(tt.y2 - tt.y1)
			want := max(dx, dy) + 1
			lit := 0
			for _, p := range snapshot(s) {
				if p != 0 {
					lit++
				}
			}
			if lit != want {
				t.Errorf("lit pixels = %d, want %d", lit, want)
			}
		})
	}
}

func TestLine_SymmetricDiagonal(t *testing.T) {
	s := mustCreate(t, 4, 4, FormatRGB332)
	s.Line(0, 0, 3, 3, White)
	for i := 0; i < 4; i++ {
		if s.RawPixel(i, i) != 0xFF {
			t.Errorf("pixel (%d, %d) not lit", i, i)
		}
	}
}

func TestLine_ClipsOffSurface(t *testing.T) {
	s := mustCreate(t, 4, 4, FormatRGB565)
	s.Line(-10, -10, 10, 10, White)
	s.Line(-5, 2, 20, 2, White)
	s.Line(1, -5, 1, 20, White)

	for i := 0; i < 4; i++ {
		if s.Pixel(i, i) != White {
			t.Errorf("pixel (%d, %d) not lit", i, i)
		}
		if s.Pixel(i, 2) != White || s.Pixel(1, i) != White {
			t.Errorf("clipped axis line missing pixel %d", i)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestCopyLines(t *testing.T) {
	src := mustCreate(t, 6, 6, FormatRGB565)
	dst := mustCreate(t, 6, 6, FormatRGB565)
	paintPattern(src)

	CopyLines(dst, src, 1, 3, 2)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := uint32(0)
			if y == 3 || y == 4 {
				want = src.RawPixel(x, y-2)
			}
			if got := dst.RawPixel(x, y); got != want {
				t.Fatalf("dst (%d, %d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestCopyLines_Clipped(t *testing.T) {
	src := mustCreate(t, 4, 4, FormatRGB332)
	dst := mustCreate(t, 4, 4, FormatRGB332)
	paintPattern(src)

	CopyLines(dst, src, 0, 2, 10)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := uint32(0)
			if y >= 2 {
				want = src.RawPixel(x, y-2)
			}
			if got := dst.RawPixel(x, y); got != want {
				t.Fatalf("dst (%d, %d) = %#x, want %#x", x, y, got, want)
			}
		}
	}

	CopyLines(dst, src, -1, 0, 2)
	for x := 0; x < 4; x++ {
		if dst.RawPixel(x, 1) != src.RawPixel(x, 0) {
			t.Fatalf("negative srcY: dst row 1 != src row 0 at x=%d", x)
		}
	}
}

func TestCopyLines_LayoutMismatch(t *testing.T) {
	src := mustCreate(t, 4, 4, FormatRGB565)
	paintPattern(src)

	other := mustCreate(t, 2, 4, FormatARGB8888)
	CopyLines(other, src, 0, 0, 4)
	for _, p := range snapshot(other) {
		if p != 0 {
			t.Fatal("CopyLines copied between different formats")
		}
	}

	padded, err := Create(nil, 4, 4, 12, FormatRGB565, 0)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer padded.Destroy()
	CopyLines(padded, src, 0, 0, 4)
	for _, p := range snapshot(padded) {
		if p != 0 {
			t.Fatal("CopyLines copied between different strides")
		}
	}
}

func BenchmarkFillRect(b *testing.B) {
	for _, f := range allFormats {
		b.Run(f.String(), func(b *testing.B) {
			s := mustCreate(b, 640, 480, f)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				s.FillRect(0, 0, 640, 480, Color(i))
			}
		})
	}
}

func BenchmarkCopyRect(b *testing.B) {
	s := mustCreate(b, 640, 480, FormatRGB565)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.CopyRect(0, 16, 640, 464, 0, 0)
	}
}

func BenchmarkLine(b *testing.B) {
	s := mustCreate(b, 640, 480, FormatARGB8888)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Line(0, 0, 639, 479, White)
	}
}

func TestFillRect_ExtremeExtents(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		want       image.Rectangle
	}{
		{"max width", 4, 0, math.MaxInt, 1, image.Rect(4, 0, 8, 1)},
		{"max height", 0, 2, 3, math.MaxInt, image.Rect(0, 2, 3, 4)},
		{"max both from negative origin", -3, -1, math.MaxInt, math.MaxInt, image.Rect(0, 0, 8, 4)},
		{"min origin ends left of surface", math.MinInt, 0, math.MaxInt, 4, image.Rectangle{}},
		{"max origin", math.MaxInt, 0, math.MaxInt, 4, image.Rectangle{}},
		{"half min origin covers row", math.MinInt / 2, 1, math.MaxInt, 1, image.Rect(0, 1, 8, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustCreate(t, 8, 4, FormatARGB8888)
			s.Clear(Black)
			s.FillRect(tt.x, tt.y, tt.w, tt.h, White)

			for y := 0; y < 4; y++ {
				for x := 0; x < 8; x++ {
					want := Black
					if image.Pt(x, y).In(tt.want) {
						want = White
					}
					if got := s.Pixel(x, y); got != want {
						t.Fatalf("Pixel(%d, %d) = %#08x, want %#08x", x, y, uint32(got), uint32(want))
					}
				}
			}
		})
	}
}

func TestCopyRect_ExtremeExtents(t *testing.T) {
	s := mustCreate(t, 8, 4, FormatRGB565)
	paintPattern(s)
	before := snapshot(s)

	s.CopyRect(0, 0, math.MaxInt, 1, math.MinInt, 0)
	s.CopyRect(math.MinInt, 0, math.MaxInt, 1, 0, 0)
	s.CopyRect(0, math.MaxInt, 8, math.MaxInt, 0, 0)
	for i, v := range snapshot(s) {
		if v != before[i] {
			t.Fatalf("invisible copy changed pixel %d: %#x, want %#x", i, v, before[i])
		}
	}

	s.CopyRect(4, 0, math.MaxInt, math.MaxInt, 0, 0)
	got := snapshot(s)
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			want := before[y*8+x]
			if x < 4 {
				want = before[y*8+x+4]
			}
			if got[y*8+x] != want {
				t.Fatalf("pixel (%d, %d) = %#x, want %#x", x, y, got[y*8+x], want)
			}
		}
	}
}

func TestLine_ExtremeCoordinates(t *testing.T) {
	tests := []struct {
		name           string
		w, h           int
		x1, y1, x2, y2 int
		want           []image.Point
	}{
		{"horizontal to max", 8, 1, 0, 0, math.MaxInt, 0,
			[]image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}, {6, 0}, {7, 0}}},
		{"horizontal min to max", 4, 2, math.MinInt, 1, math.MaxInt, 1,
			[]image.Point{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
		{"vertical min to max", 3, 3, 2, math.MaxInt, 2, math.MinInt,
			[]image.Point{{2, 0}, {2, 1}, {2, 2}}},
		{"long shallow", 4, 4, 0, 0, 1 << 62, 1,
			[]image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"full diagonal", 4, 4, math.MinInt, math.MinInt, math.MaxInt, math.MaxInt,
			[]image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"entirely off surface", 4, 4, -1 << 40, 10, 1 << 40, 1 << 41, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustCreate(t, tt.w, tt.h, FormatRGB332)
			s.Line(tt.x1, tt.y1, tt.x2, tt.y2, White)

			lit := make(map[image.Point]bool, len(tt.want))
			for _, p := range tt.want {
				lit[p] = true
			}
			for y := 0; y < tt.h; y++ {
				for x := 0; x < tt.w; x++ {
					if got := s.RawPixel(x, y) != 0; got != lit[image.Pt(x, y)] {
						t.Errorf("pixel (%d, %d) lit = %v, want %v", x, y, got, lit[image.Pt(x, y)])
					}
				}
			}
		})
	}
}

func TestLine_ClippedMatchesUnclipped(t *testing.T) {
	// The small surface views the big one through a window at off.
	off := image.Pt(40, 20)
	lines := [][4]int{
		{-37, -11, 53, 29},
		{53, 29, -37, -11},
		{-5, 40, 20, -30},
		{15, -19, -24, 33},
		{-40, 3, 70, 12},
		{3, -20, 9, 59},
	}

	for _, l := range lines {
		big := mustCreate(t, 160, 120, FormatRGB332)
		small := mustCreate(t, 16, 16, FormatRGB332)
		big.Line(l[0]+off.X, l[1]+off.Y, l[2]+off.X, l[3]+off.Y, White)
		small.Line(l[0], l[1], l[2], l[3], White)

		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				if got, want := small.RawPixel(x, y), big.RawPixel(x+off.X, y+off.Y); got != want {
					t.Fatalf("line %v: pixel (%d, %d) = %#x, want %#x", l, x, y, got, want)
				}
			}
		}
	}
}

func TestCopyLines_ExtremeRanges(t *testing.T) {
	src := mustCreate(t, 4, 4, FormatRGB565)
	dst := mustCreate(t, 4, 4, FormatRGB565)
	paintPattern(src)

	CopyLines(dst, src, math.MinInt, 0, math.MaxInt)
	CopyLines(dst, src, 2, math.MinInt, math.MaxInt)
	for i, v := range snapshot(dst) {
		if v != 0 {
			t.Fatalf("invisible copy wrote pixel %d = %#x", i, v)
		}
	}

	CopyLines(dst, src, 1, 0, math.MaxInt)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := uint32(0)
			if y < 3 {
				want = src.RawPixel(x, y+1)
			}
			if got := dst.RawPixel(x, y); got != want {
				t.Fatalf("dst (%d, %d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestClipSpan(t *testing.T) {
	tests := []struct {
		name                    string
		src, dst, n, sLen, dLen int
		wantSrc, wantDst, wantN int
	}{
		{"inside", 1, 2, 3, 8, 8, 1, 2, 3},
		{"empty", 1, 2, 0, 8, 8, 0, 0, 0},
		{"negative", 1, 2, -4, 8, 8, 0, 0, 0},
		{"src before start", -2, 0, 5, 8, 8, 0, 2, 3},
		{"dst before start", 0, -3, 5, 8, 8, 3, 0, 2},
		{"dst past end", 0, 6, 5, 8, 8, 0, 6, 2},
		{"huge n", 4, 4, math.MaxInt, 8, 8, 4, 4, 4},
		{"min src", math.MinInt, 0, math.MaxInt, 8, 8, 0, 0, 0},
		{"max dst", 0, math.MaxInt, math.MaxInt, 8, 8, 0, 0, 0},
		{"far apart", math.MinInt / 2, math.MaxInt / 2, math.MaxInt, 8, 8, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, d, n := clipSpan(tt.src, tt.dst, tt.n, tt.sLen, tt.dLen)
			if s != tt.wantSrc || d != tt.wantDst || n != tt.wantN {
				t.Errorf("clipSpan() = (%d, %d, %d), want (%d, %d, %d)",
					s, d, n, tt.wantSrc, tt.wantDst, tt.wantN)
			}
		})
	}
}

func BenchmarkLine_FarOffSurface(b *testing.B) {
	s := mustCreate(b, 64, 64, FormatRGB565)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Line(-1<<40, 3, 1<<40, 60, White)
	}
}
