// Package fbdev draws into Linux framebuffer devices (/dev/fbN) with gfx.
//
// A Device maps the framebuffer memory, reports its native gfx.Format, and
// hands out surfaces that flush through msync(2):
//
//	dev, err := fbdev.Open("/dev/fb0")
//	if err != nil {
//		return err
//	}
//	defer dev.Close()
//
//	s, err := dev.Surface(0)
//	if err != nil {
//		return err
//	}
//	s.Clear(gfx.Black)
package fbdev

import (
	"errors"
	"fmt"

	"github.com/gogpu/gfx"
)

var (
	// ErrUnsupportedFormat is returned when the device's pixel layout has no
	// matching gfx.Format.
	ErrUnsupportedFormat = errors.New("fbdev: unsupported pixel layout")

	// ErrUnsupportedPlatform is returned by Open on systems without fbdev.
	ErrUnsupportedPlatform = errors.New("fbdev: not supported on this platform")

	// ErrClosed is returned when a closed device is used.
	ErrClosed = errors.New("fbdev: device closed")
)

// Bitfield describes where one color channel lives inside a pixel.
type Bitfield struct {
	Offset   uint32
	Length   uint32
	MSBRight uint32
}

// VarScreenInfo mirrors struct fb_var_screeninfo.
type VarScreenInfo struct {
	XRes, YRes               uint32
	XResVirtual, YResVirtual uint32
	XOffset, YOffset         uint32
	BitsPerPixel             uint32
	Grayscale                uint32
	Red, Green, Blue, Transp Bitfield
	NonStd                   uint32
	Activate                 uint32
	Height, Width            uint32
	AccelFlags               uint32
	PixClock                 uint32
	LeftMargin, RightMargin  uint32
	UpperMargin, LowerMargin uint32
	HSyncLen, VSyncLen       uint32
	Sync, VMode, Rotate      uint32
	Colorspace               uint32
	Reserved                 [4]uint32
}

// FixScreenInfo mirrors struct fb_fix_screeninfo.
type FixScreenInfo struct {
	ID           [16]byte
	SmemStart    uintptr
	SmemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32
	MMIOStart    uintptr
	MMIOLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}

type layout struct {
	bpp                 uint32
	red, green, blue, a Bitfield
}

func bf(off, n uint32) Bitfield { return Bitfield{Offset: off, Length: n} }

// layouts lists the channel layouts each gfx format is stored in.
var layouts = []struct {
	layout
	format gfx.Format
}{
	{layout{16, bf(11, 5), bf(5, 6), bf(0, 5), bf(0, 0)}, gfx.FormatRGB565},
	{layout{8, bf(5, 3), bf(2, 3), bf(0, 2), bf(0, 0)}, gfx.FormatRGB332},
	{layout{8, bf(6, 2), bf(4, 2), bf(2, 2), bf(0, 0)}, gfx.FormatRGB2220},
	{layout{32, bf(16, 8), bf(8, 8), bf(0, 8), bf(24, 8)}, gfx.FormatARGB8888},
	{layout{32, bf(16, 8), bf(8, 8), bf(0, 8), bf(0, 0)}, gfx.FormatRGBx888},
}

// FormatOf returns the gfx.Format matching the device's pixel layout.
//
// One bit per pixel is rejected: fbdev does not report the order of pixels
// within a byte, and many mono drivers put the leftmost pixel in the most
// significant bit while gfx.FormatMono puts it in the least. Callers that
// know their panel matches gfx.FormatMono use Device.SurfaceAs.
func FormatOf(v *VarScreenInfo) (gfx.Format, error) {
	if v.BitsPerPixel == 1 {
		return gfx.FormatNone, fmt.Errorf("%w: 1 bpp pixel order unknown", ErrUnsupportedFormat)
	}
	alpha := v.Transp
	if alpha.Length == 0 {
		alpha = Bitfield{}
	}
	got := layout{
		bpp:   v.BitsPerPixel,
		red:   Bitfield{Offset: v.Red.Offset, Length: v.Red.Length},
		green: Bitfield{Offset: v.Green.Offset, Length: v.Green.Length},
		blue:  Bitfield{Offset: v.Blue.Offset, Length: v.Blue.Length},
		a:     Bitfield{Offset: alpha.Offset, Length: alpha.Length},
	}
	for _, l := range layouts {
		if l.layout == got {
			return l.format, nil
		}
	}
	return gfx.FormatNone, fmt.Errorf("%w: %d bpp r%d@%d g%d@%d b%d@%d a%d@%d", ErrUnsupportedFormat,
		v.BitsPerPixel, v.Red.Length, v.Red.Offset, v.Green.Length, v.Green.Offset,
		v.Blue.Length, v.Blue.Offset, v.Transp.Length, v.Transp.Offset)
}

// checkFormat reports whether f can address memory laid out as v. Only the
// pixel width can be checked; the channel layout is the caller's claim.
func checkFormat(v *VarScreenInfo, f gfx.Format) error {
	if !f.IsValid() {
		return gfx.ErrInvalidFormat
	}
	if uint32(f.BitsPerPixel()) != v.BitsPerPixel {
		return fmt.Errorf("%w: %v is %d bpp, device is %d bpp", ErrUnsupportedFormat,
			f, f.BitsPerPixel(), v.BitsPerPixel)
	}
	return nil
}

// pageSpan widens [off, off+n) to whole pages, clamped to total bytes.
func pageSpan(off, n, page, total int) (int, int) {
	start := off &^ (page - 1)
	end := (off + n + page - 1) &^ (page - 1)
	return start, min(end, total)
}

// visibleOffset returns the byte offset of the visible area's top-left pixel.
func visibleOffset(v *VarScreenInfo, lineLength uint32) int {
	return int(v.YOffset)*int(lineLength) + int(v.XOffset)*int(v.BitsPerPixel)/8
}
