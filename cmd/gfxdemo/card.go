package main

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/gfx"
)

var bars = []gfx.Color{
	gfx.White,
	gfx.RGB(0xFF, 0xFF, 0x00),
	gfx.RGB(0x00, 0xFF, 0xFF),
	gfx.Green,
	gfx.RGB(0xFF, 0x00, 0xFF),
	gfx.Red,
	gfx.Blue,
}

// drawCard paints a test card: color bars, a line fan, a translucent title
// panel with text, and optionally a scaled photo.
func drawCard(s *gfx.Surface, alpha uint8, photo image.Image) error {
	w, h := s.Width(), s.Height()
	s.Clear(gfx.RGB(0x10, 0x18, 0x30))

	barW := max(w/len(bars), 1)
	for i, c := range bars {
		s.FillRect(i*barW, 0, barW, h/2, c)
	}

	// Line fan from the bottom-left corner.
	for i := 0; i <= 8; i++ {
		s.Line(0, h-1, w-1, h/2+i*(h/2-1)/8, gfx.White)
	}

	font, err := gfx.FontFromFace(basicfont.Face7x13)
	if err != nil {
		return err
	}

	panel, err := gfx.Create(nil, w, font.Height()+8, 0, gfx.FormatARGB8888, 0, gfx.WithAlpha(alpha))
	if err != nil {
		return err
	}
	defer panel.Destroy()

	panel.Clear(gfx.Black)
	end := panel.PutString(font, "gfx "+s.Format().String(), 4, 4, gfx.White, gfx.Transparent)
	panel.Line(4, panel.Height()-2, end, panel.Height()-2, gfx.RGB(0xFF, 0xC0, 0x00))

	top := h/2 - panel.Height()/2
	gfx.SurfaceBlend(s, panel, 0, top)

	// Drop a copy of the title band under the bars as a reflection strip.
	s.CopyRect(0, top, w, panel.Height(), 0, h-panel.Height())

	if photo != nil {
		box := image.Rect(w*3/4, h/2+4, w-4, h-4)
		xdraw.ApproxBiLinear.Scale(s, box, photo, photo.Bounds(), xdraw.Over, nil)
	}
	return nil
}
