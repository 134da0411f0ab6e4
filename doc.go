// Package gfx provides software rendering into raw framebuffer memory.
//
// # Overview
//
// gfx draws directly into a pixel buffer without any display stack: pixels,
// filled rectangles, lines, rectangle copies, bitmap glyphs, and global-alpha
// blending between surfaces. It is meant for boot screens, kiosk consoles,
// embedded panels and memory-mapped framebuffer devices.
//
// # Quick Start
//
//	s, err := gfx.Create(nil, 320, 240, 0, gfx.FormatRGB565, 0)
//	if err != nil {
//		return err
//	}
//	defer s.Destroy()
//
//	s.Clear(gfx.Black)
//	s.FillRect(10, 10, 100, 50, gfx.RGB(0x20, 0x60, 0xC0))
//	s.Line(0, 0, 319, 239, gfx.White)
//
// # Formats
//
// A Surface stores pixels in one of a fixed set of native formats: RGB565,
// RGB332, RGB2220, ARGB8888, RGBx888 and 1-bit Mono. Colors are passed as
// logical ARGB values and converted by the format's Codec. The format's
// drawing operations are selected once when the surface is constructed.
//
// Multi-byte pixels are stored little-endian. Mono pixels are packed eight
// per byte with the leftmost pixel in the least significant bit; a color is
// lit when its BT.709 luma is at least 128.
//
// # Clipping
//
// Drawing never fails. Anything outside the surface is clipped silently.
//
// # Buffers and Flushing
//
// Surfaces either borrow caller memory (Borrowed) or own it (Owned, released
// by Destroy). When FlagFlushCPUCache is set, Flush and FlushRows pass the
// touched byte range to the surface's Flusher so a display controller or
// device mapping observes the writes. Only Clear flushes on its own; batch
// other drawing and flush once.
//
// # Concurrency
//
// Surfaces have no internal locking and must not be shared between
// goroutines without external synchronization.
package gfx
