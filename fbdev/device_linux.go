//go:build linux

package fbdev

import (
	"fmt"
	"log/slog"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/gogpu/gfx"
)

// ioctl requests from <linux/fb.h>.
const (
	fbiogetVScreenInfo = 0x4600
	fbiogetFScreenInfo = 0x4602
)

// Device is an open, memory-mapped framebuffer device.
//
// Thread safety: a Device and the surfaces it returns are not safe for
// concurrent use.
type Device struct {
	fd    int
	fix   FixScreenInfo
	vinfo VarScreenInfo
	mem   []byte
	page  int
}

func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Open opens the framebuffer device at path, reads its screen info and maps
// its memory read-write.
func Open(path string) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("fbdev: open %s: %w", path, err)
	}
	d := &Device{fd: fd, page: unix.Getpagesize()}

	if err := ioctl(fd, fbiogetFScreenInfo, unsafe.Pointer(&d.fix)); err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("fbdev: FBIOGET_FSCREENINFO: %w", err)
	}
	if err := ioctl(fd, fbiogetVScreenInfo, unsafe.Pointer(&d.vinfo)); err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("fbdev: FBIOGET_VSCREENINFO: %w", err)
	}

	d.mem, err = unix.Mmap(fd, 0, int(d.fix.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("fbdev: mmap: %w", err)
	}

	gfx.Logger().Debug("fbdev: device opened",
		slog.String("path", path),
		slog.Int("xres", int(d.vinfo.XRes)),
		slog.Int("yres", int(d.vinfo.YRes)),
		slog.Int("bpp", int(d.vinfo.BitsPerPixel)),
		slog.Int("line_length", int(d.fix.LineLength)))
	return d, nil
}

// VarScreenInfo returns the variable screen info read at Open.
func (d *Device) VarScreenInfo() VarScreenInfo { return d.vinfo }

// FixScreenInfo returns the fixed screen info read at Open.
func (d *Device) FixScreenInfo() FixScreenInfo { return d.fix }

// Format returns the device's native pixel format.
func (d *Device) Format() (gfx.Format, error) {
	return FormatOf(&d.vinfo)
}

// Surface returns a surface over the visible screen area in the device's
// native format. The surface borrows the device mapping and flushes through
// the device; it must not be used after Close.
func (d *Device) Surface(flags gfx.Flags, opts ...gfx.Option) (*gfx.Surface, error) {
	if d.mem == nil {
		return nil, ErrClosed
	}
	format, err := d.Format()
	if err != nil {
		return nil, err
	}
	return d.SurfaceAs(format, flags, opts...)
}

// SurfaceAs is like Surface but draws in format, which must have the
// device's bits per pixel. It is the way to drive 1 bpp panels whose pixel
// order matches gfx.FormatMono.
func (d *Device) SurfaceAs(format gfx.Format, flags gfx.Flags, opts ...gfx.Option) (*gfx.Surface, error) {
	if d.mem == nil {
		return nil, ErrClosed
	}
	if err := checkFormat(&d.vinfo, format); err != nil {
		return nil, err
	}
	off := visibleOffset(&d.vinfo, d.fix.LineLength)
	if off > len(d.mem) {
		return nil, fmt.Errorf("%w: visible offset %d beyond mapping", gfx.ErrBufferTooSmall, off)
	}
	opts = append([]gfx.Option{gfx.WithFlusher(d)}, opts...)
	return gfx.Create(gfx.Borrowed(d.mem[off:]),
		int(d.vinfo.XRes), int(d.vinfo.YRes), int(d.fix.LineLength),
		format, flags|gfx.FlagFlushCPUCache, opts...)
}

// Flush implements gfx.Flusher by syncing the pages covering b. Memory
// outside the mapping flushes the whole mapping. Failures are logged.
func (d *Device) Flush(b []byte) {
	if d.mem == nil || len(b) == 0 {
		return
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(d.mem)))
	p := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	off, n := 0, len(d.mem)
	if p >= base && p < base+uintptr(len(d.mem)) {
		off, n = int(p-base), len(b)
	}
	start, end := pageSpan(off, n, d.page, len(d.mem))
	if err := unix.Msync(d.mem[start:end], unix.MS_SYNC); err != nil {
		gfx.Logger().Warn("fbdev: msync failed",
			slog.Int("offset", start),
			slog.Int("length", end-start),
			slog.String("error", err.Error()))
	}
}

// Close unmaps the framebuffer and closes the device.
func (d *Device) Close() error {
	if d.mem == nil {
		return ErrClosed
	}
	err := unix.Munmap(d.mem)
	d.mem = nil
	if cerr := unix.Close(d.fd); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("fbdev: close: %w", err)
	}
	return nil
}
