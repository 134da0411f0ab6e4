//go:build !linux

package fbdev

import "github.com/gogpu/gfx"

// Device is an open framebuffer device. It is only available on Linux.
type Device struct{}

// Open always fails with ErrUnsupportedPlatform.
func Open(string) (*Device, error) { return nil, ErrUnsupportedPlatform }

// VarScreenInfo returns the zero value.
func (*Device) VarScreenInfo() VarScreenInfo { return VarScreenInfo{} }

// FixScreenInfo returns the zero value.
func (*Device) FixScreenInfo() FixScreenInfo { return FixScreenInfo{} }

// Format always fails with ErrUnsupportedPlatform.
func (*Device) Format() (gfx.Format, error) { return gfx.FormatNone, ErrUnsupportedPlatform }

// Surface always fails with ErrUnsupportedPlatform.
func (*Device) Surface(gfx.Flags, ...gfx.Option) (*gfx.Surface, error) {
	return nil, ErrUnsupportedPlatform
}

// SurfaceAs always fails with ErrUnsupportedPlatform.
func (*Device) SurfaceAs(gfx.Format, gfx.Flags, ...gfx.Option) (*gfx.Surface, error) {
	return nil, ErrUnsupportedPlatform
}

// Flush does nothing.
func (*Device) Flush([]byte) {}

// Close always fails with ErrUnsupportedPlatform.
func (*Device) Close() error { return ErrUnsupportedPlatform }
