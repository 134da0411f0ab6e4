package gfx

// Option configures a Surface during Init or Create.
//
// Example:
//
//	// Borrow a device buffer and flush through its msync hook
//	s, err := gfx.Create(gfx.Borrowed(mem), 640, 480, 1280, gfx.FormatRGB565,
//		gfx.FlagFlushCPUCache, gfx.WithFlusher(dev))
type Option func(*surfaceOptions)

// surfaceOptions holds optional configuration for Surface construction.
type surfaceOptions struct {
	flusher   Flusher
	allocator Allocator
	alpha     uint8
}

// defaultOptions returns the default surface options.
func defaultOptions() surfaceOptions {
	return surfaceOptions{
		flusher:   fenceFlusher{},
		allocator: defaultAllocator,
		alpha:     MaxAlpha,
	}
}

// WithFlusher sets the hook used by Flush and FlushRows when the surface
// has FlagFlushCPUCache set. A nil flusher keeps the default.
func WithFlusher(f Flusher) Option {
	return func(o *surfaceOptions) {
		if f != nil {
			o.flusher = f
		}
	}
}

// WithAllocator sets the allocator Create uses when no buffer is supplied
// and Destroy uses to free it. A nil allocator keeps the default.
func WithAllocator(a Allocator) Option {
	return func(o *surfaceOptions) {
		if a != nil {
			o.allocator = a
		}
	}
}

// WithAlpha sets the initial global alpha of the surface.
func WithAlpha(a uint8) Option {
	return func(o *surfaceOptions) {
		o.alpha = a
	}
}
