package gfx

import "sync/atomic"

// Flusher makes prior CPU writes to a byte range visible to a non-CPU
// reader of the same memory, such as a display controller or a device
// mapping. It reports no error: a flush is best effort.
type Flusher interface {
	Flush(b []byte)
}

// FlusherFunc adapts a function to the Flusher interface.
type FlusherFunc func(b []byte)

// Flush calls f(b).
func (f FlusherFunc) Flush(b []byte) { f(b) }

// fence is written by fenceFlusher. Atomic stores are sequentially
// consistent, so earlier plain writes are ordered before it.
var fence atomic.Uint32

// fenceFlusher is the default Flusher. Go cannot clean CPU caches directly;
// it only orders the preceding writes.
type fenceFlusher struct{}

func (fenceFlusher) Flush([]byte) { fence.Add(1) }

// FlushRows flushes rows [start, end) if FlagFlushCPUCache is set and is a
// no-op otherwise. The range is clamped to the surface.
func (s *Surface) FlushRows(start, end int) {
	if s.flags&FlagFlushCPUCache == 0 {
		return
	}
	start = max(start, 0)
	end = min(end, s.height)
	if start >= end {
		return
	}
	s.flusher.Flush(s.pix[start*s.stride : end*s.stride])
}

// Flush flushes the whole surface. See FlushRows.
func (s *Surface) Flush() {
	s.FlushRows(0, s.height)
}

// Clear fills the surface with c and flushes it. It is the only drawing
// operation that flushes on its own.
func (s *Surface) Clear(c Color) {
	s.FillRect(0, 0, s.width, s.height, c)
	s.Flush()
}
