package gfx

import "github.com/gogpu/gfx/internal/pool"

// Buffer is the pixel memory behind a Surface. It is either a Borrowed view
// of caller-owned memory or an *Owned buffer that the surface may release
// when destroyed.
type Buffer interface {
	// Bytes returns the backing memory.
	Bytes() []byte

	buffer()
}

// Borrowed is a non-owning view of caller memory. The caller guarantees the
// memory outlives every surface drawing into it. Destroy never releases it.
type Borrowed []byte

// Bytes returns the borrowed memory.
func (b Borrowed) Bytes() []byte { return b }

func (Borrowed) buffer() {}

// Owned is memory exclusively owned by one surface. When the surface is
// destroyed with FlagFreeOnDestroy set, release is called with the memory.
type Owned struct {
	pix     []byte
	release func([]byte)
}

// NewOwned wraps pix as an owned buffer. release may be nil.
func NewOwned(pix []byte, release func([]byte)) *Owned {
	return &Owned{pix: pix, release: release}
}

// Bytes returns the owned memory, or nil after it has been released or for
// a nil *Owned.
func (o *Owned) Bytes() []byte {
	if o == nil {
		return nil
	}
	return o.pix
}

func (*Owned) buffer() {}

// Release hands the memory back to its release hook. Calling it more than
// once, or on a nil *Owned, is a no-op.
func (o *Owned) Release() {
	if o == nil {
		return
	}
	pix := o.pix
	o.pix = nil
	if pix != nil && o.release != nil {
		o.release(pix)
	}
}

// Allocator supplies memory for surfaces created without a buffer.
type Allocator interface {
	// Alloc returns a zeroed slice of exactly n bytes.
	Alloc(n int) ([]byte, error)

	// Free returns memory obtained from Alloc.
	Free(b []byte)
}

// defaultAllocator recycles surface buffers of recurring sizes.
var defaultAllocator Allocator = pool.New(4)
