// Package pool recycles pixel buffers for self-allocating surfaces.
package pool

import (
	"errors"
	"sync"
)

// ErrInvalidSize is returned by Alloc for a negative size or one above the
// pool's limit.
var ErrInvalidSize = errors.New("pool: invalid buffer size")

// Pool is a thread-safe pool of byte buffers grouped by length.
//
// Surfaces of the same geometry request identical lengths, so buffers are
// matched by exact length. Reused buffers are zeroed before they are
// returned.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu       sync.Mutex
	buckets  map[int][][]byte
	maxSize  int // max buffers per bucket
	maxBytes int // largest buffer Alloc will hand out, 0 = unlimited
}

// New creates a pool retaining at most maxPerBucket buffers per length.
// A maxPerBucket of 0 means unlimited (use with caution).
func New(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// SetLimit caps the size of a single allocation. 0 removes the cap.
func (p *Pool) SetLimit(maxBytes int) {
	p.mu.Lock()
	p.maxBytes = maxBytes
	p.mu.Unlock()
}

// Alloc returns a zeroed buffer of exactly n bytes, reusing a pooled one
// when available.
func (p *Pool) Alloc(n int) ([]byte, error) {
	p.mu.Lock()
	if n < 0 || (p.maxBytes > 0 && n > p.maxBytes) {
		p.mu.Unlock()
		return nil, ErrInvalidSize
	}
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		clear(buf)
		return buf, nil
	}
	p.mu.Unlock()

	return make([]byte, n), nil
}

// Free returns a buffer to the pool. If the bucket for its length is full
// the buffer is dropped for the garbage collector.
func (p *Pool) Free(buf []byte) {
	if buf == nil {
		return
	}
	buf = buf[:cap(buf)]

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[len(buf)]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[len(buf)] = append(bucket, buf)
}

// Len returns the number of pooled buffers of length n.
func (p *Pool) Len(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[n])
}
