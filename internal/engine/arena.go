package engine

import (
	"sync"

	"github.com/valyala/bytebufferpool"
)

var bufferPool bytebufferpool.Pool

// Stats counts the allocations an arena served and released.
type Stats struct {
	Allocated int
	Released  int
}

// Arena serves the allocations of a single engine call.
type Arena struct {
	mu    sync.Mutex
	live  []*bytebufferpool.ByteBuffer
	stats Stats
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Alloc is the arena's Allocator.
func (a *Arena) Alloc(size int) []byte {
	if size < 0 {
		return nil
	}
	bb := bufferPool.Get()
	if cap(bb.B) < size {
		bb.B = make([]byte, size)
	} else {
		bb.B = bb.B[:size]
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.live = append(a.live, bb)
	a.stats.Allocated++
	return bb.B
}

// Claim transfers the allocation that starts at out to the caller. It
// reports false if out is empty or was not served by this arena.
func (a *Arena) Claim(out []byte) (*Buffer, bool) {
	if len(out) == 0 {
		return nil, false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, bb := range a.live {
		if len(bb.B) == 0 || &bb.B[0] != &out[0] || len(out) > len(bb.B) {
			continue
		}
		a.live = append(a.live[:i], a.live[i+1:]...)
		return &Buffer{arena: a, bb: bb, data: out}, true
	}
	return nil, false
}

// Close releases every allocation that was not claimed and returns how
// many it released.
func (a *Arena) Close() int {
	a.mu.Lock()
	live := a.live
	a.live = nil
	a.mu.Unlock()

	for _, bb := range live {
		a.put(bb)
	}
	return len(live)
}

// Stats returns the arena's counters.
func (a *Arena) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

func (a *Arena) put(bb *bytebufferpool.ByteBuffer) {
	bufferPool.Put(bb)
	a.mu.Lock()
	a.stats.Released++
	a.mu.Unlock()
}

// Buffer is engine output owned by the caller. It must be released exactly
// once; Release is a no-op afterwards.
type Buffer struct {
	arena *Arena
	bb    *bytebufferpool.ByteBuffer
	data  []byte
}

// Bytes returns the content. The slice is invalid after Release.
func (b *Buffer) Bytes() []byte {
	if b.bb == nil {
		return nil
	}
	return b.data
}

// String copies the content.
func (b *Buffer) String() string {
	return string(b.Bytes())
}

// Len returns the content length.
func (b *Buffer) Len() int {
	return len(b.Bytes())
}

// Release hands the buffer back to its arena.
func (b *Buffer) Release() {
	if b.bb == nil {
		return
	}
	bb := b.bb
	b.bb = nil
	b.data = nil
	b.arena.put(bb)
}
