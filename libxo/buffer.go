package libxo

import "fmt"

// defaultBufferCap is the initial capacity reserved for a growBuffer, mirroring
// the "8 KiB suggested" starting allocation from the design.
const defaultBufferCap = 8 * 1024

// growBuffer is an append-only byte buffer. Its maxSize bounds how far it will
// grow; zero means unbounded. NewToWriter sets it from SetAllocator's
// process-wide cap, and tests set it directly to exercise the "insufficient
// memory" path without actually exhausting process memory.
type growBuffer struct {
	buf     []byte
	maxSize int // 0 = unbounded
}

func newGrowBuffer() *growBuffer {
	return &growBuffer{buf: make([]byte, 0, defaultBufferCap)}
}

// ensure guarantees at least n additional free bytes are available without
// reallocating mid-append. A failing ensure leaves the buffer unchanged and
// returns an error the caller must treat as a soft skip, never a crash.
func (g *growBuffer) ensure(n int) error {
	want := len(g.buf) + n
	if g.maxSize > 0 && want > g.maxSize {
		return fmt.Errorf("libxo: buffer grow to %d bytes exceeds limit %d", want, g.maxSize)
	}
	if cap(g.buf) >= want {
		return nil
	}
	grown := cap(g.buf)
	if grown == 0 {
		grown = defaultBufferCap
	}
	for grown < want {
		grown += defaultBufferCap
	}
	if g.maxSize > 0 && grown > g.maxSize {
		grown = g.maxSize
	}
	nb := make([]byte, len(g.buf), grown)
	copy(nb, g.buf)
	g.buf = nb
	return nil
}

// append reserves room for b and appends it. Returns an error (soft skip) if
// the buffer cannot grow to fit.
func (g *growBuffer) append(b []byte) error {
	if err := g.ensure(len(b)); err != nil {
		return err
	}
	g.buf = append(g.buf, b...)
	return nil
}

func (g *growBuffer) appendString(s string) error {
	if err := g.ensure(len(s)); err != nil {
		return err
	}
	g.buf = append(g.buf, s...)
	return nil
}

func (g *growBuffer) appendByte(b byte) error {
	if err := g.ensure(1); err != nil {
		return err
	}
	g.buf = append(g.buf, b)
	return nil
}

// reset moves the insertion point back to the base without freeing capacity.
func (g *growBuffer) reset() {
	g.buf = g.buf[:0]
}

func (g *growBuffer) String() string {
	return string(g.buf)
}

func (g *growBuffer) Bytes() []byte {
	return g.buf
}

func (g *growBuffer) Len() int {
	return len(g.buf)
}
