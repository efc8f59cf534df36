package ring

import "fmt"

const (
	// HeaderSize is the fixed frame header: a 2-byte little-endian
	// payload length.
	HeaderSize = 2

	// DefaultCapacity matches the hardware's per-direction ring size.
	DefaultCapacity = 4096

	// MinCapacity leaves room for a header, one payload byte, and the
	// reserved full/empty slot.
	MinCapacity = HeaderSize + 2

	// MaxPayload is the largest length the 2-byte header can express.
	MaxPayload = 1<<16 - 1
)

// Buffer is the shared byte arena one ring direction lives in. It holds no
// positions itself; those belong to the Producer and Consumer attached to
// it. Allocated once, never resized.
type Buffer struct {
	data     []byte
	capacity uint32
}

// NewBuffer allocates an arena of the given capacity.
func NewBuffer(capacity int) (*Buffer, error) {
	if capacity < MinCapacity {
		return nil, fmt.Errorf("ring: capacity %d below minimum %d", capacity, MinCapacity)
	}
	if capacity > int(^uint32(0)>>1) {
		return nil, fmt.Errorf("ring: capacity %d does not fit a 32-bit position", capacity)
	}
	return &Buffer{
		data:     make([]byte, capacity),
		capacity: uint32(capacity),
	}, nil
}

// Capacity returns the arena size in bytes. Usable frame space is one byte
// less.
func (b *Buffer) Capacity() int {
	return int(b.capacity)
}

// wrap reduces a logical offset into [0, capacity).
func (b *Buffer) wrap(off uint32) uint32 {
	return off % b.capacity
}

// distance returns (to - from) mod capacity: bytes from 'from' up to but
// not including 'to' in ring order.
func (b *Buffer) distance(from, to uint32) uint32 {
	return (to - from + b.capacity) % b.capacity
}

// Frame is a read-only view of one decoded payload inside the arena,
// addressed logically: the payload may straddle the physical end. The view
// is only valid until the producer reuses the space, which cannot happen
// before the consumer publishes its advanced tail. Copy out before
// calling Publish.
type Frame struct {
	buf    *Buffer
	offset uint32
	length uint32
}

// Len returns the payload length in bytes.
func (f Frame) Len() int {
	return int(f.length)
}

// Offset returns the payload's starting offset in the arena.
func (f Frame) Offset() int {
	return int(f.offset)
}

// CopyTo copies the payload into dst, splitting the read when the payload
// wraps. It returns the number of bytes copied (min of Len and len(dst)).
func (f Frame) CopyTo(dst []byte) int {
	n := f.length
	if uint32(len(dst)) < n {
		n = uint32(len(dst))
	}
	if n == 0 {
		return 0
	}
	c := f.buf.capacity
	if f.offset+n <= c {
		return copy(dst, f.buf.data[f.offset:f.offset+n])
	}
	first := c - f.offset
	copied := copy(dst, f.buf.data[f.offset:])
	copied += copy(dst[first:], f.buf.data[:n-first])
	return copied
}

// Bytes returns a freshly allocated copy of the payload.
func (f Frame) Bytes() []byte {
	out := make([]byte, f.length)
	f.CopyTo(out)
	return out
}
