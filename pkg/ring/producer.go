package ring

import (
	"encoding/binary"

	"github.com/gobeyondidentity/ringlink/pkg/mmio"
)

// Producer is the single writing role for one Buffer. It owns the head
// position, publishes it through headPub after every enqueue, and reads
// the peer's consumer position from tailPub to compute free space.
//
// Not safe for use from more than one goroutine; the SPSC contract is the
// whole synchronization story.
type Producer struct {
	buf     *Buffer
	head    uint32
	headPub *mmio.Register // written here, read by the peer consumer
	tailPub *mmio.Register // written by the peer consumer, read here
}

// NewProducer attaches the producing role to buf. headPub must be the
// register this side owns; tailPub the one the consuming peer owns. The
// initial head is published immediately so the peer starts from a coherent
// zero.
func NewProducer(buf *Buffer, headPub, tailPub *mmio.Register) *Producer {
	p := &Producer{
		buf:     buf,
		headPub: headPub,
		tailPub: tailPub,
	}
	p.headPub.Store(p.head)
	return p
}

// Free returns the space currently available for enqueue, in bytes,
// against the peer's last published tail. One byte is always held back to
// keep full distinguishable from empty. The value can only grow between
// calls (the peer only consumes), so a fit decision based on it is safe.
func (p *Producer) Free() int {
	used := p.buf.distance(p.tailPub.Load(), p.head)
	return int(p.buf.capacity - 1 - used)
}

// Used returns the bytes currently occupied as seen from this side.
func (p *Producer) Used() int {
	return int(p.buf.distance(p.tailPub.Load(), p.head))
}

// Head returns the local (already published) head position.
func (p *Producer) Head() uint32 {
	return p.head
}

// Enqueue frames the payload and writes it at head. The header goes first,
// split into two single-byte writes when it straddles the physical end
// (low byte at the last offset, high byte at offset 0); the payload is
// written in one or two copies the same way. The new head is published
// last, after all data writes, which is what makes the frame visible to
// the peer.
func (p *Producer) Enqueue(payload []byte) error {
	c := p.buf.capacity
	total := uint32(len(payload)) + HeaderSize
	// Usable space tops out at capacity-1, so a frame needing more can
	// never succeed regardless of drain progress.
	if len(payload) > MaxPayload || total > c-1 {
		return ErrFrameTooLarge
	}
	if uint32(p.Free()) < total {
		return ErrInsufficientSpace
	}

	// Record the write start directly; nothing below re-derives it from
	// the advanced head.
	start := p.head

	if start+HeaderSize <= c {
		binary.LittleEndian.PutUint16(p.buf.data[start:], uint16(len(payload)))
	} else {
		// Header straddles the end: low byte at the final offset, high
		// byte wraps to offset 0.
		p.buf.data[start] = byte(len(payload))
		p.buf.data[0] = byte(len(payload) >> 8)
	}

	off := p.buf.wrap(start + HeaderSize)
	if off+uint32(len(payload)) <= c {
		copy(p.buf.data[off:], payload)
	} else {
		first := c - off
		copy(p.buf.data[off:], payload[:first])
		copy(p.buf.data, payload[first:])
	}

	p.head = p.buf.wrap(start + total)
	p.headPub.Store(p.head) // release: ordered after the data writes above
	return nil
}
