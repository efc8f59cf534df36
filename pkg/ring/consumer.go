package ring

import (
	"encoding/binary"

	"github.com/gobeyondidentity/ringlink/pkg/mmio"
)

// Consumer is the single reading role for one Buffer. It owns the tail
// position and advances it locally as frames are decoded; the advanced
// tail only becomes visible to the peer on Publish, so a batch of drains
// costs one cross-boundary write instead of one per frame.
//
// Not safe for use from more than one goroutine.
type Consumer struct {
	buf     *Buffer
	tail    uint32
	tailPub *mmio.Register // written here, read by the peer producer
	headPub *mmio.Register // written by the peer producer, read here
}

// NewConsumer attaches the consuming role to buf. tailPub must be the
// register this side owns; headPub the one the producing peer owns.
func NewConsumer(buf *Buffer, tailPub, headPub *mmio.Register) *Consumer {
	c := &Consumer{
		buf:     buf,
		tailPub: tailPub,
		headPub: headPub,
	}
	c.tailPub.Store(c.tail)
	return c
}

// Available returns the bytes visible between the local tail and the
// peer's last published head. It can only grow between calls.
func (c *Consumer) Available() int {
	return int(c.buf.distance(c.tail, c.headPub.Load()))
}

// Tail returns the local tail position, which may run ahead of the
// published one between Publish calls.
func (c *Consumer) Tail() uint32 {
	return c.tail
}

// Next decodes and consumes one frame. It returns ErrWouldBlock, with no
// state mutated, when fewer than two header bytes are visible or the
// header promises more payload than has arrived. On success the local tail
// has advanced past the frame but the published tail has not; call Publish
// once per batch, after copying any Frame views out.
func (c *Consumer) Next() (Frame, error) {
	head := c.headPub.Load() // acquire: frame bytes are visible past here
	avail := c.buf.distance(c.tail, head)
	if avail < HeaderSize {
		return Frame{}, ErrWouldBlock
	}

	var length uint32
	if c.tail+HeaderSize <= c.buf.capacity {
		length = uint32(binary.LittleEndian.Uint16(c.buf.data[c.tail:]))
	} else {
		// Header straddles the end: low byte at the final offset, high
		// byte at offset 0.
		length = uint32(c.buf.data[c.tail]) | uint32(c.buf.data[0])<<8
	}

	total := length + HeaderSize
	if avail < total {
		return Frame{}, ErrWouldBlock
	}

	f := Frame{
		buf:    c.buf,
		offset: c.buf.wrap(c.tail + HeaderSize),
		length: length,
	}
	c.tail = c.buf.wrap(c.tail + total)
	return f, nil
}

// Publish makes the local tail visible to the peer producer, releasing the
// space of every frame consumed since the previous Publish. Frame views
// taken from those frames must not be read afterwards.
func (c *Consumer) Publish() {
	c.tailPub.Store(c.tail)
}
