package mmio

import (
	"strings"
	"sync/atomic"
)

// IntBit identifies one interrupt line in the latch.
type IntBit uint32

const (
	// IntRxReady signals that the device has written enough RX data to
	// cross the high watermark.
	IntRxReady IntBit = 1 << iota

	// IntTxSpace signals that the device has freed enough TX space to
	// cross the low watermark. Informational; no handler action required.
	IntTxSpace

	// IntError signals a device-side fault. Non-fatal: it is surfaced and
	// normal operation continues.
	IntError
)

// AllInts covers every defined interrupt bit.
const AllInts = IntRxReady | IntTxSpace | IntError

// String renders a bit set like "RX_READY|ERROR".
func (b IntBit) String() string {
	if b == 0 {
		return "none"
	}
	var parts []string
	if b&IntRxReady != 0 {
		parts = append(parts, "RX_READY")
	}
	if b&IntTxSpace != 0 {
		parts = append(parts, "TX_SPACE")
	}
	if b&IntError != 0 {
		parts = append(parts, "ERROR")
	}
	return strings.Join(parts, "|")
}

// Latch is the interrupt status/enable pair. Raising records a bit in the
// status word unconditionally; the enable mask gates delivery (what
// Pending reports), never recording. Either side may raise; the consuming
// side acknowledges bits one at a time after handling them.
type Latch struct {
	status atomic.Uint32
	enable atomic.Uint32
}

// Raise ORs bits into the status word. Safe to call from either agent.
func (l *Latch) Raise(bits IntBit) {
	l.status.Or(uint32(bits))
}

// Acknowledge clears exactly the given bits from the status word.
func (l *Latch) Acknowledge(bits IntBit) {
	l.status.And(^uint32(bits))
}

// Status returns the raw latched bits, ignoring the enable mask.
func (l *Latch) Status() IntBit {
	return IntBit(l.status.Load())
}

// Pending returns the latched bits that are also enabled for delivery.
func (l *Latch) Pending() IntBit {
	return IntBit(l.status.Load() & l.enable.Load())
}

// Enable adds bits to the delivery mask.
func (l *Latch) Enable(bits IntBit) {
	l.enable.Or(uint32(bits))
}

// Disable removes bits from the delivery mask. Already-latched status bits
// stay recorded and deliver again if the bit is re-enabled.
func (l *Latch) Disable(bits IntBit) {
	l.enable.And(^uint32(bits))
}

// Enabled returns the current delivery mask.
func (l *Latch) Enabled() IntBit {
	return IntBit(l.enable.Load())
}

// Reset clears both the status word and the enable mask.
func (l *Latch) Reset() {
	l.status.Store(0)
	l.enable.Store(0)
}
