package transport

import (
	"log/slog"

	"github.com/gobeyondidentity/ringlink/pkg/mmio"
	"github.com/gobeyondidentity/ringlink/pkg/ring"
)

// Host is the driver-side agent: producer on the TX ring, consumer on the
// RX ring. Single-threaded; all methods must be called from one goroutine.
type Host struct {
	tx   *ring.Producer
	rx   *ring.Consumer
	regs *mmio.RegisterFile

	sink      func(payload []byte)
	onTxSpace func()
	onError   func(status mmio.IntBit)
	log       *slog.Logger
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithSink sets the delivery function for payloads drained from the RX
// ring. Each payload is a fresh copy; the sink may retain it. Without a
// sink, drained frames are counted and dropped.
func WithSink(fn func(payload []byte)) HostOption {
	return func(h *Host) {
		h.sink = fn
	}
}

// WithTxSpaceNotify sets an optional callback for TX_SPACE, typically used
// to resume a paused sender. No action is required.
func WithTxSpaceNotify(fn func()) HostOption {
	return func(h *Host) {
		h.onTxSpace = fn
	}
}

// WithErrorNotify sets an optional callback for the ERROR bit. The link
// keeps operating either way; recovery policy belongs to the integrator.
func WithErrorNotify(fn func(status mmio.IntBit)) HostOption {
	return func(h *Host) {
		h.onError = fn
	}
}

// WithHostLogger sets the logger. Defaults to slog.Default.
func WithHostLogger(log *slog.Logger) HostOption {
	return func(h *Host) {
		h.log = log
	}
}

// NewHost attaches the host agent to a link. Construction performs the
// driver init sequence: clear any latched interrupts, publish the initial
// zero positions, then enable all interrupt lines.
func NewHost(link *Link, opts ...HostOption) *Host {
	h := &Host{
		regs: link.Regs,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}

	h.regs.Int.Acknowledge(mmio.AllInts)
	h.tx = ring.NewProducer(link.TX, &h.regs.HostTxHead, &h.regs.TxTail)
	h.rx = ring.NewConsumer(link.RX, &h.regs.HostRxTail, &h.regs.RxHead)
	h.regs.Int.Enable(mmio.AllInts)
	return h
}

// Send frames one payload into the TX ring. ring.ErrFrameTooLarge is
// permanent; ring.ErrInsufficientSpace means retry after the device drains
// (TX_SPACE will fire once enough space frees up).
func (h *Host) Send(payload []byte) error {
	return h.tx.Enqueue(payload)
}

// TxFree reports the space currently available to Send.
func (h *Host) TxFree() int {
	return h.tx.Free()
}

// Dispatch polls the interrupt latch and services every bit that is both
// latched and enabled, acknowledging each one after its handler runs. It
// returns the set of bits serviced. A dropped or duplicated edge is
// harmless: handlers re-derive everything from the published positions.
func (h *Host) Dispatch() mmio.IntBit {
	pending := h.regs.Int.Pending()
	if pending == 0 {
		return 0
	}

	if pending&mmio.IntRxReady != 0 {
		h.drainRX()
		h.regs.Int.Acknowledge(mmio.IntRxReady)
	}
	if pending&mmio.IntTxSpace != 0 {
		if h.onTxSpace != nil {
			h.onTxSpace()
		}
		h.regs.Int.Acknowledge(mmio.IntTxSpace)
	}
	if pending&mmio.IntError != 0 {
		h.log.Warn("device raised error interrupt", "status", pending.String())
		if h.onError != nil {
			h.onError(pending)
		}
		h.regs.Int.Acknowledge(mmio.IntError)
	}
	return pending
}

// DrainRX drains the RX ring to exhaustion outside of interrupt dispatch,
// for callers that poll instead of relying on RX_READY. Returns the number
// of frames delivered.
func (h *Host) DrainRX() int {
	return h.drainRX()
}

// drainRX consumes every complete frame currently visible, delivers the
// payloads, then publishes the advanced tail once for the whole batch.
func (h *Host) drainRX() int {
	drained := 0
	for {
		f, err := h.rx.Next()
		if err != nil {
			break // ring.ErrWouldBlock: caught up with the device
		}
		if h.sink != nil {
			h.sink(f.Bytes())
		}
		drained++
	}
	if drained > 0 {
		h.rx.Publish()
	}
	return drained
}
