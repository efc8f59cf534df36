package transport

import (
	"log/slog"

	"github.com/gobeyondidentity/ringlink/pkg/mmio"
	"github.com/gobeyondidentity/ringlink/pkg/ring"
)

// DrainMode selects how much of the TX ring one ProcessTX call consumes.
type DrainMode int

const (
	// DrainOne consumes at most one frame per call, the hardware's
	// pacing. Backpressure builds if the host sends faster than the
	// device cycles.
	DrainOne DrainMode = iota

	// DrainAll consumes every complete frame visible at call time.
	DrainAll
)

// Device is the chip-side agent: consumer on the TX ring, producer on the
// RX ring. Single-threaded; all methods must be called from one goroutine.
type Device struct {
	tx   *ring.Consumer
	rx   *ring.Producer
	regs *mmio.RegisterFile

	mode     DrainMode
	txLowWM  int
	rxHighWM int

	// Bytes freed in the TX ring since TX_SPACE last fired. Crossing the
	// low watermark raises once and resets, so a burst of drains yields
	// one interrupt, not one per frame.
	freedSinceRaise int

	sink func(payload []byte)
	log  *slog.Logger
}

// DeviceOption configures a Device.
type DeviceOption func(*Device)

// WithDrainMode selects the ProcessTX pacing. Default DrainOne.
func WithDrainMode(mode DrainMode) DeviceOption {
	return func(d *Device) {
		d.mode = mode
	}
}

// WithTXSink sets the delivery function for payloads the device drains
// from the TX ring. Each payload is a fresh copy. Without a sink, frames
// are consumed and dropped.
func WithTXSink(fn func(payload []byte)) DeviceOption {
	return func(d *Device) {
		d.sink = fn
	}
}

// WithDeviceLogger sets the logger. Defaults to slog.Default.
func WithDeviceLogger(log *slog.Logger) DeviceOption {
	return func(d *Device) {
		d.log = log
	}
}

// NewDevice attaches the device agent to a link and publishes its initial
// zero positions, the hardware reset state.
func NewDevice(link *Link, opts ...DeviceOption) *Device {
	cfg := link.Config()
	d := &Device{
		regs:     link.Regs,
		txLowWM:  cfg.TxLowWatermark,
		rxHighWM: cfg.RxHighWatermark,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.tx = ring.NewConsumer(link.TX, &d.regs.TxTail, &d.regs.HostTxHead)
	d.rx = ring.NewProducer(link.RX, &d.regs.RxHead, &d.regs.HostRxTail)
	return d
}

// ProcessTX drains frames from the TX ring according to the drain mode and
// publishes the advanced tail once for the batch. When the bytes freed
// since the last TX_SPACE raise cross the low watermark, it raises the bit
// exactly once and starts a new accumulation. Returns the number of frames
// consumed; zero means the ring had no complete frame.
func (d *Device) ProcessTX() int {
	drained := 0
	for {
		f, err := d.tx.Next()
		if err != nil {
			break // ring.ErrWouldBlock
		}
		if d.sink != nil {
			d.sink(f.Bytes())
		}
		d.freedSinceRaise += f.Len() + ring.HeaderSize
		drained++
		if d.mode == DrainOne {
			break
		}
	}
	if drained == 0 {
		return 0
	}

	d.tx.Publish()
	if d.freedSinceRaise >= d.txLowWM {
		d.freedSinceRaise = 0
		d.regs.Int.Raise(mmio.IntTxSpace)
	}
	return drained
}

// GenerateRX frames one payload into the RX ring. If the enqueue pushes
// occupancy (measured against the host's last published tail) across the
// high watermark, RX_READY is raised once per crossing, not per frame.
// ring.ErrInsufficientSpace means the host has not caught up; the payload
// is not written.
func (d *Device) GenerateRX(payload []byte) error {
	before := d.rx.Used()
	if err := d.rx.Enqueue(payload); err != nil {
		return err
	}
	after := d.rx.Used()
	if before < d.rxHighWM && after >= d.rxHighWM {
		d.regs.Int.Raise(mmio.IntRxReady)
	}
	return nil
}

// RaiseError latches the ERROR bit for the host to observe. Non-fatal by
// contract; the device keeps running.
func (d *Device) RaiseError() {
	d.log.Warn("raising error interrupt")
	d.regs.Int.Raise(mmio.IntError)
}

// RxFree reports the space currently available to GenerateRX.
func (d *Device) RxFree() int {
	return d.rx.Free()
}

// TxAvailable reports the bytes visible in the TX ring, header bytes
// included.
func (d *Device) TxAvailable() int {
	return d.tx.Available()
}
