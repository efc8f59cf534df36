package mmio

import "sync/atomic"

// Register is a single cross-boundary visible 32-bit cell. One side writes
// it, the other side reads it; a read never observes a torn value.
//
// Store orders like a release: all plain memory writes made by the caller
// before Store are visible to a peer that observes the stored value. Load
// orders like an acquire: plain memory reads made after Load see everything
// the writer published before the matching Store. Go's sync/atomic gives
// sequentially consistent operations, which is strictly stronger.
type Register struct {
	v atomic.Uint32
}

// Load returns the current value.
func (r *Register) Load() uint32 {
	return r.v.Load()
}

// Store publishes a new value.
func (r *Register) Store(v uint32) {
	r.v.Store(v)
}

// RegisterFile is the full register block shared by the two agents. It is
// injected into both at construction instead of living in process-global
// state, so a single test can stand up any number of independent links.
//
// The original hardware exposes a separate write-to-clear INT_CLEAR
// register; here acknowledging maps to Latch.Acknowledge directly.
type RegisterFile struct {
	TxTail     Register // device: its TX consumer position
	RxHead     Register // device: its RX producer position
	HostTxHead Register // host: its TX producer position
	HostRxTail Register // host: its RX consumer position
	Int        Latch
}

// NewRegisterFile returns a zeroed register block, the hardware reset state.
func NewRegisterFile() *RegisterFile {
	return &RegisterFile{}
}

// Reset returns every register and the latch to the reset state.
func (f *RegisterFile) Reset() {
	f.TxTail.Store(0)
	f.RxHead.Store(0)
	f.HostTxHead.Store(0)
	f.HostRxTail.Store(0)
	f.Int.Reset()
}
