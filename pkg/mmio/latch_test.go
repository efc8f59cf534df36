package mmio

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLatchRaiseRecordsRegardlessOfEnable verifies that the enable mask
// gates delivery, not recording.
func TestLatchRaiseRecordsRegardlessOfEnable(t *testing.T) {
	var l Latch

	l.Raise(IntRxReady)
	assert.Equal(t, IntRxReady, l.Status())
	assert.Equal(t, IntBit(0), l.Pending(), "nothing enabled, nothing pending")

	l.Enable(IntRxReady)
	assert.Equal(t, IntRxReady, l.Pending(), "previously latched bit delivers once enabled")
}

// TestLatchAcknowledgeClearsExactlyOneBit verifies per-bit acknowledge.
func TestLatchAcknowledgeClearsExactlyOneBit(t *testing.T) {
	var l Latch
	l.Enable(AllInts)

	l.Raise(IntRxReady | IntTxSpace | IntError)
	l.Acknowledge(IntTxSpace)

	assert.Equal(t, IntRxReady|IntError, l.Status())
	assert.Equal(t, IntRxReady|IntError, l.Pending())
}

// TestLatchDisableKeepsStatus verifies that disabling a line does not drop
// an already-latched bit.
func TestLatchDisableKeepsStatus(t *testing.T) {
	var l Latch
	l.Enable(AllInts)
	l.Raise(IntError)

	l.Disable(IntError)
	assert.Equal(t, IntError, l.Status())
	assert.Equal(t, IntBit(0), l.Pending())

	l.Enable(IntError)
	assert.Equal(t, IntError, l.Pending())
}

// TestLatchConcurrentRaise hammers Raise from two goroutines against a
// concurrent acknowledger; run with -race.
func TestLatchConcurrentRaise(t *testing.T) {
	var l Latch
	l.Enable(AllInts)

	var wg sync.WaitGroup
	for _, bit := range []IntBit{IntRxReady, IntTxSpace} {
		wg.Add(1)
		go func(b IntBit) {
			defer wg.Done()
			for i := 0; i < 10000; i++ {
				l.Raise(b)
			}
		}(bit)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 10000; i++ {
			l.Acknowledge(l.Pending())
		}
	}()
	wg.Wait()

	// Drain whatever is left; the latch must end up clean.
	l.Acknowledge(AllInts)
	assert.Equal(t, IntBit(0), l.Status())
}

func TestIntBitString(t *testing.T) {
	tests := []struct {
		bits IntBit
		want string
	}{
		{0, "none"},
		{IntRxReady, "RX_READY"},
		{IntTxSpace, "TX_SPACE"},
		{IntError, "ERROR"},
		{IntRxReady | IntError, "RX_READY|ERROR"},
		{AllInts, "RX_READY|TX_SPACE|ERROR"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.bits.String())
	}
}

// TestRegisterFileReset verifies the block returns to the hardware reset
// state.
func TestRegisterFileReset(t *testing.T) {
	f := NewRegisterFile()
	f.HostTxHead.Store(123)
	f.TxTail.Store(77)
	f.Int.Enable(AllInts)
	f.Int.Raise(IntError)

	f.Reset()

	require.Zero(t, f.HostTxHead.Load())
	require.Zero(t, f.TxTail.Load())
	require.Zero(t, f.RxHead.Load())
	require.Zero(t, f.HostRxTail.Load())
	require.Equal(t, IntBit(0), f.Int.Status())
	require.Equal(t, IntBit(0), f.Int.Enabled())
}
