// Package mmio models the register block shared between the host and the
// chip: four published ring positions and an interrupt latch.
//
// On real hardware these are bus-mapped 32-bit registers. Here each one is
// an atomic cell, which preserves the only property the transport protocol
// actually depends on: a published value is stored in a single indivisible
// 32-bit write that becomes visible after every data write that preceded it,
// and is read in a single indivisible load that happens before every data
// read that follows it. The peer may observe a stale value; that is normal.
//
// # Ownership
//
// Each position register has exactly one writer. The host writes its TX
// producer and RX consumer positions; the device writes its TX consumer and
// RX producer positions. The interrupt status word is the one exception:
// either side may OR bits into it, and the host acknowledges them.
//
// A RegisterFile is constructed once, zeroed, and handed to both agents.
// Nothing here allocates after construction.
package mmio
