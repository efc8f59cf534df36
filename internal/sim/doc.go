// Package sim drives a host/device link through a scripted, deterministic
// simulation: the two agents alternate in a fixed cycle loop the way the
// hardware bring-up harness alternated the driver and the chip emulator.
//
// Each cycle the host services its interrupt latch, the device consumes TX
// frames and (pseudo-randomly, from a seeded source) generates RX traffic,
// and the host periodically sends scripted packets. The same seed always
// produces the same trace, which makes regressions diffable.
//
// The simulator is configured from YAML (see Config), traces to the
// console with per-agent coloring, and can record a binary CBOR event
// trace for offline inspection.
package sim
