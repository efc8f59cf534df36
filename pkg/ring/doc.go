// Package ring implements the SPSC circular byte store and frame codec at
// the heart of the host/chip transport.
//
// A Buffer is a fixed-size byte arena addressed by integer offsets modulo
// its capacity. Exactly one Producer writes frames into it and exactly one
// Consumer reads them out; the two roles may live in different goroutines
// with no locking. Each role keeps its position privately and publishes it
// through an mmio.Register so the peer can compute space or data on its
// side of the boundary.
//
// # Frames
//
// A frame is a 2-byte little-endian payload length followed by the payload,
// stored contiguously in logical (wrapped) address space. Either part may
// straddle the physical end of the arena; the codec splits the writes and
// reassembles on read.
//
// # Full versus empty
//
// One byte of capacity is permanently reserved: occupancy never exceeds
// capacity-1, so head == tail always means empty and never means full.
//
// # Backpressure
//
// Nothing here blocks. Enqueue reports ErrInsufficientSpace and Next
// reports ErrWouldBlock; the caller retries after the peer makes progress,
// typically prompted by a watermark interrupt. Repeated transient failures
// are the normal steady state under load, not a fault.
package ring
