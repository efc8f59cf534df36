// Package transport implements the two agents of the host/chip link.
//
// The link is a pair of SPSC rings in shared arenas plus a register block:
// the host produces into the TX ring and consumes the RX ring; the device
// does the opposite. Each agent is single-threaded; the only coordination
// between them is the published position registers and the interrupt latch.
//
// # Host side
//
// Host.Send frames a payload into the TX ring. Host.Dispatch polls the
// latch and runs the handler for every enabled pending bit: RX_READY drains
// the RX ring to exhaustion and hands each payload to the configured sink;
// TX_SPACE is informational; ERROR is reported and operation continues.
//
// # Device side
//
// Device.ProcessTX drains the TX ring (one frame per call by default,
// mirroring the hardware's pacing, or to exhaustion with DrainAll) and
// raises TX_SPACE when the space freed since the last raise crosses the
// low watermark. Device.GenerateRX frames a payload into the RX ring and
// raises RX_READY when occupancy crosses the high watermark.
//
// Nothing blocks and nothing times out. Callers that cannot make progress
// get ring.ErrWouldBlock or ring.ErrInsufficientSpace and try again later,
// usually prompted by a watermark interrupt. Watermarks are advisory: a
// missed or doubled raise changes notification frequency, never data.
//
// # Usage
//
//	link, err := transport.NewLink(transport.DefaultConfig())
//	host := transport.NewHost(link, transport.WithSink(deliver))
//	dev := transport.NewDevice(link)
//
//	err = host.Send(pkt)       // host -> device
//	dev.ProcessTX()            // device consumes
//	err = dev.GenerateRX(data) // device -> host
//	host.Dispatch()            // host consumes, via the latch
//
// The two agents run correctly from separate goroutines; see the package
// tests.
package transport
