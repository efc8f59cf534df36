package sim

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// EventKind labels one traced simulation event.
type EventKind string

const (
	EventHostSend    EventKind = "host_send"
	EventHostReject  EventKind = "host_reject"
	EventHostRecv    EventKind = "host_recv"
	EventInterrupt   EventKind = "interrupt"
	EventDeviceDrain EventKind = "device_drain"
	EventDeviceGen   EventKind = "device_gen"
	EventDeviceSkip  EventKind = "device_skip"
)

// Event is one traced occurrence. The same struct feeds the console
// tracer and the CBOR recorder; integer keys keep the binary form small.
type Event struct {
	Cycle    int       `cbor:"1,keyasint" json:"cycle"`
	Kind     EventKind `cbor:"2,keyasint" json:"kind"`
	Size     int       `cbor:"3,keyasint,omitempty" json:"size,omitempty"`
	Bits     string    `cbor:"4,keyasint,omitempty" json:"bits,omitempty"`
	PacketID string    `cbor:"5,keyasint,omitempty" json:"packet_id,omitempty"`
	Detail   string    `cbor:"6,keyasint,omitempty" json:"detail,omitempty"`
}

// Tracer renders events to a console stream, host lines and device lines
// in distinct colors, and optionally mirrors every event into a Recorder.
type Tracer struct {
	out io.Writer
	rec *Recorder

	hostColor *color.Color
	devColor  *color.Color
	intColor  *color.Color
}

// NewTracer writes colored trace lines to out. A nil out silences console
// output (events still reach the recorder). Pass noColor to strip ANSI
// codes, e.g. when out is a file.
func NewTracer(out io.Writer, noColor bool, rec *Recorder) *Tracer {
	hostC := color.New(color.FgCyan)
	devC := color.New(color.FgMagenta)
	intC := color.New(color.FgYellow)
	if noColor {
		for _, c := range []*color.Color{hostC, devC, intC} {
			c.DisableColor()
		}
	}
	return &Tracer{
		out:       out,
		rec:       rec,
		hostColor: hostC,
		devColor:  devC,
		intColor:  intC,
	}
}

// Emit records one event.
func (t *Tracer) Emit(ev Event) {
	if t.rec != nil {
		t.rec.Write(ev)
	}
	if t.out == nil {
		return
	}

	c := t.devColor
	switch ev.Kind {
	case EventHostSend, EventHostReject, EventHostRecv:
		c = t.hostColor
	case EventInterrupt:
		c = t.intColor
	}

	line := fmt.Sprintf("[%3d] %-12s", ev.Cycle, ev.Kind)
	if ev.Size > 0 {
		line += fmt.Sprintf(" size=%d", ev.Size)
	}
	if ev.Bits != "" {
		line += fmt.Sprintf(" bits=%s", ev.Bits)
	}
	if ev.PacketID != "" {
		line += fmt.Sprintf(" packet=%s", ev.PacketID)
	}
	if ev.Detail != "" {
		line += fmt.Sprintf(" %s", ev.Detail)
	}
	c.Fprintln(t.out, line)
}
