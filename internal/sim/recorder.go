package sim

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// Recorder streams trace events into a file as a CBOR sequence, one
// encoded Event after another. The format is compact enough to record
// long soak runs and self-describing enough to inspect later.
type Recorder struct {
	f   *os.File
	enc *cbor.Encoder
	err error
}

// NewRecorder creates (or truncates) the trace file at path.
func NewRecorder(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create trace file: %w", err)
	}
	return &Recorder{
		f:   f,
		enc: cbor.NewEncoder(f),
	}, nil
}

// Write appends one event. Encoding errors are sticky and reported by
// Close, so the hot loop doesn't check per event.
func (r *Recorder) Write(ev Event) {
	if r.err != nil {
		return
	}
	if err := r.enc.Encode(ev); err != nil {
		r.err = fmt.Errorf("encode trace event: %w", err)
	}
}

// Close flushes and closes the trace file, returning any sticky encoding
// error first.
func (r *Recorder) Close() error {
	closeErr := r.f.Close()
	if r.err != nil {
		return r.err
	}
	return closeErr
}

// ReadTrace decodes a recorded trace file back into events.
func ReadTrace(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace file: %w", err)
	}
	defer f.Close()

	dec := cbor.NewDecoder(f)
	var events []Event
	for {
		var ev Event
		if err := dec.Decode(&ev); err != nil {
			if errors.Is(err, io.EOF) {
				return events, nil
			}
			return nil, fmt.Errorf("decode trace event %d: %w", len(events), err)
		}
		events = append(events, ev)
	}
}
