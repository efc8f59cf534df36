package sim

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/gobeyondidentity/ringlink/pkg/mmio"
	"github.com/gobeyondidentity/ringlink/pkg/transport"
)

// Stats summarizes one simulation run.
type Stats struct {
	Cycles            int
	HostSent          int
	HostSendRejected  int
	HostReceived      int
	HostBytesReceived int
	DeviceDrained     int
	DeviceGenerated   int
	DeviceGenSkipped  int
	InterruptsRxReady int
	InterruptsTxSpace int
	InterruptsError   int
}

// Simulator owns one link and its two agents and drives them through the
// scripted cycle loop.
type Simulator struct {
	cfg    *Config
	link   *transport.Link
	host   *transport.Host
	dev    *transport.Device
	rng    *rand.Rand
	tracer *Tracer
	log    *slog.Logger

	cycle int
	stats Stats
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithTracer attaches a tracer. Without one the run is silent.
func WithTracer(t *Tracer) Option {
	return func(s *Simulator) {
		s.tracer = t
	}
}

// WithLogger sets the logger. Defaults to slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(s *Simulator) {
		s.log = log
	}
}

// New builds the shared link and both agents from cfg.
func New(cfg *Config, opts ...Option) (*Simulator, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim config: %w", err)
	}

	link, err := transport.NewLink(&transport.Config{
		TxCapacity:      cfg.TxCapacity,
		RxCapacity:      cfg.RxCapacity,
		TxLowWatermark:  cfg.TxLowWatermark,
		RxHighWatermark: cfg.RxHighWatermark,
	})
	if err != nil {
		return nil, err
	}

	s := &Simulator{
		cfg:  cfg,
		link: link,
		rng:  rand.New(rand.NewSource(cfg.Seed)),
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.host = transport.NewHost(link,
		transport.WithSink(s.onHostRecv),
		transport.WithErrorNotify(func(status mmio.IntBit) {
			s.stats.InterruptsError++
		}),
		transport.WithTxSpaceNotify(func() {
			s.stats.InterruptsTxSpace++
		}),
	)

	devOpts := []transport.DeviceOption{
		transport.WithTXSink(s.onDeviceDrain),
	}
	if cfg.DrainAll {
		devOpts = append(devOpts, transport.WithDrainMode(transport.DrainAll))
	}
	s.dev = transport.NewDevice(link, devOpts...)
	return s, nil
}

// Run executes the configured number of cycles and returns the totals.
// Each cycle mirrors the original bring-up loop: scripted injections,
// host interrupt dispatch, device TX processing, probabilistic device RX
// generation, and the host's periodic send.
func (s *Simulator) Run() (Stats, error) {
	for s.cycle = 0; s.cycle < s.cfg.Cycles; s.cycle++ {
		for _, inj := range s.cfg.Inject {
			if inj.Cycle == s.cycle {
				s.hostSend(inj.Size)
			}
		}

		if serviced := s.host.Dispatch(); serviced != 0 {
			if serviced&mmio.IntRxReady != 0 {
				s.stats.InterruptsRxReady++
			}
			s.emit(Event{Cycle: s.cycle, Kind: EventInterrupt, Bits: serviced.String()})
		}

		s.deviceCycle()

		if s.cfg.SendEvery > 0 && s.cycle%s.cfg.SendEvery == 0 && s.cycle > 0 {
			s.hostSend(s.cfg.SendSize)
		}
	}

	// Flush whatever the device generated after the last RX_READY edge;
	// the sink traces each frame.
	s.host.DrainRX()

	s.stats.Cycles = s.cfg.Cycles
	s.log.Info("simulation finished",
		"cycles", s.stats.Cycles,
		"host_sent", s.stats.HostSent,
		"host_received", s.stats.HostReceived,
		"device_drained", s.stats.DeviceDrained,
		"device_generated", s.stats.DeviceGenerated,
	)
	return s.stats, nil
}

// hostSend injects one scripted packet, tagged for trace correlation.
func (s *Simulator) hostSend(size int) {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		id = uuid.Nil // rng never fails; keep the trace usable anyway
	}
	payload := make([]byte, size)
	s.rng.Read(payload)

	if err := s.host.Send(payload); err != nil {
		s.stats.HostSendRejected++
		s.emit(Event{Cycle: s.cycle, Kind: EventHostReject, Size: size, PacketID: id.String(), Detail: err.Error()})
		return
	}
	s.stats.HostSent++
	s.emit(Event{Cycle: s.cycle, Kind: EventHostSend, Size: size, PacketID: id.String()})
}

// deviceCycle is one turn of the emulated chip: consume TX, maybe
// generate RX.
func (s *Simulator) deviceCycle() {
	s.dev.ProcessTX()

	if s.rng.Float64() >= s.cfg.GenerateChance {
		return
	}
	size := s.cfg.MinPayload
	if s.cfg.MaxPayload > s.cfg.MinPayload {
		size += s.rng.Intn(s.cfg.MaxPayload - s.cfg.MinPayload + 1)
	}
	payload := make([]byte, size)
	s.rng.Read(payload)

	if err := s.dev.GenerateRX(payload); err != nil {
		s.stats.DeviceGenSkipped++
		s.emit(Event{Cycle: s.cycle, Kind: EventDeviceSkip, Size: size, Detail: err.Error()})
		return
	}
	s.stats.DeviceGenerated++
	s.emit(Event{Cycle: s.cycle, Kind: EventDeviceGen, Size: size})
}

// onHostRecv is the host's RX sink.
func (s *Simulator) onHostRecv(payload []byte) {
	s.stats.HostReceived++
	s.stats.HostBytesReceived += len(payload)
	s.emit(Event{Cycle: s.cycle, Kind: EventHostRecv, Size: len(payload)})
}

// onDeviceDrain is the device's TX sink.
func (s *Simulator) onDeviceDrain(payload []byte) {
	s.stats.DeviceDrained++
	s.emit(Event{Cycle: s.cycle, Kind: EventDeviceDrain, Size: len(payload)})
}

func (s *Simulator) emit(ev Event) {
	if s.tracer != nil {
		s.tracer.Emit(ev)
	}
}
