package transport

import (
	"fmt"

	"github.com/gobeyondidentity/ringlink/pkg/mmio"
	"github.com/gobeyondidentity/ringlink/pkg/ring"
)

// Link bundles everything the host and the device share: the two ring
// arenas and the register block. It is built once and injected into both
// agents, so independent links can coexist in one process (and one test).
type Link struct {
	TX   *ring.Buffer // host -> device
	RX   *ring.Buffer // device -> host
	Regs *mmio.RegisterFile

	cfg Config
}

// NewLink allocates the shared state for one host/device pair. All arenas
// and registers start zeroed; no allocation happens after this point.
func NewLink(cfg *Config) (*Link, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	resolved := cfg.withDefaults()
	if err := resolved.Validate(); err != nil {
		return nil, fmt.Errorf("link config: %w", err)
	}

	tx, err := ring.NewBuffer(resolved.TxCapacity)
	if err != nil {
		return nil, fmt.Errorf("tx ring: %w", err)
	}
	rx, err := ring.NewBuffer(resolved.RxCapacity)
	if err != nil {
		return nil, fmt.Errorf("rx ring: %w", err)
	}

	return &Link{
		TX:   tx,
		RX:   rx,
		Regs: mmio.NewRegisterFile(),
		cfg:  resolved,
	}, nil
}

// Config returns the resolved configuration the link was built with.
func (l *Link) Config() Config {
	return l.cfg
}
