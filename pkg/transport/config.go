package transport

import (
	"fmt"

	"github.com/gobeyondidentity/ringlink/pkg/ring"
)

// Config sizes the two ring directions and their notification watermarks.
type Config struct {
	// TxCapacity is the host->device ring arena size in bytes.
	TxCapacity int

	// RxCapacity is the device->host ring arena size in bytes.
	RxCapacity int

	// TxLowWatermark is the freed-byte threshold that triggers TX_SPACE.
	// Zero selects TxCapacity/4.
	TxLowWatermark int

	// RxHighWatermark is the occupancy threshold that triggers RX_READY.
	// Zero selects RxCapacity/4.
	RxHighWatermark int
}

// DefaultConfig mirrors the hardware defaults: 4KB per direction,
// watermarks at a quarter of capacity.
func DefaultConfig() *Config {
	return &Config{
		TxCapacity: ring.DefaultCapacity,
		RxCapacity: ring.DefaultCapacity,
	}
}

// withDefaults returns a copy with zero watermarks resolved.
func (c *Config) withDefaults() Config {
	out := *c
	if out.TxLowWatermark == 0 {
		out.TxLowWatermark = out.TxCapacity / 4
	}
	if out.RxHighWatermark == 0 {
		out.RxHighWatermark = out.RxCapacity / 4
	}
	return out
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if c.TxCapacity < ring.MinCapacity {
		return fmt.Errorf("tx capacity %d below minimum %d", c.TxCapacity, ring.MinCapacity)
	}
	if c.RxCapacity < ring.MinCapacity {
		return fmt.Errorf("rx capacity %d below minimum %d", c.RxCapacity, ring.MinCapacity)
	}
	if c.TxLowWatermark < 0 || c.TxLowWatermark > c.TxCapacity {
		return fmt.Errorf("tx low watermark %d outside [0, %d]", c.TxLowWatermark, c.TxCapacity)
	}
	if c.RxHighWatermark < 0 || c.RxHighWatermark > c.RxCapacity {
		return fmt.Errorf("rx high watermark %d outside [0, %d]", c.RxHighWatermark, c.RxCapacity)
	}
	return nil
}
