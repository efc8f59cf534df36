package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gobeyondidentity/ringlink/pkg/ring"
)

// Config describes one simulation run. Zero fields take defaults from
// DefaultConfig, so a config file only needs the values it changes.
type Config struct {
	// Cycles is the number of alternating host/device cycles to run.
	Cycles int `yaml:"cycles"`

	// Seed feeds the device's traffic generator. Same seed, same run.
	Seed int64 `yaml:"seed"`

	// TxCapacity and RxCapacity size the two ring arenas in bytes.
	TxCapacity int `yaml:"tx_capacity"`
	RxCapacity int `yaml:"rx_capacity"`

	// TxLowWatermark and RxHighWatermark override the capacity/4
	// defaults when non-zero.
	TxLowWatermark  int `yaml:"tx_low_watermark"`
	RxHighWatermark int `yaml:"rx_high_watermark"`

	// DrainAll switches the device from its default one-frame-per-cycle
	// pacing to exhaustive TX draining.
	DrainAll bool `yaml:"drain_all"`

	// GenerateChance is the per-cycle probability (0..1) that the device
	// generates an RX packet.
	GenerateChance float64 `yaml:"generate_chance"`

	// MinPayload and MaxPayload bound generated RX payload sizes.
	MinPayload int `yaml:"min_payload"`
	MaxPayload int `yaml:"max_payload"`

	// SendEvery makes the host send a packet every N cycles (0 disables).
	SendEvery int `yaml:"send_every"`

	// SendSize is the payload size of those periodic sends.
	SendSize int `yaml:"send_size"`

	// Inject is the scripted packet schedule, applied before the cycle's
	// other work.
	Inject []Injection `yaml:"inject"`
}

// Injection is one scripted host send.
type Injection struct {
	Cycle int `yaml:"cycle"`
	Size  int `yaml:"size"`
}

// DefaultConfig mirrors the original bring-up script: 50 cycles, 4KB
// rings, a coin-flip RX generator producing 10..109-byte payloads, a
// 20-byte host send every 10 cycles, and two packets injected up front.
func DefaultConfig() *Config {
	return &Config{
		Cycles:         50,
		Seed:           1,
		TxCapacity:     ring.DefaultCapacity,
		RxCapacity:     ring.DefaultCapacity,
		GenerateChance: 0.5,
		MinPayload:     10,
		MaxPayload:     109,
		SendEvery:      10,
		SendSize:       20,
		Inject: []Injection{
			{Cycle: 0, Size: 10},
			{Cycle: 0, Size: 12},
		},
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the simulation parameters.
func (c *Config) Validate() error {
	if c.Cycles <= 0 {
		return fmt.Errorf("cycles must be positive, got %d", c.Cycles)
	}
	if c.GenerateChance < 0 || c.GenerateChance > 1 {
		return fmt.Errorf("generate_chance %v outside [0, 1]", c.GenerateChance)
	}
	if c.MinPayload < 0 || c.MaxPayload < c.MinPayload {
		return fmt.Errorf("payload bounds [%d, %d] invalid", c.MinPayload, c.MaxPayload)
	}
	if c.SendEvery < 0 {
		return fmt.Errorf("send_every must not be negative, got %d", c.SendEvery)
	}
	for i, inj := range c.Inject {
		if inj.Cycle < 0 || inj.Cycle >= c.Cycles {
			return fmt.Errorf("inject[%d]: cycle %d outside run of %d cycles", i, inj.Cycle, c.Cycles)
		}
		if inj.Size <= 0 {
			return fmt.Errorf("inject[%d]: size must be positive, got %d", i, inj.Size)
		}
	}
	return nil
}
