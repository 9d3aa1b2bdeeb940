package config

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/peerbid/marketplace/bids"
	"github.com/peerbid/marketplace/broker"
	"github.com/peerbid/marketplace/fee"
	"github.com/peerbid/marketplace/logging"
	"github.com/peerbid/marketplace/markettime"
	"github.com/peerbid/marketplace/metrics"
	"github.com/peerbid/marketplace/orders"
	"github.com/peerbid/marketplace/settlement"
)

// Config ties together all other application configuration types.
type Config struct {
	Logging    logging.Config
	Broker     broker.Config
	Bids       bids.Config
	Orders     orders.Config
	Fee        fee.Config
	Settlement settlement.Config
	Time       markettime.Config
	Metrics    metrics.Config

	// Operator is the hex address of the single privileged principal
	// allowed on the admin surface.
	Operator string
}

// NewDefaultConfig returns a set of default configs for all packages, as
// specified at the per package config level.
func NewDefaultConfig() Config {
	return Config{
		Logging:    logging.NewDefaultConfig(),
		Broker:     broker.NewDefaultConfig(),
		Bids:       bids.NewDefaultConfig(),
		Orders:     orders.NewDefaultConfig(),
		Fee:        fee.NewDefaultConfig(),
		Settlement: settlement.NewDefaultConfig(),
		Time:       markettime.NewDefaultConfig(),
		Metrics:    metrics.NewDefaultConfig(),
	}
}

// Read loads a config from a toml file.
func Read(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(buf, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Write renders a config to a toml file.
func Write(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
