package bids

import (
	"github.com/peerbid/marketplace/config/encoding"
	"github.com/peerbid/marketplace/logging"
)

const namedLogger = "bids"

// Config represents the configuration of the bid ledger.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`
}

// NewDefaultConfig creates an instance of config with default values.
func NewDefaultConfig() Config {
	return Config{
		Level: encoding.LogLevel{Level: logging.InfoLevel},
	}
}
