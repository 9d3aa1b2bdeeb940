package orders

import (
	"github.com/peerbid/marketplace/config/encoding"
	"github.com/peerbid/marketplace/logging"
)

const namedLogger = "orders"

// Config represents the configuration of the order ledger.
type Config struct {
	Level encoding.LogLevel `long:"log-level"`
}

// NewDefaultConfig creates an instance of config with default values.
func NewDefaultConfig() Config {
	return Config{
		Level: encoding.LogLevel{Level: logging.InfoLevel},
	}
}
