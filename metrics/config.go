package metrics

// Config represents the configuration of the metrics endpoint.
type Config struct {
	Enabled bool
	Port    int
	Path    string
}

// NewDefaultConfig creates an instance of config with default values.
func NewDefaultConfig() Config {
	return Config{
		Enabled: false,
		Port:    2112,
		Path:    "/metrics",
	}
}
