package config

import "time"

// Config holds runtime settings for the gophclip CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the gRPC endpoint.
//   - RequestTimeout: deadline for a single share or fetch call.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
}

// Flags lists the global flags owned by this package. The CLI strips them
// before parsing its subcommand.
var Flags = []string{"-a", "-t", "-c", "-config"}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
