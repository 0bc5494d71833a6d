package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophclip/internal/flagx"
	"github.com/dmitrijs2005/gophclip/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Durations use timex.Duration so
// both "10m" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrHTTP   string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC   string         `json:"endpoint_addr_grpc"`
	StorageBackend     string         `json:"storage_backend"`
	DatabaseDSN        string         `json:"database_dsn"`
	RedisURL           string         `json:"redis_url"`
	CacheTTL           timex.Duration `json:"cache_ttl"`
	StoreTimeout       timex.Duration `json:"store_timeout"`
	CodeAttempts       int            `json:"code_attempts"`
	CleanupOnIssue     bool           `json:"cleanup_on_issue"`
	CleanupInterval    timex.Duration `json:"cleanup_interval"`
	CORSAllowedOrigins []string       `json:"cors_allowed_origins"`
	LogLevel           string         `json:"log_level"`
	ShutdownTimeout    timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays values from the file named by -c/-config onto config.
// Keys missing from the file keep their current values. An unreadable file
// or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{
		EndpointAddrHTTP:   config.EndpointAddrHTTP,
		EndpointAddrGRPC:   config.EndpointAddrGRPC,
		StorageBackend:     config.StorageBackend,
		DatabaseDSN:        config.DatabaseDSN,
		RedisURL:           config.RedisURL,
		CacheTTL:           timex.Duration{Duration: config.CacheTTL},
		StoreTimeout:       timex.Duration{Duration: config.StoreTimeout},
		CodeAttempts:       config.CodeAttempts,
		CleanupOnIssue:     config.CleanupOnIssue,
		CleanupInterval:    timex.Duration{Duration: config.CleanupInterval},
		CORSAllowedOrigins: config.CORSAllowedOrigins,
		LogLevel:           config.LogLevel,
		ShutdownTimeout:    timex.Duration{Duration: config.ShutdownTimeout},
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.StorageBackend = c.StorageBackend
	config.DatabaseDSN = c.DatabaseDSN
	config.RedisURL = c.RedisURL
	config.CacheTTL = c.CacheTTL.Duration
	config.StoreTimeout = c.StoreTimeout.Duration
	config.CodeAttempts = c.CodeAttempts
	config.CleanupOnIssue = c.CleanupOnIssue
	config.CleanupInterval = c.CleanupInterval.Duration
	config.CORSAllowedOrigins = c.CORSAllowedOrigins
	config.LogLevel = c.LogLevel
	config.ShutdownTimeout = c.ShutdownTimeout.Duration
}
