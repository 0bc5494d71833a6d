package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// loadDotenv reads .env from the working directory if there is one.
// Variables already present in the environment win.
func loadDotenv() {
	_ = godotenv.Load()
}

// parseEnv overlays the environment variables the hosting platform usually
// provides. Empty values are ignored.
//
//	HTTP_ADDR, GRPC_ADDR, STORAGE_BACKEND, DATABASE_URL, REDIS_URL,
//	LOG_LEVEL, CORS_ORIGIN (comma separated)
func parseEnv(config *Config) {
	setFromEnv("HTTP_ADDR", &config.EndpointAddrHTTP)
	setFromEnv("GRPC_ADDR", &config.EndpointAddrGRPC)
	setFromEnv("STORAGE_BACKEND", &config.StorageBackend)
	setFromEnv("DATABASE_URL", &config.DatabaseDSN)
	setFromEnv("REDIS_URL", &config.RedisURL)
	setFromEnv("LOG_LEVEL", &config.LogLevel)

	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		config.CORSAllowedOrigins = splitList(v)
	}
}

func setFromEnv(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
