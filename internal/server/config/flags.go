package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophclip/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-g string   gRPC bind address, empty disables gRPC
//	-b string   storage backend: postgres|sqlite|memory
//	-d string   database DSN
//	-r string   Redis URL for the resolve cache
//	-l string   log level
//	-n int      code generation attempts
//	-t int      store timeout, seconds
//	-x int      cache TTL, seconds
//	-i int      background cleanup interval, seconds (0 disables)
//	-o string   comma separated CORS origins
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-b", "-d", "-r", "-l", "-n", "-t", "-x", "-i", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port to run server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC address and port to run server")
	fs.StringVar(&config.StorageBackend, "b", config.StorageBackend, "storage backend: postgres|sqlite|memory")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.RedisURL, "r", config.RedisURL, "redis URL")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level: debug|info|warn|error")
	fs.IntVar(&config.CodeAttempts, "n", config.CodeAttempts, "code generation attempts")

	storeTimeout := fs.Int("t", int(config.StoreTimeout.Seconds()), "store timeout (in seconds)")
	cacheTTL := fs.Int("x", int(config.CacheTTL.Seconds()), "cache TTL (in seconds)")
	cleanupInterval := fs.Int("i", int(config.CleanupInterval.Seconds()), "cleanup interval (in seconds)")
	origins := fs.String("o", strings.Join(config.CORSAllowedOrigins, ","), "CORS allowed origins")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Whole-second flags only override the config when given explicitly.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.StoreTimeout = time.Duration(*storeTimeout) * time.Second
		case "x":
			config.CacheTTL = time.Duration(*cacheTTL) * time.Second
		case "i":
			config.CleanupInterval = time.Duration(*cleanupInterval) * time.Second
		case "o":
			config.CORSAllowedOrigins = splitList(*origins)
		}
	})
}
