package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/opsbot/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string    gRPC bind address (e.g. ":50051")
//	-w string    HTTP bind address (e.g. ":8000")
//	-s string    server secret
//	-t int       access token validity, minutes
//	-l string    log level
//	-o string    allowed CORS origins, comma-separated
//	-an string   admin display name
//	-ae string   admin email
//	-ap string   admin password
//	-demo        seed sample users
//
// Only these flags are taken from os.Args (see flagx.FilterArgs), so -c,
// -config and -env can coexist on the same command line.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-s", "-t", "-l", "-o", "-an", "-ae", "-ap", "-demo"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.EndpointAddrHTTP, "w", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "server secret")
	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.AllowedOrigins, "o", config.AllowedOrigins, "allowed CORS origins")
	fs.StringVar(&config.AdminName, "an", config.AdminName, "admin name")
	fs.StringVar(&config.AdminEmail, "ae", config.AdminEmail, "admin email")
	fs.StringVar(&config.AdminPassword, "ap", config.AdminPassword, "admin password")
	fs.BoolVar(&config.SeedDemo, "demo", config.SeedDemo, "seed sample users")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// minutes only round-trip whole values, so leave sub-minute TTLs alone
	// unless -t was given
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
		}
	})
}
