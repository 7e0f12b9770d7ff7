// Package config handles configuration for the opsbot server: defaults, a
// dotenv file, a JSON overlay, OPSBOT_* environment variables and
// command-line flags, applied in that order.
package config

import (
	"strings"
	"time"
)

// Config holds runtime settings for the opsbot server.
//
// Fields:
//   - EndpointAddrGRPC / EndpointAddrHTTP: bind addresses of the two transports.
//   - SecretKey: server secret for token signatures and password digests.
//     Empty means a random secret is generated at startup.
//   - AccessTokenValidityDuration: lifetime of issued bearer tokens.
//   - AllowedOrigins: comma-separated CORS origins, "*" for any.
//   - LoginRateLimit / LoginBurst: per-client throttle on the HTTP login route.
//   - AdminName / AdminEmail / AdminPassword: account seeded at startup.
//   - SeedDemo: also seed the sample user accounts.
type Config struct {
	EndpointAddrGRPC            string        `env:"OPSBOT_GRPC_ADDR"`
	EndpointAddrHTTP            string        `env:"OPSBOT_HTTP_ADDR"`
	SecretKey                   string        `env:"OPSBOT_SECRET_KEY"`
	AccessTokenValidityDuration time.Duration `env:"OPSBOT_ACCESS_TOKEN_TTL"`
	LogLevel                    string        `env:"OPSBOT_LOG_LEVEL"`
	AllowedOrigins              string        `env:"OPSBOT_ALLOWED_ORIGINS"`
	LoginRateLimit              float64       `env:"OPSBOT_LOGIN_RATE_LIMIT"`
	LoginBurst                  int           `env:"OPSBOT_LOGIN_BURST"`
	AdminName                   string        `env:"OPSBOT_ADMIN_NAME"`
	AdminEmail                  string        `env:"OPSBOT_ADMIN_EMAIL"`
	AdminPassword               string        `env:"OPSBOT_ADMIN_PASSWORD"`
	SeedDemo                    bool          `env:"OPSBOT_SEED_DEMO"`
}

// LoadDefaults populates Config with development defaults. No admin is
// seeded unless AdminEmail is set.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.EndpointAddrHTTP = ":8000"
	c.SecretKey = ""
	c.AccessTokenValidityDuration = 30 * time.Minute
	c.LogLevel = "info"
	c.AllowedOrigins = "*"
	c.LoginRateLimit = 1
	c.LoginBurst = 5
	c.AdminName = "Administrator"
	c.AdminEmail = ""
	c.AdminPassword = ""
	c.SeedDemo = false
}

// Origins splits AllowedOrigins into trimmed, non-empty entries.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from a dotenv file, an optional JSON file, the environment and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseDotEnv()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
