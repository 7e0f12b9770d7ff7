package config

import "time"

// Config holds runtime settings for the opsbot CLI.
type Config struct {
	ServerEndpointAddr  string        `env:"OPSBOT_SERVER_ADDR"`
	OnlineCheckInterval time.Duration `env:"OPSBOT_ONLINE_CHECK_INTERVAL"`
}

// LoadDefaults points the CLI at a local server.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig applies defaults, then JSON, environment and flags, later
// sources taking precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
