package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/opsbot/internal/flagx"
	"github.com/dmitrijs2005/opsbot/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON config file. Durations accept
// both "30m" and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP            string         `json:"endpoint_addr_http"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	LogLevel                    string         `json:"log_level"`
	AllowedOrigins              string         `json:"allowed_origins"`
	LoginRateLimit              float64        `json:"login_rate_limit"`
	LoginBurst                  int            `json:"login_burst"`
	AdminName                   string         `json:"admin_name"`
	AdminEmail                  string         `json:"admin_email"`
	AdminPassword               string         `json:"admin_password"`
	SeedDemo                    *bool          `json:"seed_demo"`
}

// parseJson loads the file named by -c/-config, if any, and copies every
// field present in it into config. Unreadable files and invalid JSON panic.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.AllowedOrigins, c.AllowedOrigins)
	setString(&config.AdminName, c.AdminName)
	setString(&config.AdminEmail, c.AdminEmail)
	setString(&config.AdminPassword, c.AdminPassword)

	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.LoginRateLimit != 0 {
		config.LoginRateLimit = c.LoginRateLimit
	}
	if c.LoginBurst != 0 {
		config.LoginBurst = c.LoginBurst
	}
	if c.SeedDemo != nil {
		config.SeedDemo = *c.SeedDemo
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
