package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
}

func TestLoadConfig_Layers(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"server_endpoint_addr":  "json:1",
		"online_check_interval": "7s",
	})
	t.Setenv("OPSBOT_SERVER_ADDR", "env:2")
	os.Args = []string{"cmd", "-c", path, "-i", "9"}

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "env:2", cfg.ServerEndpointAddr)
	assert.Equal(t, 9*time.Second, cfg.OnlineCheckInterval)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("OPSBOT_ONLINE_CHECK_INTERVAL", "15s")

	cfg := &Config{ServerEndpointAddr: "keep:1"}
	parseEnv(cfg)

	assert.Equal(t, "keep:1", cfg.ServerEndpointAddr)
	assert.Equal(t, 15*time.Second, cfg.OnlineCheckInterval)
}

func TestParseEnv_InvalidDurationPanics(t *testing.T) {
	t.Setenv("OPSBOT_ONLINE_CHECK_INTERVAL", "soon")

	require.Panics(t, func() { parseEnv(&Config{}) })
}
