// Package config loads runtime configuration for the opsbot CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. OPSBOT_SERVER_ADDR and OPSBOT_ONLINE_CHECK_INTERVAL.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the opsbot gRPC endpoint
//	-i int      online status check interval (seconds)
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s"
//	}
package config
