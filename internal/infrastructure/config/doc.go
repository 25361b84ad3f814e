// Package config provides 12-factor configuration management for WardFS.
//
// Configuration is loaded from environment variables with sensible defaults;
// CLI flags override environment values. The allowed directories themselves
// are positional CLI arguments, not environment configuration.
//
// Environment Variables:
//   - PORT, HOST
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - TOOL_TIMEOUT_SECONDS
package config
