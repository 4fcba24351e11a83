// Package config loads runtime configuration for the storyline CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), optionally via a .env file.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the story service HTTP API
//	-t int      request timeout (seconds)
//	-d string   path of the local session database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://hack-or-snooze-v3.herokuapp.com",
//	  "request_timeout": "10s",
//	  "session_db_path": "storyline.db"
//	}
//
// Primary API
//
//   - type Config                     — holds APIBaseURL, RequestTimeout and SessionDBPath
//   - func LoadConfig() *Config       — applies defaults, then JSON, env and flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
